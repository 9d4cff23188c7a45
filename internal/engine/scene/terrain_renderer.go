package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hexdrape/internal/engine/scene/shaders"
	"github.com/Faultbox/hexdrape/internal/engine/shader"
	"github.com/Faultbox/hexdrape/internal/terrain"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// TerrainRenderer handles rendering of heightmap terrain.
type TerrainRenderer struct {
	program *shader.Program

	// Terrain mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Height range used for the color ramp
	minY, maxY float32

	LowColor  [3]float32
	HighColor [3]float32
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.NewProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader,
		"uViewProj", "uLightDir", "uAmbient", "uHeightRange", "uLowColor", "uHighColor")
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{
		program:   program,
		LowColor:  [3]float32{0.28, 0.45, 0.22},
		HighColor: [3]float32{0.75, 0.70, 0.58},
	}, nil
}

// LoadTerrain triangulates h and uploads it.
func (tr *TerrainRenderer) LoadTerrain(h *terrain.Heightmap) {
	tr.clearTerrain()

	mesh := terrain.BuildMesh(h)
	box := h.Box()
	tr.minY, tr.maxY = box.Min.Y, box.Max.Y
	if len(mesh.Indices) == 0 {
		return
	}

	tr.uploadTerrainMesh(mesh.Vertices, mesh.Indices)
}

func (tr *TerrainRenderer) uploadTerrainMesh(vertices []terrain.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexSize)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(indices))
}

// Render draws the terrain with a single directional light.
func (tr *TerrainRenderer) Render(viewProj math.Mat4, lightDir [3]float32, ambient float32) {
	if tr.indexCount == 0 {
		return
	}

	tr.program.Use()
	gl.UniformMatrix4fv(tr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3fv(tr.program.Uniform("uLightDir"), 1, &lightDir[0])
	gl.Uniform1f(tr.program.Uniform("uAmbient"), ambient)
	gl.Uniform2f(tr.program.Uniform("uHeightRange"), tr.minY, tr.maxY)
	gl.Uniform3fv(tr.program.Uniform("uLowColor"), 1, &tr.LowColor[0])
	gl.Uniform3fv(tr.program.Uniform("uHighColor"), 1, &tr.HighColor[0])

	gl.BindVertexArray(tr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clearTerrain() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		gl.DeleteBuffers(1, &tr.vbo)
		gl.DeleteBuffers(1, &tr.ebo)
		tr.vao, tr.vbo, tr.ebo = 0, 0, 0
	}
	tr.indexCount = 0
}

// Destroy releases GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearTerrain()
	tr.program.Delete()
}
