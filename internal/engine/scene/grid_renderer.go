package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hexdrape/internal/engine/scene/shaders"
	"github.com/Faultbox/hexdrape/internal/engine/shader"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// vec3Size is the byte size of one math.Vec3 vertex.
const vec3Size = int(unsafe.Sizeof(math.Vec3{}))

// lineMesh is one uploaded hex grid buffer.
type lineMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// GridRenderer draws sealed hex grid buffers as GL_LINES with 16-bit indices,
// one vertex array per buffer.
type GridRenderer struct {
	program *shader.Program
	meshes  []lineMesh

	// Color of the grid lines.
	Color [4]float32
}

// NewGridRenderer compiles the line program.
func NewGridRenderer() (*GridRenderer, error) {
	program, err := newLineProgram()
	if err != nil {
		return nil, err
	}
	return &GridRenderer{
		program: program,
		Color:   [4]float32{0.1, 0.1, 0.1, 1.0},
	}, nil
}

func newLineProgram() (*shader.Program, error) {
	program, err := shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader,
		"uViewProj", "uLift", "uColor")
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	return program, nil
}

// Upload replaces the drawn grid with buffers. Every buffer is checked
// against ceiling before anything reaches the GPU.
func (r *GridRenderer) Upload(buffers []hexgrid.MeshBuffer, ceiling int) error {
	for i, buf := range buffers {
		if err := buf.Validate(ceiling); err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
	}

	r.clear()
	for _, buf := range buffers {
		if len(buf.Indices) == 0 {
			continue
		}
		r.meshes = append(r.meshes, uploadLines(buf))
	}
	return nil
}

func uploadLines(buf hexgrid.MeshBuffer) lineMesh {
	var m lineMesh
	m.indexCount = int32(len(buf.Indices))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*vec3Size, gl.Ptr(buf.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*2, gl.Ptr(buf.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vec3Size), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return m
}

// Buffers returns the number of uploaded buffers.
func (r *GridRenderer) Buffers() int {
	return len(r.meshes)
}

// Render draws every uploaded buffer raised by lift.
func (r *GridRenderer) Render(viewProj math.Mat4, lift float32) {
	if len(r.meshes) == 0 {
		return
	}
	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform1f(r.program.Uniform("uLift"), lift)
	gl.Uniform4fv(r.program.Uniform("uColor"), 1, &r.Color[0])

	for _, m := range r.meshes {
		gl.BindVertexArray(m.vao)
		gl.DrawElementsWithOffset(gl.LINES, m.indexCount, gl.UNSIGNED_SHORT, 0)
	}
	gl.BindVertexArray(0)
}

func (r *GridRenderer) clear() {
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	r.meshes = r.meshes[:0]
}

// Destroy releases GPU resources.
func (r *GridRenderer) Destroy() {
	r.clear()
	r.program.Delete()
}
