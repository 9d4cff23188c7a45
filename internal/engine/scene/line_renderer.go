package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hexdrape/internal/engine/shader"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// LineRenderer draws transient overlay lines such as the hovered cell outline
// or a path. Geometry is streamed every call.
type LineRenderer struct {
	program  *shader.Program
	vao      uint32
	vbo      uint32
	capacity int
}

// NewLineRenderer creates an overlay renderer.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := newLineProgram()
	if err != nil {
		return nil, err
	}
	r := &LineRenderer{program: program}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Draw renders lines, a flat list of [x, y, z] endpoint pairs.
func (r *LineRenderer) Draw(viewProj math.Mat4, lines []float32, color [4]float32) {
	if len(lines) < 6 {
		return
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(lines) * 4
	if size > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(lines), gl.DYNAMIC_DRAW)
		r.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(lines))
	}

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform1f(r.program.Uniform("uLift"), 0)
	gl.Uniform4fv(r.program.Uniform("uColor"), 1, &color[0])

	gl.DrawArrays(gl.LINES, 0, int32(len(lines)/3))
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (r *LineRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	r.program.Delete()
}
