//go:build !android

package render

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"citynight/internal/city"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Mesh is a static indexed triangle mesh living on the GPU.
// Vertices are interleaved position (vec3) + colour (vec3).
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads vertices and indices once. The buffers are not retained.
func NewMesh(vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, errors.New("new mesh: empty buffers")
	}
	if len(vertices)%city.FloatsPerVertex != 0 {
		return nil, errors.New("new mesh: vertex buffer is not a whole number of vertices")
	}
	m := &Mesh{count: int32(len(indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, city.VertexStride, glOffset(0))
	// aColor (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, city.VertexStride, glOffset(3*4))

	gl.BindVertexArray(0)
	return m, nil
}

// IndexCount returns the number of indices drawn per frame.
func (m *Mesh) IndexCount() int { return int(m.count) }

// Draw issues a single indexed draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers. Safe to call more than once.
func (m *Mesh) Destroy() {
	for _, id := range []*uint32{&m.vbo, &m.ebo} {
		if *id != 0 {
			gl.DeleteBuffers(1, id)
			*id = 0
		}
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	m.count = 0
}
