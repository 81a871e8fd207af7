//go:build !android

// Package render owns the OpenGL state of the city view.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"citynight/internal/city"
)

type Renderer struct {
	prog uint32

	uModel      int32
	uView       int32
	uProjection int32
}

// NewRenderer builds the building program. A GL context must be current.
func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(buildingVertSrc, buildingFragSrc)
	if err != nil {
		return nil, fmt.Errorf("building program: %w", err)
	}
	r := &Renderer{prog: prog}
	r.uModel = gl.GetUniformLocation(prog, gl.Str("model\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("view\x00"))
	r.uProjection = gl.GetUniformLocation(prog, gl.Str("projection\x00"))

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(city.SkyR, city.SkyG, city.SkyB, 1.0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
		r.prog = 0
	}
}

// BeginFrame sets the viewport, clears colour and depth and binds the program.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.prog)
}

// SetMatrices uploads the three transforms. Must follow BeginFrame.
func (r *Renderer) SetMatrices(model, view, projection mgl32.Mat4) {
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &projection[0])
}

// DrawMesh draws m with the current matrices.
func (r *Renderer) DrawMesh(m *Mesh) {
	m.Draw()
}
