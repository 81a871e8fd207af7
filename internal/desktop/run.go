//go:build !android

// Package desktop runs the city fly-through in a glfw window.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"citynight/internal/city"
	"citynight/internal/render"
)

// Run generates the city, opens the window and blocks until it is closed.
func Run(s city.Settings) error {
	runtime.LockOSThread()

	window, err := initWindow(s.Window.Width, s.Window.Height, s.Window.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// City generation.
	seed := s.ResolveSeed()
	buildings := city.GenerateCity(s.Buildings, city.NewRand(seed))
	vertices, indices := city.BuildMeshBuffers(buildings)
	slog.Info("city generated",
		"seed", seed,
		"buildings", len(buildings),
		"vertices", humanize.Comma(int64(len(vertices)/city.FloatsPerVertex)),
		"triangles", humanize.Comma(int64(len(indices)/3)),
		"upload", humanize.Bytes(uint64(len(vertices)*4+len(indices)*4)),
	)

	// Renderer.
	rend, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	mesh, err := render.NewMesh(vertices, indices)
	if err != nil {
		return fmt.Errorf("city mesh: %w", err)
	}
	defer mesh.Destroy()

	if s.Audio.Enabled {
		snd, err := InitSound()
		if err != nil {
			slog.Warn("audio init failed, continuing without sound", "error", err)
		} else {
			defer snd.Close()
			if err := snd.StartAmbience(seed, s.Audio.Volume); err != nil {
				slog.Warn("ambience", "error", err)
			}
		}
	}

	cam := city.NewCamera()
	input := NewInput()
	model := mgl32.Ident4()
	deltaTime := s.Camera.DeltaTime
	var stats frameStats

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > city.MaxFrameDelta {
			dt = city.MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			cam = city.NewCamera()
			slog.Debug("camera reset")
		}
		if input.JustPressed(window, glfw.KeyT) {
			deltaTime = !deltaTime
			slog.Info("camera timing changed", "deltaTime", deltaTime)
		}
		cam.Move(input.Movement(window), city.Step(s.Camera.Speed, dt, deltaTime))

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(fbW, fbH)
		rend.SetMatrices(model, cam.View(), cam.Projection(float32(fbW)/float32(fbH)))
		rend.DrawMesh(mesh)
		window.SwapBuffers()

		stats.tick(now, cam.Pos)
	}
	slog.Info("window closed", "frames", humanize.Comma(int64(stats.total)))
	return nil
}

const statsInterval = 5.0 // seconds

// frameStats logs the frame rate at debug level every statsInterval.
type frameStats struct {
	total  int
	frames int
	since  float64
}

func (f *frameStats) tick(now float64, pos mgl32.Vec3) {
	f.total++
	f.frames++
	if f.since == 0 {
		f.since = now
		return
	}
	elapsed := now - f.since
	if elapsed < statsInterval {
		return
	}
	slog.Debug("frame stats",
		"fps", humanize.FtoaWithDigits(float64(f.frames)/elapsed, 1),
		"camera", fmt.Sprintf("%.1f,%.1f,%.1f", pos.X(), pos.Y(), pos.Z()),
	)
	f.frames = 0
	f.since = now
}
