//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"citynight/internal/city"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Movement reads the camera keys: WASD, Space to rise, left Ctrl to sink.
func (in *Input) Movement(window *glfw.Window) city.Movement {
	held := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
	return city.Movement{
		Forward: held(glfw.KeyW),
		Back:    held(glfw.KeyS),
		Left:    held(glfw.KeyA),
		Right:   held(glfw.KeyD),
		Rise:    held(glfw.KeySpace),
		Sink:    held(glfw.KeyLeftControl),
	}
}
