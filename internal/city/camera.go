package city

import "github.com/go-gl/mathgl/mgl32"

// Camera is a free-fly camera. Front is not required to be unit length.
type Camera struct {
	Pos   mgl32.Vec3
	Front mgl32.Vec3
	Up    mgl32.Vec3

	FovDeg    float32
	Near, Far float32
}

// Movement is the set of movement keys held during one frame.
type Movement struct {
	Forward, Back bool
	Left, Right   bool
	Rise, Sink    bool
}

// Any reports whether any movement key is held.
func (m Movement) Any() bool {
	return m.Forward || m.Back || m.Left || m.Right || m.Rise || m.Sink
}

// NewCamera returns a camera above and behind the city, looking down -z.
func NewCamera() Camera {
	return Camera{
		Pos:    mgl32.Vec3{CamStartX, CamStartY, CamStartZ},
		Front:  mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
		FovDeg: CamFovDeg,
		Near:   CamNear,
		Far:    CamFar,
	}
}

// Move applies one step per held key. Strafing is perpendicular to Front in
// the horizontal plane; Rise and Sink move along world up.
func (c *Camera) Move(m Movement, step float32) {
	worldUp := mgl32.Vec3{0, 1, 0}
	if m.Forward {
		c.Pos = c.Pos.Add(c.Front.Mul(step))
	}
	if m.Back {
		c.Pos = c.Pos.Sub(c.Front.Mul(step))
	}
	if m.Left || m.Right {
		right := c.Front.Cross(worldUp)
		if right.Len() > 0 {
			right = right.Normalize().Mul(step)
			if m.Left {
				c.Pos = c.Pos.Sub(right)
			}
			if m.Right {
				c.Pos = c.Pos.Add(right)
			}
		}
	}
	if m.Rise {
		c.Pos = c.Pos.Add(worldUp.Mul(step))
	}
	if m.Sink {
		c.Pos = c.Pos.Sub(worldUp.Mul(step))
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front), c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = float32(WindowWidth) / float32(WindowHeight)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovDeg), aspect, c.Near, c.Far)
}

// Step returns the distance moved per held key this frame. With deltaTime off
// the step is fixed per frame, so speed follows the frame rate. With it on,
// speed is expressed per frame at ReferenceFrameHz and scaled by dt.
func Step(speed float32, dt float64, deltaTime bool) float32 {
	if !deltaTime {
		return speed
	}
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	return speed * float32(dt*ReferenceFrameHz)
}
