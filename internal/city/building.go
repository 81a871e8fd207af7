package city

import "github.com/go-gl/mathgl/mgl32"

// Building describes one axis-aligned box, centred on Position.
type Building struct {
	Position mgl32.Vec3
	Width    float32 // x extent
	Depth    float32 // z extent
	Height   float32 // y extent
	Color    mgl32.Vec3
}

// Ground returns the fixed ground plane that closes every generated city.
func Ground() Building {
	return Building{
		Position: mgl32.Vec3{0, GroundY, 0},
		Width:    GroundSize,
		Depth:    GroundSize,
		Height:   GroundHeight,
		Color:    mgl32.Vec3{GroundShade, GroundShade, GroundShade},
	}
}

// IsLit reports whether the i-th generated building uses the bright palette.
func IsLit(i int) bool { return i%LitEvery == 0 }

// GenerateCity returns count random buildings followed by the ground plane.
// A non-positive count yields the ground plane only.
func GenerateCity(count int, rng Source) []Building {
	if count < 0 {
		count = 0
	}
	buildings := make([]Building, 0, count+1)
	for i := 0; i < count; i++ {
		b := Building{
			Position: mgl32.Vec3{
				sample(rng, PosMin, PosMax),
				0,
				sample(rng, PosMin, PosMax),
			},
			Width:  sample(rng, WidthMin, WidthMax),
			Depth:  sample(rng, DepthMin, DepthMax),
			Height: sample(rng, HeightMin, HeightMax),
		}
		c1 := sample(rng, ColorMin, ColorMax)
		c2 := sample(rng, ColorMin, ColorMax)
		c3 := sample(rng, ColorMin, ColorMax)
		if IsLit(i) {
			// Lit windows: pale, bright.
			b.Color = mgl32.Vec3{c1*0.5 + 0.5, c2*0.5 + 0.5, c3*0.5 + 0.5}
		} else {
			// Muted night blues.
			b.Color = mgl32.Vec3{c1 * 0.3, c2 * 0.3, c3*0.5 + 0.3}
		}
		buildings = append(buildings, b)
	}
	return append(buildings, Ground())
}

func sample(rng Source, min, max float64) float32 {
	return float32(rng.RangeF(min, max))
}
