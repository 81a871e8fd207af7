package city_test

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citynight/internal/city"
)

// fixedSource always returns the same point of every range, 0 = min and 1 = max.
type fixedSource float64

func (f fixedSource) RangeF(min, max float64) float64 {
	return min + (max-min)*float64(f)
}

func TestGenerateCity(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		t.Run(fmt.Sprintf("returns %d buildings plus ground", n), func(t *testing.T) {
			got := city.GenerateCity(n, city.NewRand(42))
			require.Len(t, got, n+1)
			assert.Equal(t, city.Ground(), got[n])
		})
	}
	t.Run("negative count yields ground only", func(t *testing.T) {
		got := city.GenerateCity(-3, city.NewRand(1))
		require.Len(t, got, 1)
		assert.Equal(t, city.Ground(), got[0])
	})
	t.Run("ground plane is fixed", func(t *testing.T) {
		g := city.GenerateCity(0, city.NewRand(7))[0]
		assert.Equal(t, mgl32.Vec3{0, -0.5, 0}, g.Position)
		assert.Equal(t, float32(250), g.Width)
		assert.Equal(t, float32(250), g.Depth)
		assert.Equal(t, float32(1), g.Height)
		assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, g.Color)
	})
	t.Run("same seed gives same city", func(t *testing.T) {
		a := city.GenerateCity(50, city.NewRand(1234))
		b := city.GenerateCity(50, city.NewRand(1234))
		assert.Equal(t, a, b)
	})
	t.Run("different seeds give different cities", func(t *testing.T) {
		a := city.GenerateCity(10, city.NewRand(1))
		b := city.GenerateCity(10, city.NewRand(2))
		assert.NotEqual(t, a, b)
	})
}

func TestGenerateCityRanges(t *testing.T) {
	const eps = 1e-5
	for _, seed := range []uint64{1, 99, 31337} {
		buildings := city.GenerateCity(200, city.NewRand(seed))
		for i, b := range buildings[:len(buildings)-1] {
			assert.GreaterOrEqual(t, b.Position.X(), float32(-100))
			assert.LessOrEqual(t, b.Position.X(), float32(100))
			assert.GreaterOrEqual(t, b.Position.Z(), float32(-100))
			assert.LessOrEqual(t, b.Position.Z(), float32(100))
			assert.Equal(t, float32(0), b.Position.Y())
			assert.GreaterOrEqual(t, b.Width, float32(5))
			assert.LessOrEqual(t, b.Width, float32(15))
			assert.GreaterOrEqual(t, b.Depth, float32(5))
			assert.LessOrEqual(t, b.Depth, float32(15))
			assert.GreaterOrEqual(t, b.Height, float32(10))
			assert.LessOrEqual(t, b.Height, float32(60))
			if i%5 == 0 {
				for c := 0; c < 3; c++ {
					assert.GreaterOrEqual(t, b.Color[c], float32(0.5), "building %d channel %d", i, c)
				}
			} else {
				assert.LessOrEqual(t, b.Color.X(), float32(0.24+eps), "building %d", i)
				assert.LessOrEqual(t, b.Color.Y(), float32(0.24+eps), "building %d", i)
				assert.LessOrEqual(t, b.Color.Z(), float32(0.8+eps), "building %d", i)
			}
		}
	}
}

func TestGenerateCityPalette(t *testing.T) {
	var cases = []struct {
		name  string
		at    fixedSource
		index int
		want  mgl32.Vec3
	}{
		{"lit at max", 1, 0, mgl32.Vec3{0.9, 0.9, 0.9}},
		{"lit at min", 0, 5, mgl32.Vec3{0.6, 0.6, 0.6}},
		{"muted at max", 1, 1, mgl32.Vec3{0.24, 0.24, 0.7}},
		{"muted at min", 0, 4, mgl32.Vec3{0.06, 0.06, 0.4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := city.GenerateCity(tc.index+1, tc.at)[tc.index].Color
			for c := 0; c < 3; c++ {
				assert.InDelta(t, tc.want[c], got[c], 1e-5)
			}
		})
	}
	t.Run("extremes of the source land on the range bounds", func(t *testing.T) {
		lo := city.GenerateCity(1, fixedSource(0))[0]
		hi := city.GenerateCity(1, fixedSource(1))[0]
		assert.Equal(t, mgl32.Vec3{-100, 0, -100}, lo.Position)
		assert.Equal(t, mgl32.Vec3{100, 0, 100}, hi.Position)
		assert.Equal(t, float32(10), lo.Height)
		assert.Equal(t, float32(60), hi.Height)
	})
}

func TestIsLit(t *testing.T) {
	assert.True(t, city.IsLit(0))
	assert.False(t, city.IsLit(1))
	assert.False(t, city.IsLit(4))
	assert.True(t, city.IsLit(5))
	assert.True(t, city.IsLit(100))
}
