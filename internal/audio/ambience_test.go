package audio_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citynight/internal/audio"
)

func decode(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestAmbience(t *testing.T) {
	t.Run("fills whole frames only", func(t *testing.T) {
		a := audio.NewAmbience(1)
		n, err := a.Read(make([]byte, 8*10+5))
		require.NoError(t, err)
		assert.Equal(t, 80, n)
	})
	t.Run("short buffer reads nothing", func(t *testing.T) {
		a := audio.NewAmbience(1)
		n, err := a.Read(make([]byte, 7))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
	t.Run("samples stay in range", func(t *testing.T) {
		a := audio.NewAmbience(3)
		buf := make([]byte, 8*audio.SampleRate)
		_, err := a.Read(buf)
		require.NoError(t, err)
		var peak float32
		for _, s := range decode(buf) {
			require.False(t, math.IsNaN(float64(s)))
			assert.LessOrEqual(t, s, float32(1))
			assert.GreaterOrEqual(t, s, float32(-1))
			if s > peak {
				peak = s
			}
		}
		assert.Greater(t, peak, float32(0), "stream should not be silent")
	})
	t.Run("same seed gives same stream", func(t *testing.T) {
		a, b := make([]byte, 8*512), make([]byte, 8*512)
		_, _ = audio.NewAmbience(9).Read(a)
		_, _ = audio.NewAmbience(9).Read(b)
		assert.Equal(t, a, b)
	})
	t.Run("stream continues across reads", func(t *testing.T) {
		whole := make([]byte, 8*100)
		_, _ = audio.NewAmbience(4).Read(whole)
		a := audio.NewAmbience(4)
		first, second := make([]byte, 8*40), make([]byte, 8*60)
		_, _ = a.Read(first)
		_, _ = a.Read(second)
		assert.Equal(t, whole, append(first, second...))
	})
}
