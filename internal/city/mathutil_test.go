package city_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"citynight/internal/city"
)

func TestRand(t *testing.T) {
	t.Run("zero seed still produces values", func(t *testing.T) {
		r := city.NewRand(0)
		assert.NotEqual(t, r.NextU64(), r.NextU64())
	})
	t.Run("RangeF stays in range", func(t *testing.T) {
		r := city.NewRand(5)
		for i := 0; i < 10000; i++ {
			v := r.RangeF(-3, 7)
			assert.GreaterOrEqual(t, v, -3.0)
			assert.Less(t, v, 7.0)
		}
	})
	t.Run("RangeF with empty range returns min", func(t *testing.T) {
		r := city.NewRand(5)
		assert.Equal(t, 2.0, r.RangeF(2, 2))
		assert.Equal(t, 2.0, r.RangeF(2, 1))
	})
	t.Run("Mix separates subsystems", func(t *testing.T) {
		assert.NotEqual(t, city.Mix(1, 0xA0D10), city.Mix(1, 0xC17E))
		assert.Equal(t, city.Mix(1, 0xA0D10), city.Mix(1, 0xA0D10))
	})
}
