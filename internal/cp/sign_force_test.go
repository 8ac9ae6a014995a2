package cp

import (
	"testing"

	"github.com/ealmiron/gowind/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignForceAboveGround(t *testing.T) {
	t.Run("needs a quarter of the panel height below", func(t *testing.T) {
		elevated := SignForce{LowerHeight: 1, NetHeight: 4, Width: 10}
		assert.True(t, elevated.AboveGround())

		grounded := SignForce{LowerHeight: 0.5, NetHeight: 4, Width: 10}
		assert.False(t, grounded.AboveGround())
	})

	t.Run("parapets are always at ground level", func(t *testing.T) {
		parapet := SignForce{LowerHeight: 10, NetHeight: 1.2, Width: 20, IsParapet: true}
		assert.False(t, parapet.AboveGround())
	})
}

func TestSignForceValue(t *testing.T) {
	t.Run("elevated panel uses the larger over smaller dimension", func(t *testing.T) {
		s := SignForce{LowerHeight: 2, NetHeight: 4, Width: 24}
		// M/N = 6 is the first table entry.
		assert.InDelta(t, 1.2, s.Value(), 1e-9)
	})

	t.Run("clamps below and above the ratio range", func(t *testing.T) {
		squat := SignForce{LowerHeight: 2, NetHeight: 4, Width: 10}
		assert.InDelta(t, 1.2, squat.Value(), 1e-9)

		slender := SignForce{LowerHeight: 30, NetHeight: 100, Width: 1}
		assert.InDelta(t, 2, slender.Value(), 1e-9)
	})

	t.Run("grounded panel uses height over width", func(t *testing.T) {
		s := SignForce{LowerHeight: 0, NetHeight: 12, Width: 4}
		// Height/width = 3 is the first table entry.
		assert.InDelta(t, 1.2, s.Value(), 1e-9)

		mid := SignForce{LowerHeight: 0, NetHeight: 16, Width: 4}
		// Ratio 4 falls halfway between 3 and 5.
		assert.InDelta(t, 1.25, mid.Value(), 1e-9)
	})
}

func TestNewSignForce(t *testing.T) {
	panel, err := geometry.NewSign(0.3, 10, 12, 16, nil)
	require.NoError(t, err)

	s := NewSignForce(panel, false)
	assert.Equal(t, 12.0, s.LowerHeight)
	assert.Equal(t, 4.0, s.NetHeight)
	assert.Equal(t, "Tabla 11", s.Reference())
	assert.True(t, s.AboveGround())
}
