package geometry

import (
	"testing"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoofGable(t *testing.T) {
	t.Run("computes the slope from the half span", func(t *testing.T) {
		// tan(10°)·10 m rise over a 20 m span.
		roof, err := NewRoof(RoofGable, 20, 30, 3, 4.7633, 0, RoofOptions{})
		require.NoError(t, err)
		assert.InDelta(t, 10, roof.Angle, 1e-3)
	})

	t.Run("mean height is the eave height for slopes up to 10°", func(t *testing.T) {
		roof, err := NewRoof(RoofGable, 20, 30, 3, 4.7633, 0, RoofOptions{})
		require.NoError(t, err)
		assert.Equal(t, 3.0, roof.MeanHeight)
	})

	t.Run("mean height averages eave and ridge for steeper slopes", func(t *testing.T) {
		roof, err := NewRoof(RoofGable, 20, 30, 3, 8, 0, RoofOptions{})
		require.NoError(t, err)
		assert.Equal(t, 5.5, roof.MeanHeight)
	})

	t.Run("rejects a ridge at the eave height", func(t *testing.T) {
		_, err := NewRoof(RoofGable, 20, 30, 3, 3, 0, RoofOptions{})
		require.Error(t, err)
		var geomErr *cirsoc.GeometryError
		assert.ErrorAs(t, err, &geomErr)
	})

	t.Run("rejects a ridge below the eave height", func(t *testing.T) {
		_, err := NewRoof(RoofGable, 20, 30, 3, 2, 0, RoofOptions{})
		assert.Error(t, err)
	})
}

func TestNewRoofFlat(t *testing.T) {
	roof, err := NewRoof(RoofFlat, 10, 20, 4, 0, 0, RoofOptions{})
	require.NoError(t, err)
	assert.Zero(t, roof.Angle)
	assert.Equal(t, 4.0, roof.RidgeHeight)
	assert.Equal(t, 4.0, roof.MeanHeight)
	assert.Equal(t, 200.0, roof.Area)
	assert.Zero(t, roof.PedimentArea)
}

func TestNewRoofMonoSlope(t *testing.T) {
	// tan(10°)·10 m rise over the full 10 m span.
	roof, err := NewRoof(RoofMonoSlope, 10, 20, 3, 4.7633, 0, RoofOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 10, roof.Angle, 1e-3)
}

func TestNewRoofMansard(t *testing.T) {
	t.Run("uses the sloped width for the angle", func(t *testing.T) {
		// Sloped faces of (20-10)/2 = 5 m each, 5 m rise: 45°.
		roof, err := NewRoof(RoofMansard, 20, 30, 3, 8, 10, RoofOptions{})
		require.NoError(t, err)
		assert.InDelta(t, 45, roof.Angle, 1e-9)
	})

	t.Run("rejects a central width outside the span", func(t *testing.T) {
		_, err := NewRoof(RoofMansard, 20, 30, 3, 8, 20, RoofOptions{})
		assert.Error(t, err)
		_, err = NewRoof(RoofMansard, 20, 30, 3, 8, 0, RoofOptions{})
		assert.Error(t, err)
	})
}

func TestBlockageRatio(t *testing.T) {
	roof, err := NewRoof(RoofGable, 20, 30, 3, 5, 0, RoofOptions{BlockageHeight: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, roof.BlockageRatio(), 1e-9)

	blocked, err := NewRoof(RoofGable, 20, 30, 3, 5, 0, RoofOptions{BlockageHeight: 10})
	require.NoError(t, err)
	assert.Equal(t, 1.0, blocked.BlockageRatio())
}
