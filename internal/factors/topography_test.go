package factors

import (
	"testing"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopographyInactive(t *testing.T) {
	heights := []float64{5, 10, 15}

	t.Run("not considered", func(t *testing.T) {
		topo := NewTopography(false, heights, cirsoc.ExposureC, Hill3D, 30, 60, 0, Windward)
		assert.False(t, topo.Active())
		assert.Equal(t, []float64{1, 1, 1}, topo.Factors())
	})

	t.Run("too shallow", func(t *testing.T) {
		topo := NewTopography(true, heights, cirsoc.ExposureC, Hill3D, 10, 100, 0, Windward)
		assert.False(t, topo.Active())
		assert.Equal(t, []float64{1, 1, 1}, topo.Factors())
	})

	t.Run("below the exposure height threshold", func(t *testing.T) {
		topo := NewTopography(true, heights, cirsoc.ExposureC, Hill3D, 4, 10, 0, Windward)
		assert.False(t, topo.Active())

		// Exposures A and B need the feature above 20 m.
		tall := NewTopography(true, heights, cirsoc.ExposureB, Hill3D, 15, 30, 0, Windward)
		assert.False(t, tall.Active())
	})
}

func TestTopographyFactors(t *testing.T) {
	topo := NewTopography(true, []float64{10}, cirsoc.ExposureC, Escarpment2D, 30, 60, 0, Windward)
	require.True(t, topo.Active())

	p := topo.Params()
	assert.Equal(t, 0.85, p.K)
	assert.Equal(t, 60.0, p.Lh)
	assert.InDelta(t, 0.425, p.K1, 1e-9)
	assert.Equal(t, 1.0, p.K2)

	// Kzt = (1 + K1·K2·K3)² with K3 = e^(-2.5·10/60).
	factors := topo.Factors()
	require.Len(t, factors, 1)
	assert.InDelta(t, 1.6389, factors[0], 1e-3)
	assert.Greater(t, factors[0], 1.0)
}

func TestTopographyCrestDistanceFloor(t *testing.T) {
	// Lh floors at twice the feature height.
	topo := NewTopography(true, []float64{10}, cirsoc.ExposureC, Ridge2D, 30, 20, 0, Windward)
	assert.Equal(t, 60.0, topo.Params().Lh)
}

func TestTopographyLeewardAttenuation(t *testing.T) {
	windward := NewTopography(true, []float64{10}, cirsoc.ExposureC, Escarpment2D, 30, 60, 90, Windward)
	leeward := NewTopography(true, []float64{10}, cirsoc.ExposureC, Escarpment2D, 30, 60, 90, Leeward)

	// The escarpment attenuates slower downwind (mu 4 vs 1.5).
	assert.Greater(t, leeward.Params().K2, windward.Params().K2)
}
