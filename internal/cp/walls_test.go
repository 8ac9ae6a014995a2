package cp

import (
	"testing"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallsSPRFV(t *testing.T) {
	values := WallsSPRFV{Width: 20, Length: 40}.Values()

	t.Run("windward and side walls are fixed", func(t *testing.T) {
		for _, dir := range []string{DirParallel, DirNormal} {
			walls := values[dir].Children
			assert.Equal(t, 0.8, walls[Windward].Value)
			assert.Equal(t, -0.7, walls[Side].Value)
		}
	})

	t.Run("leeward wall follows the plan ratio", func(t *testing.T) {
		// Parallel: L/B = 40/20 = 2; normal: 20/40 = 0.5.
		assert.InDelta(t, -0.3, values[DirParallel].Children[Leeward].Value, 1e-9)
		assert.InDelta(t, -0.5, values[DirNormal].Children[Leeward].Value, 1e-9)
	})
}

func TestLeewardWallCpInterpolation(t *testing.T) {
	// Between the ratio 2 and ratio 4 breakpoints.
	assert.InDelta(t, -0.25, leewardWallCp(30, 10), 1e-9)
	// Clamps past the last breakpoint.
	assert.InDelta(t, -0.2, leewardWallCp(100, 10), 1e-9)
}

func TestWallCladdingCaseSelection(t *testing.T) {
	low := WallCladding{Width: 20, Length: 40, MeanHeight: 7}
	assert.Equal(t, "A", low.Case())
	assert.Equal(t, "Figura 5A", low.Reference())

	tall := WallCladding{Width: 20, Length: 40, MeanHeight: 25}
	assert.Equal(t, "B", tall.Case())
	assert.Equal(t, "Figura 8", tall.Reference())
}

func TestWallCladdingValues(t *testing.T) {
	cladding := WallCladding{
		Width: 20, Length: 40, MeanHeight: 7, RoofAngle: 15,
		Components: map[string]float64{"girt": 10, "panel": 75},
	}
	values, err := cladding.Values()
	require.NoError(t, err)

	t.Run("interpolates on the logarithm of the area", func(t *testing.T) {
		girt := values["girt"].Children
		assert.InDelta(t, -0.9234, girt["4"].Value, 1e-3)
	})

	t.Run("clamps above the area range", func(t *testing.T) {
		panel := values["panel"].Children
		assert.InDelta(t, -0.8, panel["4"].Value, 1e-9)
		assert.InDelta(t, -0.8, panel["5"].Value, 1e-9)
		assert.InDelta(t, 0.7, panel[AllZones].Value, 1e-9)
	})
}

func TestWallCladdingLowSlopeReduction(t *testing.T) {
	cladding := WallCladding{
		Width: 20, Length: 40, MeanHeight: 7, RoofAngle: 8,
		Components: map[string]float64{"panel": 75},
	}
	values, err := cladding.Values()
	require.NoError(t, err)

	// Fig. 5A note 5: 10% reduction for slopes up to 10°.
	assert.InDelta(t, -0.72, values["panel"].Children["4"].Value, 1e-9)
}

func TestWallCladdingComponentValidation(t *testing.T) {
	t.Run("missing components", func(t *testing.T) {
		cladding := WallCladding{Width: 20, Length: 40, MeanHeight: 7}
		_, err := cladding.Values()
		var missing *cirsoc.MissingComponentsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "walls", missing.Surface)
	})

	t.Run("invalid component area", func(t *testing.T) {
		cladding := WallCladding{
			Width: 20, Length: 40, MeanHeight: 7,
			Components: map[string]float64{"girt": -1},
		}
		_, err := cladding.Values()
		var invalid *cirsoc.ComponentAreaError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "girt", invalid.Name)
	})
}

func TestCladdingDistanceA(t *testing.T) {
	// min(0.1·20, 0.4·7) = 2, floored at max(0.04·20, 1) = 1.
	assert.InDelta(t, 2, claddingDistanceA(20, 40, 7), 1e-9)
	// The floor governs for squat plans.
	assert.InDelta(t, 1, claddingDistanceA(8, 10, 1), 1e-9)
}
