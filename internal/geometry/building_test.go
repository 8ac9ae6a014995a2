package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilding(t *testing.T, opts BuildingOptions) *Building {
	t.Helper()
	roof, err := NewRoof(RoofGable, 20, 40, 6, 8, 0, RoofOptions{})
	require.NoError(t, err)
	b, err := NewBuilding(20, 40, 0, roof, opts)
	require.NoError(t, err)
	return b
}

func TestNewBuildingAreas(t *testing.T) {
	b := testBuilding(t, BuildingOptions{})

	// Front wall: 20·6 plus the gable end 20·8/2.
	assert.InDelta(t, 200, b.Areas.Front, 1e-9)
	assert.InDelta(t, 200, b.Areas.Rear, 1e-9)
	assert.InDelta(t, 240, b.Areas.Left, 1e-9)
	assert.InDelta(t, 240, b.Areas.Right, 1e-9)
	assert.InDelta(t, 8000, b.Volume, 1e-9)
	assert.Equal(t, b.Volume, b.InternalVolume)
}

func TestNewBuildingHeights(t *testing.T) {
	b := testBuilding(t, BuildingOptions{})

	assert.Contains(t, b.Heights, b.Roof.EaveHeight)
	assert.Contains(t, b.Heights, b.Roof.MeanHeight)
	assert.Contains(t, b.Heights, b.Roof.RidgeHeight)
	for i := 1; i < len(b.Heights); i++ {
		assert.Greater(t, b.Heights[i], b.Heights[i-1])
	}
}

func TestNewBuildingCustomHeights(t *testing.T) {
	b := testBuilding(t, BuildingOptions{CustomHeights: []float64{2.5, 5.5, 12}})

	// 12 m is above the ridge and must be dropped; the characteristic
	// heights are always injected.
	assert.NotContains(t, b.Heights, 12.0)
	assert.Contains(t, b.Heights, 2.5)
	assert.Contains(t, b.Heights, 5.5)
	assert.Contains(t, b.Heights, 6.0)
	assert.Contains(t, b.Heights, 7.0)
}

func TestNewBuildingOpenings(t *testing.T) {
	b := testBuilding(t, BuildingOptions{
		Openings: Surfaces{Front: 500, Left: -3, Rear: 10},
	})

	// Openings clamp to [0, containing surface area].
	assert.Equal(t, b.Areas.Front, b.Openings.Front)
	assert.Zero(t, b.Openings.Left)
	assert.Equal(t, 10.0, b.Openings.Rear)
}

func TestEnclosureConditions(t *testing.T) {
	b := testBuilding(t, BuildingOptions{
		Openings: Surfaces{Front: 180, Left: 2, Rear: 1},
	})

	t.Run("condition 1: opening reaches 80% of the wall", func(t *testing.T) {
		got := b.EnclosureCondition1()
		assert.Equal(t, WallConditions{true, false, false, false}, got)
	})

	t.Run("condition 2: opening exceeds the rest by 10%", func(t *testing.T) {
		got := b.EnclosureCondition2()
		assert.Equal(t, WallConditions{true, false, false, false}, got)
	})

	t.Run("condition 3: opening exceeds min(0.4 m², 1% of wall)", func(t *testing.T) {
		got := b.EnclosureCondition3()
		assert.Equal(t, WallConditions{true, true, true, false}, got)
	})

	t.Run("condition 4: remainder opening ratio within 20%", func(t *testing.T) {
		got := b.EnclosureCondition4()
		assert.Equal(t, WallConditions{true, true, true, true}, got)
	})
}

func TestNewBuildingRejectsBadDimensions(t *testing.T) {
	roof, err := NewRoof(RoofFlat, 10, 20, 4, 0, 0, RoofOptions{})
	require.NoError(t, err)

	_, err = NewBuilding(0, 20, 0, roof, BuildingOptions{})
	assert.Error(t, err)
	_, err = NewBuilding(10, 20, -1, roof, BuildingOptions{})
	assert.Error(t, err)
	_, err = NewBuilding(10, 20, 0, nil, BuildingOptions{})
	assert.Error(t, err)
}
