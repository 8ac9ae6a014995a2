package pressure

import (
	"testing"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilding(t *testing.T) *Building {
	t.Helper()
	heights := []float64{5, 6, 7, 8}
	return &Building{
		Velocity:   NewVelocityPressure(heights, ones(4), cirsoc.ExposureC, cirsoc.CategoryII, 45, 0.85),
		Gusts:      map[string]float64{cp.DirParallel: 0.85, cp.DirNormal: 0.85},
		Internal:   InternalPressure{Enclosure: cirsoc.EnclosureClosed},
		MeanHeight: 7,
		EaveHeight: 6,
	}
}

func TestWallsSPRFV(t *testing.T) {
	b := testBuilding(t)
	result := b.WallsSPRFV(cp.WallsSPRFV{Width: 20, Length: 40}.Values())

	qMean := b.Velocity.At(7)
	q2 := qMean * 0.18

	t.Run("windward wall varies with height", func(t *testing.T) {
		parallel := result[cp.DirParallel].Children[cp.Windward]
		require.Len(t, parallel.Pos, 4)
		for i, q := range b.Velocity.Values {
			assert.InDelta(t, q*0.85*0.8-q2, parallel.Pos[i], 1e-9)
			assert.InDelta(t, q*0.85*0.8+q2, parallel.Neg[i], 1e-9)
		}
	})

	t.Run("normal direction clips at the eave height", func(t *testing.T) {
		normal := result[cp.DirNormal].Children[cp.Windward]
		assert.Len(t, normal.Pos, 2)
	})

	t.Run("leeward and side walls use the mean roof height", func(t *testing.T) {
		leeward := result[cp.DirParallel].Children[cp.Leeward]
		require.Len(t, leeward.Pos, 1)
		// L/B = 2 gives Cp = -0.3.
		assert.InDelta(t, qMean*0.85*-0.3-q2, leeward.Pos[0], 1e-9)
		assert.InDelta(t, 2*q2, leeward.Neg[0]-leeward.Pos[0], 1e-9)

		side := result[cp.DirNormal].Children[cp.Side]
		assert.InDelta(t, qMean*0.85*-0.7-q2, side.Pos[0], 1e-9)
	})
}

func TestRoofSPRFV(t *testing.T) {
	b := testBuilding(t)
	coefficients := cp.RoofSPRFV{Width: 20, Length: 40, MeanHeight: 7, Angle: 20}.Values()
	result := b.RoofSPRFV(coefficients)

	qMean := b.Velocity.At(7)
	q2 := qMean * 0.18

	windward := result[cp.DirNormal].Children[cp.Windward].Children
	caseB := windward[cp.CaseB]
	require.Len(t, caseB.Pos, 1)
	c := coefficients[cp.DirNormal].Children[cp.Windward].Children[cp.CaseB].Value
	assert.InDelta(t, qMean*0.85*c-q2, caseB.Pos[0], 1e-9)
	assert.InDelta(t, qMean*0.85*c+q2, caseB.Neg[0], 1e-9)
}

func TestOverhangSPRFV(t *testing.T) {
	b := testBuilding(t)
	roof := cp.RoofSPRFV{Width: 20, Length: 40, MeanHeight: 7, Angle: 20}
	coefficients := cp.OverhangSPRFV{RoofSPRFV: roof}.Values()
	result := b.OverhangSPRFV(coefficients)

	qMean := b.Velocity.At(7)
	leeward := result[cp.DirNormal].Children[cp.Leeward]
	c := coefficients[cp.DirNormal].Children[cp.Leeward].Value

	// External pressure only.
	assert.Nil(t, leeward.Neg)
	require.Len(t, leeward.Pos, 1)
	assert.InDelta(t, qMean*0.85*c, leeward.Pos[0], 1e-9)
}

func TestRoofCladding(t *testing.T) {
	b := testBuilding(t)
	result := b.RoofCladding(cp.Tree{
		"purlin": cp.Branch(cp.Tree{"1": cp.Scalar(-1.0), cp.AllZones: cp.Scalar(0.3)}),
	})

	qMean := b.Velocity.At(7)
	q2 := qMean * 0.18

	// Gust factor is 1: the GCp values already carry it.
	zone1 := result["purlin"].Children["1"]
	assert.InDelta(t, qMean*-1.0-q2, zone1.Pos[0], 1e-9)
	assert.InDelta(t, qMean*-1.0+q2, zone1.Neg[0], 1e-9)
}

func TestWallCladding(t *testing.T) {
	b := testBuilding(t)
	coefficients := cp.Tree{"girt": cp.Branch(cp.Tree{"4": cp.Scalar(-0.9)})}

	t.Run("case A stays flat", func(t *testing.T) {
		result := b.WallCladding(coefficients, false)
		zone := result["girt"].Children["4"]
		require.Len(t, zone.Pos, 1)

		qMean := b.Velocity.At(7)
		assert.InDelta(t, qMean*-0.9-qMean*0.18, zone.Pos[0], 1e-9)
	})

	t.Run("case B nests per wall", func(t *testing.T) {
		result := b.WallCladding(coefficients, true)
		require.Contains(t, result, cp.Windward)
		require.Contains(t, result, cp.Side)
		require.Contains(t, result, cp.Leeward)

		// The windward wall keeps the full height profile.
		assert.Len(t, result[cp.Windward].Children["girt"].Children["4"].Pos, 4)
		assert.Len(t, result[cp.Leeward].Children["girt"].Children["4"].Pos, 1)
	})
}

func TestIsolatedRoofPressures(t *testing.T) {
	coefficients := cp.Tree{
		cp.Global: cp.Branch(cp.Tree{cp.Max: cp.Scalar(0.4), cp.Min: cp.Scalar(-0.7)}),
	}
	result := IsolatedRoof(1000, coefficients)

	global := result[cp.Global].Children
	assert.InDelta(t, 1000*0.85*0.4, global[cp.Max].Pos[0], 1e-9)
	assert.InDelta(t, 1000*0.85*-0.7, global[cp.Min].Pos[0], 1e-9)
	assert.Nil(t, global[cp.Max].Neg)
}

func TestResultShape(t *testing.T) {
	leaf := cp.Scalar(0.5)
	assert.True(t, (&Node{Pos: []float64{1}}).IsLeaf())
	assert.False(t, (&Node{Children: Result{}}).IsLeaf())
	assert.True(t, leaf.IsLeaf())
}
