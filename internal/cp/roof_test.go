package cp

import (
	"testing"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoofSPRFVZones(t *testing.T) {
	t.Run("splits the along-wind span at h/2, h and 2h", func(t *testing.T) {
		roof := RoofSPRFV{Width: 20, Length: 10, MeanHeight: 5, Angle: 0}
		zones := roof.Zones()

		require.Len(t, zones[DirParallel], 3)
		assert.Equal(t, ZoneExtent{0, 2.5}, zones[DirParallel][0])
		assert.Equal(t, ZoneExtent{2.5, 5}, zones[DirParallel][1])
		assert.Equal(t, ZoneExtent{5, 10}, zones[DirParallel][2])
	})

	t.Run("keeps the tail zone for long spans", func(t *testing.T) {
		roof := RoofSPRFV{Width: 10, Length: 30, MeanHeight: 5, Angle: 0}
		zones := roof.Zones()

		require.Len(t, zones[DirParallel], 4)
		assert.Equal(t, ZoneExtent{10, 30}, zones[DirParallel][3])
	})

	t.Run("no normal zones above 10°", func(t *testing.T) {
		roof := RoofSPRFV{Width: 20, Length: 40, MeanHeight: 7, Angle: 20}
		assert.Nil(t, roof.Zones()[DirNormal])
	})
}

func TestRoofSPRFVLowSlope(t *testing.T) {
	roof := RoofSPRFV{Width: 20, Length: 10, MeanHeight: 5, Angle: 0}
	values := roof.Values()

	// h/L = 0.5 hits the first table column exactly.
	parallel := values[DirParallel].Children
	assert.InDelta(t, -0.9, parallel["0 to h/2"].Value, 1e-9)
	assert.InDelta(t, -0.9, parallel["h/2 to h"].Value, 1e-9)
	assert.InDelta(t, -0.5, parallel["h to 2h"].Value, 1e-9)

	// Below 10° the normal direction also loads in along-wind zones.
	normal := values[DirNormal].Children
	assert.Contains(t, normal, "0 to h/2")
	assert.NotContains(t, normal, Windward)
}

func TestRoofSPRFVSteepSlope(t *testing.T) {
	roof := RoofSPRFV{Width: 20, Length: 40, MeanHeight: 4.82, Angle: 20}
	values := roof.Values()

	normal := values[DirNormal].Children
	windward := normal[Windward].Children

	// h/b = 0.241 clamps to the 0.25 column at 20°.
	assert.InDelta(t, -0.3, windward[CaseA].Value, 1e-9)
	assert.InDelta(t, 0.2, windward[CaseB].Value, 1e-9)
	assert.InDelta(t, -0.6, normal[Leeward].Value, 1e-9)
}

func TestOverhangSPRFV(t *testing.T) {
	t.Run("windward overhang shifts by the underside uplift", func(t *testing.T) {
		roof := RoofSPRFV{Width: 20, Length: 40, MeanHeight: 4.82, Angle: 20}
		base := roof.Values()[DirNormal].Children[Windward].Children
		values := OverhangSPRFV{RoofSPRFV: roof}.Values()

		windward := values[DirNormal].Children[Windward].Children
		assert.InDelta(t, base[CaseA].Value-0.8, windward[CaseA].Value, 1e-9)
		assert.InDelta(t, base[CaseB].Value-0.8, windward[CaseB].Value, 1e-9)
	})

	t.Run("low slopes take the first and last zone values", func(t *testing.T) {
		roof := RoofSPRFV{Width: 20, Length: 10, MeanHeight: 5, Angle: 0}
		base := roof.Values()[DirNormal].Children
		values := OverhangSPRFV{RoofSPRFV: roof}.Values()

		normal := values[DirNormal].Children
		assert.InDelta(t, base["0 to h/2"].Value-0.8, normal[Windward].Value, 1e-9)
		assert.InDelta(t, base["> 2h"].Value, normal[Leeward].Value, 1e-9)
	})
}

func TestRoofCladdingCaseSelection(t *testing.T) {
	cases := []struct {
		name       string
		kind       geometry.RoofKind
		meanHeight float64
		angle      float64
		want       string
	}{
		{"low gable", geometry.RoofGable, 7, 8, "A"},
		{"tall low-slope", geometry.RoofFlat, 25, 0, "F"},
		{"medium gable", geometry.RoofGable, 7, 25, "B"},
		{"steep gable", geometry.RoofGable, 7, 40, "C"},
		{"shallow mono-slope", geometry.RoofMonoSlope, 7, 2, "A"},
		{"low mono-slope", geometry.RoofMonoSlope, 7, 8, "D"},
		{"steep mono-slope", geometry.RoofMonoSlope, 7, 25, "E"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cladding := RoofCladding{
				Kind: tc.kind, Width: 20, Length: 40,
				MeanHeight: tc.meanHeight, Angle: tc.angle,
			}
			got, err := cladding.Case()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("out of range slopes", func(t *testing.T) {
		var guideline *cirsoc.GuidelineError

		gable := RoofCladding{Kind: geometry.RoofGable, MeanHeight: 7, Angle: 50}
		_, err := gable.Case()
		require.ErrorAs(t, err, &guideline)

		mono := RoofCladding{Kind: geometry.RoofMonoSlope, MeanHeight: 25, Angle: 15}
		_, err = mono.Case()
		require.ErrorAs(t, err, &guideline)

		mansard := RoofCladding{Kind: geometry.RoofMansard, MeanHeight: 7, Angle: 20}
		_, err = mansard.Case()
		require.ErrorAs(t, err, &guideline)
	})
}

func TestRoofCladdingValues(t *testing.T) {
	cladding := RoofCladding{
		Kind: geometry.RoofGable, Width: 20, Length: 40, MeanHeight: 7, Angle: 8,
		Components: map[string]float64{"purlin": 75},
	}
	values, err := cladding.Values()
	require.NoError(t, err)

	// Case A coefficients clamp past 10 m².
	purlin := values["purlin"].Children
	assert.InDelta(t, -0.9, purlin["1"].Value, 1e-9)
	assert.InDelta(t, -1.1, purlin["2"].Value, 1e-9)
	assert.InDelta(t, 0.2, purlin[AllZones].Value, 1e-9)
}

func TestRoofCladdingParapetRule(t *testing.T) {
	cladding := RoofCladding{
		Kind: geometry.RoofGable, Width: 20, Length: 40, MeanHeight: 7, Angle: 8,
		Parapet:    1.5,
		Components: map[string]float64{"purlin": 5},
	}
	values, err := cladding.Values()
	require.NoError(t, err)

	// A parapet above 1 m drops the corner zone to the edge-zone values.
	purlin := values["purlin"].Children
	assert.Equal(t, purlin["2"].Value, purlin["3"].Value)
}

func TestRoofCladdingOverhang(t *testing.T) {
	plain := RoofCladding{
		Kind: geometry.RoofGable, Width: 20, Length: 40, MeanHeight: 7, Angle: 8,
		Components: map[string]float64{"purlin": 1},
	}
	overhung := plain
	overhung.Overhang = 1.2

	plainValues, err := plain.Values()
	require.NoError(t, err)
	overhungValues, err := overhung.Values()
	require.NoError(t, err)

	// Overhang rows override the case A zones.
	assert.InDelta(t, -1.0, plainValues["purlin"].Children["1"].Value, 1e-9)
	assert.InDelta(t, -1.7, overhungValues["purlin"].Children["1"].Value, 1e-9)
	assert.InDelta(t, -2.8, overhungValues["purlin"].Children["3"].Value, 1e-9)
}

func TestRoofCladdingOverhangSegments(t *testing.T) {
	cladding := RoofCladding{
		Kind: geometry.RoofGable, Width: 20, Length: 40, MeanHeight: 7, Angle: 8,
		Overhang:   1.2,
		Components: map[string]float64{"small": 10, "large": 30, "huge": 75},
	}
	values, err := cladding.Values()
	require.NoError(t, err)

	// Zone 2 of case A with an overhang splits at 10 m²: -1.7..-1.6 up to
	// 10 m², then -1.6..-1.1 up to 50 m².
	assert.InDelta(t, -1.6, values["small"].Children["2"].Value, 1e-9)
	assert.Greater(t, values["large"].Children["2"].Value, -1.6)
	assert.InDelta(t, -1.1, values["huge"].Children["2"].Value, 1e-9)
}
