package cp

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// Direction and zone keys shared by the coefficient trees.
const (
	DirParallel = "parallel" // wind parallel to the ridge
	DirNormal   = "normal"   // wind normal to the ridge

	Windward = "windward"
	Side     = "side"
	Leeward  = "leeward"

	// Positive-pressure cladding zone covering every wall zone.
	AllZones = "all"
)

// WallsSPRFV resolves the wall pressure coefficients for the main
// wind-force-resisting system using the directional method.
//
// Reference: Figure 3 (cont.).
type WallsSPRFV struct {
	Width  float64
	Length float64
}

// Values returns the wall Cp per wind direction.
func (w WallsSPRFV) Values() Tree {
	return Tree{
		DirParallel: Branch(Tree{
			Windward: Scalar(0.8),
			Side:     Scalar(-0.7),
			Leeward:  Scalar(leewardWallCp(w.Length, w.Width)),
		}),
		DirNormal: Branch(Tree{
			Windward: Scalar(0.8),
			Side:     Scalar(-0.7),
			Leeward:  Scalar(leewardWallCp(w.Width, w.Length)),
		}),
	}
}

// leewardWallCp interpolates the leeward wall coefficient from the ratio of
// the along-wind to the across-wind plan dimension.
func leewardWallCp(parallelDim, normalDim float64) float64 {
	ratios := []float64{0, 1, 2, 4}
	cps := []float64{-0.5, -0.5, -0.3, -0.2}
	return interp(parallelDim/normalDim, ratios, cps)
}

// WallCladding resolves the wall pressure coefficients (GCp) for components
// and cladding.
type WallCladding struct {
	Width      float64
	Length     float64
	MeanHeight float64
	RoofAngle  float64
	Components map[string]float64 // component name -> tributary area (m²)
}

// Case selects the regulation figure to use: low-rise walls (A, Figure 5A)
// or tall-building walls (B, Figure 8).
func (w WallCladding) Case() string {
	if w.MeanHeight > 20 {
		return "B"
	}
	return "A"
}

// Reference names the regulation figure backing the selected case.
func (w WallCladding) Reference() string {
	return map[string]string{"A": "Figura 5A", "B": "Figura 8"}[w.Case()]
}

// DistanceA is the edge-zone width "a" from the cladding figures.
func (w WallCladding) DistanceA() float64 {
	return claddingDistanceA(w.Width, w.Length, w.MeanHeight)
}

// Values returns the GCp per component and wall zone.
func (w WallCladding) Values() (Tree, error) {
	if err := validateComponents(w.Components, "walls"); err != nil {
		return nil, err
	}
	zonesByCase := map[string]map[string]claddingZone{
		"A": {"4": zone(-1.1, -0.8), "5": zone(-1.4, -0.8), AllZones: zone(1, 0.7)},
		"B": {"4": zone(-0.9, -0.7), "5": zone(-1.8, -1), AllZones: zone(0.9, 0.6)},
	}
	c := w.Case()
	area := [2]float64{1, 50}
	reduction := 1.0
	if c == "B" {
		area = [2]float64{2, 50}
	} else if w.RoofAngle <= 10 {
		reduction = 0.9
	}
	values := Tree{}
	for name, componentArea := range w.Components {
		zones := Tree{}
		for zoneName, entry := range zonesByCase[c] {
			zones[zoneName] = Scalar(entry.coefficient(componentArea, area) * reduction)
		}
		values[name] = Branch(zones)
	}
	return values, nil
}

// claddingDistanceA computes the edge-zone distance "a" of the cladding
// figures: 10% of the least horizontal dimension or 0.4·h, whichever is
// smaller, floored at 4% of the least horizontal dimension and at 1 m.
func claddingDistanceA(width, length, meanHeight float64) float64 {
	least := math.Min(width, length)
	proposed := math.Min(0.1*least, 0.4*meanHeight)
	floor := math.Max(0.04*least, 1)
	return math.Max(proposed, floor)
}

func validateComponents(components map[string]float64, surface string) error {
	if len(components) == 0 {
		return &cirsoc.MissingComponentsError{Surface: surface}
	}
	for name, area := range components {
		if area <= 0 || math.IsNaN(area) || math.IsInf(area, 0) {
			return &cirsoc.ComponentAreaError{Name: name, Area: area}
		}
	}
	return nil
}
