package cp

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/geometry"
)

// Along-wind roof zone names of Figure 3 for low slopes and for wind
// parallel to the ridge, in table order.
var RoofZoneNames = []string{"0 to h/2", "h/2 to h", "h to 2h", "> 2h"}

// Windward-roof load case keys of Figure 3 for slopes of 10° and above.
const (
	CaseA = "case a" // suction
	CaseB = "case b" // pressure
)

// ZoneExtent is the along-wind span of a roof pressure zone.
type ZoneExtent struct {
	From float64
	To   float64
}

// RoofSPRFV resolves the roof pressure coefficients for the main
// wind-force-resisting system using the directional method.
//
// Reference: Figure 3 (cont.).
type RoofSPRFV struct {
	Width      float64
	Length     float64
	MeanHeight float64
	Angle      float64
}

// NormalAsParallel reports whether the wind normal to the ridge loads the
// roof in along-wind zones, like the parallel direction, because the slope
// is below 10°.
func (r RoofSPRFV) NormalAsParallel() bool {
	return r.Angle < 10
}

// Zones returns the along-wind zone extents per direction. The normal entry
// is nil when the slope splits the roof into windward and leeward faces.
func (r RoofSPRFV) Zones() map[string][]ZoneExtent {
	zones := map[string][]ZoneExtent{
		DirParallel: roofZones(r.MeanHeight, r.Length),
	}
	if r.NormalAsParallel() {
		zones[DirNormal] = roofZones(r.MeanHeight, r.Width)
	} else {
		zones[DirNormal] = nil
	}
	return zones
}

// Values returns the roof Cp per wind direction.
func (r RoofSPRFV) Values() Tree {
	parallel := r.lowSlopeCp(r.Length, r.Width, len(roofZones(r.MeanHeight, r.Length)))
	var normal Tree
	if r.NormalAsParallel() {
		normal = r.lowSlopeCp(r.Width, r.Length, len(roofZones(r.MeanHeight, r.Width)))
	} else {
		normal = Tree{
			Windward: Branch(r.windwardCp()),
			Leeward:  Scalar(r.leewardCp()),
		}
	}
	return Tree{DirParallel: Branch(parallel), DirNormal: Branch(normal)}
}

// lowSlopeCp computes the along-wind zone coefficients used when the wind is
// parallel to the ridge, or normal to it with a slope below 10°.
func (r RoofSPRFV) lowSlopeCp(parallelDim, normalDim float64, zoneCount int) Tree {
	area := roofTributaryArea(r.MeanHeight, parallelDim, normalDim)
	reduction := interp(area, []float64{10, 25, 100}, []float64{1, 0.9, 0.8})
	ratios := []float64{0.5, 1}
	pairs := [][2]float64{
		{-0.9, -1.3 * reduction}, {-0.9, -0.7}, {-0.5, -0.7}, {-0.3, -0.7},
	}
	values := Tree{}
	for i := 0; i < zoneCount && i < len(pairs); i++ {
		values[RoofZoneNames[i]] = Scalar(interp(r.MeanHeight/parallelDim, ratios, pairs[i][:]))
	}
	return values
}

// windwardCp interpolates the windward roof coefficients for slopes of 10°
// and above, for the suction and pressure load cases.
func (r RoofSPRFV) windwardCp() Tree {
	area := roofTributaryArea(r.MeanHeight, r.Length, r.Width)
	reduction := interp(area, []float64{10, 25, 100}, []float64{1, 0.9, 0.8})
	ratios := []float64{0.25, 0.5, 1}
	angles := []float64{10, 15, 20, 25, 30, 35, 45, 60, 80}
	caseARows := [][3]float64{
		{-0.7, -0.9, -1.3 * reduction}, {-0.5, -0.7, -1},
		{-0.3, -0.4, -0.7}, {-0.2, -0.3, -0.5},
		{-0.2, -0.2, -0.3}, {0, -0.2, -0.2},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	}
	caseBRows := [][3]float64{
		{0, 0, 0}, {0, 0, 0}, {0.2, 0, 0},
		{0.3, 0.2, 0}, {0.3, 0.2, 0.2}, {0.4, 0.3, 0.2},
		{0.4, 0.4, 0.3}, {0.6, 0.6, 0.6}, {0.8, 0.8, 0.8},
	}
	ratio := r.MeanHeight / r.Width
	interpRows := func(rows [][3]float64) float64 {
		byAngle := make([]float64, len(rows))
		for i, row := range rows {
			byAngle[i] = interp(ratio, ratios, row[:])
		}
		return interp(r.Angle, angles, byAngle)
	}
	return Tree{
		CaseA: Scalar(interpRows(caseARows)),
		CaseB: Scalar(interpRows(caseBRows)),
	}
}

// leewardCp interpolates the leeward roof coefficient for slopes of 10° and
// above.
func (r RoofSPRFV) leewardCp() float64 {
	ratios := []float64{0.25, 0.5, 1}
	angles := []float64{10, 15, 20}
	rows := [][3]float64{
		{-0.3, -0.5, -0.7}, {-0.5, -0.5, -0.6}, {-0.6, -0.6, -0.6},
	}
	ratio := r.MeanHeight / r.Width
	byAngle := make([]float64, len(rows))
	for i, row := range rows {
		byAngle[i] = interp(ratio, ratios, row[:])
	}
	return interp(r.Angle, angles, byAngle)
}

// roofTributaryArea is the reference area for the roof coefficient
// reduction: the lesser of half the mean height and the along-wind span,
// times the across-wind span.
func roofTributaryArea(meanHeight, parallelDim, normalDim float64) float64 {
	return math.Min(meanHeight/2, parallelDim) * normalDim
}

// roofZones splits the along-wind span at h/2, h and 2h, dropping the
// divisions that fall beyond it.
func roofZones(meanHeight, parallelDim float64) []ZoneExtent {
	marks := []float64{0, meanHeight / 2, meanHeight, 2 * meanHeight, parallelDim}
	var filtered []float64
	for _, m := range marks {
		if m <= parallelDim && !containsValue(filtered, m) {
			filtered = append(filtered, m)
		}
	}
	zones := make([]ZoneExtent, 0, len(filtered)-1)
	for i := 1; i < len(filtered); i++ {
		zones = append(zones, ZoneExtent{From: filtered[i-1], To: filtered[i]})
	}
	return zones
}

func containsValue(values []float64, v float64) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// OverhangSPRFV resolves the eave-overhang pressure coefficients for the
// main wind-force-resisting system: the windward overhang takes the windward
// roof coefficient shifted by -0.8 for the uplift contribution of the wall
// pressure underneath.
type OverhangSPRFV struct {
	RoofSPRFV
}

// Values returns the overhang Cp per wind direction.
func (o OverhangSPRFV) Values() Tree {
	values := o.RoofSPRFV.Values()
	normal := values[DirNormal].Children
	if o.NormalAsParallel() {
		var present []string
		for _, name := range RoofZoneNames {
			if _, ok := normal[name]; ok {
				present = append(present, name)
			}
		}
		windward := normal[present[0]].Value - 0.8
		leeward := normal[present[len(present)-1]].Value
		values[DirNormal] = Branch(Tree{
			Windward: Scalar(windward),
			Leeward:  Scalar(leeward),
		})
		return values
	}
	windward := Tree{}
	for key, node := range normal[Windward].Children {
		windward[key] = Scalar(node.Value - 0.8)
	}
	values[DirNormal] = Branch(Tree{
		Windward: Branch(windward),
		Leeward:  normal[Leeward],
	})
	return values
}

// RoofCladding resolves the roof pressure coefficients (GCp) for components
// and cladding. The case tables depend on the roof kind, the slope, the mean
// height and the presence of parapets and overhangs.
type RoofCladding struct {
	Kind       geometry.RoofKind
	Width      float64
	Length     float64
	MeanHeight float64
	Angle      float64
	Parapet    float64
	Overhang   float64
	Components map[string]float64
}

// Case selects the regulation figure case for the roof cladding tables.
func (r RoofCladding) Case() (string, error) {
	switch r.Kind {
	case geometry.RoofFlat, geometry.RoofGable:
		return r.gableCase()
	case geometry.RoofMonoSlope:
		return r.monoSlopeCase()
	default:
		return "", &cirsoc.GuidelineError{
			Msg:   "the regulation provides no cladding pressure coefficients for " + string(r.Kind) + " roofs",
			Value: r.Angle,
		}
	}
}

func (r RoofCladding) gableCase() (string, error) {
	switch {
	case r.Angle <= 10 && r.MeanHeight > 20:
		return "F", nil
	case r.Angle <= 10:
		return "A", nil
	case r.Angle <= 30:
		return "B", nil
	case r.Angle <= 45:
		return "C", nil
	default:
		return "", &cirsoc.GuidelineError{
			Msg:   "the regulation provides no cladding pressure coefficients for gable roofs steeper than 45°",
			Value: r.Angle,
		}
	}
}

func (r RoofCladding) monoSlopeCase() (string, error) {
	if r.MeanHeight > 20 {
		if r.Angle <= 10 {
			return "F", nil
		}
		return "", &cirsoc.GuidelineError{
			Msg:   "the regulation provides no cladding pressure coefficients for mono-slope roofs steeper than 10° on tall buildings",
			Value: r.Angle,
		}
	}
	switch {
	case r.Angle <= 3:
		return "A", nil
	case r.Angle <= 10:
		return "D", nil
	case r.Angle <= 30:
		return "E", nil
	default:
		return "", &cirsoc.GuidelineError{
			Msg:   "the regulation provides no cladding pressure coefficients for mono-slope roofs steeper than 30°",
			Value: r.Angle,
		}
	}
}

// Reference names the regulation figure backing the selected case.
func (r RoofCladding) Reference() (string, error) {
	c, err := r.Case()
	if err != nil {
		return "", err
	}
	refs := map[string]string{
		"A": "Figura 5B", "B": "Figura 5B (cont.) 1", "C": "Figura 5B (cont.) 2",
		"D": "Figura 7A", "E": "Figura 7A (cont.)", "F": "Figura 8",
	}
	return refs[c], nil
}

// DistanceA is the edge-zone width "a" from the cladding figures.
func (r RoofCladding) DistanceA() float64 {
	return claddingDistanceA(r.Width, r.Length, r.MeanHeight)
}

// Values returns the GCp per component and roof zone.
func (r RoofCladding) Values() (Tree, error) {
	if err := validateComponents(r.Components, "roof"); err != nil {
		return nil, err
	}
	c, err := r.Case()
	if err != nil {
		return nil, err
	}
	zones := r.caseZones(c)
	// Fig. 5B note 5 and Fig. 8 note 7: with a parapet above 1 m the corner
	// zones take the edge-zone coefficients.
	if (c == "A" || c == "F") && r.Parapet > 1 {
		zones["3"] = zones["2"]
	}
	defaultArea := [2]float64{1, 10}
	if c == "F" {
		defaultArea = [2]float64{1, 50}
	}
	values := Tree{}
	for name, componentArea := range r.Components {
		zoneValues := Tree{}
		for zoneName, entry := range zones {
			zoneValues[zoneName] = Scalar(entry.coefficient(componentArea, defaultArea))
		}
		values[name] = Branch(zoneValues)
	}
	return values, nil
}

func (r RoofCladding) caseZones(c string) map[string]claddingZone {
	cases := map[string]map[string]claddingZone{
		"A": {
			"1": zone(-1, -0.9), "2": zone(-1.8, -1.1), "3": zone(-2.8, -1.1),
			AllZones: zone(0.3, 0.2),
		},
		"B": {
			"1": zone(-0.9, -0.8), "2": zone(-2.1, -1.4), "3": zone(-2.1, -1.4),
			AllZones: zone(0.5, 0.3),
		},
		"C": {
			"1": zone(-1, -0.8), "2": zone(-1.2, -1), "3": zone(-1.2, -1),
			AllZones: zone(0.9, 0.8),
		},
		"D": {
			"1": zone(-1.1, -1.1), "2": zone(-1.3, -1.2), "3": zone(-1.8, -1.2),
			"2'": zone(-1.6, -1.5), "3'": zone(-2.6, -1.6),
			AllZones: zone(0.3, 0.2),
		},
		"E": {
			"1": zone(-1.3, -1.1), "2": zone(-1.6, -1.2), "3": zone(-2.9, -2),
			AllZones: zone(0.4, 0.3),
		},
		"F": {
			"1": zone(-1.4, -0.9), "2": zone(-2.3, -1.6), "3": zone(-3.2, -2.3),
		},
	}
	zones := map[string]claddingZone{}
	for name, entry := range cases[c] {
		zones[name] = entry
	}
	if r.Overhang > 0 {
		overhangs := map[string]map[string]claddingZone{
			"A": {
				"1": {segments: []segment{
					{cp: [2]float64{-1.7, -1.6}, area: [2]float64{1, 10}},
					{cp: [2]float64{-1.6, -1.1}, area: [2]float64{10, 50}},
				}},
				"2": {segments: []segment{
					{cp: [2]float64{-1.7, -1.6}, area: [2]float64{1, 10}},
					{cp: [2]float64{-1.6, -1.1}, area: [2]float64{10, 50}},
				}},
				"3": zone(-2.8, -0.8),
			},
			"B": {"2": zone(-2.2, -2.2), "3": zone(-3.7, -2.5)},
			"C": {"2": zone(-2.0, -1.8), "3": zone(-2.0, -1.8)},
		}
		for name, entry := range overhangs[c] {
			zones[name] = entry
		}
	}
	return zones
}
