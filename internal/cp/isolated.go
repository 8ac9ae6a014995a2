package cp

import (
	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/geometry"
)

// Zone keys of the isolated-roof net pressure coefficient trees.
const (
	Global = "global"
	Local  = "local"
	Max    = "max"
	Min    = "min"
)

// IsolatedGable resolves the net pressure coefficients Cpn for an isolated
// gable (duopitch) roof: a maximum (downward) and a minimum (upward) value
// globally and per local zone, the minimum interpolated on the blockage
// ratio before the slope.
//
// Reference: Tabla I.2.
type IsolatedGable struct {
	Angle         float64
	BlockageRatio float64
}

// NewIsolatedGable validates the slope range of the table.
func NewIsolatedGable(angle, blockageRatio float64) (*IsolatedGable, error) {
	if angle > -5 && angle < 5 {
		return nil, &cirsoc.GuidelineError{
			Msg:   "the regulation provides no net pressure coefficients for isolated gable roofs with slopes between -5° and 5°",
			Value: angle,
		}
	}
	return &IsolatedGable{Angle: angle, BlockageRatio: blockageRatio}, nil
}

// Reference names the regulation table backing the coefficients.
func (g *IsolatedGable) Reference() string {
	return "Tabla I.2"
}

// Values returns the Cpn tree: global max/min and local zones a to d.
func (g *IsolatedGable) Values() Tree {
	angles := []float64{-20, -15, -10, -5, 5, 10, 15, 20, 25, 30}
	maxima := map[string][]float64{
		Global: {0.7, 0.5, 0.4, 0.3, 0.3, 0.4, 0.4, 0.6, 0.7, 0.9},
		"a":    {0.8, 0.6, 0.6, 0.5, 0.6, 0.7, 0.9, 1.1, 1.2, 1.3},
		"b":    {1.6, 1.5, 1.4, 1.5, 1.8, 1.8, 1.9, 1.9, 1.9, 1.9},
		"c":    {0.6, 0.7, 0.8, 0.8, 1.3, 1.4, 1.4, 1.5, 1.6, 1.6},
		"d":    {1.7, 1.4, 1.1, 0.8, 0.4, 0.4, 0.4, 0.4, 0.5, 0.7},
	}
	minima := map[string][][2]float64{
		Global: {
			{-0.7, -1.5}, {-0.6, -1.5}, {-0.6, -1.4}, {-0.5, -1.4}, {-0.6, -1.2},
			{-0.7, -1.2}, {-0.8, -1.2}, {-0.9, -1.2}, {-1.0, -1.2}, {-1.0, -1.2},
		},
		"a": {
			{-0.9, -1.5}, {-0.8, -1.5}, {-0.8, -1.4}, {-0.5, -1.4}, {-0.6, -1.2},
			{-0.7, -1.2}, {-0.9, -1.2}, {-1.2, -1.2}, {-1.4, -1.2}, {-1.4, -1.2},
		},
		"b": {
			{-1.3, -2.4}, {-1.3, -2.7}, {-1.3, -2.5}, {-1.3, -2.3}, {-1.4, -2.0},
			{-1.5, -1.8}, {-1.7, -1.6}, {-1.8, -1.5}, {-1.9, -1.4}, {-1.9, -1.3},
		},
		"c": {
			{-1.6, -2.4}, {-1.6, -2.6}, {-1.5, -2.5}, {-1.6, -2.4}, {-1.4, -1.8},
			{-1.4, -1.6}, {-1.4, -1.3}, {-1.4, -1.2}, {-1.4, -1.1}, {-1.4, -1.1},
		},
		"d": {
			{-0.6, -1.2}, {-0.6, -1.2}, {-0.6, -1.2}, {-0.6, -1.2}, {-1.1, -1.5},
			{-1.4, -1.6}, {-1.8, -1.7}, {-2.0, -1.7}, {-2.0, -1.6}, {-2.0, -1.6},
		},
	}
	values := Tree{
		Global: Branch(Tree{
			Max: Scalar(interp(g.Angle, angles, maxima[Global])),
			Min: Scalar(g.minValue(angles, minima[Global])),
		}),
	}
	local := Tree{}
	for _, name := range []string{"a", "b", "c", "d"} {
		local[name] = Branch(Tree{
			Max: Scalar(interp(g.Angle, angles, maxima[name])),
			Min: Scalar(g.minValue(angles, minima[name])),
		})
	}
	values[Local] = Branch(local)
	return values
}

// minValue interpolates a minimum row: first on the blockage ratio within
// each angle entry, then on the slope across entries.
func (g *IsolatedGable) minValue(angles []float64, pairs [][2]float64) float64 {
	byAngle := make([]float64, len(pairs))
	for i, pair := range pairs {
		byAngle[i] = interpPair(g.BlockageRatio, pair)
	}
	return interp(g.Angle, angles, byAngle)
}

// IsolatedMono resolves the net pressure coefficients Cpn for an isolated
// mono-slope (monopitch) roof. The minimum tables depend on which eave the
// blockage sits against.
//
// Reference: Tabla I.1.
type IsolatedMono struct {
	Angle            float64
	BlockageRatio    float64
	BlockagePosition geometry.BlockagePosition
}

// NewIsolatedMono validates the slope range of the table.
func NewIsolatedMono(angle, blockageRatio float64, position geometry.BlockagePosition) (*IsolatedMono, error) {
	if angle < 0 || angle > 30 {
		return nil, &cirsoc.GuidelineError{
			Msg:   "the regulation provides no net pressure coefficients for isolated mono-slope roofs with slopes outside 0° to 30°",
			Value: angle,
		}
	}
	return &IsolatedMono{Angle: angle, BlockageRatio: blockageRatio, BlockagePosition: position}, nil
}

// Reference names the regulation table backing the coefficients.
func (m *IsolatedMono) Reference() string {
	return "Tabla I.1"
}

// Values returns the Cpn tree: global max/min and local zones a to c.
func (m *IsolatedMono) Values() Tree {
	angles := []float64{0, 5, 10, 15, 20, 25, 30}
	maxima := map[string][]float64{
		Global: {0.2, 0.4, 0.5, 0.7, 0.8, 1, 1.2},
		"a":    {0.5, 0.8, 1.2, 1.4, 1.7, 2, 2.2},
		"b":    {1.8, 2.1, 2.4, 2.7, 2.9, 3.1, 3.2},
		"c":    {1.1, 1.3, 1.6, 1.8, 2.1, 2.3, 2.4},
	}
	minimaByPosition := map[string]map[geometry.BlockagePosition][][2]float64{
		Global: {
			geometry.BlockageLowEave: {
				{-0.5, -1.2}, {-0.7, -1.4}, {-0.9, -1.4}, {-1.1, -1.5},
				{-1.3, -1.5}, {-1.6, -1.4}, {-1.8, -1.4},
			},
			geometry.BlockageHighEave: {
				{-0.5, -1.2}, {-0.7, -1.2}, {-0.9, -1.1}, {-1.1, -1},
				{-1.3, -0.9}, {-1.6, -0.8}, {-1.8, -0.8},
			},
		},
		"a": {
			geometry.BlockageLowEave: {
				{-0.6, -1.3}, {-1.1, -1.4}, {-1.5, -1.4}, {-1.8, -1.5},
				{-2.2, -1.5}, {-2.6, -1.4}, {-3.0, -1.4},
			},
			geometry.BlockageHighEave: {
				{-0.6, -1.3}, {-1.1, -1.2}, {-1.5, -1.1}, {-1.8, -1},
				{-2.2, -0.9}, {-2.6, -0.8}, {-3.0, -0.8},
			},
		},
		"c": {
			geometry.BlockageLowEave: {
				{-1.4, -2.2}, {-1.8, -2.6}, {-2.1, -2.7}, {-2.5, -2.8},
				{-2.9, -2.7}, {-3.2, -2.5}, {-3.6, -2.3},
			},
			geometry.BlockageHighEave: {
				{-1.4, -2.2}, {-1.8, -2.1}, {-2.1, -1.8}, {-2.5, -1.6},
				{-2.9, -1.5}, {-3.2, -1.4}, {-3.6, -1.2},
			},
		},
	}
	// Zone b is independent of the blockage position.
	minimaZoneB := [][2]float64{
		{-1.3, -1.8}, {-1.7, -2.6}, {-2.0, -2.6}, {-2.4, -2.9},
		{-2.8, -2.9}, {-3.2, -2.5}, {-3.8, -2.0},
	}
	minValue := func(pairs [][2]float64) float64 {
		byAngle := make([]float64, len(pairs))
		for i, pair := range pairs {
			byAngle[i] = interpPair(m.BlockageRatio, pair)
		}
		return interp(m.Angle, angles, byAngle)
	}
	values := Tree{
		Global: Branch(Tree{
			Max: Scalar(interp(m.Angle, angles, maxima[Global])),
			Min: Scalar(minValue(minimaByPosition[Global][m.BlockagePosition])),
		}),
	}
	local := Tree{
		"b": Branch(Tree{
			Max: Scalar(interp(m.Angle, angles, maxima["b"])),
			Min: Scalar(minValue(minimaZoneB)),
		}),
	}
	for _, name := range []string{"a", "c"} {
		local[name] = Branch(Tree{
			Max: Scalar(interp(m.Angle, angles, maxima[name])),
			Min: Scalar(minValue(minimaByPosition[name][m.BlockagePosition])),
		})
	}
	values[Local] = Branch(local)
	return values
}

// IsolatedRoofCp builds the net pressure coefficient resolver matching the
// roof kind.
func IsolatedRoofCp(roof *geometry.Roof) (interface {
	Values() Tree
	Reference() string
}, error) {
	switch roof.Kind {
	case geometry.RoofGable:
		return NewIsolatedGable(roof.Angle, roof.BlockageRatio())
	case geometry.RoofMonoSlope:
		return NewIsolatedMono(roof.Angle, roof.BlockageRatio(), roof.BlockagePosition)
	default:
		return nil, &cirsoc.GuidelineError{
			Msg:   "the regulation provides no net pressure coefficients for isolated " + string(roof.Kind) + " roofs",
			Value: roof.Angle,
		}
	}
}
