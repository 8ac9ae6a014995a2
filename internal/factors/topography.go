package factors

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// TerrainShape identifies the topographic feature of Figure 2.
type TerrainShape string

const (
	Ridge2D      TerrainShape = "2d ridge"
	Escarpment2D TerrainShape = "2d escarpment"
	Hill3D       TerrainShape = "3d hill"
)

// Direction locates the structure relative to the crest.
type Direction string

const (
	Windward Direction = "windward"
	Leeward  Direction = "leeward"
)

// TopoParams holds the intermediate topographic-factor quantities, exposed
// for reporting.
type TopoParams struct {
	K     float64 // shape and exposure dependent speed-up constant
	Gamma float64 // height attenuation constant
	Mu    float64 // horizontal attenuation constant
	Lh    float64 // crest-to-half-height distance, floor 2·H (m)
	K1    float64
	K2    float64
	K3    []float64 // per evaluation height
}

// CIRSOC 102-2005 Fig. 2 - speed-up parameters per terrain shape.
var topoShapeParams = map[TerrainShape]struct {
	k     map[cirsoc.Exposure]float64
	gamma float64
	mu    map[Direction]float64
}{
	Ridge2D: {
		k:     map[cirsoc.Exposure]float64{cirsoc.ExposureA: 1.3, cirsoc.ExposureB: 1.3, cirsoc.ExposureC: 1.45, cirsoc.ExposureD: 1.55},
		gamma: 3,
		mu:    map[Direction]float64{Windward: 1.5, Leeward: 1.5},
	},
	Escarpment2D: {
		k:     map[cirsoc.Exposure]float64{cirsoc.ExposureA: 0.75, cirsoc.ExposureB: 0.75, cirsoc.ExposureC: 0.85, cirsoc.ExposureD: 0.95},
		gamma: 2.5,
		mu:    map[Direction]float64{Windward: 1.5, Leeward: 4},
	},
	Hill3D: {
		k:     map[cirsoc.Exposure]float64{cirsoc.ExposureA: 0.95, cirsoc.ExposureB: 0.95, cirsoc.ExposureC: 1.05, cirsoc.ExposureD: 1.15},
		gamma: 4,
		mu:    map[Direction]float64{Windward: 1.5, Leeward: 1.5},
	},
}

// Topography computes the speed-up factor Kzt over hills, ridges and
// escarpments (Section 5.7).
type Topography struct {
	Consider      bool
	Exposure      cirsoc.Exposure
	Shape         TerrainShape
	HillHeight    float64   // feature height H (m)
	CrestDistance float64   // distance upwind of the crest to half height, Lh (m)
	Distance      float64   // distance from the crest to the structure (m)
	Direction     Direction // side of the crest for Distance
	Heights       []float64 // evaluation heights (m)
}

// NewTopography builds a topographic factor calculator for the given heights.
func NewTopography(consider bool, heights []float64, exp cirsoc.Exposure, shape TerrainShape, hillHeight, crestDistance, distance float64, dir Direction) *Topography {
	return &Topography{
		Consider:      consider,
		Exposure:      exp,
		Shape:         shape,
		HillHeight:    hillHeight,
		CrestDistance: crestDistance,
		Distance:      distance,
		Direction:     dir,
		Heights:       heights,
	}
}

// Active reports whether the topographic speed-up has to be considered: the
// feature must be steep enough (H/Lh ≥ 0.2) and taller than the exposure
// dependent threshold (20 m for A/B, 5 m for C/D).
func (t *Topography) Active() bool {
	if !t.Consider {
		return false
	}
	if t.HillHeight/t.CrestDistance < 0.2 {
		return false
	}
	switch t.Exposure {
	case cirsoc.ExposureA, cirsoc.ExposureB:
		return t.HillHeight > 20
	default:
		return t.HillHeight > 5
	}
}

// Params computes the topographic-factor parameters.
func (t *Topography) Params() TopoParams {
	shape := topoShapeParams[t.Shape]
	// Fig. 2 note 2.
	lh := math.Max(t.CrestDistance, 2*t.HillHeight)
	p := TopoParams{
		K:     shape.k[t.Exposure],
		Gamma: shape.gamma,
		Mu:    shape.mu[t.Direction],
		Lh:    lh,
	}
	p.K1 = p.K * t.HillHeight / lh
	p.K2 = 1 - t.Distance/(p.Mu*lh)
	p.K3 = make([]float64, len(t.Heights))
	for i, z := range t.Heights {
		p.K3[i] = math.Exp(-p.Gamma * z / lh)
	}
	return p
}

// Factors computes Kzt per evaluation height. When the topography is not
// considered, or the active condition fails, every factor is 1.
func (t *Topography) Factors() []float64 {
	factors := make([]float64, len(t.Heights))
	if !t.Active() {
		for i := range factors {
			factors[i] = 1
		}
		return factors
	}
	p := t.Params()
	for i := range factors {
		factors[i] = math.Pow(1+p.K1*p.K2*p.K3[i], 2)
	}
	return factors
}
