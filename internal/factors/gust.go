package factors

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/geometry"
)

// Flexibility classifies the dynamic behaviour of the structure.
type Flexibility string

const (
	Rigid    Flexibility = "rigid"
	Flexible Flexibility = "flexible"
)

// SimplifiedGustFactor is the fixed value allowed by Section 5.8.1.
const SimplifiedGustFactor = 0.85

// GustParams holds the intermediate gust-factor quantities, exposed for
// reporting.
type GustParams struct {
	Z  float64 // equivalent height z̄ (m)
	Iz float64 // turbulence intensity at z̄
	Lz float64 // integral length scale at z̄ (m)
	GR float64 // resonant peak factor (flexible only)
	R  float64 // resonant response factor (flexible only)
}

// Gust computes the gust-effect factor G for rigid or flexible structures
// (Section 5.8), or returns the simplified fixed value.
type Gust struct {
	Simplified  bool
	Exposure    cirsoc.Exposure
	Flexibility Flexibility

	Width     float64 // dimension normal to the wind (m)
	Length    float64 // dimension parallel to the wind (m)
	Height    float64 // structure height (m)
	RefHeight float64 // reference height for z̄, e.g. 0.6·mean height (m)
	Speed     float64 // basic wind speed (m/s)
	Frequency float64 // natural frequency (Hz), flexible only
	Damping   float64 // critical damping ratio, flexible only

	terrain cirsoc.TerrainConstants
}

// SimplifiedGust returns a gust calculator pinned to the fixed factor.
func SimplifiedGust() *Gust {
	return &Gust{Simplified: true}
}

// NewGust builds a gust calculator. Dimensions, the reference height and the
// wind speed must be positive; flexible structures additionally require a
// positive frequency and damping ratio.
func NewGust(exp cirsoc.Exposure, flex Flexibility, width, length, height, refHeight, speed, frequency, damping float64) (*Gust, error) {
	if width <= 0 || length <= 0 || height <= 0 || refHeight <= 0 || speed <= 0 {
		return nil, cirsoc.NewGeometryError(
			"invalid gust parameters: width=%.2f, length=%.2f, height=%.2f, reference height=%.2f, speed=%.2f",
			width, length, height, refHeight, speed,
		)
	}
	if flex == Flexible && (frequency <= 0 || damping <= 0) {
		return nil, cirsoc.NewGeometryError(
			"flexible structures require positive frequency (%.2f) and damping ratio (%.3f)",
			frequency, damping,
		)
	}
	return &Gust{
		Exposure:    exp,
		Flexibility: flex,
		Width:       width,
		Length:      length,
		Height:      height,
		RefHeight:   refHeight,
		Speed:       speed,
		Frequency:   frequency,
		Damping:     damping,
		terrain:     cirsoc.Terrain(exp),
	}, nil
}

// Params computes the gust-factor parameters at the equivalent height.
func (g *Gust) Params() GustParams {
	z := math.Max(g.RefHeight, g.terrain.Zmin)
	iz := g.terrain.C * math.Pow(10/z, 1.0/6)
	lz := g.terrain.L * math.Pow(z/10, g.terrain.EpsBar)
	p := GustParams{Z: z, Iz: iz, Lz: lz}
	if g.Flexibility != Flexible {
		return p
	}
	logT := 2 * math.Log(3600*g.Frequency)
	p.GR = math.Sqrt(logT) + 0.577/math.Sqrt(logT)
	vz := g.terrain.BBar * math.Pow(z/10, g.terrain.AlphaBar) * g.Speed
	n1 := g.Frequency * lz / vz
	rn := 7.47 * n1 / math.Pow(1+10.3*n1, 5.0/3)
	nh := 4.6 * g.Frequency * g.Height / vz
	nb := 4.6 * g.Frequency * g.Width / vz
	nl := 15.4 * g.Frequency * g.Length / vz
	rh := resonantReduction(nh)
	rb := resonantReduction(nb)
	rl := resonantReduction(nl)
	p.R = math.Sqrt(rn * rh * rb * (0.53 + 0.47*rl) / g.Damping)
	return p
}

func resonantReduction(n float64) float64 {
	if n <= 0 {
		return 1
	}
	return 1/n - (1-math.Exp(-2*n))/(2*n*n)
}

// Q is the background response factor.
func (g *Gust) Q() float64 {
	p := g.Params()
	return math.Sqrt(1 / (1 + 0.63*math.Pow((g.Length+g.Height)/p.Lz, 0.63)))
}

// Factor computes the gust-effect factor according to the flexibility of the
// structure, or the simplified fixed value.
func (g *Gust) Factor() float64 {
	if g.Simplified {
		return SimplifiedGustFactor
	}
	p := g.Params()
	if g.Flexibility == Flexible {
		response := math.Sqrt(math.Pow(3.4*g.Q(), 2) + math.Pow(p.GR*p.R, 2))
		return 0.925 * (1 + 1.7*p.Iz*response) / (1 + 1.7*3.4*p.Iz)
	}
	return 0.925 * (1 + 1.7*3.4*p.Iz*g.Q()) / (1 + 1.7*3.4*p.Iz)
}

// BuildingGusts holds one gust calculator per wind direction relative to the
// ridge.
type BuildingGusts struct {
	Parallel *Gust
	Normal   *Gust
}

// Factors returns the gust factor per direction key, as consumed by the
// pressure composition.
func (bg BuildingGusts) Factors() map[string]float64 {
	return map[string]float64{
		"parallel": bg.Parallel.Factor(),
		"normal":   bg.Normal.Factor(),
	}
}

// NewBuildingGusts builds the two gust calculators a building needs for the
// directional method: wind parallel and wind normal to the ridge. The
// reference height is 0.6 times the mean roof height.
func NewBuildingGusts(b *geometry.Building, exp cirsoc.Exposure, simplified bool, flex Flexibility, speed, frequency, damping float64) (BuildingGusts, error) {
	if simplified {
		return BuildingGusts{Parallel: SimplifiedGust(), Normal: SimplifiedGust()}, nil
	}
	height := b.Roof.MeanHeight
	refHeight := 0.6 * height
	parallel, err := NewGust(exp, flex, b.Width, b.Length, height, refHeight, speed, frequency, damping)
	if err != nil {
		return BuildingGusts{}, err
	}
	normal, err := NewGust(exp, flex, b.Length, b.Width, height, refHeight, speed, frequency, damping)
	if err != nil {
		return BuildingGusts{}, err
	}
	return BuildingGusts{Parallel: parallel, Normal: normal}, nil
}
