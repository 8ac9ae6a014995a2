// Package pressure turns geometry, factors and pressure coefficients into
// design wind pressures (Section 5.10 and following).
package pressure

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// VelocityPressure holds the velocity pressure qz and its ingredients per
// evaluation height.
type VelocityPressure struct {
	Heights []float64
	Kz      []float64 // exposure coefficient per height
	Kzt     []float64 // topographic factor per height
	Values  []float64 // qz per height (N/m²)
}

// NewVelocityPressure computes qz = 0.613·Kd·Kz·Kzt·I·V² at every height
// (Section 5.10). Heights below 5 m take the 5 m exposure coefficient.
func NewVelocityPressure(heights, kzt []float64, exp cirsoc.Exposure, cat cirsoc.Category, speed, kd float64) *VelocityPressure {
	terrain := cirsoc.Terrain(exp)
	importance := cirsoc.ImportanceFactor(cat)
	v := &VelocityPressure{
		Heights: heights,
		Kz:      make([]float64, len(heights)),
		Kzt:     kzt,
		Values:  make([]float64, len(heights)),
	}
	for i, z := range heights {
		v.Kz[i] = exposureCoefficient(z, terrain)
		v.Values[i] = 0.613 * kd * v.Kz[i] * kzt[i] * importance * speed * speed
	}
	return v
}

// exposureCoefficient is Kz of Table 5, floored at the 5 m value.
func exposureCoefficient(z float64, terrain cirsoc.TerrainConstants) float64 {
	return 2.01 * math.Pow(math.Max(z, 5)/terrain.Zg, 2/terrain.Alpha)
}

// At returns qz at one of the evaluation heights. The height sequence always
// contains the characteristic heights this is called with.
func (v *VelocityPressure) At(height float64) float64 {
	for i, z := range v.Heights {
		if z == height {
			return v.Values[i]
		}
	}
	return v.Values[len(v.Values)-1]
}

// UpTo returns the qz values for the heights not exceeding the given one.
func (v *VelocityPressure) UpTo(height float64) []float64 {
	var out []float64
	for i, z := range v.Heights {
		if z <= height {
			out = append(out, v.Values[i])
		}
	}
	return out
}
