package pressure

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// InternalPressure computes the internal pressure coefficient GCpi from the
// enclosure classification, optionally reduced for large unpartitioned
// volumes (Figure 4).
type InternalPressure struct {
	Enclosure      cirsoc.Enclosure
	Reduce         bool
	TotalOpenings  float64 // total opening area Aoi (m²)
	InternalVolume float64 // unpartitioned internal volume Vi (m³)
}

// ReductionFactor computes the GCpi reduction for partially enclosed
// buildings with a large unpartitioned volume. It is 1 whenever the
// reduction does not apply.
func (p InternalPressure) ReductionFactor() float64 {
	if p.Reduce && p.Enclosure == cirsoc.EnclosurePartial &&
		p.InternalVolume > 0 && p.TotalOpenings > 0 {
		r := 0.5 * (1 + 1/math.Sqrt(1+p.InternalVolume/6954/p.TotalOpenings))
		return math.Min(r, 1)
	}
	return 1
}

// GCpi is the reduced internal pressure coefficient.
func (p InternalPressure) GCpi() float64 {
	return cirsoc.GCpi(p.Enclosure) * p.ReductionFactor()
}
