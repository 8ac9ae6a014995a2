package geometry

import "github.com/ealmiron/gowind/internal/cirsoc"

// Sign describes a free-standing sign. Constructed once from validated
// inputs; never mutated.
type Sign struct {
	Depth       float64 // dimension parallel to the wind (m)
	Width       float64 // dimension normal to the wind (m)
	LowerHeight float64 // height of the bottom edge above ground (m)
	UpperHeight float64 // height of the top edge above ground (m)

	// Derived at construction.
	NetHeight    float64   // exposed sign height (m)
	Area         float64   // exposed area (m²)
	MeanHeight   float64   // mid-height of the exposed area (m)
	Heights      []float64 // evaluation heights, ascending
	PartialAreas []float64 // tributary area between consecutive heights (m²)
}

// NewSign builds a sign. The lower edge must sit below the upper edge.
func NewSign(depth, width, lowerHeight, upperHeight float64, customHeights []float64) (*Sign, error) {
	if depth <= 0 || width <= 0 {
		return nil, cirsoc.NewGeometryError(
			"invalid sign dimensions: depth=%.2f, width=%.2f", depth, width,
		)
	}
	if lowerHeight < 0 || lowerHeight >= upperHeight {
		return nil, cirsoc.NewGeometryError(
			"sign lower height (%.2f) must be below the upper height (%.2f)",
			lowerHeight, upperHeight,
		)
	}
	s := &Sign{
		Depth:       depth,
		Width:       width,
		LowerHeight: lowerHeight,
		UpperHeight: upperHeight,
	}
	s.NetHeight = upperHeight - lowerHeight
	s.Area = width * s.NetHeight
	s.MeanHeight = (lowerHeight + upperHeight) / 2
	s.Heights = HeightSequence(lowerHeight, upperHeight, customHeights)
	s.PartialAreas = make([]float64, len(s.Heights)-1)
	for i := range s.PartialAreas {
		s.PartialAreas[i] = width * (s.Heights[i+1] - s.Heights[i])
	}
	return s, nil
}
