package cp

import (
	"math"

	"github.com/ealmiron/gowind/internal/geometry"
)

// SignForce resolves the force coefficient Cf for solid signs and building
// parapets from Table 11.
type SignForce struct {
	LowerHeight float64
	NetHeight   float64
	Width       float64
	IsParapet   bool // treat the panel as a building parapet, always at ground level
}

// NewSignForce builds the force coefficient resolver for a sign panel.
func NewSignForce(s *geometry.Sign, isParapet bool) *SignForce {
	return &SignForce{
		LowerHeight: s.LowerHeight,
		NetHeight:   s.NetHeight,
		Width:       s.Width,
		IsParapet:   isParapet,
	}
}

// AboveGround reports whether the panel qualifies as elevated: the clearance
// below must reach a quarter of the panel height. Parapets are always
// treated at ground level.
func (s *SignForce) AboveGround() bool {
	if s.IsParapet {
		return false
	}
	return s.LowerHeight >= 0.25*s.NetHeight
}

// Value returns the force coefficient Cf.
func (s *SignForce) Value() float64 {
	cfs := []float64{1.2, 1.3, 1.4, 1.5, 1.75, 1.85, 2}
	if s.AboveGround() {
		m := math.Max(s.NetHeight, s.Width)
		n := math.Min(s.NetHeight, s.Width)
		return interp(m/n, []float64{6, 10, 16, 20, 40, 60, 80}, cfs)
	}
	return interp(s.NetHeight/s.Width, []float64{3, 5, 8, 10, 20, 30, 40}, cfs)
}

// Reference names the regulation table backing the coefficient.
func (s *SignForce) Reference() string {
	return "Tabla 11"
}
