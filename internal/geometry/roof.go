package geometry

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// RoofKind identifies the roof shape. The kind is resolved once at
// construction; all derived quantities branch on it there.
type RoofKind string

const (
	RoofFlat      RoofKind = "flat"
	RoofGable     RoofKind = "gable"
	RoofMonoSlope RoofKind = "mono-slope"
	RoofMansard   RoofKind = "mansard"
)

// BlockagePosition locates the obstruction under an isolated mono-slope roof.
type BlockagePosition string

const (
	BlockageLowEave  BlockagePosition = "low eave"
	BlockageHighEave BlockagePosition = "high eave"
)

// RoofOptions holds the optional roof parameters.
type RoofOptions struct {
	Parapet          float64 // parapet height (m)
	Overhang         float64 // eave overhang length (m)
	BlockageHeight   float64 // obstruction height under an isolated roof (m)
	BlockagePosition BlockagePosition
}

// Roof describes a roof of any supported kind. All derived quantities are
// computed at construction and never mutated.
type Roof struct {
	Kind         RoofKind
	Width        float64 // horizontal span normal to the ridge (m)
	Length       float64 // horizontal span parallel to the ridge (m)
	EaveHeight   float64 // eave height above ground (m)
	RidgeHeight  float64 // ridge height above ground (m), equals eave for flat roofs
	CentralWidth float64 // flat central span of a mansard roof (m)

	Parapet          float64
	Overhang         float64
	BlockageHeight   float64
	BlockagePosition BlockagePosition

	// Derived at construction.
	Angle        float64 // roof slope angle (degrees)
	Area         float64 // roof surface area (m²)
	MeanHeight   float64 // mean roof height (m)
	PedimentArea float64 // gable-end wall area above the eave (m²)
}

// NewRoof builds a roof, resolving kind-specific geometry once.
// For non-flat kinds ridgeHeight must exceed eaveHeight; for mansard roofs
// centralWidth must be positive and smaller than the width.
func NewRoof(kind RoofKind, width, length, eaveHeight, ridgeHeight, centralWidth float64, opts RoofOptions) (*Roof, error) {
	if width <= 0 || length <= 0 || eaveHeight <= 0 {
		return nil, cirsoc.NewGeometryError(
			"invalid roof dimensions: width=%.2f, length=%.2f, eave height=%.2f",
			width, length, eaveHeight,
		)
	}
	if kind != RoofFlat && ridgeHeight <= eaveHeight {
		return nil, cirsoc.NewGeometryError(
			"ridge height (%.2f) must exceed eave height (%.2f) for a %s roof",
			ridgeHeight, eaveHeight, kind,
		)
	}
	if kind == RoofMansard && (centralWidth <= 0 || centralWidth >= width) {
		return nil, cirsoc.NewGeometryError(
			"mansard central width (%.2f) must be positive and smaller than the width (%.2f)",
			centralWidth, width,
		)
	}
	if opts.BlockagePosition == "" {
		opts.BlockagePosition = BlockageLowEave
	}
	r := &Roof{
		Kind:             kind,
		Width:            width,
		Length:           length,
		EaveHeight:       eaveHeight,
		RidgeHeight:      ridgeHeight,
		CentralWidth:     centralWidth,
		Parapet:          opts.Parapet,
		Overhang:         opts.Overhang,
		BlockageHeight:   opts.BlockageHeight,
		BlockagePosition: opts.BlockagePosition,
	}
	if kind == RoofFlat {
		r.RidgeHeight = eaveHeight
	}
	r.Angle = r.angle()
	r.Area = r.area()
	r.MeanHeight = r.meanHeight()
	r.PedimentArea = r.pedimentArea()
	return r, nil
}

func (r *Roof) angle() float64 {
	rise := r.RidgeHeight - r.EaveHeight
	switch r.Kind {
	case RoofFlat:
		return 0
	case RoofGable:
		// Full-span rise over half the width.
		return degrees(math.Atan(2 * rise / r.Width))
	case RoofMonoSlope:
		return degrees(math.Atan(rise / r.Width))
	default: // mansard
		return degrees(math.Atan(rise / r.slopedWidth()))
	}
}

func (r *Roof) area() float64 {
	rise := r.RidgeHeight - r.EaveHeight
	switch r.Kind {
	case RoofFlat:
		return r.Width * r.Length
	case RoofGable:
		return 2 * math.Hypot(rise, r.Width/2) * r.Length
	case RoofMonoSlope:
		return math.Hypot(rise, r.Width) * r.Length
	default: // mansard
		return (2*math.Hypot(rise, r.slopedWidth()) + r.CentralWidth) * r.Length
	}
}

func (r *Roof) meanHeight() float64 {
	if r.Angle <= 10 {
		return r.EaveHeight
	}
	return (r.EaveHeight + r.RidgeHeight) / 2
}

func (r *Roof) pedimentArea() float64 {
	if r.Kind == RoofFlat {
		return 0
	}
	return r.Width * r.RidgeHeight / 2
}

// slopedWidth is the horizontal projection of one sloped face of a mansard
// roof.
func (r *Roof) slopedWidth() float64 {
	return (r.Width - r.CentralWidth) / 2
}

// BlockageRatio relates the obstruction height to the eave height, capped
// at 1.
func (r *Roof) BlockageRatio() float64 {
	return math.Min(r.BlockageHeight/r.EaveHeight, 1)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
