package geometry

import (
	"math"

	"github.com/ealmiron/gowind/internal/cirsoc"
)

// Surfaces holds one value per building surface, in the fixed order used by
// the enclosure classification tests.
type Surfaces struct {
	Front float64 `json:"front"`
	Left  float64 `json:"left"`
	Rear  float64 `json:"rear"`
	Right float64 `json:"right"`
	Roof  float64 `json:"roof"`
}

func (s Surfaces) values() [5]float64 {
	return [5]float64{s.Front, s.Left, s.Rear, s.Right, s.Roof}
}

// WallConditions holds one boolean per wall (front, left, rear, right).
type WallConditions [4]bool

// BuildingOptions holds the optional building parameters.
type BuildingOptions struct {
	CustomHeights  []float64
	WallComponents map[string]float64 // component name -> tributary area (m²)
	RoofComponents map[string]float64
	InternalVolume float64  // unpartitioned internal volume (m³); 0 computes it
	Openings       Surfaces // opening area per surface (m²)
}

// Building describes a building and the derived quantities the pressure
// calculation needs. Constructed once from validated inputs; never mutated.
type Building struct {
	Width     float64 // span normal to the ridge (m)
	Length    float64 // span parallel to the ridge (m)
	Elevation float64 // ground elevation where pressures start (m)
	Roof      *Roof

	WallComponents map[string]float64
	RoofComponents map[string]float64
	InternalVolume float64

	// Derived at construction.
	Areas         Surfaces  // wall and roof areas (m²)
	Openings      Surfaces  // opening areas clamped to the containing surface
	TotalArea     float64   // envelope area (m²)
	TotalOpenings float64   // total opening area (m²)
	Volume        float64   // internal volume from the geometry (m³)
	Heights       []float64 // evaluation heights, ascending
}

// NewBuilding builds a building around a roof. Opening areas are clamped to
// [0, containing surface area].
func NewBuilding(width, length, elevation float64, roof *Roof, opts BuildingOptions) (*Building, error) {
	if width <= 0 || length <= 0 || elevation < 0 {
		return nil, cirsoc.NewGeometryError(
			"invalid building dimensions: width=%.2f, length=%.2f, elevation=%.2f",
			width, length, elevation,
		)
	}
	if roof == nil {
		return nil, cirsoc.NewGeometryError("building requires a roof")
	}
	b := &Building{
		Width:          width,
		Length:         length,
		Elevation:      elevation,
		Roof:           roof,
		WallComponents: opts.WallComponents,
		RoofComponents: opts.RoofComponents,
	}
	frontArea := width*roof.EaveHeight + roof.PedimentArea
	sideArea := length * roof.EaveHeight
	leftArea := sideArea
	if roof.Kind == RoofMonoSlope {
		// The ridge is taken to lie on the left wall.
		leftArea = length * roof.RidgeHeight
	}
	b.Areas = Surfaces{
		Front: frontArea, Left: leftArea, Rear: frontArea, Right: sideArea,
		Roof: roof.Area,
	}
	b.Openings = clampOpenings(opts.Openings, b.Areas)
	for _, a := range b.Areas.values() {
		b.TotalArea += a
	}
	for _, a := range b.Openings.values() {
		b.TotalOpenings += a
	}
	b.Volume = frontArea * length
	b.InternalVolume = opts.InternalVolume
	if b.InternalVolume == 0 {
		b.InternalVolume = b.Volume
	}
	b.Heights = HeightSequence(
		elevation, roof.RidgeHeight, opts.CustomHeights,
		roof.EaveHeight, roof.MeanHeight,
	)
	return b, nil
}

func clampOpenings(openings, areas Surfaces) Surfaces {
	clamp := func(opening, area float64) float64 {
		if opening < 0 {
			return 0
		}
		return math.Min(opening, area)
	}
	return Surfaces{
		Front: clamp(openings.Front, areas.Front),
		Left:  clamp(openings.Left, areas.Left),
		Rear:  clamp(openings.Rear, areas.Rear),
		Right: clamp(openings.Right, areas.Right),
		Roof:  clamp(openings.Roof, areas.Roof),
	}
}

// remainderOpenings is, per wall, the sum of openings in the rest of the
// envelope (Aoi in the enclosure tests).
func (b *Building) remainderOpenings() [4]float64 {
	var out [4]float64
	openings := b.Openings.values()
	for i := 0; i < 4; i++ {
		out[i] = b.TotalOpenings - openings[i]
	}
	return out
}

// remainderAreas is, per wall, the envelope area excluding that wall (Agi).
func (b *Building) remainderAreas() [4]float64 {
	var out [4]float64
	areas := b.Areas.values()
	for i := 0; i < 4; i++ {
		out[i] = b.TotalArea - areas[i]
	}
	return out
}

// minOpeningAreas is the lesser of 0.4 m² and 1% of each wall area.
func (b *Building) minOpeningAreas() [4]float64 {
	var out [4]float64
	areas := b.Areas.values()
	for i := 0; i < 4; i++ {
		out[i] = math.Min(0.4, 0.01*areas[i])
	}
	return out
}

// EnclosureCondition1 checks, per wall, whether its opening reaches 80% of
// the wall area.
func (b *Building) EnclosureCondition1() WallConditions {
	var out WallConditions
	openings, areas := b.Openings.values(), b.Areas.values()
	for i := 0; i < 4; i++ {
		out[i] = openings[i] >= 0.8*areas[i]
	}
	return out
}

// EnclosureCondition2 checks, per wall, whether its opening exceeds the sum
// of the openings in the rest of the envelope by more than 10%.
func (b *Building) EnclosureCondition2() WallConditions {
	var out WallConditions
	openings, remainder := b.Openings.values(), b.remainderOpenings()
	for i := 0; i < 4; i++ {
		out[i] = openings[i] > 1.1*remainder[i]
	}
	return out
}

// EnclosureCondition3 checks, per wall, whether its opening exceeds the
// lesser of 0.4 m² and 1% of the wall area.
func (b *Building) EnclosureCondition3() WallConditions {
	var out WallConditions
	openings, minAreas := b.Openings.values(), b.minOpeningAreas()
	for i := 0; i < 4; i++ {
		out[i] = openings[i] > minAreas[i]
	}
	return out
}

// EnclosureCondition4 checks, per wall, whether the opening ratio of the rest
// of the envelope stays within 20%.
func (b *Building) EnclosureCondition4() WallConditions {
	var out WallConditions
	remOpenings, remAreas := b.remainderOpenings(), b.remainderAreas()
	for i := 0; i < 4; i++ {
		out[i] = remOpenings[i]/remAreas[i] <= 0.2
	}
	return out
}
