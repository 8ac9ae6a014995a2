// Package structures wires geometry, wind factors, pressure coefficients and
// velocity pressures into the complete calculation for each structure type.
package structures

import (
	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/cp"
	"github.com/ealmiron/gowind/internal/factors"
	"github.com/ealmiron/gowind/internal/geometry"
	"github.com/ealmiron/gowind/internal/pressure"
)

// Site holds the wind climate and terrain inputs shared by every structure
// type.
type Site struct {
	Speed    float64 // basic wind speed V (m/s)
	Exposure cirsoc.Exposure
	Category cirsoc.Category

	Topography TopographyParams
}

// TopographyParams describes the terrain feature for the Kzt factor.
type TopographyParams struct {
	Consider      bool
	Shape         factors.TerrainShape
	HillHeight    float64
	CrestDistance float64
	Distance      float64
	Direction     factors.Direction
}

func (t TopographyParams) build(heights []float64, exp cirsoc.Exposure) *factors.Topography {
	return factors.NewTopography(
		t.Consider, heights, exp, t.Shape,
		t.HillHeight, t.CrestDistance, t.Distance, t.Direction,
	)
}

// DynamicParams holds the gust-effect inputs beyond the simplified factor.
type DynamicParams struct {
	Simplified  bool
	Flexibility factors.Flexibility
	Frequency   float64 // natural frequency (Hz), flexible only
	Damping     float64 // critical damping ratio, flexible only
}

// SignParams are the inputs for a free-standing sign or building parapet.
type SignParams struct {
	Site
	Dynamics DynamicParams

	Depth         float64
	Width         float64
	LowerHeight   float64
	UpperHeight   float64
	CustomHeights []float64
	IsParapet     bool
}

// SignResult carries every intermediate and final quantity of a sign
// calculation, for reporting.
type SignResult struct {
	Geometry   *geometry.Sign
	Force      *cp.SignForce
	Gust       *factors.Gust
	Topography *factors.Topography
	Velocity   *pressure.VelocityPressure
	Pressures  *pressure.Sign
}

// NewSign runs the full calculation for a sign.
func NewSign(p SignParams) (*SignResult, error) {
	geom, err := geometry.NewSign(p.Depth, p.Width, p.LowerHeight, p.UpperHeight, p.CustomHeights)
	if err != nil {
		return nil, err
	}
	force := cp.NewSignForce(geom, p.IsParapet)
	gust, err := signGust(p, geom)
	if err != nil {
		return nil, err
	}
	topo := p.Topography.build(geom.Heights, p.Exposure)
	velocity := pressure.NewVelocityPressure(
		geom.Heights, topo.Factors(), p.Exposure, p.Category, p.Speed, cirsoc.KdSign,
	)
	return &SignResult{
		Geometry:   geom,
		Force:      force,
		Gust:       gust,
		Topography: topo,
		Velocity:   velocity,
		Pressures: &pressure.Sign{
			Velocity:     velocity,
			Gust:         gust.Factor(),
			Cf:           force.Value(),
			PartialAreas: geom.PartialAreas,
		},
	}, nil
}

func signGust(p SignParams, geom *geometry.Sign) (*factors.Gust, error) {
	if p.Dynamics.Simplified {
		return factors.SimplifiedGust(), nil
	}
	return factors.NewGust(
		p.Exposure, p.Dynamics.Flexibility, p.Width, p.Depth, p.UpperHeight,
		geom.MeanHeight, p.Speed, p.Dynamics.Frequency, p.Dynamics.Damping,
	)
}

// IsolatedRoofParams are the inputs for an isolated roof.
type IsolatedRoofParams struct {
	Site

	Kind             geometry.RoofKind
	Width            float64
	Length           float64
	EaveHeight       float64
	RidgeHeight      float64
	BlockageHeight   float64
	BlockagePosition geometry.BlockagePosition
}

// IsolatedRoofResult carries every intermediate and final quantity of an
// isolated roof calculation.
type IsolatedRoofResult struct {
	Geometry     *geometry.Roof
	Reference    string
	Coefficients cp.Tree
	Topography   *factors.Topography
	Velocity     *pressure.VelocityPressure
	Pressures    pressure.Result
}

// NewIsolatedRoof runs the full calculation for an isolated roof. The gust
// factor is always the simplified value.
func NewIsolatedRoof(p IsolatedRoofParams) (*IsolatedRoofResult, error) {
	geom, err := geometry.NewRoof(
		p.Kind, p.Width, p.Length, p.EaveHeight, p.RidgeHeight, 0,
		geometry.RoofOptions{
			BlockageHeight:   p.BlockageHeight,
			BlockagePosition: p.BlockagePosition,
		},
	)
	if err != nil {
		return nil, err
	}
	cpn, err := cp.IsolatedRoofCp(geom)
	if err != nil {
		return nil, err
	}
	heights := []float64{geom.MeanHeight}
	topo := p.Topography.build(heights, p.Exposure)
	velocity := pressure.NewVelocityPressure(
		heights, topo.Factors(), p.Exposure, p.Category, p.Speed, cirsoc.KdIsolatedRoof,
	)
	coefficients := cpn.Values()
	return &IsolatedRoofResult{
		Geometry:     geom,
		Reference:    cpn.Reference(),
		Coefficients: coefficients,
		Topography:   topo,
		Velocity:     velocity,
		Pressures:    pressure.IsolatedRoof(velocity.At(geom.MeanHeight), coefficients),
	}, nil
}

// BuildingParams are the inputs for a building.
type BuildingParams struct {
	Site
	Dynamics DynamicParams

	Method    cirsoc.Method
	Enclosure cirsoc.Enclosure

	Width        float64
	Length       float64
	Elevation    float64
	RoofKind     geometry.RoofKind
	EaveHeight   float64
	RidgeHeight  float64
	CentralWidth float64 // mansard roofs only

	Parapet       float64
	Overhang      float64
	CustomHeights []float64

	WallComponents map[string]float64
	RoofComponents map[string]float64
	Openings       geometry.Surfaces
	InternalVolume float64
	ReduceGCpi     bool
}

// BuildingResult carries every intermediate and final quantity of a building
// calculation.
type BuildingResult struct {
	Geometry   *geometry.Building
	Gusts      factors.BuildingGusts
	Topography *factors.Topography
	Velocity   *pressure.VelocityPressure
	Internal   pressure.InternalPressure

	WallCp     cp.Tree
	RoofCp     cp.Tree
	OverhangCp cp.Tree
	RoofZones  map[string][]cp.ZoneExtent

	Walls    pressure.Result
	Roof     pressure.Result
	Overhang pressure.Result // nil without an overhang

	// Components and cladding, nil when no component areas were given.
	WallGCp        cp.Tree
	RoofGCp        cp.Tree
	WallCase       string
	WallDistanceA  float64
	RoofCase       string
	RoofDistanceA  float64
	WallComponents pressure.Result
	RoofComponents pressure.Result
}

// NewBuilding runs the full calculation for a building using the directional
// method.
func NewBuilding(p BuildingParams) (*BuildingResult, error) {
	if p.Method != "" && p.Method != cirsoc.MethodDirectional {
		return nil, &cirsoc.MethodNotSupportedError{Method: p.Method}
	}
	roof, err := geometry.NewRoof(
		p.RoofKind, p.Width, p.Length, p.EaveHeight, p.RidgeHeight, p.CentralWidth,
		geometry.RoofOptions{Parapet: p.Parapet, Overhang: p.Overhang},
	)
	if err != nil {
		return nil, err
	}
	geom, err := geometry.NewBuilding(p.Width, p.Length, p.Elevation, roof, geometry.BuildingOptions{
		CustomHeights:  p.CustomHeights,
		WallComponents: p.WallComponents,
		RoofComponents: p.RoofComponents,
		InternalVolume: p.InternalVolume,
		Openings:       p.Openings,
	})
	if err != nil {
		return nil, err
	}
	gusts, err := factors.NewBuildingGusts(
		geom, p.Exposure, p.Dynamics.Simplified, p.Dynamics.Flexibility,
		p.Speed, p.Dynamics.Frequency, p.Dynamics.Damping,
	)
	if err != nil {
		return nil, err
	}
	topo := p.Topography.build(geom.Heights, p.Exposure)
	velocity := pressure.NewVelocityPressure(
		geom.Heights, topo.Factors(), p.Exposure, p.Category, p.Speed, cirsoc.KdBuilding,
	)
	internal := pressure.InternalPressure{
		Enclosure:      p.Enclosure,
		Reduce:         p.ReduceGCpi,
		TotalOpenings:  geom.TotalOpenings,
		InternalVolume: geom.InternalVolume,
	}
	building := &pressure.Building{
		Velocity:   velocity,
		Gusts:      gusts.Factors(),
		Internal:   internal,
		MeanHeight: roof.MeanHeight,
		EaveHeight: roof.EaveHeight,
	}
	result := &BuildingResult{
		Geometry:   geom,
		Gusts:      gusts,
		Topography: topo,
		Velocity:   velocity,
		Internal:   internal,
	}
	wallsCp := cp.WallsSPRFV{Width: p.Width, Length: p.Length}
	roofCp := cp.RoofSPRFV{
		Width: p.Width, Length: p.Length,
		MeanHeight: roof.MeanHeight, Angle: roof.Angle,
	}
	result.WallCp = wallsCp.Values()
	result.RoofCp = roofCp.Values()
	result.RoofZones = roofCp.Zones()
	result.Walls = building.WallsSPRFV(result.WallCp)
	result.Roof = building.RoofSPRFV(result.RoofCp)
	if p.Overhang > 0 {
		overhangCp := cp.OverhangSPRFV{RoofSPRFV: roofCp}
		result.OverhangCp = overhangCp.Values()
		result.Overhang = building.OverhangSPRFV(result.OverhangCp)
	}
	if err := buildingCladding(p, roof, building, result); err != nil {
		return nil, err
	}
	return result, nil
}

func buildingCladding(p BuildingParams, roof *geometry.Roof, building *pressure.Building, result *BuildingResult) error {
	if p.WallComponents != nil {
		cladding := cp.WallCladding{
			Width: p.Width, Length: p.Length,
			MeanHeight: roof.MeanHeight, RoofAngle: roof.Angle,
			Components: p.WallComponents,
		}
		values, err := cladding.Values()
		if err != nil {
			return err
		}
		result.WallGCp = values
		result.WallCase = cladding.Case()
		result.WallDistanceA = cladding.DistanceA()
		result.WallComponents = building.WallCladding(values, cladding.Case() == "B")
	}
	if p.RoofComponents != nil {
		cladding := cp.RoofCladding{
			Kind: roof.Kind, Width: p.Width, Length: p.Length,
			MeanHeight: roof.MeanHeight, Angle: roof.Angle,
			Parapet: p.Parapet, Overhang: p.Overhang,
			Components: p.RoofComponents,
		}
		values, err := cladding.Values()
		if err != nil {
			return err
		}
		roofCase, err := cladding.Case()
		if err != nil {
			return err
		}
		result.RoofGCp = values
		result.RoofCase = roofCase
		result.RoofDistanceA = cladding.DistanceA()
		result.RoofComponents = building.RoofCladding(values)
	}
	return nil
}
