package cirsoc

// CIRSOC 102-2005 Constants

// Exposure is the terrain exposure category (Section 5.6).
type Exposure string

const (
	ExposureA Exposure = "A"
	ExposureB Exposure = "B"
	ExposureC Exposure = "C"
	ExposureD Exposure = "D"
)

// Category is the structure occupancy category (Table A-1).
type Category string

const (
	CategoryI   Category = "I"
	CategoryII  Category = "II"
	CategoryIII Category = "III"
	CategoryIV  Category = "IV"
)

// Enclosure is the building enclosure classification (Section 2).
type Enclosure string

const (
	EnclosureClosed  Enclosure = "closed"
	EnclosurePartial Enclosure = "partially enclosed"
	EnclosureOpen    Enclosure = "open"
)

// Method selects the SPRFV analysis procedure (Section 5.3).
type Method string

const (
	MethodDirectional Method = "directional"
	MethodEnvelope    Method = "envelope"
)

// TerrainConstants holds the exposure-dependent constants of Table 4.
type TerrainConstants struct {
	Alpha    float64 // power-law exponent α
	Zg       float64 // gradient height (m)
	AHat     float64 // â
	BHat     float64 // b̂
	AlphaBar float64 // ᾱ
	BBar     float64 // b̄
	C        float64 // turbulence intensity constant c
	L        float64 // integral length scale constant ℓ (m)
	EpsBar   float64 // ε̄
	Zmin     float64 // minimum height (m)
}

// Table 4 - Terrain exposure constants.
var terrainConstants = map[Exposure]TerrainConstants{
	ExposureA: {5, 457, 1.0 / 5, 0.64, 1.0 / 3, 0.3, 0.45, 55, 1.0 / 2, 18.3},
	ExposureB: {7, 366, 1.0 / 7, 0.84, 1.0 / 4, 0.45, 0.3, 98, 1.0 / 3, 9.2},
	ExposureC: {9.5, 274, 1.0 / 9.5, 1, 1.0 / 6.5, 0.65, 0.2, 152, 1.0 / 5, 4.6},
	ExposureD: {11.5, 213, 1.0 / 11.5, 1.07, 1.0 / 9, 0.8, 0.15, 198, 1.0 / 8, 2.1},
}

// Terrain returns the exposure constants for a category.
func Terrain(exp Exposure) TerrainConstants {
	return terrainConstants[exp]
}

// ImportanceFactor returns the importance factor I for an occupancy
// category (Table 1).
func ImportanceFactor(cat Category) float64 {
	factors := map[Category]float64{
		CategoryI: 0.87, CategoryII: 1, CategoryIII: 1.15, CategoryIV: 1.15,
	}
	return factors[cat]
}

// Directionality factors Kd (Table 6). Every structure type covered by this
// engine uses 0.85.
const (
	KdBuilding     = 0.85
	KdSign         = 0.85
	KdIsolatedRoof = 0.85
)

// GCpi returns the internal pressure coefficient for an enclosure
// classification (Figure 4).
func GCpi(enc Enclosure) float64 {
	coefficients := map[Enclosure]float64{
		EnclosureClosed: 0.18, EnclosurePartial: 0.55, EnclosureOpen: 0,
	}
	return coefficients[enc]
}
