package geometry

import (
	"math"
	"sort"
)

// HeightSequence builds the ascending list of heights where pressures are
// evaluated. Without custom heights it steps every metre between the bounds.
// The bounds and any characteristic heights (eave, mean roof height) are
// always present exactly once.
func HeightSequence(lower, upper float64, custom []float64, characteristic ...float64) []float64 {
	var heights []float64
	if custom != nil {
		for _, h := range custom {
			if lower <= h && h <= upper {
				heights = append(heights, h)
			}
		}
	} else {
		for h := math.Ceil(lower); h <= math.Ceil(upper); h++ {
			heights = append(heights, h)
		}
	}
	required := append([]float64{lower, upper}, characteristic...)
	for _, h := range required {
		if !containsHeight(heights, h) {
			heights = append(heights, h)
		}
	}
	sort.Float64s(heights)
	return heights
}

func containsHeight(heights []float64, h float64) bool {
	for _, v := range heights {
		if v == h {
			return true
		}
	}
	return false
}
