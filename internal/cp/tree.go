// Package cp resolves the external pressure coefficients (Cp, Cpn, GCp, Cf)
// of CIRSOC 102-2005 from the structure geometry.
package cp

import "math"

// Tree is a nested mapping of case, direction or zone names to coefficient
// nodes. Consumers traverse it generically; depth and keys vary with the
// structure type and the selected case.
type Tree map[string]Node

// Node is either a scalar coefficient or a nested Tree.
type Node struct {
	Value    float64
	Children Tree
}

// IsLeaf reports whether the node carries a scalar coefficient.
func (n Node) IsLeaf() bool {
	return n.Children == nil
}

// Scalar wraps a coefficient value as a leaf node.
func Scalar(v float64) Node {
	return Node{Value: v}
}

// Branch wraps a subtree as a node.
func Branch(t Tree) Node {
	return Node{Children: t}
}

// interp linearly interpolates y(x) over ascending breakpoints, clamping to
// the endpoint values outside the breakpoint range. Table lookups never
// extrapolate.
func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if x <= xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[last]
}

// interpPair interpolates between the two values of a pair for a parameter
// in [0, 1], such as the blockage ratio.
func interpPair(t float64, pair [2]float64) float64 {
	return interp(t, []float64{0, 1}, pair[:])
}

// interpArea computes a cladding coefficient from its tributary area. The
// coefficient is linear in log10(area) between the two breakpoints and
// clamps to the endpoint coefficients outside them.
//
// Reference: "Design of Buildings for Wind", Emil Simiu, p. 96.
func interpArea(cps, areas [2]float64, area float64) float64 {
	if area <= areas[0] {
		return cps[0]
	}
	if area >= areas[1] {
		return cps[1]
	}
	g := (cps[1] - cps[0]) / math.Log10(areas[1]/areas[0])
	return cps[0] + g*math.Log10(area/areas[0])
}

// segment pairs a coefficient range with the tributary-area range it covers.
type segment struct {
	cp   [2]float64
	area [2]float64
}

// claddingZone is a cladding-zone table entry: one or more area segments.
type claddingZone struct {
	segments []segment
}

func zone(cpLow, cpHigh float64) claddingZone {
	return claddingZone{segments: []segment{{cp: [2]float64{cpLow, cpHigh}}}}
}

// coefficient resolves the zone coefficient for a component area, selecting
// the segment whose area range contains the area (or the last one below it)
// before interpolating.
func (z claddingZone) coefficient(area float64, defaultArea [2]float64) float64 {
	for i, seg := range z.segments {
		segArea := seg.area
		if segArea == ([2]float64{}) {
			segArea = defaultArea
		}
		if area > segArea[1] && i < len(z.segments)-1 {
			continue
		}
		return interpArea(seg.cp, segArea, area)
	}
	return 0
}
