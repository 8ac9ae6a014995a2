package pressure

import "github.com/ealmiron/gowind/internal/cp"

// Result is a nested mapping of direction, case or zone names to pressure
// nodes. It mirrors the shape of the coefficient tree it was computed from.
type Result map[string]*Node

// Node carries the pressures of a zone in N/m²: one value per evaluation
// height for windward walls and signs, a single value otherwise. Pos and Neg
// are the positive and negative internal pressure cases; Neg is nil where no
// internal pressure applies.
type Node struct {
	Pos      []float64
	Neg      []float64
	Children Result
}

// IsLeaf reports whether the node carries pressure values.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// leafFunc computes the pressure node for a single coefficient.
type leafFunc func(coefficient float64) *Node

// compose walks a coefficient tree and computes a pressure node per leaf,
// preserving the tree shape.
func compose(coefficients cp.Tree, leaf leafFunc) Result {
	out := Result{}
	for key, node := range coefficients {
		if node.IsLeaf() {
			out[key] = leaf(node.Value)
		} else {
			out[key] = &Node{Children: compose(node.Children, leaf)}
		}
	}
	return out
}

// pairLeaf computes q = qi·G·c ∓ qMean·GCpi for every velocity pressure in
// qi, yielding the two internal pressure cases.
func pairLeaf(qi []float64, gust, qMean, gcpi float64) leafFunc {
	q2 := qMean * gcpi
	return func(c float64) *Node {
		pos := make([]float64, len(qi))
		neg := make([]float64, len(qi))
		for i, q := range qi {
			q1 := q * gust * c
			pos[i] = q1 - q2
			neg[i] = q1 + q2
		}
		return &Node{Pos: pos, Neg: neg}
	}
}

// externalLeaf computes q = qi·G·c with no internal pressure term.
func externalLeaf(qi []float64, gust float64) leafFunc {
	return func(c float64) *Node {
		pos := make([]float64, len(qi))
		for i, q := range qi {
			pos[i] = q * gust * c
		}
		return &Node{Pos: pos}
	}
}
