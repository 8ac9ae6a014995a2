package pressure

import "github.com/ealmiron/gowind/internal/cp"

// Building computes the design pressures over a building from its velocity
// pressures, per-direction gust factors and internal pressure.
type Building struct {
	Velocity   *VelocityPressure
	Gusts      map[string]float64 // gust factor per wind direction
	Internal   InternalPressure
	MeanHeight float64
	EaveHeight float64
}

func (b *Building) qMean() float64 {
	return b.Velocity.At(b.MeanHeight)
}

// RoofSPRFV computes the roof pressures for the main wind-force-resisting
// system: every zone uses qz at the mean roof height, with both internal
// pressure cases.
func (b *Building) RoofSPRFV(coefficients cp.Tree) Result {
	qMean := b.qMean()
	gcpi := b.Internal.GCpi()
	out := Result{}
	for dir, node := range coefficients {
		leaf := pairLeaf([]float64{qMean}, b.Gusts[dir], qMean, gcpi)
		out[dir] = &Node{Children: compose(node.Children, leaf)}
	}
	return out
}

// WallsSPRFV computes the wall pressures for the main wind-force-resisting
// system. The windward wall takes qz per height, clipped to the eave height
// when the wind blows normal to the ridge; the side and leeward walls take
// qz at the mean roof height.
func (b *Building) WallsSPRFV(coefficients cp.Tree) Result {
	qMean := b.qMean()
	gcpi := b.Internal.GCpi()
	out := Result{}
	for dir, walls := range coefficients {
		children := Result{}
		for wall, node := range walls.Children {
			qi := []float64{qMean}
			if wall == cp.Windward {
				if dir == cp.DirNormal {
					qi = b.Velocity.UpTo(b.EaveHeight)
				} else {
					qi = b.Velocity.Values
				}
			}
			children[wall] = pairLeaf(qi, b.Gusts[dir], qMean, gcpi)(node.Value)
		}
		out[dir] = &Node{Children: children}
	}
	return out
}

// OverhangSPRFV computes the eave-overhang pressures: external pressure only,
// with no internal term.
func (b *Building) OverhangSPRFV(coefficients cp.Tree) Result {
	qMean := []float64{b.qMean()}
	out := Result{}
	for dir, node := range coefficients {
		out[dir] = &Node{Children: compose(node.Children, externalLeaf(qMean, b.Gusts[dir]))}
	}
	return out
}

// RoofCladding computes the roof pressures for components and cladding. The
// gust factor is 1 because the GCp coefficients already include it.
func (b *Building) RoofCladding(coefficients cp.Tree) Result {
	qMean := b.qMean()
	return compose(coefficients, pairLeaf([]float64{qMean}, 1, qMean, b.Internal.GCpi()))
}

// WallCladding computes the wall pressures for components and cladding.
// Under the tall-building figure (case B) the pressures nest per wall: the
// windward wall takes qz per height, the others qz at the mean roof height.
func (b *Building) WallCladding(coefficients cp.Tree, caseB bool) Result {
	qMean := b.qMean()
	gcpi := b.Internal.GCpi()
	if !caseB {
		return compose(coefficients, pairLeaf([]float64{qMean}, 1, qMean, gcpi))
	}
	out := Result{}
	for _, wall := range []string{cp.Windward, cp.Side, cp.Leeward} {
		qi := []float64{qMean}
		if wall == cp.Windward {
			qi = b.Velocity.Values
		}
		out[wall] = &Node{Children: compose(coefficients, pairLeaf(qi, 1, qMean, gcpi))}
	}
	return out
}
