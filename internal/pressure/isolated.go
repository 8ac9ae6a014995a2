package pressure

import (
	"github.com/ealmiron/gowind/internal/cp"
	"github.com/ealmiron/gowind/internal/factors"
)

// IsolatedRoof computes the net pressures of an isolated roof: qz at the
// mean roof height times the fixed gust factor times Cpn. There is no
// internal pressure; each max/min branch carries a single signed value.
func IsolatedRoof(qMean float64, coefficients cp.Tree) Result {
	return compose(coefficients, externalLeaf([]float64{qMean}, factors.SimplifiedGustFactor))
}
