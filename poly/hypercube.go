package poly

import (
	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Oracle gives point-evaluation access to a multivariate polynomial. The
// underlying representation is left to the implementer, the protocol only
// ever queries values.
type Oracle interface {
	// Evaluate returns the value of the polynomial at the given point.
	// The point must have exactly NumVars coordinates.
	Evaluate(point []fr.Element) fr.Element
	// NumVars returns the number of variables of the polynomial
	NumVars() int
}

// HypercubePoint returns the coordinates of the b-th corner of the
// n-dimensional boolean hypercube. The first variable is carried by the
// highest-order bit of b.
func HypercubePoint(b, n int) []fr.Element {
	point := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		if b>>(n-1-i)&1 == 1 {
			point[i].SetOne()
		}
	}
	return point
}

// HypercubeTable evaluates f at every corner of the boolean hypercube and
// returns the dense bookkeeping table of the results
func HypercubeTable(f Oracle) MultiLin {
	n := f.NumVars()
	table := make(MultiLin, 1<<n)
	common.Parallelize(len(table), func(start, stop int) {
		for b := start; b < stop; b++ {
			table[b] = f.Evaluate(HypercubePoint(b, n))
		}
	})
	return table
}
