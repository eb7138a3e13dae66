package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
)

// Univariate represents a univariate polynomial inside a circuit by its
// evaluations on the range 0..len-1, the same form the native protocol
// messages use
type Univariate []frontend.Variable

// AllocateUnivariate returns an unassigned univariate polynomial of the
// given degree
func AllocateUnivariate(degree int) Univariate {
	return make(Univariate, degree+1)
}

// Assign copies the values of a native polynomial into the witness
func (p Univariate) Assign(values []fr.Element) {
	if len(values) != len(p) {
		panic("unexpected number of values")
	}
	for i := range values {
		p[i] = values[i]
	}
}

// ZeroAndOne returns p(0) + p(1)
func (p Univariate) ZeroAndOne(api frontend.API) frontend.Variable {
	return api.Add(p[0], p[1])
}

// Eval evaluates p outside its range by Lagrange interpolation. The basis
// numerators are prefix and suffix products of (x - l) and the denominators
// are range constants inverted outside the circuit, so the evaluation point
// is unrestricted and no in-circuit division takes place.
func (p Univariate) Eval(api frontend.API, x frontend.Variable) frontend.Variable {
	n := len(p)
	if n == 1 {
		return p[0]
	}

	prefix := make([]frontend.Variable, n)
	suffix := make([]frontend.Variable, n)
	prefix[0] = 1
	for j := 1; j < n; j++ {
		prefix[j] = api.Mul(prefix[j-1], api.Sub(x, j-1))
	}
	suffix[n-1] = 1
	for j := n - 2; j >= 0; j-- {
		suffix[j] = api.Mul(suffix[j+1], api.Sub(x, j+1))
	}

	res := frontend.Variable(0)
	for j, inv := range rangeDenominatorInverses(n) {
		term := api.Mul(prefix[j], suffix[j], inv, p[j])
		res = api.Add(res, term)
	}
	return res
}

// rangeDenominatorInverses returns the inverted Lagrange denominators
// (-1)^(n-1-j) j! (n-1-j)! of the range 0..n-1
func rangeDenominatorInverses(n int) []fr.Element {
	factorials := make([]fr.Element, n)
	factorials[0].SetOne()
	var buf fr.Element
	for i := 1; i < n; i++ {
		buf.SetUint64(uint64(i))
		factorials[i].Mul(&factorials[i-1], &buf)
	}

	denominators := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		denominators[j].Mul(&factorials[j], &factorials[n-1-j])
		if (n-1-j)%2 == 1 {
			denominators[j].Neg(&denominators[j])
		}
	}
	return fr.BatchInvert(denominators)
}
