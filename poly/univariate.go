package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// InterpolateOnRange evaluates at x the unique polynomial of degree less than
// len(values) taking value values[i] at point i. The Lagrange basis over the
// range 0..len(values)-1 has constant denominators (-1)^(n-1-j) j! (n-1-j)!,
// the numerators are assembled from prefix and suffix products of (x - l) so
// the computation stays division free even when x lies inside the range.
func InterpolateOnRange(values []fr.Element, x fr.Element) fr.Element {
	n := len(values)
	if n == 1 {
		return values[0]
	}

	var buf fr.Element

	// prefix[j] = Π_{l < j} (x - l), suffix[j] = Π_{l > j} (x - l)
	prefix := make([]fr.Element, n)
	suffix := make([]fr.Element, n)
	prefix[0].SetOne()
	for j := 1; j < n; j++ {
		buf.SetUint64(uint64(j - 1))
		buf.Sub(&x, &buf)
		prefix[j].Mul(&prefix[j-1], &buf)
	}
	suffix[n-1].SetOne()
	for j := n - 2; j >= 0; j-- {
		buf.SetUint64(uint64(j + 1))
		buf.Sub(&x, &buf)
		suffix[j].Mul(&suffix[j+1], &buf)
	}

	factorials := make([]fr.Element, n)
	factorials[0].SetOne()
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
	denominators = fr.BatchInvert(denominators)

	var res, term fr.Element
	for j := 0; j < n; j++ {
		term.Mul(&prefix[j], &suffix[j])
		term.Mul(&term, &denominators[j])
		term.Mul(&term, &values[j])
		res.Add(&res, &term)
	}
	return res
}
