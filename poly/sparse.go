package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Term is a single monomial of a sparse multivariate polynomial. Powers maps
// variable index to exponent, variables absent from the map have degree zero.
type Term struct {
	Coeff  fr.Element
	Powers map[int]int
}

// Monomial builds the term coeff * Π vars[i]. Repeating a variable raises
// its exponent, so Monomial(1, 0, 0) is x₀².
func Monomial(coeff uint64, vars ...int) Term {
	t := Term{Powers: map[int]int{}}
	t.Coeff.SetUint64(coeff)
	for _, v := range vars {
		t.Powers[v]++
	}
	return t
}

// Sparse is a multivariate polynomial stored as a list of monomials. It
// implements Oracle.
type Sparse struct {
	nbVars int
	terms  []Term
}

// NewSparse builds a sparse polynomial over nbVars variables. It panics if a
// term references a variable outside of [0, nbVars).
func NewSparse(nbVars int, terms []Term) *Sparse {
	for _, t := range terms {
		for v := range t.Powers {
			if v < 0 || v >= nbVars {
				panic(fmt.Sprintf("term references variable %v, the polynomial has %v variables", v, nbVars))
			}
		}
	}
	return &Sparse{nbVars: nbVars, terms: terms}
}

// NumVars returns the number of variables of the polynomial
func (p *Sparse) NumVars() int {
	return p.nbVars
}

// Evaluate returns the value of the polynomial at the given point
func (p *Sparse) Evaluate(point []fr.Element) fr.Element {
	if len(point) != p.nbVars {
		panic(fmt.Sprintf("point has %v coordinates, the polynomial has %v variables", len(point), p.nbVars))
	}

	var res, monomial, pow fr.Element
	for _, t := range p.terms {
		monomial.Set(&t.Coeff)
		for v, e := range t.Powers {
			pow.Set(&point[v])
			for k := 1; k < e; k++ {
				pow.Mul(&pow, &point[v])
			}
			if e > 0 {
				monomial.Mul(&monomial, &pow)
			}
		}
		res.Add(&res, &monomial)
	}
	return res
}

// IsMultilinear returns true if no variable occurs with degree larger than
// one. The prover's tables only agree with the polynomial everywhere when
// this holds.
func (p *Sparse) IsMultilinear() bool {
	for _, t := range p.terms {
		for _, e := range t.Powers {
			if e > 1 {
				return false
			}
		}
	}
	return true
}
