package protocol

import (
	"errors"

	"github.com/consensys/sumcheck/poly"
)

var (
	// ErrNoFactors is returned when a claim is built from an empty factor list
	ErrNoFactors = errors.New("a product claim needs at least one factor")
	// ErrNumVarsMismatch is returned when the factors disagree on their number
	// of variables
	ErrNumVarsMismatch = errors.New("the factors have different numbers of variables")
	// ErrNoVariables is returned when the factors have no variables at all
	ErrNoVariables = errors.New("the factors must depend on at least one variable")
)

// ProductClaim asserts that the product of its factors, summed over all
// corners of the boolean hypercube, equals a publicly claimed value. The
// claimed value itself is produced by the prover, see ClaimSum.
type ProductClaim struct {
	factors []poly.Oracle
	nbVars  int
}

// NewProductClaim validates the factor list into a claim: there must be at
// least one factor and they must all share the same, nonzero number of
// variables.
func NewProductClaim(factors []poly.Oracle) (*ProductClaim, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}

	nbVars := factors[0].NumVars()
	for _, f := range factors[1:] {
		if f.NumVars() != nbVars {
			return nil, ErrNumVarsMismatch
		}
	}
	if nbVars == 0 {
		return nil, ErrNoVariables
	}

	return &ProductClaim{factors: factors, nbVars: nbVars}, nil
}

// NumVars returns the number of variables common to all factors. It is also
// the number of rounds of the protocol.
func (c *ProductClaim) NumVars() int {
	return c.nbVars
}

// NumFactors returns the number of factors of the product
func (c *ProductClaim) NumFactors() int {
	return len(c.factors)
}

// Factors returns the factors of the product
func (c *ProductClaim) Factors() []poly.Oracle {
	return c.factors
}
