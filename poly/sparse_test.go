package poly

import (
	"testing"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

func TestSparseEvaluate(t *testing.T) {
	// f = 3x₀ + x₀x₁ + 2, evaluated at (5, 7)
	f := NewSparse(2, []Term{
		Monomial(3, 0),
		Monomial(1, 0, 1),
		Monomial(2),
	})

	var expected fr.Element
	expected.SetUint64(52)
	assert.Equal(t, expected, f.Evaluate(common.Uint64SliceToFr(5, 7)))

	// squaring: x₀² at 9
	g := NewSparse(1, []Term{Monomial(1, 0, 0)})
	expected.SetUint64(81)
	assert.Equal(t, expected, g.Evaluate(common.Uint64SliceToFr(9)))
}

func TestSparsePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSparse(2, []Term{Monomial(1, 3)})
	}, "terms may only use declared variables")

	f := NewSparse(2, []Term{Monomial(1, 0)})
	assert.Panics(t, func() {
		f.Evaluate(common.Uint64SliceToFr(1))
	}, "point size must match the variable count")
}

func TestIsMultilinear(t *testing.T) {
	f := NewSparse(3, []Term{
		Monomial(1, 0, 2),
		Monomial(2, 1),
		Monomial(5),
	})
	assert.True(t, f.IsMultilinear())

	g := NewSparse(3, []Term{
		Monomial(1, 0, 0),
		Monomial(2, 1),
	})
	assert.False(t, g.IsMultilinear())
}
