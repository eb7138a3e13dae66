package protocol

import (
	"testing"

	"github.com/consensys/sumcheck/common"
	"github.com/consensys/sumcheck/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// f₁ = x₀+7, f₂ = 2x₀+x₁, f₃ = 3x₁ over two variables, summing to 93
func threeFactorClaim(t *testing.T) *ProductClaim {
	t.Helper()
	f1 := poly.NewSparse(2, []poly.Term{poly.Monomial(1, 0), poly.Monomial(7)})
	f2 := poly.NewSparse(2, []poly.Term{poly.Monomial(2, 0), poly.Monomial(1, 1)})
	f3 := poly.NewSparse(2, []poly.Term{poly.Monomial(3, 1)})

	claim, err := NewProductClaim([]poly.Oracle{f1, f2, f3})
	require.NoError(t, err)
	return claim
}

// (x₀+x₁+x₂)² as a two factor product, summing to 24
func squareClaim(t *testing.T) *ProductClaim {
	t.Helper()
	f := poly.NewSparse(3, []poly.Term{
		poly.Monomial(1, 0),
		poly.Monomial(1, 1),
		poly.Monomial(1, 2),
	})

	claim, err := NewProductClaim([]poly.Oracle{f, f})
	require.NoError(t, err)
	return claim
}

// f = x₀+7 alone over two variables, summing to 30
func singleFactorClaim(t *testing.T) *ProductClaim {
	t.Helper()
	f := poly.NewSparse(2, []poly.Term{poly.Monomial(1, 0), poly.Monomial(7)})

	claim, err := NewProductClaim([]poly.Oracle{f})
	require.NoError(t, err)
	return claim
}

// f₁ = x₀+7, f₂ = 2x₀+x₁, summing to 47
func twoFactorClaim(t *testing.T) *ProductClaim {
	t.Helper()
	f1 := poly.NewSparse(2, []poly.Term{poly.Monomial(1, 0), poly.Monomial(7)})
	f2 := poly.NewSparse(2, []poly.Term{poly.Monomial(2, 0), poly.Monomial(1, 1)})

	claim, err := NewProductClaim([]poly.Oracle{f1, f2})
	require.NoError(t, err)
	return claim
}

func TestClaimSum(t *testing.T) {
	var expected fr.Element

	sum, prover := ClaimSum(threeFactorClaim(t))
	expected.SetUint64(93)
	assert.Equal(t, expected, sum)
	assert.Equal(t, 0, prover.Round())

	sum, _ = ClaimSum(squareClaim(t))
	expected.SetUint64(24)
	assert.Equal(t, expected, sum)

	sum, _ = ClaimSum(singleFactorClaim(t))
	expected.SetUint64(30)
	assert.Equal(t, expected, sum)

	sum, _ = ClaimSum(twoFactorClaim(t))
	expected.SetUint64(47)
	assert.Equal(t, expected, sum)
}

func TestRoundPhase1(t *testing.T) {
	_, prover := ClaimSum(threeFactorClaim(t))
	assert.Equal(t,
		RoundMessage(common.Uint64SliceToFr(21, 72, 135, 210)),
		prover.RoundPhase1())

	_, prover = ClaimSum(squareClaim(t))
	assert.Equal(t,
		RoundMessage(common.Uint64SliceToFr(6, 18, 38)),
		prover.RoundPhase1())

	_, prover = ClaimSum(singleFactorClaim(t))
	assert.Equal(t,
		RoundMessage(common.Uint64SliceToFr(14, 16)),
		prover.RoundPhase1())
}

func TestRoundPhase1LeavesTablesUntouched(t *testing.T) {
	_, prover := ClaimSum(threeFactorClaim(t))

	first := prover.RoundPhase1()
	second := prover.RoundPhase1()

	assert.Equal(t, first, second)
	assert.Equal(t, 0, prover.Round())
}

func TestRoundPhase2ChainsTheMessages(t *testing.T) {
	// after folding a challenge, the next message must still account for the
	// previous one evaluated at that challenge
	_, prover := ClaimSum(squareClaim(t))

	var r fr.Element
	r.SetUint64(83)

	message := prover.RoundPhase1()
	prover.RoundPhase2(r)
	assert.Equal(t, 1, prover.Round())

	next := prover.RoundPhase1()
	var zeroAndOne fr.Element
	zeroAndOne.Add(&next[0], &next[1])
	assert.Equal(t, poly.InterpolateOnRange(message, r), zeroAndOne)
}
