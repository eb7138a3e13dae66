package protocol

import (
	"errors"
	"testing"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierRound(t *testing.T) {
	claim := twoFactorClaim(t)
	sum, prover := ClaimSum(claim)

	var challenge fr.Element
	challenge.SetUint64(29)
	verifier := Initialize(claim, sum, NewFixedSampler(challenge))

	message := prover.RoundPhase1()
	assert.Equal(t, RoundMessage(common.Uint64SliceToFr(7, 40, 81)), message)

	r, err := verifier.Round(message)
	require.NoError(t, err)
	assert.Equal(t, challenge, r)
	assert.Len(t, verifier.Randomness(), 1)
}

func TestVerifierRejectsWrongSum(t *testing.T) {
	claim := twoFactorClaim(t)
	sum, prover := ClaimSum(claim)

	var wrong fr.Element
	wrong.SetUint64(1)
	wrong.Add(&wrong, &sum)
	verifier := Initialize(claim, wrong)

	_, err := verifier.Round(prover.RoundPhase1())
	require.Error(t, err)

	var reject *RejectError
	require.True(t, errors.As(err, &reject))
	assert.Equal(t, 1, reject.Round)
	assert.Len(t, verifier.Randomness(), 0)
}

func TestVerifierRejectsMalformedMessage(t *testing.T) {
	claim := twoFactorClaim(t)
	sum, prover := ClaimSum(claim)
	verifier := Initialize(claim, sum)

	message := prover.RoundPhase1()

	var reject *RejectError
	_, err := verifier.Round(message[:2])
	require.True(t, errors.As(err, &reject))

	_, err = verifier.Round(append(message, fr.Element{}))
	require.True(t, errors.As(err, &reject))
}

func TestVerifierSamplerFailureIsNotARejection(t *testing.T) {
	claim := twoFactorClaim(t)
	sum, prover := ClaimSum(claim)
	verifier := Initialize(claim, sum, NewFixedSampler())

	_, err := verifier.Round(prover.RoundPhase1())
	require.Error(t, err)

	var reject *RejectError
	assert.False(t, errors.As(err, &reject))
	assert.Len(t, verifier.Randomness(), 0)
}

func TestVerifierSanityCheck(t *testing.T) {
	claim := squareClaim(t)
	sum, prover := ClaimSum(claim)

	challenges := common.Uint64SliceToFr(5, 7, 11)
	verifier := Initialize(claim, sum, NewFixedSampler(challenges...))

	for i := 0; i < claim.NumVars(); i++ {
		r, err := verifier.Round(prover.RoundPhase1())
		require.NoError(t, err)
		prover.RoundPhase2(r)
	}

	accept, randomness := verifier.SanityCheck()
	assert.True(t, accept)
	assert.Equal(t, challenges, randomness)
}
