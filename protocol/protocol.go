// Package protocol implements the sumcheck interactive proof for claims of
// the form Σ_{x ∈ {0,1}ⁿ} Π_k f_k(x) = C.
//
// The prover commits to the claimed sum by computing it over dense
// bookkeeping tables of the factors, then the parties play one round per
// variable: the prover sends the univariate restriction of the partial sum,
// the verifier checks it against the previous round, draws a random
// challenge and both sides fold it in. A final spot check against the
// factors themselves closes the run.
//
// A false claim survives a round only if the challenge hits a root of a
// polynomial of degree at most the number of factors m, so over n rounds the
// verifier accepts it with probability at most n·m/|F|.
package protocol

import (
	"errors"
	"time"

	"github.com/consensys/sumcheck/logger"
	"github.com/consensys/sumcheck/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ProtocolTranscript is the outcome of a complete run: the verifier's
// verdict and the challenges drawn along the way. On a rejection the
// challenge vector stops at the last accepted round, so a first-round
// rejection leaves it empty.
type ProtocolTranscript struct {
	Accept     bool
	Randomness []fr.Element
}

// Setup validates the factors into a product claim and prepares both
// parties: the prover tabulates the factors and computes the claimed sum,
// the verifier starts out from that sum. The optional sampler overrides the
// verifier's challenge source.
func Setup(factors []poly.Oracle, sampler ...Sampler) (int, fr.Element, *ProverState, *VerifierState, error) {
	claim, err := NewProductClaim(factors)
	if err != nil {
		return 0, fr.Element{}, nil, nil, err
	}

	claimedSum, prover := ClaimSum(claim)
	verifier := Initialize(claim, claimedSum, sampler...)

	log := logger.Logger()
	log.Debug().
		Int("nbVars", claim.NumVars()).
		Int("nbFactors", claim.NumFactors()).
		Str("claimedSum", claimedSum.String()).
		Msg("sumcheck setup")

	return claim.NumVars(), claimedSum, prover, verifier, nil
}

// Run plays the interactive protocol to the end: one message and one
// challenge per variable, then the verifier's final check against the
// factors. The verifier turning the claim down is reported through the
// transcript, an error reports an operational failure such as a challenge
// source breaking down.
func Run(nbVars int, prover *ProverState, verifier *VerifierState) (ProtocolTranscript, error) {
	log := logger.Logger().With().Str("protocol", "sumcheck").Int("nbVars", nbVars).Logger()
	start := time.Now()

	randomness := make([]fr.Element, 0, nbVars)
	for i := 0; i < nbVars; i++ {
		message := prover.RoundPhase1()
		r, err := verifier.Round(message)
		if err != nil {
			var reject *RejectError
			if errors.As(err, &reject) {
				log.Debug().Int("round", reject.Round).Str("reason", reject.Reason).Msg("claim rejected")
				return ProtocolTranscript{Randomness: randomness}, nil
			}
			return ProtocolTranscript{}, err
		}
		prover.RoundPhase2(r)
		randomness = append(randomness, r)
	}

	accept, randomness := verifier.SanityCheck()
	log.Debug().Bool("accept", accept).Dur("took", time.Since(start)).Msg("sumcheck done")
	return ProtocolTranscript{Accept: accept, Randomness: randomness}, nil
}
