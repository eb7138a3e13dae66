package protocol

import (
	"fmt"

	"github.com/consensys/sumcheck/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// VerifierState tracks the verifier across rounds: the claim under scrutiny,
// the evaluation it expects the next message to account for, and the
// challenges drawn so far.
type VerifierState struct {
	claim       *ProductClaim
	runningEval fr.Element
	randomness  []fr.Element
	sampler     Sampler
	round       int
}

// Initialize builds a verifier for the claim, seeding the running evaluation
// with the claimed sum. The optional sampler overrides the default
// cryptographic one, which tests and reproducible runs rely on.
func Initialize(claim *ProductClaim, claimedSum fr.Element, sampler ...Sampler) *VerifierState {
	var s Sampler = CryptoSampler{}
	if len(sampler) == 1 {
		s = sampler[0]
	}
	return &VerifierState{
		claim:       claim,
		runningEval: claimedSum,
		randomness:  make([]fr.Element, 0, claim.NumVars()),
		sampler:     s,
	}
}

// Round processes one prover message. It first checks that the message's
// values at 0 and 1 add up to the running evaluation, then draws the round's
// challenge, rebases the running evaluation onto it by interpolation and
// returns it. A failed check comes back as a RejectError and leaves the
// challenge undrawn.
func (s *VerifierState) Round(message RoundMessage) (fr.Element, error) {
	if len(message) != s.claim.NumFactors()+1 {
		return fr.Element{}, &RejectError{
			Round:  s.round + 1,
			Reason: fmt.Sprintf("malformed message: %v evaluations instead of %v", len(message), s.claim.NumFactors()+1),
		}
	}

	var zeroAndOne fr.Element
	zeroAndOne.Add(&message[0], &message[1])
	if !zeroAndOne.Equal(&s.runningEval) {
		return fr.Element{}, &RejectError{
			Round:  s.round + 1,
			Reason: "the message does not add up to the expected evaluation",
		}
	}

	r, err := s.sampler.Sample()
	if err != nil {
		return fr.Element{}, fmt.Errorf("drawing the challenge of round %v: %w", s.round+1, err)
	}

	s.runningEval = poly.InterpolateOnRange(message, r)
	s.randomness = append(s.randomness, r)
	s.round++
	return r, nil
}

// SanityCheck closes the protocol once every variable has been challenged:
// it evaluates the factors of the original claim at the challenge point and
// compares their product against the running evaluation. It returns the
// verdict together with the challenges, which become the transcript of the
// run.
func (s *VerifierState) SanityCheck() (bool, []fr.Element) {
	product := fr.One()
	for _, f := range s.claim.Factors() {
		v := f.Evaluate(s.randomness)
		product.Mul(&product, &v)
	}
	return product.Equal(&s.runningEval), s.randomness
}

// Randomness returns the challenges drawn so far
func (s *VerifierState) Randomness() []fr.Element {
	return s.randomness
}
