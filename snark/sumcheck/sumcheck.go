// Package sumcheck mirrors the interactive verifier inside a gnark circuit:
// a completed run's messages and challenges become witnesses and the
// circuit replays every consistency check, final check included.
package sumcheck

import (
	"fmt"

	"github.com/consensys/sumcheck/protocol"
	"github.com/consensys/sumcheck/snark/polynomial"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
)

// Proof carries the transcript of one interactive run: the univariate
// message and the challenge of every round
type Proof struct {
	Messages   []polynomial.Univariate
	Challenges []frontend.Variable
}

// AllocateProof allocates the transcript of a run over nbVars variables and
// nbFactors factors
func AllocateProof(nbVars, nbFactors int) Proof {
	messages := make([]polynomial.Univariate, nbVars)
	for i := range messages {
		messages[i] = polynomial.AllocateUnivariate(nbFactors)
	}
	return Proof{
		Messages:   messages,
		Challenges: make([]frontend.Variable, nbVars),
	}
}

// Assign fills the proof with the messages and challenges of a completed
// native run
func (p *Proof) Assign(messages []protocol.RoundMessage, challenges []fr.Element) {
	if len(messages) != len(p.Messages) {
		panic(fmt.Sprintf("inconsistent assignment length: expected %v messages, but got %v", len(p.Messages), len(messages)))
	}
	if len(challenges) != len(p.Challenges) {
		panic(fmt.Sprintf("inconsistent assignment length: expected %v challenges, but got %v", len(p.Challenges), len(challenges)))
	}
	for i, message := range messages {
		p.Messages[i].Assign(message)
	}
	for i, r := range challenges {
		p.Challenges[i] = r
	}
}

// AssertValid replays the verifier on the transcript: every message must
// account at 0 and 1 for the running evaluation, which each challenge
// rebases by interpolation, and the last running evaluation must equal the
// product of the factors at the challenge point. The factors are given by
// their hypercube tables.
func (p *Proof) AssertValid(api frontend.API, claimedSum frontend.Variable, factors []polynomial.MultilinearByValues) {
	running := claimedSum

	for i, message := range p.Messages {
		zeroAndOne := message.ZeroAndOne(api)
		api.AssertIsEqual(zeroAndOne, running)
		running = message.Eval(api, p.Challenges[i])
	}

	finalEval := frontend.Variable(1)
	for _, f := range factors {
		finalEval = api.Mul(finalEval, f.Eval(api, p.Challenges))
	}
	api.AssertIsEqual(running, finalEval)
}
