package protocol

import "fmt"

// RejectError signals that the verifier turns the prover's claim down. Any
// other error coming out of a round reports an operational failure, never a
// verdict.
type RejectError struct {
	// Round is the 1-indexed round at which the verifier stopped
	Round int
	// Reason states which consistency check failed
	Reason string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("rejecting the claim at round %v: %v", e.Round, e.Reason)
}
