package protocol

import (
	"sync"

	"github.com/consensys/sumcheck/common"
	"github.com/consensys/sumcheck/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// RoundMessage carries the prover's univariate restriction for one round,
// described by its values on 0..m where m is the number of factors
type RoundMessage []fr.Element

// ProverState carries the prover's bookkeeping tables between rounds. The
// tables start out as the factors' hypercube evaluations and shrink by half
// every time a challenge is folded in.
type ProverState struct {
	tables []poly.MultiLin
	round  int
}

// ClaimSum builds the prover for the given claim and computes the claimed
// sum by direct summation of the table products over the hypercube
func ClaimSum(claim *ProductClaim) (fr.Element, *ProverState) {
	tables := make([]poly.MultiLin, claim.NumFactors())
	for k, f := range claim.Factors() {
		tables[k] = poly.HypercubeTable(f)
	}

	var mu sync.Mutex
	var sum fr.Element
	common.Parallelize(len(tables[0]), func(start, stop int) {
		var local, prod fr.Element
		for b := start; b < stop; b++ {
			prod = tables[0][b]
			for k := 1; k < len(tables); k++ {
				prod.Mul(&prod, &tables[k][b])
			}
			local.Add(&local, &prod)
		}
		mu.Lock()
		sum.Add(&sum, &local)
		mu.Unlock()
	})

	return sum, &ProverState{tables: tables}
}

// Round returns the number of challenges folded into the tables so far
func (s *ProverState) Round() int {
	return s.round
}

// RoundPhase1 computes the message of the current round: the values on 0..m
// of the univariate polynomial obtained by fixing the first free variable
// and summing the product of the tables over the remaining ones. The tables
// are left untouched, the round only advances when the challenge comes back
// through RoundPhase2.
func (s *ProverState) RoundPhase1() RoundMessage {
	nbEvals := len(s.tables) + 1
	mid := len(s.tables[0]) / 2

	evals := make(RoundMessage, nbEvals)
	var mu sync.Mutex

	common.Parallelize(mid, func(start, stop int) {
		var delta, prod fr.Element
		local := make([]fr.Element, nbEvals)
		ladders := make([][]fr.Element, len(s.tables))
		for k := range ladders {
			ladders[k] = make([]fr.Element, nbEvals)
		}

		for b := start; b < stop; b++ {
			// the restriction of a table to its first variable is affine:
			// v(j+1) = v(j) + (table[b + mid] - table[b])
			for k, table := range s.tables {
				ladder := ladders[k]
				ladder[0] = table[b]
				delta.Sub(&table[b+mid], &table[b])
				for j := 1; j < nbEvals; j++ {
					ladder[j].Add(&ladder[j-1], &delta)
				}
			}

			for j := 0; j < nbEvals; j++ {
				prod = ladders[0][j]
				for k := 1; k < len(ladders); k++ {
					prod.Mul(&prod, &ladders[k][j])
				}
				local[j].Add(&local[j], &prod)
			}
		}

		mu.Lock()
		for j := range evals {
			evals[j].Add(&evals[j], &local[j])
		}
		mu.Unlock()
	})

	return evals
}

// RoundPhase2 folds the verifier's challenge into every table, fixing the
// variable the last message was about and advancing to the next round
func (s *ProverState) RoundPhase2(r fr.Element) {
	for k := range s.tables {
		mid := len(s.tables[k]) / 2
		common.Parallelize(mid, func(start, stop int) {
			s.tables[k].FoldChunk(r, start, stop)
		})
		s.tables[k] = s.tables[k][:mid]
	}
	s.round++
}
