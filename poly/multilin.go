package poly

import (
	"fmt"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MultiLin tracks the values of a (dense i.e. not sparse) multilinear polynomial
// over the boolean hypercube. The entry at index b holds the evaluation at the
// point whose coordinates are the big-endian bits of b: the first variable is
// carried by the highest-order bit.
type MultiLin []fr.Element

func (m MultiLin) String() string {
	return fmt.Sprintf("%v", common.FrSliceToString(m))
}

// NumVars returns the number of variables the table still depends on
func (m MultiLin) NumVars() int {
	return common.Log2(len(m))
}

// Fold fixes the first free variable of the table to the given value r,
// halving the table
func (m *MultiLin) Fold(r fr.Element) {
	mid := len(*m) / 2
	m.FoldChunk(r, 0, mid)
	*m = (*m)[:mid]
}

// FoldChunk folds one part of the table
func (m *MultiLin) FoldChunk(r fr.Element, start, stop int) {
	mid := len(*m) / 2
	bottom, top := (*m)[:mid], (*m)[mid:]
	for i := start; i < stop; i++ {
		// table[i] <- table[i] + r (table[i + mid] - table[i])
		top[i].Sub(&top[i], &bottom[i])
		top[i].Mul(&top[i], &r)
		bottom[i].Add(&bottom[i], &top[i])
	}
}

// DeepCopy creates a deep copy of a bookkeeping table.
// Folding mutates the table in place, so evaluating a table that must survive
// requires working on a copy.
func (m MultiLin) DeepCopy() MultiLin {
	tableDeepCopy := make(MultiLin, len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// Evaluate returns the value at coordinates of the multilinear extension
// described by the table. It folds a deep copy of the table once per
// coordinate, the copy is then reduced to a single entry holding the result.
func (m MultiLin) Evaluate(coordinates []fr.Element) fr.Element {
	bkCopy := m.DeepCopy()
	for _, r := range coordinates {
		bkCopy.Fold(r)
	}

	return bkCopy[0]
}
