package polynomial

import (
	"fmt"

	"github.com/consensys/sumcheck/poly"

	"github.com/consensys/gnark/frontend"
)

// MultilinearByValues represents a multilinear polynomial inside a circuit
// by its table of values over the boolean hypercube, first variable on the
// highest-order bit
type MultilinearByValues struct {
	Table []frontend.Variable
}

// NewMultilinearByValues is the default constructor
func NewMultilinearByValues(table []frontend.Variable) MultilinearByValues {
	return MultilinearByValues{Table: table}
}

// AllocateMultilinear returns an unassigned multilinear with the given
// number of variables
func AllocateMultilinear(nbVars int) MultilinearByValues {
	return NewMultilinearByValues(make([]frontend.Variable, 1<<nbVars))
}

// Assign copies a native bookkeeping table into the witness
func (m *MultilinearByValues) Assign(values poly.MultiLin) {
	if len(values) != len(m.Table) {
		panic(fmt.Sprintf("inconsistent assignment, expected len %v but got %v", len(m.Table), len(values)))
	}
	for i, c := range values {
		m.Table[i] = c
	}
}

// DeepCopy returns a deep copy of the table
func (m MultilinearByValues) DeepCopy() MultilinearByValues {
	tableDC := make([]frontend.Variable, len(m.Table))
	copy(tableDC, m.Table)
	return NewMultilinearByValues(tableDC)
}

// Fold fixes the first variable of the polynomial to x, halving the table
func (m *MultilinearByValues) Fold(api frontend.API, x frontend.Variable) {
	k := len(m.Table) / 2
	for i := 0; i < k; i++ {
		tmp := api.Sub(m.Table[i+k], m.Table[i])
		tmp = api.Mul(tmp, x)
		m.Table[i] = api.Add(m.Table[i], tmp)
	}
	m.Table = m.Table[:k]
}

// Eval evaluates the multilinear polynomial by folding the table variable
// by variable
func (m MultilinearByValues) Eval(api frontend.API, xs []frontend.Variable) frontend.Variable {
	f := m.DeepCopy()
	for _, x := range xs {
		f.Fold(api, x)
	}
	return f.Table[0]
}
