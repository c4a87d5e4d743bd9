// Package synth implements the reverse circuit synthesizer (spec §4.8):
// given a tableau, it derives a gate sequence that prepares the
// stabilizer state from |0...0>.
package synth

import (
	"fmt"

	"github.com/nrmanohar/stabilizer/clifford"
	"github.com/nrmanohar/stabilizer/gate"
	"github.com/nrmanohar/stabilizer/rowop"
	"github.com/nrmanohar/stabilizer/tableau"
)

// SynthesisFailure reports that no pivot could be found while
// diagonalizing the X block, which indicates an invariant violation
// upstream (a tableau that was never valid).
type SynthesisFailure struct {
	Column int
}

func (e *SynthesisFailure) Error() string {
	return fmt.Sprintf("synth: no pivot available for column %d", e.Column)
}

// Synthesize derives a gate sequence on a working copy of t, emitting
// operations as it goes, then reverses the list so that running it on
// |0...0> reproduces the state t describes. t itself is left untouched.
func Synthesize(t *tableau.Tableau) ([]gate.Gate, error) {
	w := t.Clone()
	n := w.N()
	var gates []gate.Gate
	emit := func(g gate.Gate) {
		gates = append(gates, g)
		_ = clifford.ApplyGate(w, g)
	}

	// Step 1: diagonalize the X block, column by column.
	for i := 0; i < n; i++ {
		if !w.X(i, i) {
			if w.Z(i, i) {
				emit(gate.H(i))
			} else {
				if j := findRow(w, i+1, n, func(r int) bool { return w.X(r, i) }); j >= 0 {
					w.SwapRows(i, j)
				} else if j := findRow(w, i+1, n, func(r int) bool { return w.Z(r, i) }); j >= 0 {
					w.SwapRows(i, j)
					emit(gate.H(i))
				} else if j := findRow(w, 0, i, func(r int) bool { return w.Z(r, i) }); j >= 0 {
					rowop.RowAdd(w, j, i)
					emit(gate.H(i))
				} else {
					return nil, &SynthesisFailure{Column: i}
				}
			}
		}
		// Clear column i of every other row, so the CNOTs below only touch
		// row i and a later H cannot leave X bits in finished rows.
		for r := 0; r < n; r++ {
			if r != i && w.X(r, i) {
				rowop.RowAdd(w, i, r)
			}
		}
		for j := 0; j < n; j++ {
			if j != i && w.X(i, j) {
				emit(gate.CNOT(i, j))
			}
		}
	}

	// Step 2: clear the diagonal Z entries. S is applied to the working
	// copy, but the reversed list must undo it, so SDG is recorded.
	for i := 0; i < n; i++ {
		if w.Z(i, i) {
			clifford.S(w, i)
			gates = append(gates, gate.Sdg(i))
		}
	}

	// Step 3: clear the off-diagonal Z entries.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w.Z(i, j) {
				emit(gate.CZ(i, j))
			}
		}
	}

	// Step 4: transform to the all-X basis.
	for i := 0; i < n; i++ {
		emit(gate.H(i))
	}

	// Step 5: restore signs.
	for i := 0; i < n; i++ {
		if w.Sign(i) {
			emit(gate.X(i))
		}
	}

	return gate.Reverse(gates), nil
}

func findRow(w *tableau.Tableau, lo, hi int, pred func(int) bool) int {
	for r := lo; r < hi; r++ {
		if pred(r) {
			return r
		}
	}
	return -1
}
