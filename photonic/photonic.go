// Package photonic synthesizes an emitter-efficient photonic emission
// protocol for a graph state (spec §4.11), built on the height function
// (package height), the RREF reducer (package rref), and the Clifford
// update rules (package clifford).
package photonic

import (
	"errors"
	"fmt"

	"github.com/nrmanohar/stabilizer/clifford"
	"github.com/nrmanohar/stabilizer/gate"
	"github.com/nrmanohar/stabilizer/height"
	"github.com/nrmanohar/stabilizer/pauli"
	"github.com/nrmanohar/stabilizer/rowop"
	"github.com/nrmanohar/stabilizer/rref"
	"github.com/nrmanohar/stabilizer/tableau"
)

// ErrUnsupportedTarget is returned when the solver needs the "more
// thorough rotation" branch the original algorithm leaves unspecified
// (spec §9 open question a). Rather than silently approximate, the
// solver surfaces this so the caller knows the target wasn't handled.
var ErrUnsupportedTarget = errors.New("photonic: target requires an unsupported rotation branch")

// Trace, when non-nil, is invoked after each photon's bookkeeping step on
// the working extended tableau, for callers that want to observe
// intermediate state (ported from the original's debug printing, spec
// SPEC_FULL.md "supplemented features").
type Trace func(step int, t *tableau.Tableau)

// Protocol synthesizes the emission protocol for the n_p-photon graph
// state described by t (an n_p-qubit tableau). It returns the emitted
// gate/measurement/absorption record sequence and the number of emitters
// used.
func Protocol(t *tableau.Tableau, trace Trace) ([]gate.Gate, int, error) {
	np := t.N()
	h, err := height.Profile(t)
	if err != nil {
		return nil, 0, err
	}
	ne, err := height.NumEmitters(t)
	if err != nil {
		return nil, 0, err
	}

	ext := extend(t, ne)
	var gates []gate.Gate
	emit := func(g gate.Gate) {
		gates = append(gates, g)
	}
	emitApply := func(g gate.Gate) {
		gates = append(gates, g)
		_ = clifford.ApplyGate(ext, g)
	}

	for p := np - 1; p >= 0; p-- {
		if h[p+1]-h[p] < 0 {
			if err := timeReversedMeasurement(ext, np, ne, p, emit, emitApply); err != nil {
				return nil, 0, err
			}
		}
		if err := absorptionStep(ext, np, ne, p, emitApply, emit); err != nil {
			return nil, 0, err
		}
		if trace != nil {
			trace(np-p, ext)
		}
	}

	if err := rref.Reduce(ext); err != nil {
		return nil, 0, err
	}
	for i := 0; i < np; i++ {
		if ext.Sign(i) {
			emit(gate.X(i))
		}
	}

	return gate.Reverse(gates), ne, nil
}

// extend appends n_e all-I columns to every row of t's copy and n_e new
// rows, each a lone Z on one emitter column (spec §4.11).
func extend(t *tableau.Tableau, ne int) *tableau.Tableau {
	np := t.N()
	n := np + ne
	rows := make([]pauli.Row, n)
	for i := 0; i < np; i++ {
		r := pauli.NewRow(n)
		r.Sign = t.Sign(i)
		for j := 0; j < np; j++ {
			r.X[j] = t.X(i, j)
			r.Z[j] = t.Z(i, j)
		}
		rows[i] = r
	}
	for k := 0; k < ne; k++ {
		r := pauli.NewRow(n)
		r.Z[np+k] = true
		rows[np+k] = r
	}
	out, err := tableau.New(rows, tableau.WithIgnoreCommute())
	if err != nil {
		// rows are constructed to be independent and empty-column-free by
		// construction; a failure here means the input t was never valid.
		panic(fmt.Sprintf("photonic: extend built an invalid tableau: %v", err))
	}
	return out
}

// timeReversedMeasurement implements spec §4.11 step 1: find a row whose
// support among emitter columns is exactly one emitter e, rotate that
// row's letter on e to Z, emit MEASURE(e,p), then fold H(e);CNOT(e,p) into
// the working tableau.
func timeReversedMeasurement(ext *tableau.Tableau, np, ne, p int, emit func(gate.Gate), emitApply func(gate.Gate)) error {
	n := ext.N()
	row := findSingleEmitterSupportRow(ext, np, ne, n)
	if row == -1 {
		return fmt.Errorf("%w: photon %d", ErrUnsupportedTarget, p)
	}
	e := -1
	for col := np; col < n; col++ {
		if ext.Letter(row, col) != pauli.I {
			e = col
			break
		}
	}
	switch ext.Letter(row, e) {
	case pauli.X:
		emitApply(gate.H(e))
	case pauli.Y:
		emitApply(gate.Sdg(e))
		emitApply(gate.H(e))
	case pauli.Z:
	default:
		return fmt.Errorf("%w: photon %d has no emitter support to rotate", ErrUnsupportedTarget, p)
	}
	emit(gate.Measure(e, p))
	clifford.H(ext, e)
	clifford.CNOT(ext, e, p)
	return nil
}

// findSingleEmitterSupportRow returns the first row whose emitter-column
// support has size exactly one, or -1 if none exists.
func findSingleEmitterSupportRow(ext *tableau.Tableau, np, ne, n int) int {
	for i := 0; i < n; i++ {
		count := 0
		for col := np; col < n; col++ {
			if ext.Letter(i, col) != pauli.I {
				count++
			}
		}
		if count == 1 {
			return i
		}
	}
	return -1
}

// absorptionStep implements spec §4.11 step 2.
func absorptionStep(ext *tableau.Tableau, np, ne, p int, emitApply func(gate.Gate), emit func(gate.Gate)) error {
	n := ext.N()
	pivot := findAbsorptionRow(ext, p, n)
	if pivot == -1 {
		return fmt.Errorf("%w: no absorption row for photon %d", ErrUnsupportedTarget, p)
	}

	for col := p; col < n; col++ {
		switch ext.Letter(pivot, col) {
		case pauli.X:
			emitApply(gate.H(col))
		case pauli.Y:
			emitApply(gate.S(col))
			emitApply(gate.H(col))
		}
	}

	e := -1
	for col := np; col < n; col++ {
		if ext.Letter(pivot, col) == pauli.Z {
			e = col
			break
		}
	}
	if e == -1 {
		return fmt.Errorf("%w: photon %d has no emitter to absorb into", ErrUnsupportedTarget, p)
	}
	for col := e + 1; col < n; col++ {
		if ext.Letter(pivot, col) == pauli.Z {
			emitApply(gate.CNOT(col, e))
		}
	}

	emit(gate.Absorb(e, p))
	clifford.CNOT(ext, e, p)

	for i := 0; i < n; i++ {
		if i != pivot && ext.Letter(i, p) != pauli.I {
			rowop.RowAdd(ext, pivot, i)
		}
	}
	return nil
}

// findAbsorptionRow returns the first row whose support on columns
// 0..p-1 is all-I and which is non-I on column p.
func findAbsorptionRow(ext *tableau.Tableau, p, n int) int {
	for i := 0; i < n; i++ {
		if ext.Letter(i, p) == pauli.I {
			continue
		}
		clean := true
		for col := 0; col < p; col++ {
			if ext.Letter(i, col) != pauli.I {
				clean = false
				break
			}
		}
		if clean {
			return i
		}
	}
	return -1
}
