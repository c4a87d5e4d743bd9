// Package clifford implements the in-place Clifford tableau update rules
// for H, S, X, Y, Z, CNOT and CZ (spec §4.3), plus a name-dispatched Apply
// entry point for callers driving the tableau from gate records.
package clifford

import (
	"fmt"

	"github.com/nrmanohar/stabilizer/gate"
	"github.com/nrmanohar/stabilizer/tableau"
)

// GateArityError reports a two-qubit gate invoked without its second qubit.
type GateArityError struct {
	Gate string
}

func (e *GateArityError) Error() string {
	return fmt.Sprintf("clifford: gate %q requires a second qubit", e.Gate)
}

// UnknownGateError reports a gate name the dispatcher does not recognize.
type UnknownGateError struct {
	Gate string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("clifford: unknown gate %q", e.Gate)
}

// H applies the Hadamard update to qubit q on every row: swap X[i,q] and
// Z[i,q], picking up sign[i] ^= X[i,q]*Z[i,q].
func H(t *tableau.Tableau, q int) {
	for i := 0; i < t.N(); i++ {
		x, z := t.X(i, q), t.Z(i, q)
		t.SetX(i, q, z)
		t.SetZ(i, q, x)
		if x && z {
			t.SetSign(i, !t.Sign(i))
		}
	}
}

// S applies the phase-gate update: sign[i] ^= X[i,q]*Z[i,q], then
// Z[i,q] ^= X[i,q].
func S(t *tableau.Tableau, q int) {
	for i := 0; i < t.N(); i++ {
		x, z := t.X(i, q), t.Z(i, q)
		if x && z {
			t.SetSign(i, !t.Sign(i))
		}
		t.SetZ(i, q, z != x)
	}
}

// Sdg applies S applied three times, i.e. the inverse phase gate.
func Sdg(t *tableau.Tableau, q int) {
	S(t, q)
	S(t, q)
	S(t, q)
}

// PauliX applies sign[i] ^= Z[i,q].
func PauliX(t *tableau.Tableau, q int) {
	for i := 0; i < t.N(); i++ {
		if t.Z(i, q) {
			t.SetSign(i, !t.Sign(i))
		}
	}
}

// PauliZ applies sign[i] ^= X[i,q].
func PauliZ(t *tableau.Tableau, q int) {
	for i := 0; i < t.N(); i++ {
		if t.X(i, q) {
			t.SetSign(i, !t.Sign(i))
		}
	}
}

// PauliY applies sign[i] ^= X[i,q] ^ Z[i,q].
func PauliY(t *tableau.Tableau, q int) {
	for i := 0; i < t.N(); i++ {
		if t.X(i, q) != t.Z(i, q) {
			t.SetSign(i, !t.Sign(i))
		}
	}
}

// CNOT applies the controlled-NOT update with control c and target tgt. A
// control equal to target is a documented idempotent no-op.
func CNOT(t *tableau.Tableau, c, tgt int) {
	if c == tgt {
		return
	}
	for i := 0; i < t.N(); i++ {
		xc, zc, xt, zt := t.X(i, c), t.Z(i, c), t.X(i, tgt), t.Z(i, tgt)
		t.SetX(i, tgt, xt != xc)
		t.SetZ(i, c, zc != zt)
		if xc && zt && xt == zc {
			t.SetSign(i, !t.Sign(i))
		}
	}
}

// CZ applies the controlled-Z update on (c, tgt), defined as H(tgt);
// CNOT(c,tgt); H(tgt), which spec §4.3 sanctions as an equivalent to a
// direct update.
func CZ(t *tableau.Tableau, c, tgt int) {
	H(t, tgt)
	CNOT(t, c, tgt)
	H(t, tgt)
}

// ApplyGate dispatches a gate.Gate record onto t.
func ApplyGate(t *tableau.Tableau, g gate.Gate) error {
	switch g.Kind {
	case gate.KindH:
		H(t, g.Q1)
	case gate.KindS:
		S(t, g.Q1)
	case gate.KindSdg:
		Sdg(t, g.Q1)
	case gate.KindX:
		PauliX(t, g.Q1)
	case gate.KindY:
		PauliY(t, g.Q1)
	case gate.KindZ:
		PauliZ(t, g.Q1)
	case gate.KindCNOT:
		CNOT(t, g.Q1, g.Q2)
	case gate.KindCZ:
		CZ(t, g.Q1, g.Q2)
	default:
		return &UnknownGateError{Gate: g.Kind.String()}
	}
	return nil
}

// ApplyNamed dispatches by gate name, as an external caller driving the
// tableau dynamically would (rather than via a compiled gate.Gate record).
// q2 is nil for single-qubit gates.
func ApplyNamed(t *tableau.Tableau, name string, q1 int, q2 *int) error {
	switch name {
	case "h", "H":
		H(t, q1)
	case "s", "S":
		S(t, q1)
	case "sdg", "SDG":
		Sdg(t, q1)
	case "x", "X":
		PauliX(t, q1)
	case "y", "Y":
		PauliY(t, q1)
	case "z", "Z":
		PauliZ(t, q1)
	case "cnot", "CNOT":
		if q2 == nil {
			return &GateArityError{Gate: name}
		}
		CNOT(t, q1, *q2)
	case "cz", "CZ":
		if q2 == nil {
			return &GateArityError{Gate: name}
		}
		CZ(t, q1, *q2)
	default:
		return &UnknownGateError{Gate: name}
	}
	return nil
}
