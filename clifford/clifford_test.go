package clifford

import (
	"testing"

	"github.com/nrmanohar/stabilizer/pauli"
	"github.com/nrmanohar/stabilizer/tableau"
)

func mustTableau(t *testing.T, stabs string) *tableau.Tableau {
	t.Helper()
	rows, _, err := pauli.ParseRows(pauli.One(stabs), 0)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	tb, err := tableau.New(rows)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tb
}

func snapshot(tb *tableau.Tableau) string {
	s := ""
	for i := 0; i < tb.N(); i++ {
		s += tb.Row(i).String() + ","
	}
	return s
}

func TestHIsInvolution(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	before := snapshot(tb)
	H(tb, 0)
	H(tb, 0)
	if snapshot(tb) != before {
		t.Fatalf("H;H should be identity, got %s want %s", snapshot(tb), before)
	}
}

func TestCNOTIsInvolution(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	before := snapshot(tb)
	CNOT(tb, 0, 1)
	CNOT(tb, 0, 1)
	if snapshot(tb) != before {
		t.Fatalf("CNOT;CNOT should be identity")
	}
}

func TestCZIsInvolution(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	before := snapshot(tb)
	CZ(tb, 0, 1)
	CZ(tb, 0, 1)
	if snapshot(tb) != before {
		t.Fatalf("CZ;CZ should be identity")
	}
}

func TestCNOTNoOpOnSameQubit(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	before := snapshot(tb)
	CNOT(tb, 0, 0)
	if snapshot(tb) != before {
		t.Fatalf("CNOT(q,q) should be a no-op")
	}
}

func TestSFourTimesIsIdentity(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	before := snapshot(tb)
	S(tb, 0)
	S(tb, 0)
	S(tb, 0)
	S(tb, 0)
	if snapshot(tb) != before {
		t.Fatalf("S^4 should be identity")
	}
}

func TestBellStateCreationFromZero(t *testing.T) {
	tb := tableau.NewZero(2)
	H(tb, 0)
	CNOT(tb, 0, 1)
	if tb.Row(0).String() != "XX" || tb.Row(1).String() != "ZZ" {
		t.Fatalf("H(0);CNOT(0,1) on |00> should give Bell stabilizers, got %s %s", tb.Row(0), tb.Row(1))
	}
}

func TestApplyNamedArityError(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	if err := ApplyNamed(tb, "cnot", 0, nil); err == nil {
		t.Fatalf("expected GateArityError")
	} else if _, ok := err.(*GateArityError); !ok {
		t.Fatalf("expected *GateArityError, got %T", err)
	}
}

func TestApplyNamedUnknownGate(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	if err := ApplyNamed(tb, "bogus", 0, nil); err == nil {
		t.Fatalf("expected UnknownGateError")
	} else if _, ok := err.(*UnknownGateError); !ok {
		t.Fatalf("expected *UnknownGateError, got %T", err)
	}
}

func TestValidateHoldsAfterGates(t *testing.T) {
	tb := mustTableau(t, "XZZXI,IXZZX,XIXZZ,ZXIXZ,ZZZZZ")
	H(tb, 2)
	CNOT(tb, 0, 3)
	S(tb, 1)
	CZ(tb, 2, 4)
	if err := tableau.Validate(tb, false); err != nil {
		t.Fatalf("tableau should remain valid after Clifford updates: %v", err)
	}
}
