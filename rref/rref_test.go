package rref

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

func TestReduceIsIdempotent(t *testing.T) {
	tb := mustTableau(t, "XZZXI,IXZZX,XIXZZ,ZXIXZ,ZZZZZ")
	if err := Reduce(tb); err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	first := tb.String()
	if err := Reduce(tb); err != nil {
		t.Fatalf("Reduce (second pass): %v", err)
	}
	if tb.String() != first {
		t.Fatalf("rref(rref(T)) should equal rref(T)")
	}
}

func TestReducePreservesValidity(t *testing.T) {
	tb := mustTableau(t, "XX,ZZ")
	if err := Reduce(tb); err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if err := tableau.Validate(tb, false); err != nil {
		t.Fatalf("reduced tableau should remain valid: %v", err)
	}
}

func TestReduceGraphState(t *testing.T) {
	edges := []tableau.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	if err := Reduce(tb); err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if err := tableau.Validate(tb, false); err != nil {
		t.Fatalf("reduced graph state should remain valid: %v", err)
	}
}
