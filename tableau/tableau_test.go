package tableau

import (
	"testing"

	"github.com/nrmanohar/stabilizer/pauli"
)

func mustRows(t *testing.T, in pauli.Input) []pauli.Row {
	t.Helper()
	rows, _, err := pauli.ParseRows(in, 0)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return rows
}

func TestBellState(t *testing.T) {
	rows := mustRows(t, pauli.One("XX,ZZ"))
	tb, err := New(rows)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// spec S1: row 0 is XX (X set, Z clear on both columns), row 1 is ZZ
	// (Z set, X clear on both columns).
	want := [][2]bool{{true, false}, {false, true}}
	for i, wantRow := range want {
		wantX, wantZ := wantRow[0], wantRow[1]
		for j := 0; j < 2; j++ {
			if tb.X(i, j) != wantX || tb.Z(i, j) != wantZ {
				t.Fatalf("row %d col %d: X=%v Z=%v, want X=%v Z=%v", i, j, tb.X(i, j), tb.Z(i, j), wantX, wantZ)
			}
		}
	}
	if tb.Sign(0) || tb.Sign(1) {
		t.Fatalf("signs should be zero")
	}
}

func TestNewZero(t *testing.T) {
	tb := NewZero(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wantZ := i == j
			if tb.Z(i, j) != wantZ || tb.X(i, j) {
				t.Fatalf("NewZero(3) row %d col %d wrong", i, j)
			}
		}
		if tb.Sign(i) {
			t.Fatalf("sign should be zero")
		}
	}
}

func TestValidateRejectsEmptyColumn(t *testing.T) {
	rows := mustRows(t, pauli.Many([]string{"XI", "II"}))
	if _, err := New(rows); err == nil {
		t.Fatalf("expected invalid tableau (empty column and dependence)")
	}
}

func TestValidateRejectsNonCommuting(t *testing.T) {
	rows := mustRows(t, pauli.Many([]string{"XI", "ZX"}))
	if _, err := New(rows); err == nil {
		t.Fatalf("expected non-commuting rejection")
	}
}

func TestIgnoreCommuteOption(t *testing.T) {
	rows := mustRows(t, pauli.Many([]string{"XI", "ZX"}))
	if _, err := New(rows, WithIgnoreCommute()); err != nil {
		t.Fatalf("expected ignore_commute to bypass the commuter check: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tb := NewZero(2)
	cl := tb.Clone()
	cl.SetX(0, 0, true)
	if tb.X(0, 0) {
		t.Fatalf("mutating clone affected original")
	}
}

func TestSwapRows(t *testing.T) {
	tb := NewZero(2)
	tb.SetSign(0, true)
	tb.SwapRows(0, 1)
	if !tb.Sign(1) || tb.Sign(0) {
		t.Fatalf("swap did not move sign bits")
	}
}

func TestFlip(t *testing.T) {
	rows := mustRows(t, pauli.Many([]string{"XII", "IXI", "IIX"}))
	tb, err := New(rows, WithIgnoreCommute())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tb.Flip()
	if tb.Row(0).String() != "IIX" || tb.Row(2).String() != "XII" {
		t.Fatalf("flip did not reverse rows: %v", tb)
	}
}

func TestFromEdgesFiveCycle(t *testing.T) {
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	tb, err := FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	if tb.N() != 5 {
		t.Fatalf("want n=5, got %d", tb.N())
	}
	for i := 0; i < 5; i++ {
		if !tb.X(i, i) {
			t.Fatalf("expected identity X block at %d", i)
		}
		if tb.Sign(i) {
			t.Fatalf("graph state signs must be zero")
		}
	}
	for _, e := range edges {
		if !tb.Z(e[0], e[1]) || !tb.Z(e[1], e[0]) {
			t.Fatalf("expected symmetric Z adjacency for edge %v", e)
		}
	}
	if err := Validate(tb, false); err != nil {
		t.Fatalf("graph state should be valid: %v", err)
	}
}
