package photonic

import (
	"testing"

	"github.com/nrmanohar/stabilizer/gate"
	"github.com/nrmanohar/stabilizer/height"
	"github.com/nrmanohar/stabilizer/tableau"
)

func TestProtocolBellPair(t *testing.T) {
	tb, err := tableau.FromEdges([]tableau.Edge{{0, 1}})
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	gates, ne, err := Protocol(tb, nil)
	if err != nil {
		t.Fatalf("Protocol: %v", err)
	}
	if ne < 1 {
		t.Fatalf("expected at least one emitter, got %d", ne)
	}
	absorbs := 0
	for _, g := range gates {
		if g.Kind == gate.KindAbsorb {
			absorbs++
		}
	}
	if absorbs != tb.N() {
		t.Fatalf("expected one ABSORB per photon (%d), got %d", tb.N(), absorbs)
	}
}

func TestProtocolFiveCycleEmitterCount(t *testing.T) {
	edges := []tableau.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	want, err := height.NumEmitters(tb)
	if err != nil {
		t.Fatalf("NumEmitters: %v", err)
	}
	_, ne, err := Protocol(tb, nil)
	if err != nil {
		t.Fatalf("Protocol: %v", err)
	}
	if ne != want {
		t.Fatalf("Protocol used %d emitters, height.NumEmitters says %d", ne, want)
	}
}
