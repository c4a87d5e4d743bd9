// Package gate defines the tagged gate-record variant emitted by the
// circuit synthesizer and the photonic protocol solver (spec §3), the
// common currency handed off to an external circuit-building collaborator.
package gate

import "fmt"

// Kind tags which variant a Gate record holds.
type Kind int

const (
	KindH Kind = iota
	KindS
	KindSdg
	KindX
	KindY
	KindZ
	KindCNOT
	KindCZ
	KindMeasure
	KindAbsorb
)

func (k Kind) String() string {
	switch k {
	case KindH:
		return "H"
	case KindS:
		return "S"
	case KindSdg:
		return "SDG"
	case KindX:
		return "X"
	case KindY:
		return "Y"
	case KindZ:
		return "Z"
	case KindCNOT:
		return "CNOT"
	case KindCZ:
		return "CZ"
	case KindMeasure:
		return "MEASURE"
	case KindAbsorb:
		return "ABSORB"
	default:
		return "?"
	}
}

// Gate is one emitted instruction: {H q | S q | SDG q | X q | Y q | Z q |
// CNOT c t | CZ c t | MEASURE src cbit | ABSORB emitter photon}.
//
// Field roles by Kind:
//   - single-qubit gates (H,S,SDG,X,Y,Z): Q1 is the target qubit.
//   - CNOT, CZ: Q1 is the control, Q2 is the target.
//   - MEASURE: Q1 is the source qubit, CBit is the classical bit index.
//   - ABSORB: Q1 is the emitter, Q2 is the photon.
type Gate struct {
	Kind Kind
	Q1   int
	Q2   int
	CBit int
}

func H(q int) Gate           { return Gate{Kind: KindH, Q1: q} }
func S(q int) Gate           { return Gate{Kind: KindS, Q1: q} }
func Sdg(q int) Gate         { return Gate{Kind: KindSdg, Q1: q} }
func X(q int) Gate           { return Gate{Kind: KindX, Q1: q} }
func Y(q int) Gate           { return Gate{Kind: KindY, Q1: q} }
func Z(q int) Gate           { return Gate{Kind: KindZ, Q1: q} }
func CNOT(c, t int) Gate     { return Gate{Kind: KindCNOT, Q1: c, Q2: t} }
func CZ(c, t int) Gate       { return Gate{Kind: KindCZ, Q1: c, Q2: t} }
func Measure(src, cbit int) Gate { return Gate{Kind: KindMeasure, Q1: src, CBit: cbit} }
func Absorb(emitter, photon int) Gate { return Gate{Kind: KindAbsorb, Q1: emitter, Q2: photon} }

// String renders a gate record for logs and CLI output, e.g. "CNOT 0 2" or
// "MEASURE 3 -> c1".
func (g Gate) String() string {
	switch g.Kind {
	case KindCNOT, KindCZ:
		return fmt.Sprintf("%s %d %d", g.Kind, g.Q1, g.Q2)
	case KindMeasure:
		return fmt.Sprintf("MEASURE %d -> c%d", g.Q1, g.CBit)
	case KindAbsorb:
		return fmt.Sprintf("ABSORB e%d p%d", g.Q1, g.Q2)
	default:
		return fmt.Sprintf("%s %d", g.Kind, g.Q1)
	}
}

// Reverse returns a copy of seq in reverse order. The synthesizer and the
// photonic solver both build their gate list in time-reversed derivation
// order and call this once at the end.
func Reverse(seq []Gate) []Gate {
	out := make([]Gate, len(seq))
	for i, g := range seq {
		out[len(seq)-1-i] = g
	}
	return out
}
