package gate

import "testing"

func TestReverse(t *testing.T) {
	seq := []Gate{H(0), S(1), CNOT(0, 1)}
	rev := Reverse(seq)
	if len(rev) != 3 || rev[0].Kind != KindCNOT || rev[2].Kind != KindH {
		t.Fatalf("unexpected reversal: %v", rev)
	}
	// original must be untouched
	if seq[0].Kind != KindH {
		t.Fatalf("Reverse mutated its input")
	}
}

func TestStringFormsByKind(t *testing.T) {
	cases := []struct {
		g    Gate
		want string
	}{
		{H(2), "H 2"},
		{CNOT(0, 3), "CNOT 0 3"},
		{Measure(1, 4), "MEASURE 1 -> c4"},
		{Absorb(2, 0), "ABSORB e2 p0"},
	}
	for _, c := range cases {
		if got := c.g.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
