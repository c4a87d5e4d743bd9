// Package tableau implements the stabilizer tableau: a packed binary
// symplectic matrix plus a sign vector, with the structural operations
// (construction, clone, swap, flip) and validators that enforce its
// semantic invariants. Gate updates live in package clifford; row
// composition and measurement live in package rowop.
package tableau

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/nrmanohar/stabilizer/pauli"
)

// Tableau holds n stabilizer generators over n qubits as a packed
// binary-symplectic matrix: one bitset per row for the X block, one for
// the Z block, plus a sign vector.
type Tableau struct {
	n    int
	x    []*bitset.BitSet
	z    []*bitset.BitSet
	sign []bool
}

// Option configures construction; the only one defined by spec §6 is
// WithIgnoreCommute.
type Option func(*options)

type options struct {
	ignoreCommute bool
}

// WithIgnoreCommute skips the pairwise-commutation validator; the other
// validators still run. The photonic solver passes it when building its
// extended tableau.
func WithIgnoreCommute() Option {
	return func(o *options) { o.ignoreCommute = true }
}

// New builds a tableau from n explicit rows, running the full validator
// suite (square, empty-column, commuter, linear-independence) unless
// overridden by options.
func New(rows []pauli.Row, opts ...Option) (*Tableau, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	n := len(rows)
	t := &Tableau{n: n, x: make([]*bitset.BitSet, n), z: make([]*bitset.BitSet, n), sign: make([]bool, n)}
	for i, r := range rows {
		if !Square(n, r.Len()) {
			return nil, &InvalidTableauError{Kind: NotSquare}
		}
		t.x[i] = bitset.New(uint(n))
		t.z[i] = bitset.New(uint(n))
		for j := 0; j < n; j++ {
			setBit(t.x[i], j, r.X[j])
			setBit(t.z[i], j, r.Z[j])
		}
		t.sign[i] = r.Sign
	}
	if err := Validate(t, o.ignoreCommute); err != nil {
		return nil, err
	}
	return t, nil
}

// NewZero returns the n-qubit all-zero state's tableau: Z on the diagonal,
// trivial sign, i.e. generators Z_0, Z_1, ..., Z_{n-1}.
func NewZero(n int) *Tableau {
	t := &Tableau{n: n, x: make([]*bitset.BitSet, n), z: make([]*bitset.BitSet, n), sign: make([]bool, n)}
	for i := 0; i < n; i++ {
		t.x[i] = bitset.New(uint(n))
		t.z[i] = bitset.New(uint(n))
		t.z[i].Set(uint(i))
	}
	return t
}

func setBit(b *bitset.BitSet, i int, v bool) {
	if v {
		b.Set(uint(i))
	} else {
		b.Clear(uint(i))
	}
}

// N returns the qubit count.
func (t *Tableau) N() int { return t.n }

// X reports the X-block bit at (row i, column j).
func (t *Tableau) X(i, j int) bool { return t.x[i].Test(uint(j)) }

// Z reports the Z-block bit at (row i, column j).
func (t *Tableau) Z(i, j int) bool { return t.z[i].Test(uint(j)) }

// SetX sets the X-block bit at (row i, column j).
func (t *Tableau) SetX(i, j int, v bool) { setBit(t.x[i], j, v) }

// SetZ sets the Z-block bit at (row i, column j).
func (t *Tableau) SetZ(i, j int, v bool) { setBit(t.z[i], j, v) }

// Sign reports the sign bit of row i.
func (t *Tableau) Sign(i int) bool { return t.sign[i] }

// SetSign sets the sign bit of row i.
func (t *Tableau) SetSign(i int, v bool) { t.sign[i] = v }

// Letter returns the Pauli letter at (row i, column j).
func (t *Tableau) Letter(i, j int) pauli.Letter {
	return pauli.FromBits(t.X(i, j), t.Z(i, j))
}

// Row extracts row i as a pauli.Row, decoupled from the packed storage.
func (t *Tableau) Row(i int) pauli.Row {
	r := pauli.NewRow(t.n)
	r.Sign = t.sign[i]
	for j := 0; j < t.n; j++ {
		r.X[j] = t.X(i, j)
		r.Z[j] = t.Z(i, j)
	}
	return r
}

// SetRow overwrites row i from r. r must have width n.
func (t *Tableau) SetRow(i int, r pauli.Row) {
	for j := 0; j < t.n; j++ {
		t.SetX(i, j, r.X[j])
		t.SetZ(i, j, r.Z[j])
	}
	t.sign[i] = r.Sign
}

// Clone returns a deep, independent copy of t.
func (t *Tableau) Clone() *Tableau {
	out := &Tableau{n: t.n, x: make([]*bitset.BitSet, t.n), z: make([]*bitset.BitSet, t.n), sign: make([]bool, t.n)}
	for i := 0; i < t.n; i++ {
		out.x[i] = t.x[i].Clone()
		out.z[i] = t.z[i].Clone()
	}
	copy(out.sign, t.sign)
	return out
}

// SwapRows exchanges rows i and j in place. A no-op when i == j.
func (t *Tableau) SwapRows(i, j int) {
	if i == j {
		return
	}
	t.x[i], t.x[j] = t.x[j], t.x[i]
	t.z[i], t.z[j] = t.z[j], t.z[i]
	t.sign[i], t.sign[j] = t.sign[j], t.sign[i]
}

// Flip reverses row order in place. Row order carries no semantic meaning
// for the stabilized state but is visible to the synthesizer and the
// photonic solver, which exploit specific positions.
func (t *Tableau) Flip() {
	for i, j := 0, t.n-1; i < j; i, j = i+1, j-1 {
		t.SwapRows(i, j)
	}
}

// String renders the (X|Z) block and sign vector as a human-readable
// report, one generator per line.
func (t *Tableau) String() string {
	var b strings.Builder
	for i := 0; i < t.n; i++ {
		fmt.Fprintf(&b, "%-*s  x=", t.n+1, t.Row(i).String())
		for j := 0; j < t.n; j++ {
			fmt.Fprintf(&b, "%d", boolBit(t.X(i, j)))
		}
		b.WriteString(" z=")
		for j := 0; j < t.n; j++ {
			fmt.Fprintf(&b, "%d", boolBit(t.Z(i, j)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func boolBit(v bool) int {
	if v {
		return 1
	}
	return 0
}
