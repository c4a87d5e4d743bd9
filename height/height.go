// Package height implements the height function and emitter-count
// derivation (spec §4.10), built on the RREF reducer.
package height

import (
	"github.com/nrmanohar/stabilizer/rref"
	"github.com/nrmanohar/stabilizer/tableau"
)

// LeadingColumns reduces a clone of t to RREF and returns, per row, the
// 0-based index of its least column with a non-I entry (or n if the row
// reduced to all-I). t is never mutated.
func LeadingColumns(t *tableau.Tableau) ([]int, error) {
	work := t.Clone()
	if err := rref.Reduce(work); err != nil {
		return nil, err
	}
	n := work.N()
	lead := make([]int, n)
	for i := 0; i < n; i++ {
		l := n
		for j := 0; j < n; j++ {
			if work.X(i, j) || work.Z(i, j) {
				l = j
				break
			}
		}
		lead[i] = l
	}
	return lead, nil
}

// Profile reduces a clone of t to RREF and returns h(x) for x = 0..n,
// where Lᵢ = 1 + the least column with a non-I entry on row i, and
// h(x) = n - x - |{i : Lᵢ > x}|. t is never mutated.
func Profile(t *tableau.Tableau) ([]int, error) {
	lead, err := LeadingColumns(t)
	if err != nil {
		return nil, err
	}
	n := t.N()
	h := make([]int, n+1)
	for x := 0; x <= n; x++ {
		count := 0
		for i := 0; i < n; i++ {
			if lead[i]+1 > x {
				count++
			}
		}
		h[x] = n - x - count
	}
	return h, nil
}

// NumEmitters returns max_x h(x), the minimum number of emitters needed to
// emit the n-photon state t describes.
func NumEmitters(t *tableau.Tableau) (int, error) {
	h, err := Profile(t)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, v := range h {
		if v > max {
			max = v
		}
	}
	return max, nil
}
