package tableau

import (
	"fmt"

	"github.com/nrmanohar/stabilizer/internal/gf2"
)

// InvalidTableauKind names which validator rejected a tableau.
type InvalidTableauKind int

const (
	NotSquare InvalidTableauKind = iota
	EmptyColumn
	NonCommuting
	Dependent
)

func (k InvalidTableauKind) String() string {
	switch k {
	case NotSquare:
		return "not square"
	case EmptyColumn:
		return "empty column"
	case NonCommuting:
		return "non-commuting rows"
	case Dependent:
		return "linearly dependent rows"
	default:
		return "unknown"
	}
}

// InvalidTableauError reports which invariant a tableau failed.
type InvalidTableauError struct {
	Kind InvalidTableauKind
}

func (e *InvalidTableauError) Error() string {
	return fmt.Sprintf("tableau: invalid tableau: %s", e.Kind)
}

// Square reports whether a candidate row of width `rows` fits a tableau
// of n qubits (spec §4.5): the (X|Z) matrix must be n-by-n, so every row's
// length must equal n. New calls this per row while building a tableau.
func Square(n int, rows int) bool { return n == rows }

// EmptyColumnCheck reports whether every column has at least one non-I
// entry across all rows.
func EmptyColumnCheck(t *Tableau) bool {
	for j := 0; j < t.n; j++ {
		seen := false
		for i := 0; i < t.n; i++ {
			if t.X(i, j) || t.Z(i, j) {
				seen = true
				break
			}
		}
		if !seen {
			return false
		}
	}
	return true
}

// Commuter reports whether every pair of rows commutes.
func Commuter(t *Tableau) bool {
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if !pauliCommute(t, i, j) {
				return false
			}
		}
	}
	return true
}

func pauliCommute(t *Tableau, i, j int) bool {
	acc := false
	for k := 0; k < t.n; k++ {
		bit := (t.X(i, k) && t.Z(j, k)) != (t.Z(i, k) && t.X(j, k))
		acc = acc != bit
	}
	return !acc
}

// LinearIndependence reports whether the 2n-wide [X|Z] matrix has GF(2)
// rank n.
func LinearIndependence(t *Tableau) bool {
	rows := make([][]bool, t.n)
	for i := 0; i < t.n; i++ {
		row := make([]bool, 2*t.n)
		for j := 0; j < t.n; j++ {
			row[j] = t.X(i, j)
			row[t.n+j] = t.Z(i, j)
		}
		rows[i] = row
	}
	return gf2.Rank(rows) == t.n
}

// Validate composes the validator suite. When ignoreCommute is true the
// pairwise-commutation check is skipped (spec §6's ignore_commute option).
func Validate(t *Tableau, ignoreCommute bool) error {
	if !EmptyColumnCheck(t) {
		return &InvalidTableauError{Kind: EmptyColumn}
	}
	if !ignoreCommute && !Commuter(t) {
		return &InvalidTableauError{Kind: NonCommuting}
	}
	if !LinearIndependence(t) {
		return &InvalidTableauError{Kind: Dependent}
	}
	return nil
}
