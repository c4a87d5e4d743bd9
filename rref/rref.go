// Package rref implements the binary symplectic Gauss-Jordan reduction
// (spec §4.7) that brings a tableau into a canonical row-echelon form,
// the basis the height function (package height) and the photonic
// protocol solver (package photonic) build on.
package rref

import (
	"github.com/nrmanohar/stabilizer/pauli"
	"github.com/nrmanohar/stabilizer/rowop"
	"github.com/nrmanohar/stabilizer/tableau"
)

// Reduce brings t into canonical row-echelon form in place, maintaining
// the "next column to pivot" (nl) and "next row to place" (ku) pointers
// from spec §4.7. Letters are always re-read from the tableau rather than
// cached, since RowAdd calls earlier in the same pass change later rows.
func Reduce(t *tableau.Tableau) error {
	n := t.N()
	nl, ku := 0, 0
	for nl < n-1 && ku < n-1 {
		distinctRows := map[pauli.Letter]int{}
		order := []pauli.Letter{}
		for i := ku; i < n; i++ {
			l := t.Letter(i, nl)
			if l == pauli.I {
				continue
			}
			if _, ok := distinctRows[l]; !ok {
				distinctRows[l] = i
				order = append(order, l)
			}
		}
		switch len(order) {
		case 0:
			nl++
		case 1:
			letter := order[0]
			pivotRow := distinctRows[letter]
			t.SwapRows(pivotRow, ku)
			for i := ku + 1; i < n; i++ {
				if t.Letter(i, nl) == letter {
					rowop.RowAdd(t, ku, i)
				}
			}
			nl++
			ku++
		default:
			l1 := order[0]
			r1 := distinctRows[l1]
			t.SwapRows(r1, ku)
			// Re-scan for the first row after ku whose letter differs
			// from l1, now that the swap may have moved rows around.
			var l2 pauli.Letter
			r2 := -1
			for i := ku + 1; i < n; i++ {
				l := t.Letter(i, nl)
				if l != pauli.I && l != l1 {
					l2 = l
					r2 = i
					break
				}
			}
			t.SwapRows(r2, ku+1)
			for i := ku + 2; i < n; i++ {
				l := t.Letter(i, nl)
				switch l {
				case pauli.I:
				case l1:
					rowop.RowAdd(t, ku, i)
				case l2:
					rowop.RowAdd(t, ku+1, i)
				default:
					rowop.RowAdd(t, ku, i)
					rowop.RowAdd(t, ku+1, i)
				}
			}
			nl++
			ku += 2
		}
	}
	return nil
}
