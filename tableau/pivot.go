// SPDX-License-Identifier: MIT
// Package tableau: the shared pivot kernel.

package tableau

import "math"

// Pivot performs one canonical pivot at (row, col): divide the pivot row
// by the pivot element, eliminate the entering column from every other row
// and from the objective row, and set Basis[row] = col. Exact 0/1 values
// are written into the pivot column afterwards so the canonical-form
// invariant is not eroded by floating-point residue.
//
// eps guards against near-zero pivot elements (ErrZeroPivot). Coordinates
// outside the structural block return ErrPivotOutOfRange.
//
// Complexity: O(m·(width+1)).
func (t *Tableau) Pivot(row, col int, eps float64) (PivotOperation, error) {
	if t == nil {
		return PivotOperation{}, ErrNilTableau
	}
	var (
		rows  = t.NumRows()
		width = t.Width()
	)
	if row < 0 || row >= rows || col < 0 || col >= width {
		return PivotOperation{}, ErrPivotOutOfRange
	}

	p := t.Body.At(row, col)
	if math.Abs(p) <= eps {
		return PivotOperation{}, ErrZeroPivot
	}

	// Normalize the pivot row.
	pr := t.Body.RawRowView(row)
	for j := 0; j <= width; j++ {
		pr[j] /= p
	}
	pr[col] = 1

	// Eliminate the entering column from the other structural rows.
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		ri := t.Body.RawRowView(i)
		factor := ri[col]
		if factor == 0 {
			continue
		}
		for j := 0; j <= width; j++ {
			ri[j] -= factor * pr[j]
		}
		ri[col] = 0
	}

	// Eliminate from the objective row.
	if factor := t.Obj[col]; factor != 0 {
		for j := 0; j <= width; j++ {
			t.Obj[j] -= factor * pr[j]
		}
		t.Obj[col] = 0
	}

	t.Basis[row] = col

	return PivotOperation{Row: row, Col: col, Value: p}, nil
}
