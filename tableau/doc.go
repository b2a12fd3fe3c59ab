// SPDX-License-Identifier: MIT

// Package tableau builds and mutates the canonical simplex tableau shared
// by every engine in this module, and defines the step-trace contract
// consumed by downstream reporting.
//
// # What lives here
//
//   - Tableau — the m × (n+extra+1) working matrix (gonum *mat.Dense body,
//     separate objective row), the basis array, typed column labels, and
//     the per-constraint B⁻¹ bookkeeping needed later by sensitivity.
//   - Factories — NewPrimal, NewDual, NewBigM: slack/surplus/artificial
//     augmentation and sign normalization for each method.
//   - Pivot — the one pivot kernel: normalize the pivot row, eliminate the
//     entering column everywhere else (objective row included), update the
//     basis. Engines differ only in how they pick (row, col).
//   - Recorder / Snapshot / Result — ordered per-iteration state copies,
//     the sole output contract with the reporting collaborator. Snapshots
//     are numeric and structural only: no narration, no markup.
//
// # Canonical-form invariant
//
// After every successful Pivot, column Basis[i] holds exactly 1 in row i
// and 0 in every other row and in the objective row; basis entries are
// pairwise distinct. The kernel writes exact 0s and 1s into the pivot
// column so the invariant survives floating-point noise.
//
// # Objective-row conventions
//
//	NewPrimal (max):  Obj = [−c | 0…0 | 0];  z   = Obj RHS cell
//	NewDual   (min):  Obj = [+c | 0…0 | 0];  z   = −(Obj RHS cell)
//	NewBigM  (both):  internal max form −c_int with −M folded per artificial
//
// ObjectiveValue hides the sign bookkeeping from callers.
//
// # Ownership
//
// A Tableau belongs to exactly one engine call for its lifetime and is
// afterwards read-only (sensitivity). Snapshots are deep copies and may
// outlive everything.
package tableau
