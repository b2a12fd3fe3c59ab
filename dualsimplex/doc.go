// Package dualsimplex implements the minimization-oriented Dual Simplex
// engine over a dual-feasible tableau from tableau.NewDual.
//
// The dual engine starts from a basis that prices correctly (every
// objective-row coefficient ≥ −eps) but is primal-infeasible (negative
// RHS entries from the ≥ row negation) and pivots toward feasibility:
//
//  1. Leaving row — the most negative RHS; ties break to the lowest row
//     index. All RHS ≥ −eps ⇒ StatusOptimal.
//  2. Entering column — among columns j with pivot-row coefficient
//     aᵣⱼ < −eps, the minimum dual ratio |objⱼ / aᵣⱼ|; ties break to the
//     lowest column index. No eligible column ⇒ StatusInfeasible: the row
//     demands a negative value no variable can supply, so the primal
//     region is empty.
//  3. Pivot via the shared tableau kernel.
//
// The dual-ratio table computed for the chosen row is attached verbatim to
// the iteration's snapshot — this is the one engine-specific trace field.
// Tolerance and iteration-cap policy match the primal engine.
//
// Errors:
//   - ErrNotDualFeasible — an objective-row coefficient < −eps before the
//     first pivot (a negative cost coefficient in the min model).
//   - ErrNotDualForm     — tableau not built by tableau.NewDual.
//   - ErrBadOptions      — non-positive iteration cap or negative eps.
package dualsimplex
