// Package simplex implements the maximization-oriented primal Simplex
// engine over a primal-feasible tableau from tableau.NewPrimal.
//
// Per iteration:
//
//  1. Entering column — the most negative objective-row coefficient;
//     ties break to the lowest column index. No negative coefficient
//     ⇒ StatusOptimal.
//  2. Leaving row — minimum RHSᵢ/aᵢⱼ over rows with aᵢⱼ > eps in the
//     entering column; ties break to the lowest row index. No qualifying
//     row ⇒ StatusUnbounded.
//  3. Pivot via the shared tableau kernel; basis updated in place.
//
// All sign tests treat |v| ≤ Options.Eps as zero (default 1e-10). The
// iteration cap (default 1000) guards against degenerate cycling and
// terminates with StatusCyclingLimit, always returning the accumulated
// trace. Pivot selection is fully deterministic: identical input produces
// an identical snapshot sequence.
//
// Errors:
//   - ErrNotPrimalFeasible — some RHS < −eps before the first pivot; start
//     from the dual or Big-M form instead.
//   - ErrNotMaxForm — the tableau was not built in the primal max form.
//   - ErrBadOptions — non-positive iteration cap or negative eps.
//
// Complexity: O(iterations · m · width); memory O(iterations · m · width)
// for the retained snapshots.
package simplex
