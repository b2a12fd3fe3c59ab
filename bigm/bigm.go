package bigm

import (
	"math"

	"github.com/linprog/tabular/simplex"
	"github.com/linprog/tabular/tableau"
)

// Solve runs the Big-M method to termination on a tableau the caller
// owns. Pivot selection reuses the primal rules (Dantzig entering with
// artificial columns excluded, minimum-ratio leaving); termination adds
// the mandatory residual-artificial check described in the package doc.
//
// Errors are precondition/validation failures only; infeasibility,
// unboundedness and the cycling cap are statuses on the Result.
func Solve(t *tableau.Tableau, opts Options) (tableau.Result, error) {
	if t == nil {
		return tableau.Result{}, tableau.ErrNilTableau
	}
	if err := opts.validate(); err != nil {
		return tableau.Result{}, err
	}
	if t.M <= 0 {
		return tableau.Result{}, ErrNotBigMForm
	}

	rec := tableau.NewRecorder()
	rec.RecordInitial(t, opts.Eps)

	for it := 0; it < opts.MaxIterations; it++ {
		col, ok := simplex.EnteringColumn(t, opts.Eps, true)
		if !ok {
			return tableau.Finish(stalledStatus(t, opts.FeasTol), t, rec), nil
		}

		row, ok := simplex.LeavingRow(t, col, opts.Eps)
		if !ok {
			// An unbounded direction through an M-penalized tableau is only
			// meaningful once the artificials are out; with one still basic
			// at a material value the region itself is empty.
			if residualArtificial(t, opts.FeasTol) {
				return tableau.Finish(tableau.StatusInfeasible, t, rec), nil
			}

			return tableau.Finish(tableau.StatusUnbounded, t, rec), nil
		}

		entering := t.Cols[col].Name
		leaving := t.Cols[t.Basis[row]].Name
		before := t.Frame()

		op, err := t.Pivot(row, col, opts.Eps)
		if err != nil {
			// Unreachable for coordinates chosen by the rules above.
			return tableau.Result{}, err
		}
		rec.RecordPivot(before, t, op, entering, leaving, opts.Eps, nil)
	}

	return tableau.Finish(tableau.StatusCyclingLimit, t, rec), nil
}

// stalledStatus resolves the optimality-test stall: OPTIMAL only when no
// artificial variable remains basic at a materially positive value.
func stalledStatus(t *tableau.Tableau, feasTol float64) tableau.Status {
	if residualArtificial(t, feasTol) {
		return tableau.StatusInfeasible
	}

	return tableau.StatusOptimal
}

// residualArtificial reports whether some artificial variable is basic
// with |value| > feasTol.
func residualArtificial(t *tableau.Tableau, feasTol float64) bool {
	for i, b := range t.Basis {
		if t.Cols[b].Kind == tableau.Artificial && math.Abs(t.RHS(i)) > feasTol {
			return true
		}
	}

	return false
}
