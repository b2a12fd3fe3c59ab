package dualsimplex

import (
	"math"

	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/tableau"
)

// Solve runs Dual Simplex to termination on a tableau the caller owns.
// The tableau is mutated in place; on return it is the terminal state
// referenced by Result.Final.
//
// Errors are precondition/validation failures only; infeasibility and the
// cycling cap are statuses on the Result with the trace attached.
func Solve(t *tableau.Tableau, opts Options) (tableau.Result, error) {
	if t == nil {
		return tableau.Result{}, tableau.ErrNilTableau
	}
	if err := opts.validate(); err != nil {
		return tableau.Result{}, err
	}
	if t.Dir != lp.Min || t.M != 0 {
		return tableau.Result{}, ErrNotDualForm
	}
	if !t.DualFeasible(opts.Eps) {
		return tableau.Result{}, ErrNotDualFeasible
	}

	rec := tableau.NewRecorder()
	rec.RecordInitial(t, opts.Eps)

	for it := 0; it < opts.MaxIterations; it++ {
		row, ok := leavingRow(t, opts.Eps)
		if !ok {
			return tableau.Finish(tableau.StatusOptimal, t, rec), nil
		}

		ratios := RatioTable(t, row, opts.Eps)
		col, ok := enteringColumn(ratios)
		if !ok {
			// Row r reads Σ aᵣⱼxⱼ = RHSᵣ < 0 with every aᵣⱼ ≥ 0:
			// no non-negative x satisfies it. Empty primal region.
			return tableau.Finish(tableau.StatusInfeasible, t, rec), nil
		}

		entering := t.Cols[col].Name
		leaving := t.Cols[t.Basis[row]].Name
		before := t.Frame()

		op, err := t.Pivot(row, col, opts.Eps)
		if err != nil {
			// Unreachable for coordinates chosen by the rules above.
			return tableau.Result{}, err
		}
		rec.RecordPivot(before, t, op, entering, leaving, opts.Eps, ratios)
	}

	return tableau.Finish(tableau.StatusCyclingLimit, t, rec), nil
}

// leavingRow picks the row with the most negative RHS, lowest index on
// ties. ok is false when all RHS ≥ −eps (primal feasibility reached).
func leavingRow(t *tableau.Tableau, eps float64) (row int, ok bool) {
	best := -eps
	row = -1
	for i := 0; i < t.NumRows(); i++ {
		if v := t.RHS(i); v < best {
			best = v
			row = i
		}
	}

	return row, row >= 0
}

// RatioTable computes the dual-ratio table for the chosen pivot row:
// one entry per column with rowCoeff < −eps, ratio |objⱼ / aᵣⱼ|. The
// table is both the selection input and the snapshot attachment, so the
// trace shows exactly the numbers the rule saw.
func RatioTable(t *tableau.Tableau, row int, eps float64) []tableau.DualRatio {
	var out []tableau.DualRatio
	for j := 0; j < t.Width(); j++ {
		a := t.Body.At(row, j)
		if a >= -eps {
			continue
		}
		out = append(out, tableau.DualRatio{
			Column:   j,
			Name:     t.Cols[j].Name,
			ObjCoeff: t.Obj[j],
			RowCoeff: a,
			Ratio:    math.Abs(t.Obj[j] / a),
		})
	}

	return out
}

// enteringColumn picks the minimum-ratio entry, lowest column index on
// ties (the table is already in ascending column order).
func enteringColumn(ratios []tableau.DualRatio) (col int, ok bool) {
	col = -1
	var best float64
	for _, r := range ratios {
		if col < 0 || r.Ratio < best {
			col = r.Column
			best = r.Ratio
		}
	}

	return col, col >= 0
}
