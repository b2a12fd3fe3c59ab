package simplex

import (
	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/tableau"
)

// Solve runs primal Simplex to termination on a tableau the caller owns.
// The tableau is mutated in place; on return it is the terminal state
// referenced by Result.Final.
//
// Returns an error only for precondition/validation failures (nothing has
// been pivoted yet). Every other outcome — optimal, unbounded, cycling
// cap — is a Status on the Result with the full trace attached.
func Solve(t *tableau.Tableau, opts Options) (tableau.Result, error) {
	if t == nil {
		return tableau.Result{}, tableau.ErrNilTableau
	}
	if err := opts.validate(); err != nil {
		return tableau.Result{}, err
	}
	if t.Dir != lp.Max || t.M != 0 {
		return tableau.Result{}, ErrNotMaxForm
	}
	if !t.PrimalFeasible(opts.Eps) {
		return tableau.Result{}, ErrNotPrimalFeasible
	}

	rec := tableau.NewRecorder()
	rec.RecordInitial(t, opts.Eps)

	for it := 0; it < opts.MaxIterations; it++ {
		col, ok := EnteringColumn(t, opts.Eps, false)
		if !ok {
			return tableau.Finish(tableau.StatusOptimal, t, rec), nil
		}

		row, ok := LeavingRow(t, col, opts.Eps)
		if !ok {
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

// EnteringColumn applies the Dantzig rule: the column with the most
// negative objective-row coefficient, lowest index on ties. skipArtificial
// excludes artificial columns (Big-M reuses this rule). ok is false when
// no coefficient is below −eps, i.e. the optimality test holds.
func EnteringColumn(t *tableau.Tableau, eps float64, skipArtificial bool) (col int, ok bool) {
	best := -eps
	col = -1
	for j := 0; j < t.Width(); j++ {
		if skipArtificial && t.Cols[j].Kind == tableau.Artificial {
			continue
		}
		if v := t.Obj[j]; v < best {
			best = v
			col = j
		}
	}

	return col, col >= 0
}

// LeavingRow applies the minimum-ratio test over rows with a positive
// coefficient in the entering column, lowest index on ties. ok is false
// when no row qualifies, i.e. the column is unbounded.
func LeavingRow(t *tableau.Tableau, col int, eps float64) (row int, ok bool) {
	var bestRatio float64
	row = -1
	for i := 0; i < t.NumRows(); i++ {
		a := t.Body.At(i, col)
		if a <= eps {
			continue
		}
		ratio := t.RHS(i) / a
		if ratio < 0 {
			// Negative RHS rows never bound the step under a feasible basis.
			continue
		}
		if row < 0 || ratio < bestRatio {
			row = i
			bestRatio = ratio
		}
	}

	return row, row >= 0
}
