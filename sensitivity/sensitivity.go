// SPDX-License-Identifier: MIT
// Package sensitivity: the analyzer itself.

package sensitivity

import (
	"math"

	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/tableau"
)

// Analyze derives the full sensitivity report from a terminal optimal
// tableau and the model it was built from. The tableau is only read;
// identical input yields bit-identical output.
//
// Errors: ErrBadOptions, ErrModelMismatch, ErrNotOptimal (state error —
// the tableau must be terminal-optimal, re-checked here rather than
// trusted), plus lp validation sentinels for a malformed model.
//
// Complexity: O(m·width + n·width + m²).
func Analyze(m *lp.Model, t *tableau.Tableau, opts Options) (*Report, error) {
	if opts.Eps < 0 {
		return nil, ErrBadOptions
	}
	if t == nil {
		return nil, tableau.ErrNilTableau
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if t.NumDecisions() != m.NumVars() || t.NumRows() != m.NumRows() {
		return nil, ErrModelMismatch
	}
	if err := checkTerminalOptimal(t, opts.Eps); err != nil {
		return nil, err
	}

	return &Report{
		ObjectiveRanges: objectiveRanges(m, t, opts.Eps),
		RHSRanges:       rhsRanges(m, t, opts.Eps),
		ShadowPrices:    shadowPrices(m, t, opts.Eps),
		ReducedCosts:    reducedCosts(m, t),
	}, nil
}

// checkTerminalOptimal re-derives the optimality conditions instead of
// trusting the caller: primal feasibility, a non-negative objective row,
// and no residual basic artificial.
func checkTerminalOptimal(t *tableau.Tableau, eps float64) error {
	if !t.PrimalFeasible(eps) || !t.DualFeasible(eps) {
		return ErrNotOptimal
	}
	for i, b := range t.Basis {
		if t.Cols[b].Kind == tableau.Artificial && math.Abs(t.RHS(i)) > artTol {
			return ErrNotOptimal
		}
	}

	return nil
}

// objectiveRanges computes per-decision-variable coefficient ranges.
func objectiveRanges(m *lp.Model, t *tableau.Tableau, eps float64) []ObjectiveRange {
	var (
		n   = m.NumVars()
		out = make([]ObjectiveRange, 0, n)
		inf = math.Inf(1)

		// Max-form objective rows store z−c, so perturbing a basic c_j by
		// Δ moves every stored reduced cost by +Δ·a_rk; the min forms
		// (dual and Big-M min) store c−z and move by −Δ·a_rk. The scan
		// below works in the −Δ·a_rk orientation and negates row
		// coefficients on max tableaus to stay in true-coefficient terms.
		flip = t.Dir == lp.Max
	)

	for j := 0; j < n; j++ {
		var (
			c   = m.C(j)
			row = t.BasicRow(j)
			r   = ObjectiveRange{Variable: m.Var(j), Coeff: c, Basic: row >= 0}
		)

		if row < 0 {
			// Non-basic: the own reduced cost bounds one side, the other is free.
			cbar := math.Max(t.Obj[j], 0)
			if m.Direction() == lp.Max {
				r.Lower, r.Upper = math.Inf(-1), c+cbar
				r.AllowableIncrease, r.AllowableDecrease = cbar, inf
			} else {
				r.Lower, r.Upper = c-cbar, inf
				r.AllowableIncrease, r.AllowableDecrease = inf, cbar
			}
			out = append(out, r)

			continue
		}

		// Basic: scan every non-basic, non-artificial column for the
		// tightest Δ keeping c̄_k − Δ·a_rk ≥ 0.
		inc, dec := inf, inf
		for k := 0; k < t.Width(); k++ {
			if k == j || t.BasicRow(k) >= 0 || t.Cols[k].Kind == tableau.Artificial {
				continue
			}
			a := t.Body.At(row, k)
			if flip {
				a = -a
			}
			cbar := math.Max(t.Obj[k], 0)
			switch {
			case a > eps:
				inc = math.Min(inc, cbar/a)
			case a < -eps:
				dec = math.Min(dec, cbar/-a)
			}
		}

		r.AllowableIncrease, r.AllowableDecrease = inc, dec
		r.Lower, r.Upper = math.Inf(-1), inf
		if !math.IsInf(dec, 1) {
			r.Lower = c - dec
		}
		if !math.IsInf(inc, 1) {
			r.Upper = c + inc
		}
		out = append(out, r)
	}

	return out
}

// rhsRanges ratio-tests the recorded B⁻¹ reference column of each
// constraint against the current basic values.
func rhsRanges(m *lp.Model, t *tableau.Tableau, eps float64) []RHSRange {
	var (
		rows = m.NumRows()
		out  = make([]RHSRange, 0, rows)
		inf  = math.Inf(1)
	)

	for i := 0; i < rows; i++ {
		var (
			b        = m.B(i)
			col      = t.RefCol[i]
			sign     = t.RefSign[i]
			inc, dec = inf, inf
		)

		for k := 0; k < rows; k++ {
			coef := sign * t.Body.At(k, col)
			x := t.RHS(k)
			switch {
			case coef > eps:
				dec = math.Min(dec, x/coef)
			case coef < -eps:
				inc = math.Min(inc, x/-coef)
			}
		}

		r := RHSRange{Constraint: i, RHS: b, AllowableIncrease: inc, AllowableDecrease: dec}
		r.Lower, r.Upper = math.Inf(-1), inf
		if !math.IsInf(dec, 1) {
			r.Lower = b - dec
		}
		if !math.IsInf(inc, 1) {
			r.Upper = b + inc
		}
		out = append(out, r)
	}

	return out
}

// shadowPrices reads the dual value of each constraint from the terminal
// objective row under its reference column, removing the −M fold-in for
// artificial columns and undoing the build-time sign bookkeeping, so
// Value is the signed marginal objective change per unit RHS increase.
func shadowPrices(m *lp.Model, t *tableau.Tableau, eps float64) []ShadowPrice {
	rows := m.NumRows()
	out := make([]ShadowPrice, 0, rows)

	for i := 0; i < rows; i++ {
		col := t.RefCol[i]
		raw := t.Obj[col]
		if t.Cols[col].Kind == tableau.Artificial {
			raw -= t.M
		}
		value := raw * t.RefSign[i]
		if t.Dir == lp.Min {
			// The min forms accumulate −z in the objective row.
			value = -value
		}

		sp := ShadowPrice{
			Constraint: i,
			Value:      value,
			Binding:    bindingAt(t, i, eps),
			Column:     t.Cols[col].Name,
		}
		if !sp.Binding {
			// Slack in the row means zero marginal value regardless of noise.
			sp.Value = 0
		}
		out = append(out, sp)
	}

	return out
}

// bindingAt reports whether constraint i holds with equality: its slack or
// surplus variable is non-basic, or basic at a value within eps of zero.
// Equality rows have no slack column and are always binding.
func bindingAt(t *tableau.Tableau, i int, eps float64) bool {
	sc := t.SlackCol[i]
	if sc < 0 {
		return true
	}
	row := t.BasicRow(sc)

	return row < 0 || math.Abs(t.RHS(row)) <= eps
}

// reducedCosts reads the decision columns of the terminal objective row.
func reducedCosts(m *lp.Model, t *tableau.Tableau) []ReducedCost {
	n := m.NumVars()
	out := make([]ReducedCost, 0, n)

	for j := 0; j < n; j++ {
		rc := ReducedCost{Variable: m.Var(j), Basic: t.BasicRow(j) >= 0}
		if !rc.Basic {
			rc.Value = t.Obj[j]
		}
		out = append(out, rc)
	}

	return out
}
