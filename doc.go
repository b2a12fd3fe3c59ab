// Package tabular is a deterministic toolkit for tableau-based linear
// programming — primal Simplex, Dual Simplex and Big-M pivoting, plus
// post-optimal sensitivity analysis over the terminal tableau.
//
// 🚀 What is tabular?
//
//	A pure-Go library that takes a validated linear model and produces a
//	fully structured numeric solve trace:
//		• lp/          — immutable linear models, name↔index ingestion
//		• tableau/     — initial tableau construction, pivot kernel, step trace
//		• simplex/     — maximization-oriented primal Simplex
//		• dualsimplex/ — minimization-oriented Dual Simplex
//		• bigm/        — Big-M penalty method for ≥ / = constraints
//		• sensitivity/ — shadow prices, reduced costs, allowable ranges
//		• solve/       — method gating rules and the one-call dispatcher
//
// ✨ Why choose tabular?
//
//   - Deterministic – fixed tie-break rules, no randomness, reproducible traces
//   - Structured    – every iteration is a numeric snapshot, never prose
//   - Safe          – one tableau per call, zero shared mutable state
//   - Honest        – infeasible/unbounded/cycling are statuses, not errors
//
// Quick example:
//
//	m, _ := lp.NewModel(lp.Min, []string{"x1", "x2"},
//	    map[string]float64{"x1": 2, "x2": 3})
//	_ = m.AddConstraint(map[string]float64{"x1": 1, "x2": 1}, lp.GreaterEq, 4)
//	_ = m.AddConstraint(map[string]float64{"x1": 2, "x2": 1}, lp.GreaterEq, 5)
//
//	out, err := solve.Solve(m, solve.DualSimplex, solve.DefaultOptions())
//	// out.Status == tableau.StatusOptimal, out.Objective == 8, x1 = 4
//
// The upstream problem normalizer and the downstream report renderer are
// external collaborators: this module consumes numbers and emits numbers.
//
//	go get github.com/linprog/tabular
package tabular
