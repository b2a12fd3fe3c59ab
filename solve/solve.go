// SPDX-License-Identifier: MIT
// Package solve: the unified dispatcher.

package solve

import (
	"github.com/linprog/tabular/bigm"
	"github.com/linprog/tabular/dualsimplex"
	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/sensitivity"
	"github.com/linprog/tabular/simplex"
	"github.com/linprog/tabular/tableau"
)

// Solve validates the request, builds the initial tableau for the chosen
// method, runs the engine to termination, and assembles the output
// contract. On an OPTIMAL tableau outcome the sensitivity report is
// attached; every terminal status carries the full accumulated trace.
//
// Each invocation is a pure, synchronous, single-threaded computation
// over the immutable model: arbitrary concurrent calls are safe. Callers
// needing early termination must impose an external deadline; the only
// intrinsic bound is Options.MaxIterations.
//
// Errors are strictly the validation/precondition class; infeasible,
// unbounded and cycling outcomes are statuses on the Outcome.
func Solve(m *lp.Model, method Method, opts Options) (*Outcome, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := Validate(m, method); err != nil {
		return nil, err
	}

	var (
		t   *tableau.Tableau
		res tableau.Result
		err error
	)

	switch method {
	case Simplex:
		if t, err = tableau.NewPrimal(m); err == nil {
			res, err = simplex.Solve(t, simplex.Options{Eps: opts.Eps, MaxIterations: opts.MaxIterations})
		}
	case DualSimplex:
		if t, err = tableau.NewDual(m); err == nil {
			res, err = dualsimplex.Solve(t, dualsimplex.Options{Eps: opts.Eps, MaxIterations: opts.MaxIterations})
		}
	case BigM:
		if t, err = tableau.NewBigM(m, opts.BigM); err == nil {
			res, err = bigm.Solve(t, bigm.Options{Eps: opts.Eps, MaxIterations: opts.MaxIterations, FeasTol: bigm.DefaultFeasTol})
		}
	case Graphical:
		return nil, ErrGraphicalNotSupported
	}
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Method:     method,
		Status:     res.Status,
		Iterations: res.Iterations,
		Steps:      res.Steps,
	}
	if res.Status != tableau.StatusOptimal {
		return out, nil
	}

	obj := res.Objective
	out.Objective = &obj
	out.Variables = make(map[string]float64, m.NumVars())
	for j, v := range res.Values {
		out.Variables[m.Var(j)] = v
	}

	report, err := sensitivity.Analyze(m, res.Final, sensitivity.Options{Eps: opts.Eps})
	if err != nil {
		return nil, err
	}
	out.Sensitivity = report

	return out, nil
}
