// SPDX-License-Identifier: MIT
// Package solve: the MethodSelector rule table. No pivoting happens here.

package solve

import "github.com/linprog/tabular/lp"

// Validate gates a requested method against the model's shape before any
// tableau work: minimization permits only DualSimplex and BigM; Graphical
// is capped at two decision variables. A nil error means the request may
// proceed to the factory (which can still reject constraint senses its
// form cannot canonicalize).
func Validate(m *lp.Model, method Method) error {
	if err := m.Validate(); err != nil {
		return err
	}
	switch method {
	case Simplex, Graphical, DualSimplex, BigM:
	default:
		return ErrUnknownMethod
	}

	if m.Direction() == lp.Min && method != DualSimplex && method != BigM {
		return ErrMethodForDirection
	}
	if method == Graphical && m.NumVars() > 2 {
		return ErrTooManyVariables
	}

	return nil
}

// Recommend reports the methods applicable to the model plus, for each
// inapplicable one, a short machine-readable reason. BigM is always
// applicable; for minimization models that fail dual eligibility it is
// the recommended fallback.
func Recommend(m *lp.Model) ([]Method, map[Method]string) {
	reasons := make(map[Method]string)
	var ok []Method

	if err := m.Validate(); err != nil {
		return nil, map[Method]string{Simplex: err.Error()}
	}

	if m.Direction() == lp.Min {
		reasons[Simplex] = "objective is min"
		reasons[Graphical] = "objective is min"
		if reason := dualIneligible(m); reason != "" {
			reasons[DualSimplex] = reason
		} else {
			ok = append(ok, DualSimplex)
		}

		return append(ok, BigM), reasons
	}

	if reason := primalIneligible(m); reason != "" {
		reasons[Simplex] = reason
	} else {
		ok = append(ok, Simplex)
	}
	if m.NumVars() > 2 {
		reasons[Graphical] = "more than 2 variables"
	} else {
		ok = append(ok, Graphical)
	}
	reasons[DualSimplex] = "objective is max"

	return append(ok, BigM), reasons
}

// dualIneligible reports why DualSimplex cannot start on a min model:
// every constraint must be expressible as an inequality (no = rows) and
// the cost row must already be dual-feasible after sign normalization.
func dualIneligible(m *lp.Model) string {
	for i := 0; i < m.NumRows(); i++ {
		if m.Sense(i) == lp.Equal {
			return "equality constraint requires artificial variables"
		}
	}
	for j := 0; j < m.NumVars(); j++ {
		if m.C(j) < 0 {
			return "negative objective coefficient breaks dual feasibility"
		}
	}

	return ""
}

// primalIneligible reports why plain primal Simplex cannot start on a max
// model: its canonical form admits only ≤ rows with a slack basis.
func primalIneligible(m *lp.Model) string {
	for i := 0; i < m.NumRows(); i++ {
		if m.Sense(i) != lp.LessEq {
			return "non-≤ constraint requires artificial variables"
		}
	}

	return ""
}
