// SPDX-License-Identifier: MIT
// Package sensitivity: report types, options and sentinel errors.

package sensitivity

import (
	"errors"

	"github.com/linprog/tabular/tableau"
)

// Sentinel errors.
var (
	// ErrNotOptimal indicates the tableau is not a terminal optimal state:
	// infeasible rows, a failed optimality test, or a residual artificial.
	ErrNotOptimal = errors.New("sensitivity: tableau is not terminal-optimal")

	// ErrModelMismatch indicates the model and tableau disagree on
	// dimensions (they must come from the same solve call).
	ErrModelMismatch = errors.New("sensitivity: model does not match tableau")

	// ErrBadOptions indicates a negative Eps.
	ErrBadOptions = errors.New("sensitivity: invalid options")
)

// artTol is the residual-artificial tolerance for the state re-check,
// matching the Big-M engine's feasibility tolerance.
const artTol = 1e-4

// Options configures the analyzer. Eps is the zero tolerance for sign
// tests and binding detection (default tableau.DefaultEps).
type Options struct {
	Eps float64
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options { return Options{Eps: tableau.DefaultEps} }

// ObjectiveRange is the admissible range of one decision variable's
// objective coefficient under the current optimal basis. Unbounded
// directions carry ±Inf bounds and +Inf allowances.
type ObjectiveRange struct {
	Variable          string
	Coeff             float64 // current coefficient c_j
	Lower             float64
	Upper             float64
	AllowableIncrease float64
	AllowableDecrease float64
	Basic             bool
}

// RHSRange is the admissible range of one constraint's right-hand side
// under the current optimal basis.
type RHSRange struct {
	Constraint        int // constraint index in model order
	RHS               float64
	Lower             float64
	Upper             float64
	AllowableIncrease float64
	AllowableDecrease float64
}

// ShadowPrice is the marginal objective value of relaxing one constraint,
// read from the terminal objective row. Value is signed: the objective
// change per unit increase of the constraint's RHS. Binding reports
// whether the constraint holds with equality at the optimum.
type ShadowPrice struct {
	Constraint int
	Value      float64
	Binding    bool
	Column     string // label of the slack/artificial column consulted
}

// ReducedCost is one decision variable's terminal objective-row value;
// 0 for basic variables by invariant.
type ReducedCost struct {
	Variable string
	Value    float64
	Basic    bool
}

// Report bundles the full sensitivity output in model order.
type Report struct {
	ObjectiveRanges []ObjectiveRange
	RHSRanges       []RHSRange
	ShadowPrices    []ShadowPrice
	ReducedCosts    []ReducedCost
}
