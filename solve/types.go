// SPDX-License-Identifier: MIT
// Package solve: method enum, options, sentinel errors, output contract.

package solve

import (
	"errors"

	"github.com/linprog/tabular/sensitivity"
	"github.com/linprog/tabular/tableau"
)

// Sentinel errors (validation class — raised before any computation).
var (
	// ErrUnknownMethod indicates a method outside the closed enum.
	ErrUnknownMethod = errors.New("solve: unknown method")

	// ErrMethodForDirection indicates a method the rule table forbids for
	// the model's objective direction (min permits only dual_simplex and
	// big_m).
	ErrMethodForDirection = errors.New("solve: method not applicable to objective direction")

	// ErrTooManyVariables indicates Graphical requested for a model with
	// more than two decision variables.
	ErrTooManyVariables = errors.New("solve: graphical method requires at most 2 variables")

	// ErrGraphicalNotSupported indicates a valid Graphical request: the
	// geometric solver is the excluded visualization collaborator, not
	// part of this module.
	ErrGraphicalNotSupported = errors.New("solve: graphical solving is delegated to the visualization layer")

	// ErrBadOptions indicates inconsistent solver options.
	ErrBadOptions = errors.New("solve: invalid options")
)

// Method identifies one solving method in the selector rule table.
type Method int

const (
	// Simplex is the primal tableau method (maximization, ≤ rows).
	Simplex Method = iota

	// Graphical is the 2-variable geometric method, delegated to the
	// excluded visualization collaborator; the selector only gates it.
	Graphical

	// DualSimplex is the dual tableau method (minimization, ≥/≤ rows).
	DualSimplex

	// BigM is the artificial-variable penalty method (both directions).
	BigM
)

// String implements fmt.Stringer with the external method identifiers.
func (m Method) String() string {
	switch m {
	case Simplex:
		return "simplex"
	case Graphical:
		return "graphical"
	case DualSimplex:
		return "dual_simplex"
	case BigM:
		return "big_m"
	default:
		return "method(?)"
	}
}

// ParseMethod maps an external method identifier onto the enum.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "simplex":
		return Simplex, nil
	case "graphical":
		return Graphical, nil
	case "dual_simplex":
		return DualSimplex, nil
	case "big_m":
		return BigM, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Options is the read-only configuration of one solve invocation, fixed
// before any pivoting starts.
//
// Eps           – zero tolerance for all sign tests (default 1e-10).
// MaxIterations – cycling guard (default 1000).
// BigM          – artificial penalty constant (default 1e6); see
//
//	tableau.NewBigM for the magnitude trade-off.
type Options struct {
	Eps           float64
	MaxIterations int
	BigM          float64
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Eps:           tableau.DefaultEps,
		MaxIterations: tableau.DefaultMaxIterations,
		BigM:          tableau.DefaultBigM,
	}
}

func (o Options) validate() error {
	if o.Eps < 0 || o.MaxIterations < 1 || o.BigM <= 0 {
		return ErrBadOptions
	}

	return nil
}

// Outcome is the module's output contract: terminal status, nullable
// objective value, name-keyed variable values, iteration count (recorded
// snapshots, initial included), the ordered step trace, and — only when
// Status is OPTIMAL under a tableau method — the sensitivity report.
type Outcome struct {
	Method      Method
	Status      tableau.Status
	Objective   *float64
	Variables   map[string]float64
	Iterations  int
	Steps       []tableau.Snapshot
	Sensitivity *sensitivity.Report
}
