// Package dualsimplex: options and sentinel errors for the dual engine.
package dualsimplex

import (
	"errors"

	"github.com/linprog/tabular/tableau"
)

// Sentinel errors returned before the first pivot.
var (
	// ErrNotDualFeasible indicates an objective-row coefficient below −eps;
	// the dual engine requires a dual-feasible starting tableau.
	ErrNotDualFeasible = errors.New("dualsimplex: tableau is not dual-feasible; use Big-M")

	// ErrNotDualForm indicates a tableau not built by tableau.NewDual.
	ErrNotDualForm = errors.New("dualsimplex: tableau is not in dual min form")

	// ErrBadOptions indicates Eps < 0 or MaxIterations < 1.
	ErrBadOptions = errors.New("dualsimplex: invalid options")
)

// Options configures the dual engine; fields mirror the primal engine.
type Options struct {
	Eps           float64
	MaxIterations int
}

// DefaultOptions returns the production defaults (Eps 1e-10, cap 1000).
func DefaultOptions() Options {
	return Options{
		Eps:           tableau.DefaultEps,
		MaxIterations: tableau.DefaultMaxIterations,
	}
}

func (o Options) validate() error {
	if o.Eps < 0 || o.MaxIterations < 1 {
		return ErrBadOptions
	}

	return nil
}
