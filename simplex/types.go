// Package simplex: options and sentinel errors for the primal engine.
package simplex

import (
	"errors"

	"github.com/linprog/tabular/tableau"
)

// Sentinel errors returned before the first pivot. Terminal outcomes
// (unbounded, cycling cap) are statuses on the Result, not errors.
var (
	// ErrNotPrimalFeasible indicates a starting tableau with RHS < −eps;
	// the primal engine requires a primal-feasible origin basis.
	ErrNotPrimalFeasible = errors.New("simplex: tableau is not primal-feasible; use dual simplex or Big-M")

	// ErrNotMaxForm indicates a tableau not built by tableau.NewPrimal
	// (wrong direction for the maximization-oriented engine).
	ErrNotMaxForm = errors.New("simplex: tableau is not in primal max form")

	// ErrBadOptions indicates Eps < 0 or MaxIterations < 1.
	ErrBadOptions = errors.New("simplex: invalid options")
)

// Options configures the primal engine.
//
// Eps           – numeric tolerance: |v| ≤ Eps counts as zero in sign tests.
// MaxIterations – pivot cap; exceeding it yields StatusCyclingLimit.
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

// validate rejects nonsensical option combinations.
func (o Options) validate() error {
	if o.Eps < 0 || o.MaxIterations < 1 {
		return ErrBadOptions
	}

	return nil
}
