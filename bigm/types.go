// Package bigm: options and sentinel errors for the Big-M engine.
package bigm

import (
	"errors"

	"github.com/linprog/tabular/tableau"
)

// DefaultFeasTol is the residual-artificial tolerance: a basic artificial
// with |value| ≤ DefaultFeasTol counts as driven out.
const DefaultFeasTol = 1e-4

// Sentinel errors returned before the first pivot.
var (
	// ErrNotBigMForm indicates a tableau not built by tableau.NewBigM
	// (no penalty constant recorded).
	ErrNotBigMForm = errors.New("bigm: tableau is not in Big-M form")

	// ErrBadOptions indicates Eps < 0, MaxIterations < 1, or FeasTol ≤ 0.
	ErrBadOptions = errors.New("bigm: invalid options")
)

// Options configures the Big-M engine.
//
// Eps           – pivot/sign tolerance, as in the other engines.
// MaxIterations – pivot cap; exceeding it yields StatusCyclingLimit.
// FeasTol       – residual-artificial tolerance for the mandatory
//
//	infeasibility check (looser than Eps on purpose).
type Options struct {
	Eps           float64
	MaxIterations int
	FeasTol       float64
}

// DefaultOptions returns the production defaults
// (Eps 1e-10, cap 1000, FeasTol 1e-4).
func DefaultOptions() Options {
	return Options{
		Eps:           tableau.DefaultEps,
		MaxIterations: tableau.DefaultMaxIterations,
		FeasTol:       DefaultFeasTol,
	}
}

func (o Options) validate() error {
	if o.Eps < 0 || o.MaxIterations < 1 || o.FeasTol <= 0 {
		return ErrBadOptions
	}

	return nil
}
