// Package lp: enums and sentinel errors for linear-model construction.
package lp

import "errors"

// Sentinel errors returned by model construction and validation.
// All are matched with errors.Is; none wrap further context.
var (
	// ErrNoVariables indicates an empty decision-variable list (n must be ≥ 1).
	ErrNoVariables = errors.New("lp: model has no decision variables")

	// ErrEmptyVariable indicates an empty variable name in the variable list.
	ErrEmptyVariable = errors.New("lp: empty variable name")

	// ErrDuplicateVariable indicates the same name appears twice in the
	// variable list; the name↔index table must be a bijection.
	ErrDuplicateVariable = errors.New("lp: duplicate variable name")

	// ErrUnknownVariable indicates a coefficient map references a name that
	// is not in the model's variable list.
	ErrUnknownVariable = errors.New("lp: unknown variable in coefficients")

	// ErrBadDirection indicates an objective direction outside {Max, Min}.
	ErrBadDirection = errors.New("lp: invalid objective direction")

	// ErrBadSense indicates a constraint sense outside {LessEq, GreaterEq, Equal}.
	ErrBadSense = errors.New("lp: invalid constraint sense")

	// ErrNoConstraints indicates a model with zero structural constraints;
	// tableau methods need at least one row.
	ErrNoConstraints = errors.New("lp: model has no constraints")

	// ErrNotFinite indicates a NaN or ±Inf coefficient or RHS value.
	ErrNotFinite = errors.New("lp: NaN or Inf in model data")

	// ErrDimensionMismatch indicates an internally inconsistent model
	// (a coefficient row whose length differs from the variable count).
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")
)

// Direction is the optimization direction of the objective function.
type Direction int

const (
	// Max maximizes c·x.
	Max Direction = iota

	// Min minimizes c·x.
	Min
)

// String implements fmt.Stringer for Direction.
func (d Direction) String() string {
	switch d {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "direction(?)"
	}
}

// Sense is the relation of one constraint row: Aᵢ·x ⋈ bᵢ.
type Sense int

const (
	// LessEq is Aᵢ·x ≤ bᵢ.
	LessEq Sense = iota

	// GreaterEq is Aᵢ·x ≥ bᵢ.
	GreaterEq

	// Equal is Aᵢ·x = bᵢ.
	Equal
)

// String implements fmt.Stringer for Sense.
func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "sense(?)"
	}
}

// Constraint is one read-only row snapshot returned by Model.Row.
// Coeffs is a fresh copy; mutating it does not touch the model.
type Constraint struct {
	Coeffs []float64 // length n, aligned with Model.Vars()
	Sense  Sense
	RHS    float64
}
