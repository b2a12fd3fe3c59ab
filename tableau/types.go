// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set, numeric defaults, and core types.
// All factories and the pivot kernel return ONLY these sentinels; callers
// match them via errors.Is. Panics are reserved for programmer errors.

package tableau

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/linprog/tabular/lp"
)

// Numeric policy shared by every engine.
const (
	// DefaultEps treats |v| ≤ DefaultEps as zero in all sign tests.
	DefaultEps = 1e-10

	// DefaultMaxIterations caps pivoting as the cycling guard.
	DefaultMaxIterations = 1000

	// DefaultBigM is the artificial-variable penalty. It must dominate every
	// legitimate coefficient by at least an order of magnitude; excessively
	// large values degrade conditioning. This is a documented configuration
	// risk — no two-phase fallback exists in this module.
	DefaultBigM = 1e6
)

// Sentinel errors for tableau construction and pivoting.
var (
	// ErrNilTableau indicates a nil *Tableau was passed to an engine or helper.
	ErrNilTableau = errors.New("tableau: nil tableau")

	// ErrDirectionForMethod indicates the model's objective direction does
	// not fit the requested factory (primal form is maximization-oriented,
	// dual form minimization-oriented).
	ErrDirectionForMethod = errors.New("tableau: objective direction not supported by method")

	// ErrSenseForMethod indicates a constraint sense the requested factory
	// cannot canonicalize (e.g. ≥ or = rows in the plain primal form).
	ErrSenseForMethod = errors.New("tableau: constraint sense not supported by method")

	// ErrEqualityNeedsArtificial indicates an = row reached the dual
	// factory; equalities require an artificial basis, i.e. Big-M.
	ErrEqualityNeedsArtificial = errors.New("tableau: equality constraint requires an artificial variable")

	// ErrBadBigM indicates a non-positive (or NaN) Big-M penalty constant.
	ErrBadBigM = errors.New("tableau: Big-M constant must be positive")

	// ErrPivotOutOfRange indicates pivot coordinates outside the tableau.
	ErrPivotOutOfRange = errors.New("tableau: pivot coordinates out of range")

	// ErrZeroPivot indicates a pivot element within tolerance of zero;
	// dividing by it would destroy the canonical form.
	ErrZeroPivot = errors.New("tableau: pivot element is zero within tolerance")
)

// ColumnKind classifies a tableau column.
type ColumnKind int

const (
	// Decision is an original model variable column.
	Decision ColumnKind = iota

	// Slack is a +1 column converting ≤ into =.
	Slack

	// Surplus is a −1 column converting ≥ into = (Big-M form).
	Surplus

	// Artificial is a +1 penalty column providing the initial basis for
	// ≥ / = rows under Big-M.
	Artificial
)

// String implements fmt.Stringer for ColumnKind.
func (k ColumnKind) String() string {
	switch k {
	case Decision:
		return "decision"
	case Slack:
		return "slack"
	case Surplus:
		return "surplus"
	case Artificial:
		return "artificial"
	default:
		return "kind(?)"
	}
}

// Column labels one tableau column: its display name, its kind, and — for
// slack/surplus/artificial columns — the constraint that owns it
// (Constraint is −1 for decision columns).
type Column struct {
	Name       string
	Kind       ColumnKind
	Constraint int
}

// PivotOperation fully determines one state transition:
// the pivot row, the entering column, and the pivot element value.
type PivotOperation struct {
	Row   int
	Col   int
	Value float64
}

// Tableau is the canonical working form of one solve call.
//
// Body is m × (width+1): the structural rows with the RHS in the last
// column. Obj is the objective row of length width+1 (same layout). Basis
// maps each row to its basic column. Cols labels the width non-RHS columns.
//
// The remaining fields are factory bookkeeping consumed by sensitivity:
// RefCol/RefSign record, per original constraint, which terminal column is
// the image of B⁻¹eᵢ and with which sign (rows negated at build time flip
// it); SlackCol is the constraint's slack/surplus column, −1 for equalities;
// Negated marks rows multiplied by −1 during canonicalization.
type Tableau struct {
	Body  *mat.Dense
	Obj   []float64
	Basis []int
	Cols  []Column

	Dir lp.Direction
	M   float64 // Big-M penalty; 0 unless built by NewBigM

	RefCol   []int
	RefSign  []float64
	SlackCol []int
	Negated  []bool
}

// NumRows reports m, the number of structural rows.
func (t *Tableau) NumRows() int {
	r, _ := t.Body.Dims()

	return r
}

// Width reports the number of non-RHS columns.
func (t *Tableau) Width() int { return len(t.Cols) }

// NumDecisions reports n, the count of leading decision columns.
func (t *Tableau) NumDecisions() int {
	n := 0
	for _, c := range t.Cols {
		if c.Kind != Decision {
			break
		}
		n++
	}

	return n
}

// RHS reports the right-hand-side value of row i.
func (t *Tableau) RHS(i int) float64 { return t.Body.At(i, t.Width()) }

// ObjRHS reports the objective-row RHS cell (sign convention internal;
// use ObjectiveValue for the model-facing number).
func (t *Tableau) ObjRHS() float64 { return t.Obj[t.Width()] }

// ObjectiveValue reports the current objective value in the model's own
// direction, hiding the internal sign convention: the z-row RHS accumulates
// +z for maximization forms and −z for minimization forms.
func (t *Tableau) ObjectiveValue() float64 {
	if t.Dir == lp.Min {
		return -t.ObjRHS()
	}

	return t.ObjRHS()
}

// PrimalFeasible reports whether every RHS is ≥ −eps.
func (t *Tableau) PrimalFeasible(eps float64) bool {
	for i := 0; i < t.NumRows(); i++ {
		if t.RHS(i) < -eps {
			return false
		}
	}

	return true
}

// DualFeasible reports whether every objective-row coefficient is ≥ −eps.
func (t *Tableau) DualFeasible(eps float64) bool {
	for j := 0; j < t.Width(); j++ {
		if t.Obj[j] < -eps {
			return false
		}
	}

	return true
}

// DecisionValues reads the decision-variable values off the RHS column:
// v[j] = RHS of the row whose basis is column j, 0 for non-basic columns.
// n is the number of decision variables (leading columns).
func (t *Tableau) DecisionValues(n int) []float64 {
	v := make([]float64, n)
	for i, b := range t.Basis {
		if b < n {
			v[b] = t.RHS(i)
		}
	}

	return v
}

// BasicRow reports the row in which column j is basic, or −1.
func (t *Tableau) BasicRow(j int) int {
	for i, b := range t.Basis {
		if b == j {
			return i
		}
	}

	return -1
}

// ColumnLabels returns the column names followed by the "RHS" label,
// matching Body's column layout.
func (t *Tableau) ColumnLabels() []string {
	out := make([]string, 0, len(t.Cols)+1)
	for _, c := range t.Cols {
		out = append(out, c.Name)
	}

	return append(out, "RHS")
}

// RowLabels returns the current basic-variable name per row.
func (t *Tableau) RowLabels() []string {
	out := make([]string, len(t.Basis))
	for i, b := range t.Basis {
		out[i] = t.Cols[b].Name
	}

	return out
}

// Frame returns a deep copy of the mutable state (body, objective row,
// basis) for step snapshots. The copy never aliases the live tableau.
func (t *Tableau) Frame() Frame {
	obj := make([]float64, len(t.Obj))
	copy(obj, t.Obj)
	basis := make([]int, len(t.Basis))
	copy(basis, t.Basis)

	return Frame{Body: mat.DenseCopyOf(t.Body), Obj: obj, Basis: basis}
}
