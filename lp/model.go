// Package lp: immutable Model construction from name-keyed input.
package lp

import "math"

// Model is a validated, immutable linear program in index-addressed form.
//
// Construct with NewModel, add rows with AddConstraint, then hand the model
// to a tableau factory. All accessors are safe for concurrent use; nothing
// in this struct mutates after AddConstraint returns.
type Model struct {
	dir   Direction
	vars  []string       // stable variable order, index j ↔ vars[j]
	index map[string]int // name → column index, inverse of vars
	c     []float64      // objective coefficients, length n

	rows   [][]float64 // constraint coefficient rows, each length n
	senses []Sense
	rhs    []float64
}

// NewModel builds a model with the given direction, variable order and
// name-keyed objective coefficients. Variables absent from the objective
// map get coefficient 0; names in the map but not in vars are rejected.
//
// Errors: ErrBadDirection, ErrNoVariables, ErrEmptyVariable,
// ErrDuplicateVariable, ErrUnknownVariable, ErrNotFinite.
//
// Complexity: O(n).
func NewModel(dir Direction, vars []string, objective map[string]float64) (*Model, error) {
	if dir != Max && dir != Min {
		return nil, ErrBadDirection
	}
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	// Freeze the name↔index table.
	index := make(map[string]int, len(vars))
	order := make([]string, len(vars))
	for j, name := range vars {
		if name == "" {
			return nil, ErrEmptyVariable
		}
		if _, dup := index[name]; dup {
			return nil, ErrDuplicateVariable
		}
		index[name] = j
		order[j] = name
	}

	c, err := toRow(index, objective)
	if err != nil {
		return nil, err
	}

	return &Model{dir: dir, vars: order, index: index, c: c}, nil
}

// AddConstraint appends one structural row Aᵢ·x ⋈ rhs. Coefficients are
// name-keyed; omitted variables contribute 0. Non-negativity rows must not
// be passed here — x ≥ 0 is implicit for every variable.
//
// Errors: ErrBadSense, ErrUnknownVariable, ErrNotFinite.
//
// Complexity: O(n).
func (m *Model) AddConstraint(coeffs map[string]float64, sense Sense, rhs float64) error {
	if sense != LessEq && sense != GreaterEq && sense != Equal {
		return ErrBadSense
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return ErrNotFinite
	}
	row, err := toRow(m.index, coeffs)
	if err != nil {
		return err
	}

	m.rows = append(m.rows, row)
	m.senses = append(m.senses, sense)
	m.rhs = append(m.rhs, rhs)

	return nil
}

// Validate re-checks the structural invariants: n ≥ 1, at least one
// constraint, and every row of length exactly n. Construction already
// guarantees these; factories call Validate as their first stage so a
// hand-rolled or corrupted Model cannot reach pivoting.
func (m *Model) Validate() error {
	if m == nil || len(m.vars) == 0 {
		return ErrNoVariables
	}
	if len(m.c) != len(m.vars) {
		return ErrDimensionMismatch
	}
	if len(m.rows) == 0 {
		return ErrNoConstraints
	}
	if len(m.senses) != len(m.rows) || len(m.rhs) != len(m.rows) {
		return ErrDimensionMismatch
	}
	for _, row := range m.rows {
		if len(row) != len(m.vars) {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Direction reports the objective direction.
func (m *Model) Direction() Direction { return m.dir }

// NumVars reports n, the number of decision variables.
func (m *Model) NumVars() int { return len(m.vars) }

// NumRows reports m, the number of structural constraints.
func (m *Model) NumRows() int { return len(m.rows) }

// Var reports the name of decision variable j. Panics on out-of-range j:
// index arithmetic inside this module is programmer territory, not input.
func (m *Model) Var(j int) string { return m.vars[j] }

// Vars returns a fresh copy of the stable variable order.
func (m *Model) Vars() []string {
	out := make([]string, len(m.vars))
	copy(out, m.vars)

	return out
}

// Index reports the column index of a variable name.
func (m *Model) Index(name string) (int, bool) {
	j, ok := m.index[name]

	return j, ok
}

// C reports the objective coefficient of variable j.
func (m *Model) C(j int) float64 { return m.c[j] }

// Objective returns a fresh copy of the objective coefficient vector.
func (m *Model) Objective() []float64 {
	out := make([]float64, len(m.c))
	copy(out, m.c)

	return out
}

// A reports the coefficient of variable j in constraint i.
func (m *Model) A(i, j int) float64 { return m.rows[i][j] }

// Sense reports the relation of constraint i.
func (m *Model) Sense(i int) Sense { return m.senses[i] }

// B reports the right-hand side of constraint i.
func (m *Model) B(i int) float64 { return m.rhs[i] }

// Row returns a read-only snapshot of constraint i with a copied row.
func (m *Model) Row(i int) Constraint {
	row := make([]float64, len(m.rows[i]))
	copy(row, m.rows[i])

	return Constraint{Coeffs: row, Sense: m.senses[i], RHS: m.rhs[i]}
}

// toRow converts a name-keyed coefficient map into a dense index-addressed
// row of length n, rejecting unknown names and non-finite values.
func toRow(index map[string]int, coeffs map[string]float64) ([]float64, error) {
	row := make([]float64, len(index))
	for name, v := range coeffs {
		j, ok := index[name]
		if !ok {
			return nil, ErrUnknownVariable
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNotFinite
		}
		row[j] = v
	}

	return row, nil
}
