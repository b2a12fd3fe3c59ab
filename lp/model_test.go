package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linprog/tabular/lp"
)

// TestNewModel_BadDirection verifies that a direction outside {Max, Min}
// is rejected before any allocation.
func TestNewModel_BadDirection(t *testing.T) {
	_, err := lp.NewModel(lp.Direction(42), []string{"x1"}, nil)
	assert.ErrorIs(t, err, lp.ErrBadDirection)
}

// TestNewModel_VariableListErrors covers the name↔index table invariants:
// non-empty list, non-empty names, no duplicates.
func TestNewModel_VariableListErrors(t *testing.T) {
	_, err := lp.NewModel(lp.Max, nil, nil)
	assert.ErrorIs(t, err, lp.ErrNoVariables, "empty variable list must error")

	_, err = lp.NewModel(lp.Max, []string{"x1", ""}, nil)
	assert.ErrorIs(t, err, lp.ErrEmptyVariable, "empty name must error")

	_, err = lp.NewModel(lp.Max, []string{"x1", "x1"}, nil)
	assert.ErrorIs(t, err, lp.ErrDuplicateVariable, "duplicate name must error")
}

// TestNewModel_ObjectiveErrors checks rejection of unknown names and
// non-finite coefficients in the objective map.
func TestNewModel_ObjectiveErrors(t *testing.T) {
	_, err := lp.NewModel(lp.Max, []string{"x1"}, map[string]float64{"y": 1})
	assert.ErrorIs(t, err, lp.ErrUnknownVariable)

	_, err = lp.NewModel(lp.Max, []string{"x1"}, map[string]float64{"x1": math.NaN()})
	assert.ErrorIs(t, err, lp.ErrNotFinite)

	_, err = lp.NewModel(lp.Max, []string{"x1"}, map[string]float64{"x1": math.Inf(1)})
	assert.ErrorIs(t, err, lp.ErrNotFinite)
}

// TestNewModel_Accessors verifies the dense index-addressed view: stable
// variable order, omitted coefficients defaulting to 0, direction.
func TestNewModel_Accessors(t *testing.T) {
	m, err := lp.NewModel(lp.Min, []string{"x1", "x2", "x3"}, map[string]float64{"x1": 2, "x3": -1})
	require.NoError(t, err)

	assert.Equal(t, lp.Min, m.Direction())
	assert.Equal(t, 3, m.NumVars())
	assert.Equal(t, []string{"x1", "x2", "x3"}, m.Vars())
	assert.Equal(t, "x2", m.Var(1))
	assert.Equal(t, []float64{2, 0, -1}, m.Objective(), "omitted names contribute 0")

	j, ok := m.Index("x3")
	assert.True(t, ok)
	assert.Equal(t, 2, j)

	_, ok = m.Index("nope")
	assert.False(t, ok)
}

// TestAddConstraint_Errors covers sense, finiteness and name validation
// on the row-ingestion path.
func TestAddConstraint_Errors(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1"}, map[string]float64{"x1": 1})
	require.NoError(t, err)

	assert.ErrorIs(t, m.AddConstraint(map[string]float64{"x1": 1}, lp.Sense(9), 1), lp.ErrBadSense)
	assert.ErrorIs(t, m.AddConstraint(map[string]float64{"x1": 1}, lp.LessEq, math.Inf(-1)), lp.ErrNotFinite)
	assert.ErrorIs(t, m.AddConstraint(map[string]float64{"x1": math.NaN()}, lp.LessEq, 1), lp.ErrNotFinite)
	assert.ErrorIs(t, m.AddConstraint(map[string]float64{"y": 1}, lp.LessEq, 1), lp.ErrUnknownVariable)

	// Nothing half-appended after the failures above.
	assert.Equal(t, 0, m.NumRows())
}

// TestModel_RowsAndValidate exercises the row accessors and the Validate
// structural re-check.
func TestModel_RowsAndValidate(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1", "x2"}, map[string]float64{"x1": 3, "x2": 2})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Validate(), lp.ErrNoConstraints, "constraint-free model must not validate")

	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 2, "x2": 1}, lp.LessEq, 10))
	require.NoError(t, m.AddConstraint(map[string]float64{"x2": 1}, lp.GreaterEq, 1))
	require.NoError(t, m.Validate())

	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 2.0, m.A(0, 0))
	assert.Equal(t, 0.0, m.A(1, 0), "omitted coefficient reads 0")
	assert.Equal(t, lp.GreaterEq, m.Sense(1))
	assert.Equal(t, 10.0, m.B(0))

	row := m.Row(0)
	assert.Equal(t, []float64{2, 1}, row.Coeffs)
	assert.Equal(t, lp.LessEq, row.Sense)
	assert.Equal(t, 10.0, row.RHS)

	// Row hands out a copy; mutating it must not reach the model.
	row.Coeffs[0] = 99
	assert.Equal(t, 2.0, m.A(0, 0))
}

// TestEnum_Strings pins the display forms used in traces and reports.
func TestEnum_Strings(t *testing.T) {
	assert.Equal(t, "max", lp.Max.String())
	assert.Equal(t, "min", lp.Min.String())
	assert.Equal(t, "<=", lp.LessEq.String())
	assert.Equal(t, ">=", lp.GreaterEq.String())
	assert.Equal(t, "=", lp.Equal.String())
}
