package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/tableau"
)

// TestPivot_CanonicalizesColumn: after Pivot(r, c) the pivot cell is
// exactly 1 and every other cell of column c (objective row included) is
// exactly 0 — written, not computed, so no residue survives.
func TestPivot_CanonicalizesColumn(t *testing.T) {
	tab, err := tableau.NewPrimal(maxModel(t))
	require.NoError(t, err)

	op, err := tab.Pivot(0, 0, tableau.DefaultEps)
	require.NoError(t, err)
	assert.Equal(t, tableau.PivotOperation{Row: 0, Col: 0, Value: 2}, op)

	// Row 0 normalized by the pivot value 2.
	assert.Equal(t, []float64{1, 0.5, 0.5, 0, 5}, tab.Body.RawRowView(0))
	// Row 1 and the objective row eliminated to exact zeros.
	assert.Equal(t, []float64{0, 1.5, -0.5, 1, 3}, tab.Body.RawRowView(1))
	assert.Equal(t, []float64{0, -0.5, 1.5, 0, 15}, tab.Obj)

	assert.Equal(t, 0, tab.Basis[0], "entering column becomes basic in the pivot row")
	assert.Equal(t, []string{"x1", "s2"}, tab.RowLabels())
}

// TestPivot_OutOfRange rejects coordinates outside the tableau.
func TestPivot_OutOfRange(t *testing.T) {
	tab, err := tableau.NewPrimal(maxModel(t))
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 4}} {
		_, err := tab.Pivot(rc[0], rc[1], tableau.DefaultEps)
		assert.ErrorIs(t, err, tableau.ErrPivotOutOfRange, "row=%d col=%d", rc[0], rc[1])
	}
}

// TestPivot_ZeroElement rejects a pivot value within tolerance of zero
// without touching the tableau.
func TestPivot_ZeroElement(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1", "x2"}, map[string]float64{"x1": 1})
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 1}, lp.LessEq, 4))

	tab, err := tableau.NewPrimal(m)
	require.NoError(t, err)

	_, err = tab.Pivot(0, 1, tableau.DefaultEps) // x2 coefficient is 0
	assert.ErrorIs(t, err, tableau.ErrZeroPivot)
	assert.Equal(t, []float64{1, 0, 1, 4}, tab.Body.RawRowView(0), "failed pivot must not mutate")
}

// TestFrame_DoesNotAlias: snapshots stay frozen while the live tableau
// keeps pivoting.
func TestFrame_DoesNotAlias(t *testing.T) {
	tab, err := tableau.NewPrimal(maxModel(t))
	require.NoError(t, err)

	frame := tab.Frame()
	_, err = tab.Pivot(0, 0, tableau.DefaultEps)
	require.NoError(t, err)

	assert.Equal(t, 2.0, frame.Body.At(0, 0), "frame keeps the pre-pivot value")
	assert.Equal(t, -3.0, frame.Obj[0])
	assert.Equal(t, []int{2, 3}, frame.Basis)
	assert.Equal(t, 1.0, tab.Body.At(0, 0), "live tableau moved on")
}

// TestTableau_ValueReaders covers the solution-reading helpers on a
// hand-pivoted optimal tableau.
func TestTableau_ValueReaders(t *testing.T) {
	tab, err := tableau.NewPrimal(maxModel(t))
	require.NoError(t, err)

	// Two pivots to the known optimum x1=4, x2=2, z=16.
	_, err = tab.Pivot(0, 0, tableau.DefaultEps)
	require.NoError(t, err)
	_, err = tab.Pivot(1, 1, tableau.DefaultEps)
	require.NoError(t, err)

	assert.True(t, tab.PrimalFeasible(tableau.DefaultEps))
	assert.True(t, tab.DualFeasible(tableau.DefaultEps))
	assert.InDelta(t, 16, tab.ObjectiveValue(), 1e-9)
	values := tab.DecisionValues(2)
	assert.InDelta(t, 4, values[0], 1e-9)
	assert.InDelta(t, 2, values[1], 1e-9)

	assert.Equal(t, 0, tab.BasicRow(0))
	assert.Equal(t, 1, tab.BasicRow(1))
	assert.Equal(t, -1, tab.BasicRow(2), "slack s1 left the basis")
}

// TestStatus_Strings pins the terminal status display forms.
func TestStatus_Strings(t *testing.T) {
	assert.Equal(t, "OPTIMAL", tableau.StatusOptimal.String())
	assert.Equal(t, "INFEASIBLE", tableau.StatusInfeasible.String())
	assert.Equal(t, "UNBOUNDED", tableau.StatusUnbounded.String())
	assert.Equal(t, "CYCLING_LIMIT", tableau.StatusCyclingLimit.String())
}
