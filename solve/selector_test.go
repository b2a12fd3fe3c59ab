package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/solve"
)

// TestValidate_RuleTable walks the direction/arity gate without building
// any tableau.
func TestValidate_RuleTable(t *testing.T) {
	min2 := coverModel(t) // min, 2 vars

	max3, err := lp.NewModel(lp.Max, []string{"x1", "x2", "x3"}, map[string]float64{"x1": 1})
	require.NoError(t, err)
	require.NoError(t, max3.AddConstraint(map[string]float64{"x1": 1}, lp.LessEq, 1))

	cases := []struct {
		name   string
		model  *lp.Model
		method solve.Method
		want   error
	}{
		{"min rejects simplex", min2, solve.Simplex, solve.ErrMethodForDirection},
		{"min rejects graphical", min2, solve.Graphical, solve.ErrMethodForDirection},
		{"min allows dual", min2, solve.DualSimplex, nil},
		{"min allows big-m", min2, solve.BigM, nil},
		{"max allows simplex", max3, solve.Simplex, nil},
		{"max 3 vars rejects graphical", max3, solve.Graphical, solve.ErrTooManyVariables},
		{"unknown method", max3, solve.Method(7), solve.ErrUnknownMethod},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := solve.Validate(tc.model, tc.method)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidate_InvalidModel: the selector refuses models that fail
// structural validation regardless of method.
func TestValidate_InvalidModel(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1"}, map[string]float64{"x1": 1})
	require.NoError(t, err) // no constraints

	assert.ErrorIs(t, solve.Validate(m, solve.Simplex), lp.ErrNoConstraints)
}

// TestRecommend_MinEligibleForDual: a dual-ready minimization model
// recommends both tableau methods and explains the max-only ones.
func TestRecommend_MinEligibleForDual(t *testing.T) {
	methods, reasons := solve.Recommend(coverModel(t))

	assert.Equal(t, []solve.Method{solve.DualSimplex, solve.BigM}, methods)
	assert.Contains(t, reasons, solve.Simplex)
	assert.Contains(t, reasons, solve.Graphical)
	assert.NotContains(t, reasons, solve.DualSimplex)
}

// TestRecommend_MinNeedsArtificials: an equality row disqualifies the
// dual form, leaving Big-M as the only engine.
func TestRecommend_MinNeedsArtificials(t *testing.T) {
	m, err := lp.NewModel(lp.Min, []string{"x1", "x2"}, map[string]float64{"x1": 1, "x2": 1})
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 1, "x2": 1}, lp.Equal, 5))

	methods, reasons := solve.Recommend(m)

	assert.Equal(t, []solve.Method{solve.BigM}, methods)
	assert.Contains(t, reasons[solve.DualSimplex], "equality")
}

// TestRecommend_MinNegativeCost: a negative cost coefficient breaks the
// dual-feasible start, again falling back to Big-M.
func TestRecommend_MinNegativeCost(t *testing.T) {
	m, err := lp.NewModel(lp.Min, []string{"x1"}, map[string]float64{"x1": -2})
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 1}, lp.GreaterEq, 1))

	methods, reasons := solve.Recommend(m)

	assert.Equal(t, []solve.Method{solve.BigM}, methods)
	assert.Contains(t, reasons[solve.DualSimplex], "negative objective coefficient")
}

// TestRecommend_MaxSmall: a two-variable all-≤ max model is eligible for
// everything except the dual form.
func TestRecommend_MaxSmall(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1", "x2"}, map[string]float64{"x1": 3, "x2": 2})
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 1, "x2": 1}, lp.LessEq, 4))

	methods, reasons := solve.Recommend(m)

	assert.Equal(t, []solve.Method{solve.Simplex, solve.Graphical, solve.BigM}, methods)
	assert.Contains(t, reasons[solve.DualSimplex], "max")
}

// TestRecommend_MaxMixedSenses: a ≥ row pushes a max model off the plain
// primal path.
func TestRecommend_MaxMixedSenses(t *testing.T) {
	m, err := lp.NewModel(lp.Max, []string{"x1", "x2", "x3"}, map[string]float64{"x1": 1})
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint(map[string]float64{"x1": 1}, lp.GreaterEq, 2))

	methods, reasons := solve.Recommend(m)

	assert.Equal(t, []solve.Method{solve.BigM}, methods)
	assert.Contains(t, reasons[solve.Simplex], "artificial")
	assert.Contains(t, reasons[solve.Graphical], "more than 2 variables")
}
