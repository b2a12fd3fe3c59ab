package simplex_test

import (
	"fmt"

	"github.com/linprog/tabular/lp"
	"github.com/linprog/tabular/simplex"
	"github.com/linprog/tabular/tableau"
)

// ExampleSolve maximizes 3x1+2x2 subject to 2x1+2x2 ≤ 10: one Dantzig
// pivot moves x1 into the basis and lands on the optimum.
func ExampleSolve() {
	m, _ := lp.NewModel(lp.Max, []string{"x1", "x2"}, map[string]float64{"x1": 3, "x2": 2})
	_ = m.AddConstraint(map[string]float64{"x1": 2, "x2": 2}, lp.LessEq, 10)

	tab, _ := tableau.NewPrimal(m)
	res, _ := simplex.Solve(tab, simplex.DefaultOptions())

	fmt.Println(res.Status)
	fmt.Printf("z = %.0f at x1=%.0f, x2=%.0f\n", res.Objective, res.Values[0], res.Values[1])
	fmt.Println("pivots:", res.Iterations-1)
	// Output:
	// OPTIMAL
	// z = 15 at x1=5, x2=0
	// pivots: 1
}
