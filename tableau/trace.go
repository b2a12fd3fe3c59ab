// SPDX-License-Identifier: MIT
// Package tableau: step trace — the sole contract with reporting.

package tableau

import "gonum.org/v1/gonum/mat"

// Status is the closed set of terminal solve outcomes. Infeasible,
// unbounded and the cycling cap are expected results for valid input and
// are therefore statuses, never errors.
type Status int

const (
	// StatusOptimal: the optimality test holds and the solution is feasible.
	StatusOptimal Status = iota

	// StatusInfeasible: the feasible region is empty.
	StatusInfeasible

	// StatusUnbounded: the ratio test found no qualifying row; the objective
	// improves without limit.
	StatusUnbounded

	// StatusCyclingLimit: the iteration cap was exceeded. Distinguished from
	// genuine non-termination only by the cap; the full trace is retained.
	StatusCyclingLimit
)

// String implements fmt.Stringer for Status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusCyclingLimit:
		return "CYCLING_LIMIT"
	default:
		return "status(?)"
	}
}

// Frame is a deep copy of the mutable tableau state at one instant:
// structural rows (RHS included), objective row, basis. Frames never alias
// the live tableau.
type Frame struct {
	Body  *mat.Dense
	Obj   []float64
	Basis []int
}

// DualRatio is one entry of the dual-simplex entering-column table for the
// chosen pivot row: |ObjCoeff / RowCoeff| over columns with RowCoeff < −eps.
// The table is attached verbatim to the iteration's snapshot.
type DualRatio struct {
	Column   int     // column index j
	Name     string  // column label
	ObjCoeff float64 // objective-row value at j
	RowCoeff float64 // pivot-row value at j (negative by construction)
	Ratio    float64 // |ObjCoeff / RowCoeff|
}

// Snapshot is one recorded iteration. Iteration 0 is the initial tableau:
// no pivot, no entering/leaving variables, Before is the zero Frame.
type Snapshot struct {
	Iteration int

	Entering string // entering variable name, "" at iteration 0
	Leaving  string // leaving variable name, "" at iteration 0
	Pivot    *PivotOperation

	Before Frame // state before the pivot (zero Frame at iteration 0)
	After  Frame // state after the pivot (initial state at iteration 0)

	ColumnLabels []string
	RowLabels    []string // basic variable per row, after the pivot

	// Feasible reports primal feasibility (all RHS ≥ −eps) of After.
	Feasible bool

	// DualRatios is populated by the dual engine only.
	DualRatios []DualRatio
}

// Recorder accumulates the ordered snapshot sequence of one solve call.
// Engines are its only writers; it has no post-solve mutation contract.
type Recorder struct {
	steps []Snapshot
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// RecordInitial captures iteration 0 from the freshly built tableau.
func (r *Recorder) RecordInitial(t *Tableau, eps float64) {
	r.steps = append(r.steps, Snapshot{
		Iteration:    0,
		After:        t.Frame(),
		ColumnLabels: t.ColumnLabels(),
		RowLabels:    t.RowLabels(),
		Feasible:     t.PrimalFeasible(eps),
	})
}

// RecordPivot captures one completed pivot: the pre-pivot frame, the
// post-pivot live state, the pivot operation, and the variable movement.
func (r *Recorder) RecordPivot(before Frame, t *Tableau, op PivotOperation, entering, leaving string, eps float64, ratios []DualRatio) {
	r.steps = append(r.steps, Snapshot{
		Iteration:    len(r.steps),
		Entering:     entering,
		Leaving:      leaving,
		Pivot:        &PivotOperation{Row: op.Row, Col: op.Col, Value: op.Value},
		Before:       before,
		After:        t.Frame(),
		ColumnLabels: t.ColumnLabels(),
		RowLabels:    t.RowLabels(),
		Feasible:     t.PrimalFeasible(eps),
		DualRatios:   ratios,
	})
}

// Len reports the number of recorded snapshots.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps hands the accumulated ordered sequence to the caller.
func (r *Recorder) Steps() []Snapshot { return r.steps }

// Result is the uniform engine outcome: a terminal status, the solution
// read off the terminal tableau when optimal, the trace, and the terminal
// tableau itself for the sensitivity analyzer.
//
// Iterations counts recorded snapshots and therefore includes the initial
// tableau: a solve with two pivots reports 3.
type Result struct {
	Status     Status
	Objective  float64   // defined only when Status == StatusOptimal
	Values     []float64 // decision values by index, nil unless optimal
	Iterations int
	Steps      []Snapshot
	Final      *Tableau
}

// Finish is the engines' shared result constructor. Non-optimal statuses
// still carry the full trace accumulated so far — never silently truncated.
func Finish(status Status, t *Tableau, rec *Recorder) Result {
	res := Result{
		Status:     status,
		Iterations: rec.Len(),
		Steps:      rec.Steps(),
		Final:      t,
	}
	if status == StatusOptimal {
		res.Objective = t.ObjectiveValue()
		res.Values = t.DecisionValues(t.NumDecisions())
	}

	return res
}
