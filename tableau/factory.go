// SPDX-License-Identifier: MIT
// Package tableau: initial-tableau factories for the three methods.

package tableau

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/linprog/tabular/lp"
)

// NewPrimal builds the primal-form tableau [A | I | b] for a maximization
// model whose constraints are all ≤ rows: one +1 slack per row, slacks as
// the initial basis, objective row −c.
//
// The factory does not demand b ≥ 0; the primal engine enforces its own
// starting-feasibility precondition. Models with ≥ or = rows belong to the
// dual or Big-M forms and are rejected here with ErrSenseForMethod.
//
// Complexity: O(m·(n+m)).
func NewPrimal(m *lp.Model) (*Tableau, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Direction() != lp.Max {
		return nil, ErrDirectionForMethod
	}
	for i := 0; i < m.NumRows(); i++ {
		if m.Sense(i) != lp.LessEq {
			return nil, ErrSenseForMethod
		}
	}

	var (
		n     = m.NumVars()
		rows  = m.NumRows()
		width = n + rows
		t     = newShell(m, width, rows)
	)

	for i := 0; i < rows; i++ {
		body := t.Body.RawRowView(i)
		for j := 0; j < n; j++ {
			body[j] = m.A(i, j)
		}
		slack := n + i
		body[slack] = 1
		body[width] = m.B(i)

		t.Cols[slack] = Column{Name: slackName(i), Kind: Slack, Constraint: i}
		t.Basis[i] = slack
		t.RefCol[i] = slack
		t.RefSign[i] = 1
		t.SlackCol[i] = slack
	}

	// Objective row −c: entering tests look for negative entries.
	for j := 0; j < n; j++ {
		t.Obj[j] = -m.C(j)
	}

	return t, nil
}

// NewDual builds the dual-form tableau for a minimization model: ≥ rows
// are multiplied by −1 (coefficients and RHS) and every row gets a +1
// slack, intentionally producing negative RHS entries that dual pivoting
// resolves. The objective row is the plain cost row +c, so the dual
// engine's feasibility precondition (all entries ≥ −eps) is literal.
//
// Equality rows cannot start from a slack basis and are rejected with
// ErrEqualityNeedsArtificial; the selector routes such models to Big-M.
//
// Complexity: O(m·(n+m)).
func NewDual(m *lp.Model) (*Tableau, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Direction() != lp.Min {
		return nil, ErrDirectionForMethod
	}
	for i := 0; i < m.NumRows(); i++ {
		if m.Sense(i) == lp.Equal {
			return nil, ErrEqualityNeedsArtificial
		}
	}

	var (
		n     = m.NumVars()
		rows  = m.NumRows()
		width = n + rows
		t     = newShell(m, width, rows)
	)

	for i := 0; i < rows; i++ {
		sign := 1.0
		if m.Sense(i) == lp.GreaterEq {
			sign = -1 // a·x ≥ b  ⇒  −a·x ≤ −b
			t.Negated[i] = true
		}

		body := t.Body.RawRowView(i)
		for j := 0; j < n; j++ {
			body[j] = sign * m.A(i, j)
		}
		slack := n + i
		body[slack] = 1
		body[width] = sign * m.B(i)

		t.Cols[slack] = Column{Name: slackName(i), Kind: Slack, Constraint: i}
		t.Basis[i] = slack
		t.RefCol[i] = slack
		t.RefSign[i] = sign // negated rows carry −B⁻¹eᵢ under their slack
		t.SlackCol[i] = slack
	}

	for j := 0; j < n; j++ {
		t.Obj[j] = m.C(j)
	}

	return t, nil
}

// NewBigM builds the artificial-augmented tableau for either direction.
// Internally the problem is always a maximization (min c·x ⇒ max −c·x):
//
//	≤ row: +1 slack, slack basic
//	≥ row: −1 surplus and +1 artificial, artificial basic
//	= row: +1 artificial only, artificial basic
//
// Rows with negative RHS are first normalized by negating the row and
// flipping its sense, so every initial RHS is non-negative. Each basic
// artificial folds −bigM into the objective row by row subtraction, which
// also canonicalizes the artificial columns to reduced cost 0.
//
// bigM must be positive and at least an order of magnitude above any
// legitimate coefficient; oversizing it degrades conditioning (documented
// risk, not mitigated here).
//
// Complexity: O(m·(n+2m)).
func NewBigM(m *lp.Model, bigM float64) (*Tableau, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !(bigM > 0) || math.IsInf(bigM, 0) {
		return nil, ErrBadBigM
	}

	var (
		n    = m.NumVars()
		rows = m.NumRows()
	)

	// Stage 1: per-row sign normalization and column counting.
	type rowPlan struct {
		sign  float64
		sense lp.Sense
	}
	plans := make([]rowPlan, rows)
	extra := 0 // slack+surplus+artificial columns
	for i := 0; i < rows; i++ {
		p := rowPlan{sign: 1, sense: m.Sense(i)}
		if m.B(i) < 0 {
			p.sign = -1
			p.sense = flipSense(p.sense)
		}
		plans[i] = p
		switch p.sense {
		case lp.LessEq:
			extra++ // slack
		case lp.GreaterEq:
			extra += 2 // surplus + artificial
		case lp.Equal:
			extra++ // artificial
		}
	}

	var (
		width = n + extra
		t     = newShell(m, width, rows)
	)
	t.M = bigM

	// Stage 2: fill rows and assign augmentation columns left to right.
	next := n
	slackSeq, artSeq := 0, 0
	for i := 0; i < rows; i++ {
		p := plans[i]
		if p.sign < 0 {
			t.Negated[i] = true
		}

		body := t.Body.RawRowView(i)
		for j := 0; j < n; j++ {
			body[j] = p.sign * m.A(i, j)
		}
		body[width] = p.sign * m.B(i)

		switch p.sense {
		case lp.LessEq:
			slack := next
			next++
			body[slack] = 1
			t.Cols[slack] = Column{Name: slackName(slackSeq), Kind: Slack, Constraint: i}
			slackSeq++
			t.Basis[i] = slack
			t.RefCol[i] = slack
			t.RefSign[i] = p.sign
			t.SlackCol[i] = slack

		case lp.GreaterEq:
			surplus := next
			art := next + 1
			next += 2
			body[surplus] = -1
			body[art] = 1
			t.Cols[surplus] = Column{Name: slackName(slackSeq), Kind: Surplus, Constraint: i}
			slackSeq++
			t.Cols[art] = Column{Name: artificialName(artSeq), Kind: Artificial, Constraint: i}
			artSeq++
			t.Obj[art] = bigM // penalty; zeroed by the Stage 3 fold
			t.Basis[i] = art
			t.RefCol[i] = art // artificial column is exactly B⁻¹eᵢ
			t.RefSign[i] = p.sign
			t.SlackCol[i] = surplus

		case lp.Equal:
			art := next
			next++
			body[art] = 1
			t.Cols[art] = Column{Name: artificialName(artSeq), Kind: Artificial, Constraint: i}
			artSeq++
			t.Obj[art] = bigM
			t.Basis[i] = art
			t.RefCol[i] = art
			t.RefSign[i] = p.sign
			t.SlackCol[i] = -1
		}
	}

	// Stage 3: objective row −c_int, then fold −M per basic artificial.
	for j := 0; j < n; j++ {
		if m.Direction() == lp.Min {
			t.Obj[j] = m.C(j) // −(−c) for the internal max of −c·x
		} else {
			t.Obj[j] = -m.C(j)
		}
	}
	for i := 0; i < rows; i++ {
		if t.Cols[t.Basis[i]].Kind != Artificial {
			continue
		}
		body := t.Body.RawRowView(i)
		for j := 0; j <= width; j++ {
			t.Obj[j] -= bigM * body[j]
		}
	}

	return t, nil
}

// newShell allocates a zeroed tableau with decision columns labelled from
// the model and all bookkeeping slices sized for rows constraints.
func newShell(m *lp.Model, width, rows int) *Tableau {
	t := &Tableau{
		Body:     mat.NewDense(rows, width+1, nil),
		Obj:      make([]float64, width+1),
		Basis:    make([]int, rows),
		Cols:     make([]Column, width),
		Dir:      m.Direction(),
		RefCol:   make([]int, rows),
		RefSign:  make([]float64, rows),
		SlackCol: make([]int, rows),
		Negated:  make([]bool, rows),
	}
	for j := 0; j < m.NumVars(); j++ {
		t.Cols[j] = Column{Name: m.Var(j), Kind: Decision, Constraint: -1}
	}

	return t
}

// flipSense mirrors an inequality across a row negation; Equal is its own mirror.
func flipSense(s lp.Sense) lp.Sense {
	switch s {
	case lp.LessEq:
		return lp.GreaterEq
	case lp.GreaterEq:
		return lp.LessEq
	default:
		return lp.Equal
	}
}

// slackName and artificialName follow the original s1…sm / a1…ak labelling.
func slackName(seq int) string { return fmt.Sprintf("s%d", seq+1) }

func artificialName(seq int) string { return fmt.Sprintf("a%d", seq+1) }
