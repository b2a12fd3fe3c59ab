// SPDX-License-Identifier: MIT

// Package solve is the unified entry point: it gates methods against the
// model (MethodSelector rule table), builds the initial tableau, runs the
// chosen engine, and — on OPTIMAL tableau outcomes — attaches the
// sensitivity report, emitting the name-keyed output contract consumed by
// the downstream reporting collaborator.
//
// # Rule table
//
//	min objective  ⇒ only DualSimplex and BigM; anything else is a
//	                 validation error raised before any factory work.
//	max objective  ⇒ all methods; Graphical additionally requires ≤ 2
//	                 decision variables, and even then its execution
//	                 belongs to the excluded visualization collaborator
//	                 (ErrGraphicalNotSupported here).
//
// DualSimplex eligibility further requires inequality-only constraints
// and a dual-feasible cost row; Recommend proposes BigM otherwise.
//
// # Output contract
//
// Outcome carries: terminal Status, nullable objective value, name-keyed
// variable values, the iteration count (snapshots, initial included), the
// ordered snapshot sequence, and a sensitivity report only when status is
// OPTIMAL under a tableau method. Purely numeric and structural — no
// colors, narration or markup.
package solve
