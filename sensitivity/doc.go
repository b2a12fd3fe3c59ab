// SPDX-License-Identifier: MIT

// Package sensitivity derives post-optimal information — allowable
// objective-coefficient ranges, RHS ranges, shadow prices and reduced
// costs — from a terminal OPTIMAL tableau produced by the primal, dual or
// Big-M engine. It is undefined for any non-tableau method.
//
// # What it computes
//
//   - Objective ranges. For a basic decision variable in row r, every
//     non-basic column j bounds the admissible coefficient change Δ
//     through the perturbed optimality condition — c̄ⱼ − Δ·aᵣⱼ ≥ 0 on the
//     min-form tableaus (dual, Big-M min), c̄ⱼ + Δ·aᵣⱼ ≥ 0 on the
//     max-form ones (primal, Big-M max) — each direction taking the
//     tightest bound over the columns whose coefficient sign binds it; a
//     direction with no binding column is unbounded (±Inf). A non-basic
//     variable's own reduced cost bounds one side of its range; the other
//     side is unbounded.
//   - RHS ranges. The terminal column recorded as the image of B⁻¹eᵢ
//     (the constraint's slack, or its artificial under Big-M, with the
//     build-time sign) is ratio-tested against the current basic values to
//     bound Δbᵢ below and above while all basic values stay ≥ 0.
//   - Shadow prices. The terminal objective-row value under the same
//     reference column, with the −M fold-in removed for artificial
//     columns and the build-time row sign undone: the signed marginal
//     objective change per unit RHS increase, with a binding flag (slack
//     value within tolerance of zero; equality rows are always binding).
//   - Reduced costs. Terminal objective-row values of the decision
//     columns; exactly 0 for basic variables by invariant.
//
// # Purity
//
// Analyze only reads the tableau. Re-running it on the same terminal
// state yields bit-identical output.
//
// # Errors
//
// ErrNotOptimal (state error) when the tableau fails the optimality
// re-check — primal-infeasible rows, negative objective entries, or a
// residual basic artificial. ErrModelMismatch when tableau and model
// dimensions disagree.
package sensitivity
