// Package bigm implements the Big-M penalty engine: primal pivot rules
// over the artificial-augmented tableau from tableau.NewBigM.
//
// Artificial variables give ≥ and = rows an immediate basis; each one is
// priced at −M in the (internal, maximization-form) objective, so pivoting
// drives them out whenever the region is non-empty. Two deviations from
// plain primal Simplex matter:
//
//   - Artificial columns are never entering candidates. Once priced out
//     they must not re-enter; allowing them back reintroduces the penalty
//     and can stall the solve.
//   - When pivoting stalls on the optimality test, OPTIMAL is reported
//     only if every artificial variable is non-basic or basic within
//     Options.FeasTol of zero. An artificial stuck at a materially
//     positive value means the original constraints cannot all hold:
//     StatusInfeasible, even though the row-optimality condition alone
//     would suggest termination. Omitting this check silently reports
//     phantom optima — it is mandatory.
//
// FeasTol (default 1e-4) is deliberately looser than the pivot Eps: after
// many eliminations against M-sized entries, a legitimately zero
// artificial carries noise far above 1e-10.
//
// The M constant itself is a factory concern (tableau.NewBigM,
// tableau.DefaultBigM); its magnitude trade-off is documented there.
package bigm
