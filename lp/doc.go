// Package lp defines the validated, immutable linear-model input consumed
// by every tableau engine in this module.
//
// A model is the standard LP
//
//	opt  c·x            (opt ∈ {Max, Min})
//	s.t. Aᵢ·x ⋈ᵢ bᵢ     (⋈ᵢ ∈ {≤, ≥, =}, i = 1..m)
//	     x ≥ 0
//
// with n ≥ 1 decision variables. Non-negativity is implicit and never
// stated as a constraint row; the upstream normalizer strips such rows
// before models reach this package.
//
// # Ingestion boundary
//
// Callers describe coefficients with name-keyed maps — the natural shape of
// normalizer output — and the constructor converts them once into fixed,
// index-addressed arrays with a stable name↔index table. Everything
// downstream (factories, engines, sensitivity) operates purely on indices;
// names reappear only in labels and in the final name-keyed value map.
//
// # Validation
//
// NewModel and AddConstraint reject malformed input with sentinel errors
// (ErrNoVariables, ErrUnknownVariable, ErrNotFinite, …) before any
// computation happens. A Model that exists is a Model that validates.
//
// # Immutability
//
// All state is private; accessors return scalars or fresh copies. A Model
// may therefore be shared by arbitrarily many concurrent solve calls.
package lp
