// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Consumers: Inverse (round digits), EigenSym (eps, max iterations),
//     NewDenseWithOptions (finite-only policy).
//   - The finite-only policy is OFF by default: Div and Power must let
//     IEEE-754 specials (±Inf, NaN) flow into the result cells.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by iterative kernels
	// (Jacobi convergence) and symmetry checks.
	DefaultEpsilon = 1e-10

	// DefaultMaxIterations of 0 means "derive from n": EigenSym uses 100*n*n sweeps.
	DefaultMaxIterations = 0

	// DefaultRoundDigits is the number of decimal places Inverse rounds to.
	// A negative value disables rounding.
	DefaultRoundDigits = 6

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = false
)

// maxRoundDigits bounds WithRoundDigits: 10^d must stay exact in float64.
const maxRoundDigits = 15

// iterationsPerCell scales the derived Jacobi budget (iterations = k*n*n).
const iterationsPerCell = 100

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid    = "matrix: WithMaxIterations: n must be positive"
	panicRoundDigitsTooBig = "matrix: WithRoundDigits: digits must be <= 15"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	maxIter        int     // > 0, or 0 meaning derived from n
	roundDigits    int     // < 0 disables rounding
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations reports the resolved iteration budget for an n×n input.
// Complexity: O(1).
func (o Options) MaxIterations(n int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}
	if n < 1 {
		n = 1
	}

	return iterationsPerCell * n * n
}

// RoundDigits reports the number of decimals used by Inverse (negative = off).
func (o Options) RoundDigits() int { return o.roundDigits }

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the number of Jacobi rotations performed by EigenSym.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRoundDigits sets how many decimal places Inverse rounds each output
// element to. A negative value disables rounding and returns the raw
// elimination result.
//
// Errors:
//   - Panics when digits > 15 (10^digits would no longer be exact).
func WithRoundDigits(digits int) Option {
	if digits > maxRoundDigits {
		panic(panicRoundDigitsTooBig)
	}

	return func(o *Options) { o.roundDigits = digits }
}

// WithValidateNaNInf enables strict finite-value validation for matrices
// created with NewDenseWithOptions: Set and Apply reject NaN/±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the documented defaults.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		maxIter:        DefaultMaxIterations,
		roundDigits:    DefaultRoundDigits,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
