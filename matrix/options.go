// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// analysis routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural
	// checks (IsDiagonal, AllClose). Small enough not to blur exact
	// integer data, large enough to absorb double-precision noise.
	DefaultEpsilon = 1e-9

	// DefaultDetRoundDigits is the number of decimal places the
	// elimination determinant is rounded to, suppressing floating-point
	// noise accumulated during row reduction.
	DefaultDetRoundDigits = 5

	// maxDetRoundDigits bounds the rounding request; beyond this the
	// scale factor itself loses integer precision in float64.
	maxDetRoundDigits = 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicDetDigitsInvalid = "matrix: WithDetRounding: digits must be in [0, 15]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is intentionally opaque to prevent external mutation;
// public entry points accept ...Option and internally resolve them via
// gatherOptions.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	detDigits int     // [0, maxDetRoundDigits]; DefaultDetRoundDigits
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks
// (IsDiagonal off-diagonal test, AllClose comparison).
// Panics with a stable message when eps is negative, NaN or infinite.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	// Strict validation in the constructor, not at use time.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDetRounding sets the number of decimal places the elimination
// determinant is rounded to. Zero keeps integer rounding; use it for
// containers whose determinant is known to be integral.
// Panics with a stable message when digits is outside [0, 15].
// Complexity: O(1).
func WithDetRounding(digits int) Option {
	if digits < 0 || digits > maxDetRoundDigits {
		panic(panicDetDigitsInvalid)
	}

	return func(o *Options) { o.detDigits = digits }
}

// ---------- Internal resolution ----------

// defaultOptions returns the documented zero-configuration state.
// These values MUST stay in sync with the Default* constants above.
func defaultOptions() Options {
	return Options{
		eps:       DefaultEpsilon,
		detDigits: DefaultDetRoundDigits,
	}
}

// gatherOptions resolves user setters over the defaults in application
// order. Later options win; the result is a self-consistent Options.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		opt(&o)
	}

	return o
}
