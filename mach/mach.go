// Package mach holds the machine-precision constants the Black implied
// volatility engine's numerical kernels are tuned against: IEEE-754
// binary64 epsilon and its fractional powers, and the smallest normal
// value. These are computed once at package init and never touched again,
// matching the read-only, load-once treatment spec.md requires of every
// precomputed constant.
package mach

import "math"

// Epsilon is the IEEE-754 binary64 machine epsilon (2^-52).
const Epsilon = 2.220446049250313e-16

// MinNormal is the smallest positive normalized binary64 value (DBL_MIN).
const MinNormal = 2.2250738585072014e-308

var (
	// SqrtEpsilon is sqrt(Epsilon), used by the rational-cubic shape bounds.
	SqrtEpsilon = math.Sqrt(Epsilon)
	// SqrtMinNormal is sqrt(DBL_MIN), the threshold below which
	// NormalizedVega is treated as having underflowed.
	SqrtMinNormal = math.Sqrt(MinNormal)
	// EpsilonPow1Over16 is Epsilon^(1/16), the base unit for the
	// small-t regime-switch threshold tau = 2*Epsilon^(1/16).
	EpsilonPow1Over16 = math.Pow(Epsilon, 1.0/16.0)
	// EpsilonPow1Over4 is Epsilon^(1/4), used by the normalized-intrinsic
	// small-|x| series cutoff.
	EpsilonPow1Over4 = math.Pow(Epsilon, 0.25)
)
