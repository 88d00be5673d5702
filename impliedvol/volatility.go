// Package impliedvol implements the inversion engine (L2): recovering
// Black's implied volatility from an observed option price in a bounded,
// input-independent number of iterations, built on the normalized Black
// kernel in package black and the special functions in package specfunc.
package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/black"
)

/*
ImpliedVol returns the implied volatility sigma such that Black's formula
reproduces price for a European option with forward f, strike k, time to
expiry t and sign q (+1 call, -1 put).

It returns ErrBelowIntrinsic if price is strictly below the option's
intrinsic value, and ErrAboveMaximum if price is at or beyond the
asymptotic upper bound (f for calls, k for puts). These are the only two
error outcomes; every other numerical edge case is resolved internally.

Usage:

	sigma, err := impliedvol.ImpliedVol(price, f, k, t, q)
*/
func ImpliedVol(price, f, k, t, q float64) (float64, error) {
	intrinsic := math.Max(q*(f-k), 0)
	maxPrice := f
	if q < 0 {
		maxPrice = k
	}
	if price < intrinsic {
		return 0, ErrBelowIntrinsic("impliedvol: price is below intrinsic value")
	}
	if price >= maxPrice {
		return 0, ErrAboveMaximum("impliedvol: price is at or beyond the asymptotic maximum")
	}

	x := math.Log(f / k)
	beta := price / math.Sqrt(f*k)

	s, err := NormalizedImpliedVol(beta, x, q)
	if err != nil {
		return 0, err
	}
	return s / math.Sqrt(t), nil
}

/*
NormalizedImpliedVol returns s = sigma*sqrt(T) such that the normalized
Black call b(x, s) reproduces beta, for log-moneyness x and sign q.
*/
func NormalizedImpliedVol(beta, x, q float64) (float64, error) {
	if q*x > 0 {
		beta = math.Max(beta-black.NormalizedIntrinsic(x, q), 0)
		q = -q
	}
	if q < 0 {
		x = -x
	}

	bMax := math.Exp(x / 2)
	if beta <= 0 {
		return 0, nil
	}
	if beta >= bMax {
		return 0, ErrAboveMaximum("impliedvol: normalized price is at or beyond the asymptotic maximum")
	}

	a := computeAnchors(x)
	g := initialGuess(x, beta, a)
	s, _ := solve(g.kind, x, beta, bMax, g.s0, g.sLeft, g.sRight)
	return s, nil
}
