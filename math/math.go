/*
Package math provides the mathematical functions required by the pricers
package. It re-exports the standard normal CDF and PDF from specfunc, so
that every pricer built on it shares the exact Phi implementation the
implied volatility engine itself uses.
*/
package math

import "github.com/kervinlow/blackvol/specfunc"

/*
CDF returns the Cumulative Distribution Function of the standard
Normal Distribution at x.
*/
func CDF(x float64) float64 {
	return specfunc.Phi(x)
}

/*
PDF returns the Probability Density Function of the standard
Normal Distribution at x.
*/
func PDF(x float64) float64 {
	return specfunc.PhiDensity(x)
}
