/*
Package oracle wraps two independent, third-party standard normal
distribution implementations — github.com/datastream/probab/dst and
gonum.org/v1/gonum/stat/distuv — so the specfunc package's Phi/PhiInv can
be cross-checked against outside references in tests.

Neither dependency is suitable for the production hot path: spec.md pins
the exact Cody/AS-241 coefficient tables specfunc must use for
cross-implementation bit-exact parity, and swapping in a third-party CDF
would silently break that contract. This package is therefore exercised
only from _test.go files.
*/
package oracle

import (
	"github.com/datastream/probab/dst"
	"gonum.org/v1/gonum/stat/distuv"
)

var gonumStdNormal = distuv.Normal{Mu: 0, Sigma: 1}

/*
ProbabCDF returns the standard normal CDF at x via datastream/probab/dst.
*/
func ProbabCDF(x float64) float64 {
	return dst.NormalCDFAt(0.0, 1.0, x)
}

/*
ProbabPDF returns the standard normal PDF at x via datastream/probab/dst.
*/
func ProbabPDF(x float64) float64 {
	return dst.NormalPDFAt(0.0, 1.0, x)
}

/*
GonumCDF returns the standard normal CDF at x via gonum/stat/distuv.
*/
func GonumCDF(x float64) float64 {
	return gonumStdNormal.CDF(x)
}

/*
GonumPDF returns the standard normal PDF at x via gonum/stat/distuv.
*/
func GonumPDF(x float64) float64 {
	return gonumStdNormal.Prob(x)
}

/*
GonumQuantile returns the standard normal quantile function at p via
gonum/stat/distuv.
*/
func GonumQuantile(p float64) float64 {
	return gonumStdNormal.Quantile(p)
}
