package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/black"
	"github.com/kervinlow/blackvol/mach"
)

// branchAnchors collects the inflection point and the two tangent-anchor
// points the four-branch initial guess interpolates between.
type branchAnchors struct {
	bMax float64

	sigmaC, bC, vC float64
	sigmaL, bL, vL float64
	sigmaH, bH, vH float64
}

// computeAnchors evaluates the inflection volatility sigmaC = sqrt(2|x|)
// and the lower/upper tangent-anchor volatilities sigmaL, sigmaH for a
// given (already OTM-reduced, x <= 0) log-moneyness x.
func computeAnchors(x float64) branchAnchors {
	ax := math.Abs(x)
	var a branchAnchors
	a.bMax = math.Exp(x / 2)

	a.sigmaC = math.Sqrt(2 * ax)
	a.bC = black.NormalizedBlackCall(x, a.sigmaC)
	a.vC = black.NormalizedVega(x, a.sigmaC)

	a.sigmaL = a.sigmaC
	if a.vC > 0 {
		a.sigmaL = a.sigmaC - a.bC/a.vC
	}
	if a.sigmaL < 0 {
		a.sigmaL = 0
	}
	a.bL = black.NormalizedBlackCall(x, a.sigmaL)
	a.vL = black.NormalizedVega(x, a.sigmaL)

	a.sigmaH = a.sigmaC
	if a.vC > mach.MinNormal {
		a.sigmaH = a.sigmaC + (a.bMax-a.bC)/a.vC
	}
	a.bH = black.NormalizedBlackCall(x, a.sigmaH)
	a.vH = black.NormalizedVega(x, a.sigmaH)

	return a
}
