package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/black"
	"github.com/kervinlow/blackvol/specfunc"
)

// guess is the output of the four-branch initial guess: a starting point
// s0 within a bracket [sLeft, sRight] known to contain the root, and the
// objective-function kind the Householder loop should drive to zero.
type guess struct {
	s0, sLeft, sRight float64
	kind              objectiveKind
}

// centerRationalCubicSecondDerivative is the right-/left-side second
// derivative target used by the center-left and center-right branches
// (branches 2 and 3), which interpolate sigma directly against beta and
// ask for no curvature correction at the shared boundary.
const centerRationalCubicSecondDerivative = 0

// farTailConstant is 2*pi/sqrt(27), the constant in the far out-of-the-
// money auxiliary function f_L(s) = farTailConstant*|x|*Phi(-|x|/(sqrt(3)*s))^3.
var farTailConstant = 2 * math.Pi / math.Sqrt(27)

var sqrt3 = math.Sqrt(3)

// numDeriv1 and numDeriv2 return the first and second derivative of f at
// x0 via a central finite difference, used only by the far-tail initial
// guess branches to reparametrize an auxiliary function's s-derivatives
// into beta-space (see DESIGN.md: this trades closed-form sharpness for
// derivation safety, and is safe because the Householder loop's bracket
// and bisection rescue converge correctly regardless of initial-guess
// quality).
func numDeriv1(f func(float64) float64, x0 float64) float64 {
	h := x0 * 1e-5
	if h == 0 {
		h = 1e-7
	}
	return (f(x0+h) - f(x0-h)) / (2 * h)
}

func numDeriv2(f func(float64) float64, x0 float64) float64 {
	h := x0 * 1e-4
	if h == 0 {
		h = 1e-6
	}
	return (f(x0+h) - 2*f(x0) + f(x0-h)) / (h * h)
}

// initialGuess computes the starting point for the Householder loop for
// an already OTM-reduced (x <= 0) log-moneyness x and normalized price
// beta, following the four branches of spec.md section 4.3.
func initialGuess(x, beta float64, a branchAnchors) guess {
	switch {
	case beta < a.bL:
		return farLowerGuess(x, beta, a)
	case beta < a.bC:
		return centerGuess(x, beta, a.sigmaL, a.bL, a.vL, a.sigmaC, a.bC, a.vC, centerRationalCubicSecondDerivative, true)
	case beta <= a.bH:
		return centerGuess(x, beta, a.sigmaC, a.bC, a.vC, a.sigmaH, a.bH, a.vH, centerRationalCubicSecondDerivative, false)
	default:
		return farUpperGuess(x, beta, a)
	}
}

// centerGuess interpolates sigma directly against beta between two
// anchor points (branches 2 and 3), which is well conditioned since
// neither beta nor sigma is near zero in this region.
func centerGuess(x, beta, sLo, bLo, vLo, sHi, bHi, vHi, secondDerivative float64, rightSide bool) guess {
	h := bHi - bLo
	secant := (sHi - sLo) / h
	dLo, dHi := 1/vLo, 1/vHi
	var r float64
	if rightSide {
		r = controlParameterToFitSecondDerivativeAtRight(h, secant, dLo, dHi, secondDerivative)
	} else {
		r = controlParameterToFitSecondDerivativeAtLeft(h, secant, dLo, dHi, secondDerivative)
	}
	s0 := rationalCubicInterpolation(beta, bLo, bHi, sLo, sHi, dLo, dHi, r)
	return guess{s0: s0, sLeft: sLo, sRight: sHi, kind: objMid}
}

// farLowerGuess implements branch 1 (beta < bL): the far out-of-the-money
// case, fitting a rational cubic to the cube-root-scaled auxiliary
// function f_L rather than interpolating beta against sigma directly,
// since beta is exponentially small here and a direct fit would lose all
// relative precision.
func farLowerGuess(x, beta float64, a branchAnchors) guess {
	ax := math.Abs(x)
	fL := func(s float64) float64 {
		return farTailConstant * ax * cube(specfunc.Phi(-ax/(sqrt3*s)))
	}
	fAtSigmaL := fL(a.sigmaL)
	fPrime := numDeriv1(fL, a.sigmaL)
	fDoublePrime := numDeriv2(fL, a.sigmaL)

	var betaPrime, betaDoublePrime float64
	if a.vL > 0 {
		betaPrime = fPrime / a.vL
		vPrime := numDeriv1(func(s float64) float64 { return black.NormalizedVega(x, s) }, a.sigmaL)
		betaDoublePrime = (fDoublePrime*a.vL - fPrime*vPrime) / (a.vL * a.vL * a.vL)
	}

	secant := fAtSigmaL / a.bL
	r := controlParameterToFitSecondDerivativeAtRight(a.bL, secant, 1, betaPrime, betaDoublePrime)
	fAtBeta := rationalCubicInterpolation(beta, 0, a.bL, 0, fAtSigmaL, 1, betaPrime, r)
	if fAtBeta <= 0 {
		c := (fAtSigmaL - a.bL) / (a.bL * a.bL)
		fAtBeta = beta + c*beta*beta
		if fAtBeta <= 0 {
			fAtBeta = fAtSigmaL * (beta / a.bL)
		}
	}
	cubeRootArg := fAtBeta / (farTailConstant * ax)
	s0 := math.Abs(x / (sqrt3 * specfunc.PhiInv(math.Cbrt(cubeRootArg))))
	return guess{s0: s0, sLeft: 0, sRight: a.sigmaL, kind: objLow}
}

// farUpperGuess implements branch 4 (beta > bH): the far upper case, where
// beta approaches bMax, fitting a rational cubic to f_U(s) = Phi(-s/2) rather than
// interpolating beta against sigma directly, for the symmetric reason
// farLowerGuess does.
func farUpperGuess(x, beta float64, a branchAnchors) guess {
	fAtSigmaH := specfunc.Phi(-a.sigmaH / 2)
	fPrime := -0.5 * specfunc.PhiDensity(-a.sigmaH/2)
	fDoublePrime := (a.sigmaH / 8) * specfunc.PhiDensity(-a.sigmaH/2)

	var betaPrime, betaDoublePrime float64
	if a.vH > 0 {
		betaPrime = fPrime / a.vH
		vPrime := numDeriv1(func(s float64) float64 { return black.NormalizedVega(x, s) }, a.sigmaH)
		betaDoublePrime = (fDoublePrime*a.vH - fPrime*vPrime) / (a.vH * a.vH * a.vH)
	}

	h := a.bMax - a.bH
	secant := (0 - fAtSigmaH) / h
	r := controlParameterToFitSecondDerivativeAtLeft(h, secant, betaPrime, -0.5, betaDoublePrime)
	fAtBeta := rationalCubicInterpolation(beta, a.bH, a.bMax, fAtSigmaH, 0, betaPrime, -0.5, r)
	if fAtBeta <= 0 {
		c := (fAtSigmaH + 0.5*h) / (h * h)
		fAtBeta = -0.5*(beta-a.bMax) + c*(beta-a.bMax)*(beta-a.bMax)
		if fAtBeta <= 0 {
			fAtBeta = fAtSigmaH * (a.bMax - beta) / h
		}
	}
	s0 := -2 * specfunc.PhiInv(fAtBeta)

	kind := objMid
	if beta > a.bMax/2 {
		kind = objHigh
	}
	sRight := a.sigmaH + 1e10
	return guess{s0: s0, sLeft: a.sigmaH, sRight: sRight, kind: kind}
}

func cube(x float64) float64 { return x * x * x }
