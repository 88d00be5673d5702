package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/mach"
)

// maxRationalCubicControlParameter and minRationalCubicControlParameter
// bound the shape parameter r; above the max the interpolant degenerates
// to a straight line, below the min it is no longer shape-preserving.
var maxRationalCubicControlParameter = 2 / (mach.Epsilon * mach.Epsilon)
var minRationalCubicControlParameter = -(1 - mach.SqrtEpsilon)

// rationalCubicInterpolation evaluates the Delbourgo-Gregory rational
// cubic through (xL,yL) with slope dL and (xR,yR) with slope dR, shape
// parameter r, at x.
func rationalCubicInterpolation(x, xL, xR, yL, yR, dL, dR, r float64) float64 {
	h := xR - xL
	if math.Abs(h) <= 0 {
		return 0.5 * (yL + yR)
	}
	t := (x - xL) / h
	if r >= maxRationalCubicControlParameter {
		// Degenerate to linear interpolation.
		return yR*t + yL*(1-t)
	}
	omt := 1 - t
	num := yR*t*t*t + (r*yR-h*dR)*t*t*omt + (r*yL+h*dL)*t*omt*omt + yL*omt*omt*omt
	den := 1 + (r-3)*t*omt
	return num / den
}

// shapePreservingFloor returns the minimum value of r that keeps the
// interpolant monotone and/or convex/concave given the endpoint slopes dL,
// dR and the secant slope s, and whether the data falls outside both
// shape classes (in which case the interpolant should degenerate to a
// standard cubic, r = 3, rather than be shape-constrained).
func shapePreservingFloor(dL, dR, s float64) (floor float64, standardCubic bool) {
	monotonic := dL*s >= 0 && dR*s >= 0
	convexOrConcave := (dL <= s && s <= dR) || (dL >= s && s >= dR)
	if !monotonic && !convexOrConcave {
		return 3, true
	}
	floor = math.Inf(-1)
	if monotonic && s != 0 {
		floor = math.Max(floor, (dL+dR)/s)
	}
	if convexOrConcave {
		delta := dR - dL
		var a, b float64
		if dR != s {
			a = math.Abs(delta / (dR - s))
		}
		if s != dL {
			b = math.Abs(delta / (s - dL))
		}
		floor = math.Max(floor, math.Max(a, b))
	}
	return floor, false
}

// clampControlParameter applies the shape-preserving floor and the
// min/max control clamps to a candidate control parameter r.
func clampControlParameter(r, dL, dR, s float64) float64 {
	floor, standardCubic := shapePreservingFloor(dL, dR, s)
	if standardCubic {
		r = 3
	} else if r < floor {
		r = floor
	}
	if r < minRationalCubicControlParameter {
		r = minRationalCubicControlParameter
	}
	if r > maxRationalCubicControlParameter {
		r = maxRationalCubicControlParameter
	}
	return r
}

// controlParameterToFitSecondDerivativeAtRight solves for the r that
// makes the rational cubic's second derivative at xR equal to
// secondDerivative, given interval width h, secant slope s and endpoint
// slopes dL, dR.
func controlParameterToFitSecondDerivativeAtRight(h, s, dL, dR, secondDerivative float64) float64 {
	denom := dR - s
	if denom == 0 {
		return clampControlParameter(3, dL, dR, s)
	}
	r := (secondDerivative*h/2 + (dR - dL)) / denom
	return clampControlParameter(r, dL, dR, s)
}

// controlParameterToFitSecondDerivativeAtLeft solves for the r that makes
// the rational cubic's second derivative at xL equal to secondDerivative.
func controlParameterToFitSecondDerivativeAtLeft(h, s, dL, dR, secondDerivative float64) float64 {
	denom := s - dL
	if denom == 0 {
		return clampControlParameter(3, dL, dR, s)
	}
	r := (secondDerivative*h/2 + (dR - dL)) / denom
	return clampControlParameter(r, dL, dR, s)
}
