package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/mach"
)

// maxHouseholderIterations is N from spec.md section 6: solve takes at
// most this many steps (Householder(3) updates or bracket-midpoint
// resets) and returns the iterate reached after the last one.
const maxHouseholderIterations = 2

// householderStep computes the third-order Householder update nu*factor
// from the Newton direction nu = -g/g' and the Halley/third-derivative
// ratios gamma = g''/g', delta = g'''/g'. The caller bounds it below by
// -s/2.
func householderStep(s sample) float64 {
	nu := -s.g / s.gPrime
	gamma := s.gDoublePrime / s.gPrime
	delta := s.gTriplePrime / s.gPrime
	factor := (1 + 0.5*gamma*nu) / (1 + nu*(gamma+delta*nu/6))
	return nu * factor
}

// solve runs the bounded, bracketed Householder(3) loop described in
// spec.md section 4.3, starting from s0 within [sLeft, sRight], and
// returns the converged s together with the number of Householder steps
// actually taken (iterationsUsed is test-only instrumentation, property
// P10).
func solve(kind objectiveKind, x, beta, bMax, s0, sLeft, sRight float64) (s float64, iterationsUsed int) {
	s = s0
	reversals := 0
	prevDelta := 0.0

	for iterationsUsed < maxHouseholderIterations {
		smp := evaluate(kind, x, s, beta, bMax)

		if smp.b > beta && s < sRight {
			sRight = s
		}
		if smp.b < beta && s > sLeft {
			sLeft = s
		}

		var step float64
		switch kind {
		case objLow:
			if smp.b <= 0 || smp.v <= 0 {
				step = (sLeft+sRight)/2 - s
			} else {
				step = math.Max(-s/2, householderStep(smp))
			}
		case objHigh:
			if smp.b >= bMax || smp.v <= mach.MinNormal {
				step = (sLeft+sRight)/2 - s
			} else {
				step = math.Max(-s/2, householderStep(smp))
			}
		default:
			step = math.Max(-s/2, householderStep(smp))
		}

		if iterationsUsed > 0 && prevDelta*step < 0 {
			reversals++
		}
		escaped := s+step < sLeft || s+step > sRight
		if iterationsUsed > 0 && (reversals >= 3 || escaped) {
			step = (sLeft+sRight)/2 - s
			reversals = 0
			prevDelta = 0
			if sRight-sLeft <= mach.Epsilon*s {
				s = s + step
				iterationsUsed++
				break
			}
		}

		s = s + step
		prevDelta = step
		iterationsUsed++

		if math.Abs(step) <= mach.Epsilon*s {
			break
		}
	}
	return s, iterationsUsed
}
