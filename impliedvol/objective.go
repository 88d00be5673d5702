package impliedvol

import (
	"math"

	"github.com/kervinlow/blackvol/black"
)

// objectiveKind selects which of the three objective functions the
// Householder loop drives to zero.
type objectiveKind int

const (
	objLow objectiveKind = iota
	objMid
	objHigh
)

// vegaDerivatives returns v(x,s) together with its first two derivatives
// with respect to s, using the closed forms
//
//	p1 = (x/s)^2/s - s/4             (= d(ln v)/ds)
//	v' = v*p1
//	v'' = v*(p1^2 - 3*(x/s^2)^2 - 1/4)
func vegaDerivatives(x, s float64) (v0, v1, v2 float64) {
	v0 = black.NormalizedVega(x, s)
	xs := x / s
	p1 := xs*xs/s - s/4
	xs2 := xs / s
	v1 = v0 * p1
	v2 = v0 * (p1*p1 - 3*xs2*xs2 - 0.25)
	return
}

// sample holds the result of evaluating an objective function and its
// derivatives at a trial s, together with the underlying b and v the
// Householder loop's bracketing logic needs.
type sample struct {
	g, gPrime, gDoublePrime, gTriplePrime float64
	b, v                                  float64
}

// evaluate computes the objective g and its derivatives at s for the
// given branch kind.
func evaluate(kind objectiveKind, x, s, beta, bMax float64) sample {
	b := black.NormalizedBlackCall(x, s)
	v0, v1, v2 := vegaDerivatives(x, s)

	switch kind {
	case objLow:
		return evaluateLow(b, v0, v1, v2, beta)
	case objHigh:
		return evaluateHigh(b, v0, v1, v2, beta, bMax)
	default:
		return sample{
			g:            b - beta,
			gPrime:       v0,
			gDoublePrime: v1,
			gTriplePrime: v2,
			b:            b,
			v:            v0,
		}
	}
}

// evaluateLow implements g(s) = 1/ln(b(x,s)) - 1/ln(beta), used for the
// far out-of-the-money branch where b and beta are both tiny and a direct
// difference b-beta would lose all relative precision.
func evaluateLow(b, v0, v1, v2, beta float64) sample {
	if b <= 0 || v0 <= 0 {
		return sample{g: math.Inf(1), gPrime: 0, gDoublePrime: 0, gTriplePrime: 0, b: b, v: v0}
	}
	l := math.Log(b)
	a := v0 / b
	p := v1 / b
	aPrime := p - a*a

	g := 1/l - 1/math.Log(beta)
	gPrime := -a / (l * l)

	m := 2*a*a - aPrime*l
	gDoublePrime := m / (l * l * l)

	aDoublePrime := v2/b - 3*a*p + 2*a*a*a
	mPrime := 3*a*aPrime - aDoublePrime*l
	gTriplePrime := (mPrime*l - 3*m*a) / (l * l * l * l)

	return sample{g: g, gPrime: gPrime, gDoublePrime: gDoublePrime, gTriplePrime: gTriplePrime, b: b, v: v0}
}

// evaluateHigh implements g(s) = ln((bMax-beta)/(bMax-b(x,s))), used for
// the far upper branch where bMax-b and bMax-beta are both small.
func evaluateHigh(b, v0, v1, v2, beta, bMax float64) sample {
	bigB := bMax - b
	if b >= bMax || v0 <= 0 {
		return sample{g: math.Inf(-1), gPrime: 0, gDoublePrime: 0, gTriplePrime: 0, b: b, v: v0}
	}
	g := math.Log((bMax - beta) / bigB)
	c := v0 / bigB
	gPrime := c
	gDoublePrime := v1/bigB + c*c
	gTriplePrime := v2/bigB + v1*c/bigB + 2*c*gDoublePrime

	return sample{g: g, gPrime: gPrime, gDoublePrime: gDoublePrime, gTriplePrime: gTriplePrime, b: b, v: v0}
}
