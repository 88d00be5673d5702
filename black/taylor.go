package black

// taylorOrder is the number of odd-order terms kept in the small-t
// expansion of Y(h+t) - Y(h-t) (t, t^3, ..., t^(2*taylorOrder-1)), i.e. a
// 12th-order expansion in w = t^2, per spec.md section 4.2.
const taylorOrder = 12

// Y(z) = Phi(z)/phi(z) satisfies the first-order linear ODE
// Y'(z) = 1 + z*Y(z). Differentiating repeatedly gives
// Y^(n)(z) = P_n(z) + Q_n(z)*Y(z) for polynomials defined by the
// recursion P_0=0, Q_0=1, P_(n+1) = P_n' + Q_n, Q_(n+1) = Q_n' + z*Q_n.
// These are computed once, symbolically, at package init, rather than
// hand-transcribed, so every coefficient is provably consistent with the
// defining ODE.
var yDerivP [2*taylorOrder + 1][]float64
var yDerivQ [2*taylorOrder + 1][]float64

// taylorCoeff[k] holds 2/(2k+1)! for k = 0..taylorOrder-1, the constant
// factor in G(t) = 2 * sum_k Y^(2k+1)(h)/(2k+1)! * t^(2k+1).
var taylorCoeff [taylorOrder]float64

func init() {
	yDerivP[0] = []float64{0}
	yDerivQ[0] = []float64{1}
	for n := 0; n < 2*taylorOrder; n++ {
		yDerivP[n+1] = polyAdd(polyDeriv(yDerivP[n]), yDerivQ[n])
		yDerivQ[n+1] = polyAdd(polyDeriv(yDerivQ[n]), polyMulZ(yDerivQ[n]))
	}
	f := 1.0
	prevOrder := 0
	for k := 0; k < taylorOrder; k++ {
		order := 2*k + 1
		for o := prevOrder + 1; o <= order; o++ {
			f *= float64(o)
		}
		prevOrder = order
		taylorCoeff[k] = 2.0 / f
	}
}

// polyDeriv returns d/dz of the polynomial p (ascending coefficients).
func polyDeriv(p []float64) []float64 {
	if len(p) <= 1 {
		return []float64{0}
	}
	out := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = p[i] * float64(i)
	}
	return out
}

// polyMulZ returns z*p(z).
func polyMulZ(p []float64) []float64 {
	out := make([]float64, len(p)+1)
	copy(out[1:], p)
	return out
}

// polyAdd returns a(z)+b(z).
func polyAdd(a, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

// polyEval evaluates p (ascending coefficients) at z via Horner's method.
func polyEval(p []float64, z float64) float64 {
	acc := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*z + p[i]
	}
	return acc
}

// smallTExpansion returns b(x,s) for small t via the Taylor series of
// Y(h+t)-Y(h-t) in t, avoiding the cancellation a direct evaluation of
// Y at h+t and h-t and subtracting would incur.
func smallTExpansion(h, t float64) float64 {
	y := mills(h)
	w := t * t
	acc := 0.0
	for k := taylorOrder - 1; k >= 0; k-- {
		n := 2*k + 1
		yDeriv := polyEval(yDerivP[n], h) + polyEval(yDerivQ[n], h)*y
		acc = acc*w + taylorCoeff[k]*yDeriv
	}
	g := t * acc
	return phiDensity(h) * expNegHalf(t*t) * g
}
