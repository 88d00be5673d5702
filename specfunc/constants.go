/*
Package specfunc provides the scalar special-function layer the Black
implied-volatility engine is built on: the error functions erf, erfc and
the scaled complementary erfcx, together with the standard-normal density
phi, the standard-normal CDF Phi and its inverse PhiInv.

All functions are pure, re-entrant and allocate nothing; the coefficient
tables below are immutable static data shared by every call and are part
of the cross-implementation ABI — they must not be touched without
matching Cody's rational Chebyshev scheme and Wichura's AS-241 algorithm
bit-for-bit.
*/
package specfunc

// Thresholds governing the erf/erfc/erfcx region split (Cody 1969).
const (
	erfSmallBound = 15.0 / 32.0 // |x| <= this: region R1, direct rational erf
	erfMidBound   = 4.0         // |x| <= this (and > erfSmallBound): region R2
	xSmall        = 1.11e-16    // below this, erf(x) ~= x*(2/sqrt(pi))
	xBig          = 26.543      // erfc underflows to 0 beyond this
	xHuge         = 6.71e7      // asymptotic correction term underflows beyond this
	xMax          = 2.53e307    // erfcx underflows to 0 beyond this
	xNeg          = -26.628     // erfcx(x) overflows to +Inf below this
)

const oneOverSqrtPi = 0.56418958354775628695

// R1 rational approximation: erf(x) = x * P(x^2) / Q(x^2) for |x| <= 15/32.
var erfNumerA = [5]float64{
	3.16112374387056560,
	113.864154151050156,
	377.485237685302021,
	3209.37758913846947,
	0.185777706184603153,
}

var erfDenomB = [4]float64{
	23.6012909523441209,
	244.024637934444173,
	1282.61652607737228,
	2844.23683343917062,
}

// R2 rational approximation: erfc(x) = exp(-x^2) * R(x) for 15/32 < |x| <= 4.
var erfcNumerC = [9]float64{
	0.564188496988670089,
	8.88314979438837594,
	66.1191906371416295,
	298.635138197400131,
	881.952221241769090,
	1712.04761263407058,
	2051.07837782607147,
	1230.33935479799725,
	2.15311535474403846e-8,
}

var erfcDenomD = [8]float64{
	15.7449261107098347,
	117.693950891312499,
	537.181101862009858,
	1621.38957456669019,
	3290.79923573345963,
	4362.61909014324716,
	3439.36767414372164,
	1230.33935480374942,
}

// R3 asymptotic expansion: erfcx(x) ~= (1/sqrt(pi) - y*P'(y)/Q'(y)) / x and
// erfc(x) = exp(-x^2) * erfcx(x) for |x| > 4, where y = 1/x^2.
var erfcAsymptoticP = [6]float64{
	3.05326634961232344e-1,
	3.60344899949804439e-1,
	1.25781726111229246e-1,
	1.60837851487422766e-2,
	6.58749161529837803e-4,
	1.63153871373020978e-2,
}

var erfcAsymptoticQ = [5]float64{
	2.56852019228982242,
	1.87295284992346047,
	5.27905102951428412e-1,
	6.05183413124413191e-2,
	2.33520497626869185e-3,
}

// Wichura AS-241 thresholds and coefficient tables for the standard-normal
// quantile function PhiInv.
const (
	as241Split1 = 0.425
	as241Split2 = 5.0
	as241Const1 = 0.180625
	as241Const2 = 1.6
)

// Central region: |u - 1/2| <= SPLIT1.
var as241A = [8]float64{
	3.3871328727963666080e0,
	1.3314166789178437745e2,
	1.9715909503065514427e3,
	1.3731693765509461125e4,
	4.5921953931549871457e4,
	6.7265770927008700853e4,
	3.3430575583588128105e4,
	2.5090809287301226727e3,
}

var as241B = [7]float64{
	4.2313330701600911252e1,
	6.8718700749205790830e2,
	5.3941960214247511077e3,
	2.1213794301586595867e4,
	3.9307895800092710610e4,
	2.8729085735721942674e4,
	5.2264952788528545610e3,
}

// Outer region: SPLIT1 < |u - 1/2| and r = sqrt(-ln(min(u,1-u))) < SPLIT2.
var as241C = [8]float64{
	1.42343711074968357734e0,
	4.63033784615654529590e0,
	5.76949722146069140550e0,
	3.64784832476320460504e0,
	1.27045825245236838258e0,
	2.41780725177450611770e-1,
	2.27238449892691845833e-2,
	7.74545014278341640136e-4,
}

var as241D = [7]float64{
	2.05319162663775882187e0,
	1.67638483018380384940e0,
	6.89767334985100004550e-1,
	1.48103976427480074590e-1,
	1.51986665636164571966e-2,
	5.47593808499534494600e-4,
	1.05075007164441684324e-9,
}

// Far-tail region: r >= SPLIT2.
var as241E = [8]float64{
	6.65790464350110377720e0,
	5.46378491116411436990e0,
	1.78482653991729133580e0,
	2.96560571828504891230e-1,
	2.65321895265761230930e-2,
	1.24266094738807843860e-3,
	2.71155556874348757815e-5,
	2.01033439929228813265e-7,
}

var as241F = [7]float64{
	5.99832206555887937690e-1,
	1.36929880922735805310e-1,
	1.48753612908506148525e-2,
	7.86869131145613259100e-4,
	1.84631831751005468180e-5,
	1.42151175831644588870e-7,
	2.04426310338993978564e-15,
}
