/*
Package black76 provides the forward-Black (Black, 1976) European option
pricer used as the round-trip fixture for the implied volatility engine:
Price wraps (*analytical.ModelOutputs).B1976 ("option on a forward or
futures contract") with the undiscounted, q/+-1 calling convention
ImpliedVol itself uses, so property tests can price an option here, then
recover sigma from the price via impliedvol.ImpliedVol and check the two
agree. ImpliedVol never calls this package.

Vega is computed directly against specfunc rather than through GBSM's
goroutine-computed, market-convention-scaled (per-1%, per-year) Greeks,
since the property tests need the raw mathematical derivative
d(Price)/d(sigma).
*/
package black76

import (
	"fmt"
	"math"

	"github.com/kervinlow/blackvol/pricers/analytical"
	"github.com/kervinlow/blackvol/specfunc"
)

/*
ErrPricing is returned when Price is called with a non-positive forward,
strike, volatility, or time to expiry.
*/
type ErrPricing string

func (e ErrPricing) Error() string {
	return fmt.Sprintf("%s", string(e))
}

/*
Price returns the undiscounted Black (1976) value of a European option on
a forward or futures contract with forward price f, strike k, volatility
sigma and time to expiry t. q is +1 for a call and -1 for a put, matching
the sign convention of impliedvol.ImpliedVol.
*/
func Price(f, k, sigma, t, q float64) (float64, error) {
	if f <= 0 || k <= 0 || sigma <= 0 || t <= 0 {
		return 0, ErrPricing("black76: f, k, sigma and t must all be positive")
	}
	if q != 1 && q != -1 {
		return 0, ErrPricing("black76: q must be +1 (call) or -1 (put)")
	}
	ot := analytical.Call
	if q < 0 {
		ot = analytical.Put
	}
	var out analytical.ModelOutputs
	if err := out.B1976(ot, f, k, t, sigma, 0); err != nil {
		return 0, ErrPricing("black76: " + err.Error())
	}
	return out.Value, nil
}

/*
Vega returns the Black (1976) vega d(Price)/d(sigma), which does not
depend on the sign of q.
*/
func Vega(f, k, sigma, t float64) (float64, error) {
	if f <= 0 || k <= 0 || sigma <= 0 || t <= 0 {
		return 0, ErrPricing("black76: f, k, sigma and t must all be positive")
	}
	s := sigma * math.Sqrt(t)
	d1 := (math.Log(f/k) + 0.5*s*s) / s
	return f * specfunc.PhiDensity(d1) * math.Sqrt(t), nil
}
