package black

import (
	"math"

	"github.com/kervinlow/blackvol/mach"
)

// intrinsicSmallXThreshold is the |x|^2 bound below which the exponential
// difference exp(x/2)-exp(-x/2) is replaced by its Taylor series to avoid
// cancellation, per spec.md section 4.2.
var intrinsicSmallXThreshold = 98 * mach.EpsilonPow1Over4

// NormalizedIntrinsic returns the normalized intrinsic value
// max(q*(exp(x/2)-exp(-x/2)), 0). It returns exactly 0 when q*x <= 0.
func NormalizedIntrinsic(x, q float64) float64 {
	if q*x <= 0 {
		return 0
	}
	x2 := x * x
	var value float64
	if x2 < intrinsicSmallXThreshold {
		value = x * (1 + x2*(1.0/24+x2*(1.0/1920+x2*(1.0/322560+x2*(1.0/92897280)))))
	} else {
		value = math.Exp(x/2) - math.Exp(-x/2)
	}
	result := q * value
	if result < 0 {
		return 0
	}
	return result
}
