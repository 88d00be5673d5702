package black_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kervinlow/blackvol/black"
)

// reference computes the normalized Black call directly from Phi, used as
// an independent check in regimes where cancellation is not a concern.
func reference(x, s float64) float64 {
	h := x / s
	t := s / 2
	return math.Exp(x/2)*cdf(h+t) - math.Exp(-x/2)*cdf(h-t)
}

func cdf(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

func TestNormalizedBlackCallATM(t *testing.T) {
	got := black.NormalizedBlackCall(0, 0.2)
	assert.InDelta(t, reference(0, 0.2), got, 1e-12)
}

func TestNormalizedBlackCallModerateMoneyness(t *testing.T) {
	for _, x := range []float64{-0.5, -0.1, -1.5} {
		for _, s := range []float64{0.1, 0.5, 1.0, 2.0} {
			got := black.NormalizedBlackCall(x, s)
			want := reference(x, s)
			assert.InDelta(t, want, got, 1e-10, "x=%v s=%v", x, s)
		}
	}
}

func TestNormalizedBlackCallPutCallSymmetry(t *testing.T) {
	x, s := 0.7, 0.6
	got := black.NormalizedBlackCall(x, s)
	want := black.NormalizedIntrinsic(x, 1) + black.NormalizedBlackCall(-x, s)
	assert.Equal(t, want, got)
}

func TestNormalizedBlackCallNonNegativeAndBounded(t *testing.T) {
	for _, x := range []float64{-3, -1, -0.2, 0, 0.2, 1, 3} {
		for _, s := range []float64{0.01, 0.1, 1, 3} {
			b := black.NormalizedBlackCall(x, s)
			assert.GreaterOrEqual(t, b, 0.0)
			assert.LessOrEqual(t, b, math.Exp(math.Abs(x)/2)+1e-9)
		}
	}
}

func TestNormalizedVegaPositive(t *testing.T) {
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		// s stays at or above 0.1: at |x| = 2, s = 0.05 the vega is about
		// 1e-348, below the smallest positive float64.
		for _, s := range []float64{0.1, 0.5, 2} {
			assert.Greater(t, black.NormalizedVega(x, s), 0.0)
		}
	}
}

func TestNormalizedVegaUnderflowsToZero(t *testing.T) {
	assert.Equal(t, 0.0, black.NormalizedVega(100, 1e-200))
}

func TestNormalizedIntrinsicClampsToZero(t *testing.T) {
	assert.Equal(t, 0.0, black.NormalizedIntrinsic(-1, 1))
	assert.Equal(t, 0.0, black.NormalizedIntrinsic(1, -1))
}

func TestNormalizedIntrinsicSmallXSeriesMatchesExpDifference(t *testing.T) {
	x := 0.001
	got := black.NormalizedIntrinsic(x, 1)
	// exp(x/2)-exp(-x/2) written as 2*sinh(x/2), which evaluates it
	// without the ~1e-16 cancellation error of subtracting two
	// exponentials near 1.
	want := 2 * math.Sinh(x/2)
	assert.InDelta(t, want, got, 1e-18)
}

// TestNormalizedBlackCallDeepOTMUsesAsymptoticRegime exercises points deep
// enough out-of-the-money to hit regime I (x < -10*s and s small), and
// checks that the asymptotic-series evaluation agrees to within 1e-9
// (absolute) with reference, the Phi difference computed from the
// standard library's math.Erfc.
func TestNormalizedBlackCallDeepOTMUsesAsymptoticRegime(t *testing.T) {
	s := 1.0
	x := -10.5 * s
	got := black.NormalizedBlackCall(x, s)
	want := reference(x, s)
	assert.InDelta(t, want, got, 1e-9)
}

func TestNormalizedBlackCallDeepOTMSmallVol(t *testing.T) {
	s := 0.05
	x := -12 * s
	got := black.NormalizedBlackCall(x, s)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, black.NormalizedBlackCall(0, s))
}
