package impliedvol_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervinlow/blackvol/impliedvol"
	"github.com/kervinlow/blackvol/pricers/black76"
)

func TestImpliedVolATMCall(t *testing.T) {
	sigma, err := impliedvol.ImpliedVol(7.965567455405798, 100, 100, 1.0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.20, sigma, 1e-13)
}

func TestImpliedVolATMPut(t *testing.T) {
	price, err := black76.Price(100, 100, 0.20, 1.0, -1)
	require.NoError(t, err)
	sigma, err := impliedvol.ImpliedVol(price, 100, 100, 1.0, -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.20, sigma, 1e-13)
}

func TestImpliedVolOTMCallRoundTrip(t *testing.T) {
	price, err := black76.Price(90, 100, 0.30, 2.0, 1)
	require.NoError(t, err)
	sigma, err := impliedvol.ImpliedVol(price, 90, 100, 2.0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, sigma, 1e-10)
}

func TestImpliedVolVeryLowVol(t *testing.T) {
	price, err := black76.Price(100, 100, 0.01, 1.0, 1)
	require.NoError(t, err)
	sigma, err := impliedvol.ImpliedVol(price, 100, 100, 1.0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, sigma, 1e-9)
}

func TestImpliedVolVeryHighVol(t *testing.T) {
	price, err := black76.Price(100, 100, 2.00, 1.0, 1)
	require.NoError(t, err)
	sigma, err := impliedvol.ImpliedVol(price, 100, 100, 1.0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.00, sigma, 1e-9)
}

func TestImpliedVolBelowIntrinsic(t *testing.T) {
	_, err := impliedvol.ImpliedVol(5, 110, 100, 1, 1)
	var target impliedvol.ErrBelowIntrinsic
	assert.True(t, errors.As(err, &target))
}

func TestImpliedVolAboveMaximum(t *testing.T) {
	_, err := impliedvol.ImpliedVol(105, 100, 100, 1, 1)
	var target impliedvol.ErrAboveMaximum
	assert.True(t, errors.As(err, &target))
}

func TestPutCallVolatilityConsistency(t *testing.T) {
	f, k, term := 100.0, 105.0, 1.5
	callPrice, err := black76.Price(f, k, 0.25, term, 1)
	require.NoError(t, err)
	putPrice := callPrice - (f - k)

	callVol, err := impliedvol.ImpliedVol(callPrice, f, k, term, 1)
	require.NoError(t, err)
	putVol, err := impliedvol.ImpliedVol(putPrice, f, k, term, -1)
	require.NoError(t, err)

	assert.InDelta(t, callVol, putVol, 1e-9)
}

func TestRoundTripAcrossMoneynessAndVol(t *testing.T) {
	forwards := []float64{100}
	strikes := []float64{70, 85, 95, 100, 105, 115, 140}
	vols := []float64{0.05, 0.10, 0.20, 0.50, 1.0, 2.0}
	terms := []float64{0.25, 1.0, 2.0}

	for _, f := range forwards {
		for _, k := range strikes {
			for _, sigma := range vols {
				for _, term := range terms {
					for _, q := range []float64{1, -1} {
						price, err := black76.Price(f, k, sigma, term, q)
						require.NoError(t, err)
						got, err := impliedvol.ImpliedVol(price, f, k, term, q)
						require.NoError(t, err)
						assert.InDelta(t, sigma, got, 1e-6, "f=%v k=%v sigma=%v t=%v q=%v", f, k, sigma, term, q)
					}
				}
			}
		}
	}
}

func TestNormalizedImpliedVolMonotoneInBeta(t *testing.T) {
	x := -0.3
	prev := 0.0
	for _, beta := range []float64{0.001, 0.01, 0.05, 0.1, 0.2, 0.3, 0.5, 0.8} {
		s, err := impliedvol.NormalizedImpliedVol(beta, x, 1)
		require.NoError(t, err)
		assert.Greater(t, s, prev)
		prev = s
	}
}
