package analytical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervinlow/blackvol/pricers/analytical"
	"github.com/kervinlow/blackvol/pricers/black76"
)

func TestB1976AgreesWithBlack76Price(t *testing.T) {
	f, k, v, term := 100.0, 110.0, 0.25, 1.5

	var out analytical.ModelOutputs
	require.NoError(t, out.B1976(analytical.Call, f, k, term, v, 0))

	want, err := black76.Price(f, k, v, term, 1)
	require.NoError(t, err)
	assert.InDelta(t, want, out.Value, 1e-9)
}

func TestB1976PutCallParity(t *testing.T) {
	f, k, v, term := 100.0, 95.0, 0.2, 1.0

	var call, put analytical.ModelOutputs
	require.NoError(t, call.B1976(analytical.Call, f, k, term, v, 0))
	require.NoError(t, put.B1976(analytical.Put, f, k, term, v, 0))

	assert.InDelta(t, f-k, call.Value-put.Value, 1e-9)
}

func TestB1976DeltaWithinUnitBounds(t *testing.T) {
	f, k, v, term := 100.0, 90.0, 0.3, 2.0

	var call, put analytical.ModelOutputs
	require.NoError(t, call.B1976(analytical.Call, f, k, term, v, 0))
	require.NoError(t, put.B1976(analytical.Put, f, k, term, v, 0))

	assert.GreaterOrEqual(t, call.Delta, 0.0)
	assert.LessOrEqual(t, call.Delta, 1.0)
	assert.GreaterOrEqual(t, put.Delta, -1.0)
	assert.LessOrEqual(t, put.Delta, 0.0)
}

func TestGBSMRejectsDegenerateInputs(t *testing.T) {
	var out analytical.ModelOutputs
	err := out.GBSM(analytical.Call, 100, 100, 0, 0.2, 0, 0)
	assert.Error(t, err)
}
