package specfunc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kervinlow/blackvol/specfunc"
)

func TestErfKnownValues(t *testing.T) {
	assert.InDelta(t, 0.8427007929497148, specfunc.Erf(1), 1e-15)
	assert.InDelta(t, 0.9953222650189527, specfunc.Erf(2), 1e-15)
}

func TestErfSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x := (r.Float64() - 0.5) * 20
		assert.Equal(t, specfunc.Erf(x), -specfunc.Erf(-x))
	}
}

func TestErfcIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		x := (r.Float64() - 0.5) * 20
		assert.InDelta(t, 2.0, specfunc.Erfc(x)+specfunc.Erfc(-x), 1e-12)
	}
}

func TestErfcxMatchesDefinition(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.5, 1, 2, 3, 5, 10, 20} {
		want := math.Exp(x*x) * specfunc.Erfc(x)
		got := specfunc.Erfcx(x)
		assert.InDelta(t, want, got, math.Abs(want)*2e-15+1e-300)
	}
}

func TestErfcxLargeNegativeOverflows(t *testing.T) {
	assert.True(t, math.IsInf(specfunc.Erfcx(-30), 1))
}
