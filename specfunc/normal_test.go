package specfunc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kervinlow/blackvol/internal/oracle"
	"github.com/kervinlow/blackvol/specfunc"
)

func TestPhiAtZero(t *testing.T) {
	assert.Equal(t, 0.5, specfunc.Phi(0))
}

func TestPhiSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x := (r.Float64() - 0.5) * 40
		assert.InDelta(t, 1.0, specfunc.Phi(x)+specfunc.Phi(-x), 1e-14)
	}
}

func TestPhiInvIsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		u := 1e-10 + r.Float64()*(1-2e-10)
		x := specfunc.PhiInv(u)
		assert.InDelta(t, u, specfunc.Phi(x), 1e-14)
	}
}

func TestPhiInvKnownValue(t *testing.T) {
	assert.InDelta(t, 1.9599639845400545, specfunc.PhiInv(0.975), 1e-14)
}

func TestPhiAgreesWithOracles(t *testing.T) {
	for _, x := range []float64{-20, -10, -5, -1, 0, 1, 5, 10, 20} {
		want1 := oracle.ProbabCDF(x)
		want2 := oracle.GonumCDF(x)
		got := specfunc.Phi(x)
		assert.InDelta(t, want1, got, 1e-9)
		assert.InDelta(t, want2, got, 1e-9)
	}
}

func TestPhiInvAgreesWithGonum(t *testing.T) {
	for _, u := range []float64{0.001, 0.01, 0.1, 0.5, 0.9, 0.99, 0.999} {
		want := oracle.GonumQuantile(u)
		got := specfunc.PhiInv(u)
		assert.InDelta(t, want, got, 1e-8)
	}
}
