package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustErf(t *testing.T, x float64) float64 {
	t.Helper()
	res, err := Erf(x)
	require.NoError(t, err)
	return res.Value
}

func TestErfZero(t *testing.T) {
	assert.Equal(t, 0.0, mustErf(t, 0))
	assert.Equal(t, 0.0, mustErf(t, math.Copysign(0, -1)))
}

func TestErfReferenceValue(t *testing.T) {
	assert.InDelta(t, 0.8427007929497149, mustErf(t, 1.0), 1e-7)
}

func TestErfOddSymmetry(t *testing.T) {
	for i := -600; i <= 600; i += 7 {
		x := float64(i) / 100
		assert.InDelta(t, -mustErf(t, x), mustErf(t, -x), 1e-8, "x=%g", x)
	}
}

func TestErfMatchesStdlib(t *testing.T) {
	for i := -600; i <= 600; i++ {
		x := float64(i) / 100
		assert.InDelta(t, math.Erf(x), mustErf(t, x), 1e-8, "x=%g", x)
	}
}

func TestErfLimits(t *testing.T) {
	assert.Greater(t, mustErf(t, 6), 0.999999)
	assert.Less(t, mustErf(t, -6), -0.999999)
	assert.Equal(t, 1.0, mustErf(t, math.Inf(1)))
	assert.Equal(t, -1.0, mustErf(t, math.Inf(-1)))
	assert.Equal(t, 1.0, mustErf(t, 1e200))
}

func TestErfRange(t *testing.T) {
	for _, x := range []float64{-50, -3, -0.3, 0.01, 0.9, 2.2, 40} {
		v := mustErf(t, x)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestErfNaN(t *testing.T) {
	_, err := Erf(math.NaN())
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Erfc(math.NaN())
	assert.ErrorIs(t, err, ErrDomain)
}

func TestErfc(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{name: "zero", x: 0},
		{name: "small", x: 0.5},
		{name: "one", x: 1},
		{name: "two", x: 2},
		{name: "tail", x: 5},
		{name: "negative", x: -1},
		{name: "negative tail", x: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Erfc(tt.x)
			require.NoError(t, err)
			want := math.Erfc(tt.x)
			assert.InEpsilon(t, want, res.Value, 1e-7)
		})
	}
}

func TestErfcKeepsTailPrecision(t *testing.T) {
	res, err := Erfc(5)
	require.NoError(t, err)
	assert.Equal(t, MethodContinuedFraction, res.Method)
	assert.InEpsilon(t, 1.5374597944280351e-12, res.Value, 1e-7)
}

func TestErfIsPure(t *testing.T) {
	first := mustErf(t, 0.77)
	for range 10 {
		assert.Equal(t, math.Float64bits(first), math.Float64bits(mustErf(t, 0.77)))
	}
}
