package numerics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mathext"
)

// integerShapeP is the closed form of P(n,x) for integer n.
func integerShapeP(n int, x float64) float64 {
	term, sum := 1.0, 1.0
	for k := 1; k < n; k++ {
		term *= x / float64(k)
		sum += term
	}
	return 1 - math.Exp(-x)*sum
}

func TestGammaPReferenceValue(t *testing.T) {
	res, err := GammaP(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5939941502, res.Value, 1e-9)
	assert.Equal(t, MethodSeries, res.Method)
	assert.True(t, res.Converged)
}

func TestGammaPClosedForms(t *testing.T) {
	for _, a := range []int{1, 2, 3, 5, 10, 20} {
		for _, x := range []float64{0.01, 0.1, 0.5, 1, 2, 3, 5, 5.9, 6, 6.1, 10, 15, 20, 30, 50} {
			res, err := GammaP(float64(a), x)
			require.NoError(t, err)
			assert.True(t, res.Converged, "a=%d x=%g", a, x)
			assert.InDelta(t, integerShapeP(a, x), res.Value, 1e-8, "a=%d x=%g", a, x)
		}
	}
}

func TestGammaPMatchesGonum(t *testing.T) {
	for _, a := range []float64{0.5, 1.5, 2.5, 4.2, 7.7} {
		for _, x := range []float64{0.05, 0.7, 1.9, 3.3, 8, 12.5} {
			res, err := GammaP(a, x)
			require.NoError(t, err)
			assert.InDelta(t, mathext.GammaIncReg(a, x), res.Value, 1e-8, "a=%g x=%g", a, x)
		}
	}
}

func TestGammaPBranchSelection(t *testing.T) {
	tests := []struct {
		name   string
		a, x   float64
		method Method
	}{
		{name: "below switch-over", a: 5, x: 5.9, method: MethodSeries},
		{name: "at switch-over", a: 5, x: 6, method: MethodContinuedFraction},
		{name: "above switch-over", a: 5, x: 6.1, method: MethodContinuedFraction},
		{name: "zero argument", a: 3, x: 0, method: MethodSeries},
		{name: "infinite argument", a: 3, x: math.Inf(1), method: MethodClosedForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := GammaP(tt.a, tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.method, res.Method)
		})
	}
}

func TestSeriesAndContinuedFractionAgree(t *testing.T) {
	eval := NewEvaluator(DefaultConfig(), nil)

	for _, x := range []float64{5.5, 5.9, 6.0, 6.1, 6.5} {
		series, err := eval.LowerSeries(5, x)
		require.NoError(t, err)
		fraction, err := eval.UpperContinuedFraction(5, x)
		require.NoError(t, err)

		assert.True(t, series.Converged, "series x=%g", x)
		assert.True(t, fraction.Converged, "fraction x=%g", x)
		assert.InDelta(t, series.Value, 1-fraction.Value, 1e-7, "x=%g", x)
	}
}

func TestGammaPZeroArgument(t *testing.T) {
	res, err := GammaP(1.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, 0, res.Iterations)
	assert.True(t, res.Converged)
}

func TestGammaPInfiniteArgument(t *testing.T) {
	res, err := GammaP(1.5, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Value)

	q, err := GammaQ(1.5, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Value)
}

func TestGammaQComplementsGammaP(t *testing.T) {
	for _, a := range []float64{0.5, 1, 3, 8} {
		for _, x := range []float64{0.2, 1, 4, 9, 16} {
			p, err := GammaP(a, x)
			require.NoError(t, err)
			q, err := GammaQ(a, x)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, p.Value+q.Value, 1e-12, "a=%g x=%g", a, x)
			assert.InDelta(t, mathext.GammaIncRegComp(a, x), q.Value, 1e-8, "a=%g x=%g", a, x)
		}
	}
}

func TestGammaPDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		a, x float64
	}{
		{name: "zero shape", a: 0, x: 1},
		{name: "negative argument", a: 1, x: -1},
		{name: "negative shape", a: -2, x: 1},
		{name: "NaN shape", a: math.NaN(), x: 1},
		{name: "NaN argument", a: 1, x: math.NaN()},
		{name: "infinite shape", a: math.Inf(1), x: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GammaP(tt.a, tt.x)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDomain))

			var domainErr *DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "gammp", domainErr.Routine)

			_, err = GammaQ(tt.a, tt.x)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestSubroutineDomainErrors(t *testing.T) {
	eval := NewEvaluator(DefaultConfig(), nil)

	_, err := eval.LowerSeries(1, -1)
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "gser", domainErr.Routine)

	_, err = eval.UpperContinuedFraction(1, 0)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "gcf", domainErr.Routine)
}

func TestNonConvergenceIsReported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	eval := NewEvaluator(Config{MaxIterations: 2}, zap.New(core))

	t.Run("series", func(t *testing.T) {
		res, err := eval.LowerSeries(5, 4)
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, 2, res.Iterations)
		assert.Greater(t, res.Value, 0.0)
		assert.Less(t, res.Value, integerShapeP(5, 4))
	})

	t.Run("continued fraction", func(t *testing.T) {
		res, err := eval.UpperContinuedFraction(5, 6.1)
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, 2, res.Iterations)
		assert.False(t, math.IsNaN(res.Value))
	})

	entries := logs.FilterField(zap.String("reason", "a too large, iteration limit too small")).All()
	require.Len(t, entries, 2)
	assert.Equal(t, "gser", entries[0].ContextMap()["routine"])
	assert.Equal(t, "gcf", entries[1].ContextMap()["routine"])
}

func TestDomainErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	eval := NewEvaluator(DefaultConfig(), zap.New(core))

	_, err := eval.GammaP(0, 1)
	require.Error(t, err)

	entries := logs.FilterField(zap.String("routine", "gammp")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Invalid arguments", entries[0].ContextMap()["reason"])
}

func TestNewEvaluatorDefaults(t *testing.T) {
	eval := NewEvaluator(Config{}, nil)
	assert.Equal(t, DefaultMaxIterations, eval.maxIterations)
	assert.Equal(t, DefaultEpsilon, eval.epsilon)
	assert.NotNil(t, eval.logger)
}

func TestGammaPIsPure(t *testing.T) {
	first, err := GammaP(3.3, 2.7)
	require.NoError(t, err)

	for range 10 {
		again, err := GammaP(3.3, 2.7)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first.Value), math.Float64bits(again.Value))
		assert.Equal(t, first, again)
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "closed_form", MethodClosedForm.String())
	assert.Equal(t, "series", MethodSeries.String())
	assert.Equal(t, "continued_fraction", MethodContinuedFraction.String())
	assert.Equal(t, "unknown", Method(42).String())
}

type recordingObserver struct {
	routines     []string
	results      []Result
	domainErrors []string
}

func (r *recordingObserver) ObserveEvaluation(routine string, res Result) {
	r.routines = append(r.routines, routine)
	r.results = append(r.results, res)
}

func (r *recordingObserver) ObserveDomainError(routine string) {
	r.domainErrors = append(r.domainErrors, routine)
}

func TestWithObserver(t *testing.T) {
	rec := &recordingObserver{}
	base := NewEvaluator(DefaultConfig(), nil)
	eval := base.WithObserver(rec)

	p, err := eval.GammaP(2, 2)
	require.NoError(t, err)
	q, err := eval.GammaQ(0.5, 9)
	require.NoError(t, err)
	_, err = eval.Erf(1)
	require.NoError(t, err)
	_, err = eval.GammaP(-1, 2)
	require.Error(t, err)

	assert.Equal(t, []string{"gammp", "gammq", "gammp"}, rec.routines)
	assert.Equal(t, p, rec.results[0])
	assert.Equal(t, q, rec.results[1])
	assert.Equal(t, MethodContinuedFraction, rec.results[1].Method)
	assert.Equal(t, []string{"gammp"}, rec.domainErrors)

	// The base evaluator keeps no observer.
	_, err = base.GammaP(2, 2)
	require.NoError(t, err)
	assert.Len(t, rec.routines, 3)
}

func TestUpperContinuedFractionZeroLeadingTerm(t *testing.T) {
	// x = a-1 makes the first denominator x+1-a exactly zero.
	tests := []struct {
		a, x float64
	}{
		{a: 5, x: 4},
		{a: 3, x: 2},
		{a: 2, x: 1},
	}

	eval := NewEvaluator(DefaultConfig(), nil)
	for _, tt := range tests {
		res, err := eval.UpperContinuedFraction(tt.a, tt.x)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(res.Value), "a=%g x=%g", tt.a, tt.x)
		assert.True(t, res.Converged, "a=%g x=%g", tt.a, tt.x)
		assert.InDelta(t, 1-integerShapeP(int(tt.a), tt.x), res.Value, 1e-8, "a=%g x=%g", tt.a, tt.x)
	}
}

func TestUpperContinuedFractionNeverReportsNonFiniteAsConverged(t *testing.T) {
	eval := NewEvaluator(DefaultConfig(), nil)
	for a := 0.5; a <= 20; a += 0.5 {
		for _, x := range []float64{a - 1, a - 0.5, a + 1, 2 * a} {
			if x <= 0 {
				continue
			}
			res, err := eval.UpperContinuedFraction(a, x)
			require.NoError(t, err)
			if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
				assert.False(t, res.Converged, "a=%g x=%g", a, x)
			}
		}
	}
}
