package numerics

var defaultEvaluator = NewEvaluator(DefaultConfig(), nil)

// Erf returns the error function, sign(x)·P(1/2, x²).
func (e *Evaluator) Erf(x float64) (Result, error) {
	res, err := e.GammaP(0.5, x*x)
	if err != nil {
		return Result{}, err
	}
	if x < 0 {
		res.Value = -res.Value
	}
	return res, nil
}

// Erfc returns the complementary error function 1 - erf(x). For x >= 0 it
// is evaluated as Q(1/2, x²) so the upper tail keeps its precision.
func (e *Evaluator) Erfc(x float64) (Result, error) {
	if x < 0 {
		res, err := e.GammaP(0.5, x*x)
		if err != nil {
			return Result{}, err
		}
		res.Value = 1 + res.Value
		return res, nil
	}

	return e.GammaQ(0.5, x*x)
}

// GammaP evaluates P(a,x) with the default evaluator.
func GammaP(a, x float64) (Result, error) {
	return defaultEvaluator.GammaP(a, x)
}

// GammaQ evaluates Q(a,x) with the default evaluator.
func GammaQ(a, x float64) (Result, error) {
	return defaultEvaluator.GammaQ(a, x)
}

// Erf evaluates the error function with the default evaluator.
func Erf(x float64) (Result, error) {
	return defaultEvaluator.Erf(x)
}

// Erfc evaluates the complementary error function with the default evaluator.
func Erfc(x float64) (Result, error) {
	return defaultEvaluator.Erfc(x)
}
