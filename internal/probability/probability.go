// Package probability converts Z-scores into normal tail probabilities.
package probability

import (
	"math"

	"github.com/GriffinCanCode/zstat/internal/numerics"
)

// Calculator evaluates tail probabilities with a numerics.Evaluator.
type Calculator struct {
	eval *numerics.Evaluator
}

// NewCalculator creates a calculator. A nil evaluator uses the defaults.
func NewCalculator(eval *numerics.Evaluator) *Calculator {
	if eval == nil {
		eval = numerics.NewEvaluator(numerics.DefaultConfig(), nil)
	}
	return &Calculator{eval: eval}
}

// TwoTailed returns p(|X-μ| > |z|σ) = 1 + erf(-z/√2) for a standard
// normal X. The value lies in [0, 2]: it is 1 at z = 0 and is not halved
// for negative z. Callers that want a one-tailed value use OneTailed.
func (c *Calculator) TwoTailed(z float64) (numerics.Result, error) {
	res, err := c.eval.Erf(-z / math.Sqrt2)
	if err != nil {
		return numerics.Result{}, err
	}
	res.Value = 1 + res.Value
	return res, nil
}

// OneTailed returns the probability of a value at least z standard
// deviations above the mean.
func (c *Calculator) OneTailed(z float64) (numerics.Result, error) {
	res, err := c.TwoTailed(z)
	if err != nil {
		return numerics.Result{}, err
	}
	res.Value /= 2
	return res, nil
}

var defaultCalculator = NewCalculator(nil)

// CalcProbability evaluates TwoTailed with the default calculator and
// returns only the value.
func CalcProbability(z float64) (float64, error) {
	res, err := defaultCalculator.TwoTailed(z)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
