package stats

import (
	"context"

	"github.com/GriffinCanCode/zstat/internal/probability"
	"github.com/GriffinCanCode/zstat/internal/types"
)

// ProbabilityOps converts Z-scores to tail probabilities.
type ProbabilityOps struct {
	calc *probability.Calculator
}

// GetTools returns probability tool definitions
func (p *ProbabilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "stats.probability",
			Name:        "Exceedance Probability",
			Description: "Calculate 1 + erf(-z/√2), the probability of |Z| exceeding z (unhalved, range [0,2])",
			Parameters: []types.Parameter{
				{Name: "z", Type: "number", Description: "Z-score", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "stats.z2p",
			Name:        "One-tailed P-value",
			Description: "Calculate the one-tailed p-value for a Z-score",
			Parameters: []types.Parameter{
				{Name: "z", Type: "number", Description: "Z-score", Required: true},
			},
			Returns: "object",
		},
	}
}

// Probability calculates the two-tailed exceedance probability
func (p *ProbabilityOps) Probability(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	z, err := requireNumber(params, "z")
	if err != nil {
		return Failure(err.Error())
	}

	res, err := p.calc.TwoTailed(z)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(evaluation(res))
}

// Z2P calculates the one-tailed p-value
func (p *ProbabilityOps) Z2P(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	z, err := requireNumber(params, "z")
	if err != nil {
		return Failure(err.Error())
	}

	res, err := p.calc.OneTailed(z)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(evaluation(res))
}
