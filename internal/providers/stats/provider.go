// Package stats exposes the numerics, probability and resampling layers
// as an in-process tool provider.
package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/numerics"
	"github.com/GriffinCanCode/zstat/internal/probability"
	"github.com/GriffinCanCode/zstat/internal/resample"
	"github.com/GriffinCanCode/zstat/internal/types"
)

// Provider implements statistical operations
type Provider struct {
	special     *SpecialOps
	probability *ProbabilityOps
	sampling    *SamplingOps
}

// NewProvider creates a stats provider around an evaluator. A nil
// evaluator uses the default iteration limits.
func NewProvider(eval *numerics.Evaluator, logger *zap.Logger) *Provider {
	if eval == nil {
		eval = numerics.NewEvaluator(numerics.DefaultConfig(), logger)
	}
	calc := probability.NewCalculator(eval)

	return &Provider{
		special:     &SpecialOps{eval: eval},
		probability: &ProbabilityOps{calc: calc},
		sampling:    &SamplingOps{normalizer: resample.NewNormalizer(calc, logger)},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.special.GetTools()...)
	tools = append(tools, p.probability.GetTools()...)
	tools = append(tools, p.sampling.GetTools()...)

	return types.Service{
		ID:          "stats",
		Name:        "Stats Service",
		Description: "Incomplete gamma, error function, normal tail probabilities and normal resampling",
		Category:    types.CategoryNumerics,
		Capabilities: []string{
			"special",
			"probability",
			"sampling",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	// Special functions
	case "stats.lgamma":
		return p.special.Lgamma(ctx, params)
	case "stats.gammp":
		return p.special.GammaP(ctx, params)
	case "stats.gammq":
		return p.special.GammaQ(ctx, params)
	case "stats.erf":
		return p.special.Erf(ctx, params)
	case "stats.erfc":
		return p.special.Erfc(ctx, params)

	// Probability
	case "stats.probability":
		return p.probability.Probability(ctx, params)
	case "stats.z2p":
		return p.probability.Z2P(ctx, params)

	// Sampling
	case "stats.normalize":
		return p.sampling.Normalize(ctx, params)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
