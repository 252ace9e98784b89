package stats

import (
	"context"

	"github.com/GriffinCanCode/zstat/internal/numerics"
	"github.com/GriffinCanCode/zstat/internal/types"
)

// SpecialOps exposes the gamma family and the error function.
type SpecialOps struct {
	eval *numerics.Evaluator
}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "stats.lgamma",
			Name:        "Log Gamma",
			Description: "Calculate natural log of gamma function ln(Γ(x)) for x > 0",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value (> 0)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "stats.gammp",
			Name:        "Regularized Lower Incomplete Gamma",
			Description: "Calculate P(a,x) = γ(a,x)/Γ(a)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Shape (> 0)", Required: true},
				{Name: "x", Type: "number", Description: "Argument (>= 0)", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "stats.gammq",
			Name:        "Regularized Upper Incomplete Gamma",
			Description: "Calculate Q(a,x) = 1 - P(a,x)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Shape (> 0)", Required: true},
				{Name: "x", Type: "number", Description: "Argument (>= 0)", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "stats.erf",
			Name:        "Error Function",
			Description: "Calculate error function erf(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "stats.erfc",
			Name:        "Complementary Error Function",
			Description: "Calculate complementary error function erfc(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "object",
		},
	}
}

// Lgamma calculates log gamma function
func (sp *SpecialOps) Lgamma(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	x, err := requireNumber(params, "x")
	if err != nil {
		return Failure(err.Error())
	}
	if x <= 0 {
		return Failure("x must be positive")
	}

	return Success(map[string]interface{}{"result": numerics.LogGamma(x)})
}

// GammaP calculates the regularized lower incomplete gamma function
func (sp *SpecialOps) GammaP(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	return sp.shapeAndArgument(params, sp.eval.GammaP)
}

// GammaQ calculates the regularized upper incomplete gamma function
func (sp *SpecialOps) GammaQ(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	return sp.shapeAndArgument(params, sp.eval.GammaQ)
}

// Erf calculates error function
func (sp *SpecialOps) Erf(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	return sp.single(params, sp.eval.Erf)
}

// Erfc calculates complementary error function
func (sp *SpecialOps) Erfc(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	return sp.single(params, sp.eval.Erfc)
}

func (sp *SpecialOps) single(params map[string]interface{}, fn func(float64) (numerics.Result, error)) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}

	res, err := fn(x)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(evaluation(res))
}

func (sp *SpecialOps) shapeAndArgument(params map[string]interface{}, fn func(a, x float64) (numerics.Result, error)) (*types.Result, error) {
	a, ok := GetNumber(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}

	res, err := fn(a, x)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(evaluation(res))
}
