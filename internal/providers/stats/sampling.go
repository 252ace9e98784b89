package stats

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/zstat/internal/dataset"
	"github.com/GriffinCanCode/zstat/internal/random"
	"github.com/GriffinCanCode/zstat/internal/resample"
	"github.com/GriffinCanCode/zstat/internal/types"
)

// SamplingOps resamples value arrays toward a normal target.
type SamplingOps struct {
	normalizer *resample.Normalizer
}

// GetTools returns sampling tool definitions
func (s *SamplingOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "stats.normalize",
			Name:        "Normalize",
			Description: "Select values so the retained set approximates a normal distribution",
			Parameters: []types.Parameter{
				{Name: "values", Type: "array", Description: "Array of numbers", Required: true},
				{Name: "mean", Type: "number", Description: "Target mean", Required: true},
				{Name: "sd", Type: "number", Description: "Target standard deviation", Required: true},
				{Name: "seed", Type: "number", Description: "Random seed (0 or absent seeds from the clock)", Required: false},
			},
			Returns: "object",
		},
	}
}

// Normalize filters values toward the target distribution
func (s *SamplingOps) Normalize(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	values, ok := GetNumbers(params, "values")
	if !ok {
		return Failure("values parameter required")
	}
	if err := ValidateNumbers(values, "values"); err != nil {
		return Failure(err.Error())
	}

	mean, err := requireNumber(params, "mean")
	if err != nil {
		return Failure(err.Error())
	}
	sd, err := requireNumber(params, "sd")
	if err != nil {
		return Failure(err.Error())
	}

	var seed uint64
	if v, ok := GetNumber(params, "seed"); ok {
		if v < 0 {
			return Failure("seed must be non-negative")
		}
		seed = uint64(v)
	}

	records := make([]dataset.Record, len(values))
	for i, v := range values {
		records[i] = dataset.Record{Value: v, Line: fmt.Sprint(v)}
	}

	retained, report, err := s.normalizer.Normalize(records, resample.Target{Mean: mean, SD: sd}, random.New(seed))
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"values":   dataset.Values(retained),
		"read":     report.Read,
		"retained": report.Retained,
		"rejected": report.Rejected,
	})
}
