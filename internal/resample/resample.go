// Package resample filters a dataset so its values approximate a target
// normal distribution.
//
// Each record with value v is kept with probability
// p = 1 + erf(-|z|/√2), z = (v - mean)/sd, by comparing p against a
// uniform draw. The size of the output is itself random.
package resample

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/dataset"
	"github.com/GriffinCanCode/zstat/internal/probability"
	"github.com/GriffinCanCode/zstat/internal/random"
)

// ErrInvalidTarget is returned for a target distribution that cannot be
// used to standardize values.
var ErrInvalidTarget = errors.New("invalid target distribution")

// Target is the normal distribution the output should approximate. Only
// the magnitude of SD matters.
type Target struct {
	Mean float64
	SD   float64
}

// Validate checks that the target is finite with a non-zero deviation.
func (t Target) Validate() error {
	if math.IsNaN(t.Mean) || math.IsInf(t.Mean, 0) {
		return fmt.Errorf("%w: mean %g is not finite", ErrInvalidTarget, t.Mean)
	}
	if math.IsNaN(t.SD) || math.IsInf(t.SD, 0) {
		return fmt.Errorf("%w: sd %g is not finite", ErrInvalidTarget, t.SD)
	}
	if t.SD == 0 {
		return fmt.Errorf("%w: sd must be non-zero", ErrInvalidTarget)
	}
	return nil
}

// Report counts the outcome of one filter pass.
type Report struct {
	Read         int
	Retained     int
	Rejected     int
	Failed       int
	NonConverged int
}

// Normalizer runs the accept/reject filter.
type Normalizer struct {
	calc   *probability.Calculator
	logger *zap.Logger
}

// NewNormalizer creates a normalizer. Nil arguments use a default
// calculator and a no-op logger.
func NewNormalizer(calc *probability.Calculator, logger *zap.Logger) *Normalizer {
	if calc == nil {
		calc = probability.NewCalculator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{calc: calc, logger: logger}
}

// Normalize returns the retained records in input order. One value is
// drawn from src per record. Records whose probability cannot be
// evaluated are rejected and counted as failed.
func (n *Normalizer) Normalize(records []dataset.Record, target Target, src random.Source) ([]dataset.Record, Report, error) {
	if err := target.Validate(); err != nil {
		return nil, Report{}, err
	}

	report := Report{Read: len(records)}
	retained := make([]dataset.Record, 0, len(records))

	for i, rec := range records {
		z := math.Abs((rec.Value - target.Mean) / target.SD)
		res, err := n.calc.TwoTailed(z)
		r := src.Float64()

		if err != nil {
			report.Failed++
			n.logger.Warn("Skipping record",
				zap.Int("record", i+1),
				zap.Float64("value", rec.Value),
				zap.Error(err))
			continue
		}
		if !res.Converged {
			report.NonConverged++
		}

		if res.Value >= r {
			retained = append(retained, rec)
			report.Retained++
		} else {
			report.Rejected++
		}
	}

	return retained, report, nil
}

// Normalize filters records with a default normalizer.
func Normalize(records []dataset.Record, target Target, src random.Source) ([]dataset.Record, Report, error) {
	return NewNormalizer(nil, nil).Normalize(records, target, src)
}
