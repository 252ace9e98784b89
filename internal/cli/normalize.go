package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/dataset"
	"github.com/GriffinCanCode/zstat/internal/resample"
)

const normalizeBanner = `
normalize (zstat)

Usage: normalize mean sd [in.dat [out.dat]]

Samples the input dataset and writes a new set where the data are
normally distributed with the required mean and standard deviation.

The method is to calculate the absolute Z-score of each datapoint
(with respect to the required distribution) and to calculate the
probability of a value having this absolute Z-score or greater.
A random number between zero and one is then selected and if the
probability is greater than the random number, then the datapoint
is transferred to the output set.

`

// errReadInput is reported when the input holds no records. The message
// is printed after "Error: " so it keeps its capital.
var errReadInput = errors.New("Unable to read input data")

type normalizeArgs struct {
	target  resample.Target
	inFile  string
	outFile string
}

// parseNormalizeArgs returns false for any command line that should show
// the banner.
func parseNormalizeArgs(args []string) (normalizeArgs, bool) {
	var na normalizeArgs
	if len(args) < 2 || len(args) > 4 {
		return na, false
	}
	for _, arg := range args[:2] {
		if isOption(arg) {
			return na, false
		}
	}

	mean, ok := parseNumber(args[0])
	if !ok {
		return na, false
	}
	sd, ok := parseNumber(args[1])
	if !ok {
		return na, false
	}
	na.target = resample.Target{Mean: mean, SD: sd}

	if len(args) > 2 {
		na.inFile = args[2]
	}
	if len(args) > 3 {
		na.outFile = args[3]
	}
	return na, true
}

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rt *Runtime) *cobra.Command {
	return newCommand("normalize mean sd [in.dat [out.dat]]",
		"Select records so the output is normally distributed", normalizeBanner,
		func(cmd *cobra.Command, args []string) error {
			na, ok := parseNormalizeArgs(args)
			if !ok {
				return usage(cmd, normalizeBanner)
			}
			if err := na.target.Validate(); err != nil {
				return err
			}
			return runNormalize(rt, cmd, na)
		})
}

func runNormalize(rt *Runtime, cmd *cobra.Command, na normalizeArgs) (err error) {
	var in io.ReadCloser
	if na.inFile != "" {
		in, err = dataset.Open(na.inFile)
	} else {
		in, err = dataset.NewReader(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	if na.outFile != "" {
		f, cerr := os.Create(na.outFile)
		if cerr != nil {
			return cerr
		}
		defer closeInto(f, &err)
		out = f
	}

	records, err := dataset.Read(in)
	if errors.Is(err, dataset.ErrNoData) {
		return errReadInput
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errReadInput, err)
	}

	retained, report, err := rt.Normalizer.Normalize(records, na.target, rt.Random())
	if err != nil {
		return err
	}
	rt.Metrics.RecordRecords(report.Read, report.Retained, report.Rejected, report.Failed)

	summary := dataset.Summarize(retained)
	rt.Logger.Debug("Normalized dataset",
		zap.Float64("target_mean", na.target.Mean),
		zap.Float64("target_sd", na.target.SD),
		zap.Int("read", report.Read),
		zap.Int("retained", report.Retained),
		zap.Int("rejected", report.Rejected),
		zap.Int("failed", report.Failed),
		zap.Int("non_converged", report.NonConverged),
		zap.Float64("mean", summary.Mean),
		zap.Float64("sd", summary.StdDev))

	bw := bufio.NewWriter(out)
	if err := dataset.Write(bw, retained); err != nil {
		return err
	}
	return bw.Flush()
}

// closeInto closes c and keeps its error when *err is still nil.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
