package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/dataset"
)

const gendataBanner = `
gendata (zstat)

Usage: gendata [count [maxval]]

Writes count records (default GENDATA_COUNT) of the form
"<value> String <index>" with values uniform between zero and maxval
(default GENDATA_MAXVAL). Useful as input for normalize.

`

// NewGendataCommand creates the gendata command.
func NewGendataCommand(rt *Runtime) *cobra.Command {
	return newCommand("gendata [count [maxval]]", "Generate a uniform test dataset", gendataBanner,
		func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return usage(cmd, gendataBanner)
			}

			count := rt.Config.Gendata.Count
			maxValue := rt.Config.Gendata.MaxValue
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return usage(cmd, gendataBanner)
				}
				count = n
			}
			if len(args) > 1 {
				v, ok := parseNumber(args[1])
				if !ok {
					return usage(cmd, gendataBanner)
				}
				maxValue = v
			}

			rt.Logger.Debug("Generating dataset",
				zap.Int("count", count),
				zap.Float64("max_value", maxValue))
			return dataset.Generate(cmd.OutOrStdout(), count, maxValue, rt.Random())
		})
}
