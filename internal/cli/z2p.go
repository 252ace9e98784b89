package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const z2pBanner = `
z2p (zstat)

Usage: z2p zscore

Prints the 1-tailed p-value for a z-score to give the probability of
obtaining this z-score or greater by chance. To obtain a 2-tailed
p-value ensure the absolute z-score is provided and double the
result.

`

// NewZ2PCommand creates the z2p command.
func NewZ2PCommand(rt *Runtime) *cobra.Command {
	return newCommand("z2p zscore", "Print the 1-tailed p-value for a z-score", z2pBanner,
		func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage(cmd, z2pBanner)
			}
			z, ok := parseNumber(args[0])
			if !ok {
				return usage(cmd, z2pBanner)
			}

			res, err := rt.Calculator.OneTailed(z)
			if err != nil {
				return err
			}
			rt.Logger.Debug("Computed p-value",
				zap.Float64("z", z),
				zap.Float64("p", res.Value),
				zap.String("method", res.Method.String()),
				zap.Int("iterations", res.Iterations))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.6g\n", res.Value)
			return err
		})
}
