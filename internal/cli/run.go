package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/config"
	"github.com/GriffinCanCode/zstat/internal/dataset"
	"github.com/GriffinCanCode/zstat/internal/monitoring"
)

// errUsage marks a malformed command line. The banner has already been
// printed and the process exits 0.
var errUsage = errors.New("usage")

// CommandFactory builds a command bound to a runtime.
type CommandFactory func(rt *Runtime) *cobra.Command

// Run loads configuration, runs the command built by factory with args
// and returns the process exit status.
func Run(factory CommandFactory, args []string, streams Streams) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return 1
	}

	rt, err := NewRuntime(cfg, streams)
	if err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return 1
	}

	cmd := factory(rt)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	timer := monitoring.NewTimer(rt.Metrics, cmd.Name())
	err = cmd.Execute()

	code := 0
	status := "success"
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		status = "usage"
	default:
		code = 1
		status = "error"
		rt.Logger.Debug("Command failed", zap.String("command", cmd.Name()), zap.Error(err))
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
	}
	timer.Stop(status)

	if cerr := rt.Close(); cerr != nil && code == 0 {
		code = 1
	}
	return code
}

// newCommand returns a command that takes raw positional arguments.
// Flag parsing is disabled so negative numbers reach the command intact.
func newCommand(use, short, banner string, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printBanner(c.OutOrStdout(), banner)
	})
	return cmd
}

// usage prints the banner and returns errUsage.
func usage(cmd *cobra.Command, banner string) error {
	printBanner(cmd.OutOrStdout(), banner)
	return errUsage
}

func printBanner(w io.Writer, banner string) {
	fmt.Fprint(w, banner)
}

// parseNumber accepts an argument with a leading number.
func parseNumber(arg string) (float64, bool) {
	return dataset.ScanLeadingFloat(arg)
}

// isOption reports whether arg looks like an option rather than a
// negative number.
func isOption(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, ok := parseNumber(arg)
	return !ok
}
