package main

import (
	"os"

	"github.com/GriffinCanCode/zstat/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewGendataCommand, os.Args[1:], cli.StdStreams()))
}
