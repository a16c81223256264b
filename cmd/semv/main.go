package main

import (
	"context"
	"os"

	"github.com/indaco/semv/internal/cli"
	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command. Split out
// of main so tests can drive the binary end to end.
func runCLI(args []string) error {
	cfg, err := config.LoadFn()
	if err != nil {
		return err
	}
	return cli.New(cfg).Run(context.Background(), args)
}
