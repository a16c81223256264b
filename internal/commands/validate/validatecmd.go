// Package validate implements the "validate" command.
package validate

import (
	"context"
	"fmt"

	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/pkg/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "validate" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check whether strings are valid semantic versions",
		UsageText: "semv validate <version>...",
		Action:    runValidateCmd,
	}
}

func runValidateCmd(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("expected at least one version argument")
	}

	invalid := 0
	for _, arg := range cmd.Args().Slice() {
		if _, err := semver.Parse(arg); err != nil {
			invalid++
			fmt.Fprintf(cmd.Writer, "%s %s\n", printer.Error("✗"), arg)
			continue
		}
		fmt.Fprintf(cmd.Writer, "%s %s\n", printer.Success("✓"), arg)
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid version(s)", invalid)
	}
	return nil
}
