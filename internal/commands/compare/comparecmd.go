// Package compare implements the "compare" command.
package compare

import (
	"context"
	"fmt"

	"github.com/indaco/semv/pkg/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "compare" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions by SemVer precedence",
		UsageText: "semv compare <a> <b>",
		Description: `Prints "a < b", "a = b" or "a > b". Build metadata is ignored,
so "1.0.0+linux" and "1.0.0+darwin" compare as equal.`,
		Action: runCompareCmd,
	}
}

func runCompareCmd(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly two version arguments")
	}

	a, err := semver.Parse(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("first argument: %w", err)
	}
	b, err := semver.Parse(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("second argument: %w", err)
	}

	var rel string
	switch a.Compare(b) {
	case -1:
		rel = "<"
	case 1:
		rel = ">"
	default:
		rel = "="
	}

	fmt.Fprintf(cmd.Writer, "%s %s %s\n", a, rel, b)
	return nil
}
