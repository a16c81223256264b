// Package pre implements the "pre" command.
package pre

import (
	"context"
	"fmt"

	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/operations"
	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/internal/versionfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "pre" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "pre",
		Usage:     "Set a pre-release label (e.g., alpha, beta.1)",
		UsageText: "semv pre --label <label> [--inc]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "label",
				Usage:    "Pre-release label to set",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "inc",
				Usage: "Increment the numeric suffix if it exists or add '.1'",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPreCmd(ctx, cfg, cmd.String("label"), cmd.Bool("inc"))
		},
	}
}

func runPreCmd(ctx context.Context, cfg *config.Config, label string, isInc bool) error {
	fs := core.NewOSFileSystem()
	mgr := versionfile.NewManager(fs)

	current, err := mgr.Read(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read version (run \"semv init\" first?): %w", err)
	}

	var next = current
	if isInc {
		next = operations.IncrementPreRelease(current, label)
	} else {
		next = operations.SetPreRelease(current, label)
	}

	if err := mgr.Save(ctx, cfg.Path, next); err != nil {
		return err
	}
	if err := operations.SyncSources(ctx, fs, cfg.Sources, next); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Updated version from %s to %s", current, next))
	return nil
}
