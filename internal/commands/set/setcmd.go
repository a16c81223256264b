// Package set implements the "set" command.
package set

import (
	"context"
	"fmt"

	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/operations"
	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/internal/versionfile"
	"github.com/indaco/semv/pkg/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "set" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set the version explicitly",
		UsageText: "semv set <version>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSetCmd(ctx, cmd, cfg)
		},
	}
}

func runSetCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one version argument")
	}

	v, err := semver.Parse(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("not a valid version: %w", err)
	}

	fs := core.NewOSFileSystem()
	if err := versionfile.NewManager(fs).Save(ctx, cfg.Path, v); err != nil {
		return err
	}
	if err := operations.SyncSources(ctx, fs, cfg.Sources, v); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Set version to %s", v))
	return nil
}
