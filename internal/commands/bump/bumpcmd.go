// Package bump implements the "bump" command family.
package bump

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/operations"
	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/internal/versionfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "bump" parent command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump the semantic version (patch, minor, major)",
		UsageText: "semv bump <subcommand> [--flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "pre",
				Usage: "Optional pre-release label to stamp on the bumped version",
			},
			&cli.StringFlag{
				Name:  "meta",
				Usage: "Optional build metadata to stamp on the bumped version",
			},
		},
		Commands: []*cli.Command{
			subCmd(cfg, operations.BumpPatch, "Bump the patch component (1.2.3 -> 1.2.4)"),
			subCmd(cfg, operations.BumpMinor, "Bump the minor component (1.2.3 -> 1.3.0)"),
			subCmd(cfg, operations.BumpMajor, "Bump the major component (1.2.3 -> 2.0.0)"),
			subCmd(cfg, operations.BumpRelease, "Promote a pre-release to its final version"),
			subCmd(cfg, operations.BumpAuto, "Promote a pre-release, or bump patch otherwise"),
		},
	}
}

func subCmd(cfg *config.Config, bt operations.BumpType, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(bt),
		Usage: usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBumpCmd(ctx, cfg, bt, cmd.String("pre"), cmd.String("meta"))
		},
	}
}

func runBumpCmd(ctx context.Context, cfg *config.Config, bt operations.BumpType, preLabel, meta string) error {
	fs := core.NewOSFileSystem()
	mgr := versionfile.NewManager(fs)

	current, err := mgr.Read(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read version (run \"semv init\" first?): %w", err)
	}

	next, err := operations.Apply(current, bt)
	if err != nil {
		return err
	}
	if preLabel != "" {
		next = next.WithPreRelease(strings.Split(preLabel, ".")...)
	}
	if meta != "" {
		next = next.WithBuild(strings.Split(meta, ".")...)
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
