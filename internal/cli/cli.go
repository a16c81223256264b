// Package cli assembles the root semv command.
package cli

import (
	"context"
	"fmt"

	"github.com/indaco/semv/internal/commands/bump"
	"github.com/indaco/semv/internal/commands/compare"
	"github.com/indaco/semv/internal/commands/initialize"
	"github.com/indaco/semv/internal/commands/pre"
	"github.com/indaco/semv/internal/commands/set"
	"github.com/indaco/semv/internal/commands/show"
	"github.com/indaco/semv/internal/commands/sortcmd"
	"github.com/indaco/semv/internal/commands/validate"
	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/internal/tui"
	"github.com/indaco/semv/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the semv cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "semv",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Parse, compare and manage semantic versions",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Path to .version file",
				Value:       cfg.Path,
				DefaultText: ".version",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			cfg.Path = config.NormalizeVersionPath(cmd.String("path"))
			printer.SetNoColor(noColorFlag || cfg.NoColor)
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			show.Run(cfg),
			set.Run(cfg),
			bump.Run(cfg),
			pre.Run(cfg),
			compare.Run(),
			sortcmd.Run(),
			validate.Run(),
		},
	}
}
