// Package show implements the "show" command.
package show

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/versionfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the current version",
		UsageText: "semv show [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the version as a JSON string",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	mgr := versionfile.NewManager(nil)
	v, err := mgr.Read(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read version (run \"semv init\" first?): %w", err)
	}

	if cmd.Bool("json") {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.Writer, string(data))
		return nil
	}

	fmt.Fprintln(cmd.Writer, v.String())
	return nil
}
