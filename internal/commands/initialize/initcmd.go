// Package initialize implements the "init" command.
package initialize

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/manifest"
	"github.com/indaco/semv/internal/printer"
	"github.com/indaco/semv/internal/tui"
	"github.com/indaco/semv/internal/versionfile"
	"github.com/indaco/semv/pkg/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize the version file and .semv.yaml",
		UsageText: "semv init [--version <v>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "Initial version",
				Value: "0.1.0",
			},
		},
		Action: runInitCmd,
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	initial, err := semver.Parse(cmd.String("version"))
	if err != nil {
		return fmt.Errorf("not a valid initial version: %w", err)
	}

	cfg := config.Default()
	fs := core.NewOSFileSystem()

	sources := detectSources(ctx, fs)
	if tui.IsInteractive() {
		if sources, err = confirmSetup(cfg, sources); err != nil {
			return err
		}
	}
	cfg.Sources = sources

	mgr := versionfile.NewManager(fs)
	if mgr.Exists(ctx, cfg.Path) {
		printer.PrintWarning(fmt.Sprintf("%s already exists, keeping it", cfg.Path))
	} else if err := mgr.Init(ctx, cfg.Path, initial); err != nil {
		return err
	} else {
		printer.PrintSuccess(fmt.Sprintf("Created %s with version %s", cfg.Path, initial))
	}

	if err := config.SaveFn(cfg); err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Wrote %s", config.DefaultConfigFile))
	for _, src := range cfg.Sources {
		printer.PrintInfo(fmt.Sprintf("Tracking %s (%s)", src.Path, src.Format))
	}
	return nil
}

// knownManifests are the manifest locations init probes for.
var knownManifests = []manifest.Source{
	{Path: "package.json", Format: manifest.FormatJSON, Field: "version"},
	{Path: "composer.json", Format: manifest.FormatJSON, Field: "version"},
	{Path: "Chart.yaml", Format: manifest.FormatYAML, Field: "version"},
	{Path: "Cargo.toml", Format: manifest.FormatTOML, Field: "package.version"},
	{Path: "pyproject.toml", Format: manifest.FormatTOML, Field: "project.version"},
}

// detectSources probes the working directory for known manifests that
// already hold a parseable version. The scan runs behind a spinner on
// interactive terminals.
func detectSources(ctx context.Context, fs core.FileSystem) []manifest.Source {
	var found []manifest.Source
	scan := func() {
		reader := manifest.NewReader(fs)
		for _, candidate := range knownManifests {
			if _, err := reader.Read(ctx, candidate); err == nil {
				found = append(found, candidate)
			}
		}
	}

	if tui.IsInteractive() {
		_ = spinner.New().Title("Scanning project for manifests...").Action(scan).Run()
	} else {
		scan()
	}
	return found
}

// confirmSetup asks which detected manifests to track and which theme
// to use.
func confirmSetup(cfg *config.Config, detected []manifest.Source) ([]manifest.Source, error) {
	track := true
	fields := []huh.Field{
		huh.NewSelect[string]().
			Title("Form theme").
			Options(huh.NewOptions(tui.ValidThemes...)...).
			Value(&cfg.Theme),
	}
	if len(detected) > 0 {
		names := make([]string, len(detected))
		for i, src := range detected {
			names[i] = src.Path
		}
		fields = append(fields, huh.NewConfirm().
			Title(fmt.Sprintf("Keep %v in sync with the version file?", names)).
			Value(&track))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(tui.Theme())
	if err := form.Run(); err != nil {
		return nil, err
	}
	if !track {
		return nil, nil
	}
	return detected, nil
}
