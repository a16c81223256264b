package config

import (
	"fmt"
	"regexp"

	"github.com/indaco/semv/internal/manifest"
	"github.com/indaco/semv/internal/tui"
)

// Validate checks the configuration for mistakes a typo in .semv.yaml
// would produce: unknown themes, unknown source formats, missing
// fields, and regex patterns that do not compile.
func (cfg *Config) Validate() error {
	if cfg.Path == "" {
		return fmt.Errorf("config: path must not be empty")
	}
	if cfg.Theme != "" && !tui.IsValidTheme(cfg.Theme) {
		return fmt.Errorf("config: unknown theme %q (valid: %v)", cfg.Theme, tui.ValidThemes)
	}

	for i, src := range cfg.Sources {
		if err := validateSource(src); err != nil {
			return fmt.Errorf("config: sources[%d]: %w", i, err)
		}
	}
	return nil
}

func validateSource(src manifest.Source) error {
	if src.Path == "" {
		return fmt.Errorf("path must not be empty")
	}
	if !src.Format.IsValid() {
		return fmt.Errorf("unknown format %q", src.Format)
	}

	switch src.Format {
	case manifest.FormatJSON, manifest.FormatYAML, manifest.FormatTOML:
		if src.Field == "" {
			return fmt.Errorf("field is required for %s manifests", src.Format)
		}
	case manifest.FormatRegex:
		if src.Pattern == "" {
			return fmt.Errorf("pattern is required for regex manifests")
		}
		re, err := regexp.Compile(src.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", src.Pattern, err)
		}
		if re.NumSubexp() != 1 {
			return fmt.Errorf("pattern %q must contain exactly one capturing group", src.Pattern)
		}
	}
	return nil
}
