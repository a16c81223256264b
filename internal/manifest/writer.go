package manifest

import (
	"context"
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/pkg/semver"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Writer updates version fields in manifest files.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a Writer. A nil filesystem falls back to the OS.
func NewWriter(fs core.FileSystem) *Writer {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Writer{fs: fs}
}

// Write stores the canonical form of v at the location described by src.
func (w *Writer) Write(ctx context.Context, src Source, v semver.Version) error {
	if src.Path == "" {
		return fmt.Errorf("manifest path is required")
	}
	if !src.Format.IsValid() {
		return fmt.Errorf("invalid manifest format: %q", src.Format)
	}

	version := v.String()
	switch src.Format {
	case FormatJSON:
		return w.writeJSON(ctx, src, version)
	case FormatYAML:
		return w.writeYAML(ctx, src, version)
	case FormatTOML:
		return w.writeTOML(ctx, src, version)
	case FormatRaw:
		return w.fsWrite(ctx, src.Path, []byte(version+"\n"))
	case FormatRegex:
		return w.writeRegex(ctx, src, version)
	}
	return nil
}

// writeJSON updates only the targeted field via sjson, preserving the
// document's structure and key order.
func (w *Writer) writeJSON(ctx context.Context, src Source, version string) error {
	if src.Field == "" {
		return fmt.Errorf("field is required for JSON manifests")
	}

	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	updated, err := sjson.SetBytes(data, src.Field, version)
	if err != nil {
		return fmt.Errorf("failed to set version in %q: %w", src.Path, err)
	}
	return w.fsWrite(ctx, src.Path, ensureNewline(updated))
}

func (w *Writer) writeYAML(ctx context.Context, src Source, version string) error {
	if src.Field == "" {
		return fmt.Errorf("field is required for YAML manifests")
	}

	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to parse YAML in %q: %w", src.Path, err)
	}
	if err := setNestedValue(obj, src.Field, version); err != nil {
		return fmt.Errorf("in %q: %w", src.Path, err)
	}

	updated, err := yaml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML for %q: %w", src.Path, err)
	}
	return w.fsWrite(ctx, src.Path, updated)
}

func (w *Writer) writeTOML(ctx context.Context, src Source, version string) error {
	if src.Field == "" {
		return fmt.Errorf("field is required for TOML manifests")
	}

	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to parse TOML in %q: %w", src.Path, err)
	}
	if err := setNestedValue(obj, src.Field, version); err != nil {
		return fmt.Errorf("in %q: %w", src.Path, err)
	}

	updated, err := toml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML for %q: %w", src.Path, err)
	}
	return w.fsWrite(ctx, src.Path, updated)
}

// writeRegex replaces the capturing group of the first pattern match,
// leaving the surrounding text untouched.
func (w *Writer) writeRegex(ctx context.Context, src Source, version string) error {
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

	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	loc := re.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("pattern %q matched nothing in %q", src.Pattern, src.Path)
	}

	// loc[2]:loc[3] is the capturing group span.
	updated := make([]byte, 0, len(data)+len(version))
	updated = append(updated, data[:loc[2]]...)
	updated = append(updated, version...)
	updated = append(updated, data[loc[3]:]...)
	return w.fsWrite(ctx, src.Path, updated)
}

func (w *Writer) fsWrite(ctx context.Context, path string, data []byte) error {
	if err := w.fs.WriteFile(ctx, path, data, core.PermFileDefault); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func ensureNewline(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		return append(data, '\n')
	}
	return data
}
