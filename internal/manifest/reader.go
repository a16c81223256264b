package manifest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/pkg/semver"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Reader extracts versions from manifest files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader. A nil filesystem falls back to the OS.
func NewReader(fs core.FileSystem) *Reader {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Reader{fs: fs}
}

// Read extracts and parses the version described by src.
func (r *Reader) Read(ctx context.Context, src Source) (*Result, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	if !src.Format.IsValid() {
		return nil, fmt.Errorf("invalid manifest format: %q", src.Format)
	}

	data, err := r.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	var raw string
	switch src.Format {
	case FormatJSON:
		raw, err = readJSON(data, src)
	case FormatYAML:
		raw, err = readYAML(data, src)
	case FormatTOML:
		raw, err = readTOML(data, src)
	case FormatRaw:
		raw = string(data)
	case FormatRegex:
		raw, err = readRegex(data, src)
	}
	if err != nil {
		return nil, err
	}

	text := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	v, err := semver.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%q in %q: %w", raw, src.Path, err)
	}

	return &Result{Version: v, Raw: raw, Source: src}, nil
}

// ReadVersion is a convenience wrapper returning just the version.
func (r *Reader) ReadVersion(ctx context.Context, src Source) (semver.Version, error) {
	result, err := r.Read(ctx, src)
	if err != nil {
		return semver.Version{}, err
	}
	return result.Version, nil
}

func readJSON(data []byte, src Source) (string, error) {
	if src.Field == "" {
		return "", fmt.Errorf("field is required for JSON manifests")
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("invalid JSON in %q", src.Path)
	}

	value := gjson.GetBytes(data, src.Field)
	if !value.Exists() {
		return "", fmt.Errorf("field %q not found in %q", src.Field, src.Path)
	}
	if value.Type != gjson.String {
		return "", fmt.Errorf("field %q in %q is not a string", src.Field, src.Path)
	}
	return value.String(), nil
}

func readYAML(data []byte, src Source) (string, error) {
	if src.Field == "" {
		return "", fmt.Errorf("field is required for YAML manifests")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", src.Path, err)
	}
	return lookupField(obj, src)
}

func readTOML(data []byte, src Source) (string, error) {
	if src.Field == "" {
		return "", fmt.Errorf("field is required for TOML manifests")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", src.Path, err)
	}
	return lookupField(obj, src)
}

func lookupField(obj map[string]any, src Source) (string, error) {
	value, err := getNestedValue(obj, src.Field)
	if err != nil {
		return "", fmt.Errorf("in %q: %w", src.Path, err)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", src.Field, src.Path)
	}
	return text, nil
}

func readRegex(data []byte, src Source) (string, error) {
	if src.Pattern == "" {
		return "", fmt.Errorf("pattern is required for regex manifests")
	}

	re, err := regexp.Compile(src.Pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", src.Pattern, err)
	}
	if re.NumSubexp() != 1 {
		return "", fmt.Errorf("pattern %q must contain exactly one capturing group", src.Pattern)
	}

	match := re.FindSubmatch(data)
	if match == nil {
		return "", fmt.Errorf("pattern %q matched nothing in %q", src.Pattern, src.Path)
	}
	return string(match[1]), nil
}
