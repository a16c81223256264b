// Package manifest reads and writes version fields embedded in project
// manifest files: package.json, Chart.yaml, Cargo.toml, plain version
// files, or anything a capturing regex can address. Extracted values
// are validated as semantic versions before being handed to callers.
package manifest

import "github.com/indaco/semv/pkg/semver"

// Format identifies how a manifest file is parsed.
type Format string

const (
	// FormatJSON is for JSON files (package.json, composer.json, ...).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, pubspec.yaml, ...).
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, ...).
	FormatTOML Format = "toml"

	// FormatRaw is for plain text files whose whole content is the version.
	FormatRaw Format = "raw"

	// FormatRegex is for files requiring regex extraction.
	FormatRegex Format = "regex"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatRaw, FormatRegex:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format, falling back to FormatRaw
// for unknown input.
func ParseFormat(s string) Format {
	f := Format(s)
	if f.IsValid() {
		return f
	}
	return FormatRaw
}

// Source describes where a version lives inside a manifest file.
type Source struct {
	// Path is the manifest file path, absolute or relative.
	Path string `yaml:"path"`

	// Format selects the parser.
	Format Format `yaml:"format"`

	// Field is the dot-notation path to the version field for the
	// structured formats, e.g. "version" or "tool.poetry.version".
	Field string `yaml:"field,omitempty"`

	// Pattern is the regex for FormatRegex. It must contain exactly
	// one capturing group holding the version text.
	Pattern string `yaml:"pattern,omitempty"`
}

// Result is a version extracted from a manifest file.
type Result struct {
	// Version is the parsed value.
	Version semver.Version

	// Raw is the text as it appeared in the file, before trimming.
	Raw string

	// Source is the source the value was read from.
	Source Source
}
