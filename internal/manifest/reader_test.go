package manifest

import (
	"context"
	"testing"

	"github.com/indaco/semv/internal/core"
)

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTOML, true},
		{FormatRaw, true},
		{FormatRegex, true},
		{Format("invalid"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"toml", FormatTOML},
		{"raw", FormatRaw},
		{"regex", FormatRegex},
		{"invalid", FormatRaw}, // fallback
		{"", FormatRaw},        // fallback
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func readFrom(t *testing.T, content string, src Source) (*Result, error) {
	t.Helper()
	fs := core.NewMockFileSystem()
	fs.SetFile(src.Path, []byte(content))
	return NewReader(fs).Read(context.Background(), src)
}

func TestReader_JSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		want    string
		wantErr bool
	}{
		{
			name:    "simple field",
			content: `{"name": "demo", "version": "1.2.3"}`,
			field:   "version",
			want:    "1.2.3",
		},
		{
			name:    "nested field",
			content: `{"package": {"version": "2.0.0"}}`,
			field:   "package.version",
			want:    "2.0.0",
		},
		{
			name:    "deeply nested",
			content: `{"tool": {"poetry": {"version": "3.0.0-alpha.1"}}}`,
			field:   "tool.poetry.version",
			want:    "3.0.0-alpha.1",
		},
		{
			name:    "v prefix tolerated",
			content: `{"version": "v1.2.3"}`,
			field:   "version",
			want:    "1.2.3",
		},
		{
			name:    "missing field",
			content: `{"name": "demo"}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "non-string field",
			content: `{"version": 123}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "invalid version text",
			content: `{"version": "not-semver"}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			content: `{"version": `,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "missing field spec",
			content: `{"version": "1.2.3"}`,
			field:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := readFrom(t, tt.content, Source{
				Path:   "/proj/package.json",
				Format: FormatJSON,
				Field:  tt.field,
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("Read succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if got := result.Version.String(); got != tt.want {
				t.Errorf("version = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReader_YAML(t *testing.T) {
	content := "apiVersion: v2\nname: demo\nversion: 1.4.0-rc.1\n"
	result, err := readFrom(t, content, Source{
		Path:   "/proj/Chart.yaml",
		Format: FormatYAML,
		Field:  "version",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Version.String(); got != "1.4.0-rc.1" {
		t.Errorf("version = %s, want 1.4.0-rc.1", got)
	}
}

func TestReader_TOML(t *testing.T) {
	content := "[package]\nname = \"demo\"\nversion = \"0.3.1\"\n"
	result, err := readFrom(t, content, Source{
		Path:   "/proj/Cargo.toml",
		Format: FormatTOML,
		Field:  "package.version",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Version.String(); got != "0.3.1" {
		t.Errorf("version = %s, want 0.3.1", got)
	}
}

func TestReader_Raw(t *testing.T) {
	result, err := readFrom(t, "v2.5.0\n", Source{
		Path:   "/proj/.version",
		Format: FormatRaw,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Version.String(); got != "2.5.0" {
		t.Errorf("version = %s, want 2.5.0", got)
	}
	if result.Raw != "v2.5.0\n" {
		t.Errorf("raw = %q, want original file content", result.Raw)
	}
}

func TestReader_Regex(t *testing.T) {
	content := `const version = "3.1.4";` + "\n"

	t.Run("captures version", func(t *testing.T) {
		result, err := readFrom(t, content, Source{
			Path:    "/proj/version.js",
			Format:  FormatRegex,
			Pattern: `const version = "([^"]+)"`,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := result.Version.String(); got != "3.1.4" {
			t.Errorf("version = %s, want 3.1.4", got)
		}
	})

	t.Run("requires exactly one group", func(t *testing.T) {
		_, err := readFrom(t, content, Source{
			Path:    "/proj/version.js",
			Format:  FormatRegex,
			Pattern: `const version = "[^"]+"`,
		})
		if err == nil {
			t.Fatal("Read succeeded with zero capturing groups, want error")
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := readFrom(t, content, Source{
			Path:    "/proj/version.js",
			Format:  FormatRegex,
			Pattern: `VERSION = "([^"]+)"`,
		})
		if err == nil {
			t.Fatal("Read succeeded without a match, want error")
		}
	})
}

func TestReader_InvalidSource(t *testing.T) {
	r := NewReader(core.NewMockFileSystem())
	ctx := context.Background()

	if _, err := r.Read(ctx, Source{Format: FormatRaw}); err == nil {
		t.Error("Read with empty path succeeded, want error")
	}
	if _, err := r.Read(ctx, Source{Path: "/x", Format: Format("nope")}); err == nil {
		t.Error("Read with invalid format succeeded, want error")
	}
}
