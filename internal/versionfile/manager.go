// Package versionfile reads and writes the plain-text .version file
// that anchors a project's current version.
package versionfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/pkg/semver"
)

// DefaultPath is the conventional version file name.
const DefaultPath = ".version"

// Manager reads and writes version files through an injectable
// filesystem so tests can run fully in memory.
type Manager struct {
	fs core.FileSystem
}

// NewManager creates a Manager. A nil filesystem falls back to the OS.
func NewManager(fs core.FileSystem) *Manager {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Manager{fs: fs}
}

// Read loads and parses the version file at path. Surrounding
// whitespace and a single leading "v" are tolerated, so files holding
// "v1.2.3\n" read as 1.2.3.
func (m *Manager) Read(ctx context.Context, path string) (semver.Version, error) {
	data, err := m.fs.ReadFile(ctx, path)
	if err != nil {
		return semver.Version{}, fmt.Errorf("failed to read version file %q: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	text = strings.TrimPrefix(text, "v")

	v, err := semver.Parse(text)
	if err != nil {
		return semver.Version{}, fmt.Errorf("version file %q: %w", path, err)
	}
	return v, nil
}

// Save writes the canonical form of v to path with a trailing newline.
func (m *Manager) Save(ctx context.Context, path string, v semver.Version) error {
	data := []byte(v.String() + "\n")
	if err := m.fs.WriteFile(ctx, path, data, core.PermFileDefault); err != nil {
		return fmt.Errorf("failed to write version file %q: %w", path, err)
	}
	return nil
}

// Exists reports whether a version file is present at path.
func (m *Manager) Exists(ctx context.Context, path string) bool {
	_, err := m.fs.Stat(ctx, path)
	return err == nil
}

// Init creates the version file with the given initial version when it
// does not exist yet. It never overwrites an existing file.
func (m *Manager) Init(ctx context.Context, path string, v semver.Version) error {
	if m.Exists(ctx, path) {
		return fmt.Errorf("version file %q already exists", path)
	}
	return m.Save(ctx, path, v)
}
