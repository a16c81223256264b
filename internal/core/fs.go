// Package core holds small shared abstractions for the semv CLI:
// the context-aware filesystem interface the commands run against,
// its OS-backed and mock implementations, and file permission
// constants.
package core

import (
	"context"
	"os"
)

// File permission constants used across the codebase.
const (
	// PermOwnerRW is for files holding user configuration (owner read/write only).
	PermOwnerRW os.FileMode = 0o600

	// PermFileDefault is for ordinary project files such as .version.
	PermFileDefault os.FileMode = 0o644

	// PermDirDefault is for created directories.
	PermDirDefault os.FileMode = 0o755
)

// FileSystem abstracts filesystem access so commands and operations
// can run against a mock in tests. Every operation checks its context
// before touching the disk.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (os.FileInfo, error)
	MkdirAll(ctx context.Context, path string, perm os.FileMode) error
	Remove(ctx context.Context, path string) error
	ReadDir(ctx context.Context, path string) ([]os.DirEntry, error)
}

// Marshaler abstracts serialization for dependency injection in tests.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns the production filesystem implementation.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (*osFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (*osFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (*osFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (*osFileSystem) MkdirAll(ctx context.Context, path string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

func (*osFileSystem) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(path)
}

func (*osFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}
