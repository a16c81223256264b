package operations

import (
	"context"
	"fmt"

	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/manifest"
	"github.com/indaco/semv/pkg/semver"
)

// SyncSources writes v into every configured manifest source, so
// package.json, Chart.yaml and friends stay aligned with the version
// file. The first failing source aborts the sync.
func SyncSources(ctx context.Context, fs core.FileSystem, sources []manifest.Source, v semver.Version) error {
	w := manifest.NewWriter(fs)
	for _, src := range sources {
		if err := w.Write(ctx, src, v); err != nil {
			return fmt.Errorf("failed to sync %q: %w", src.Path, err)
		}
	}
	return nil
}
