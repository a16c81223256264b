// Package version exposes the semv build version.
package version

import "runtime/debug"

// current is overridden at release time via
// -ldflags "-X github.com/indaco/semv/internal/version.current=...".
var current = ""

// GetVersion returns the version of the semv binary itself, falling
// back to module build info for go-install builds.
func GetVersion() string {
	if current != "" {
		return current
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
