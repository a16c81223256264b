// Package operations implements the version transformations behind the
// bump and pre commands.
package operations

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/indaco/semv/pkg/semver"
)

// BumpType selects which component a bump advances.
type BumpType string

const (
	BumpPatch   BumpType = "patch"
	BumpMinor   BumpType = "minor"
	BumpMajor   BumpType = "major"
	BumpRelease BumpType = "release"
	BumpAuto    BumpType = "auto"
)

// ParseBumpType validates a bump label from the command line.
func ParseBumpType(s string) (BumpType, error) {
	switch bt := BumpType(s); bt {
	case BumpPatch, BumpMinor, BumpMajor, BumpRelease, BumpAuto:
		return bt, nil
	default:
		return "", fmt.Errorf("invalid bump type %q (want patch, minor, major, release or auto)", s)
	}
}

// Apply returns the version produced by bumping v.
//
// patch/minor/major advance the respective component and reset the
// lower ones; all three drop pre-release and build identifiers.
// release promotes a pre-release to its final version without touching
// the triple. auto promotes a pre-release when one is set and bumps
// patch otherwise.
func Apply(v semver.Version, bt BumpType) (semver.Version, error) {
	switch bt {
	case BumpPatch:
		return semver.New(v.Major(), v.Minor(), v.Patch()+1), nil
	case BumpMinor:
		return semver.New(v.Major(), v.Minor()+1, 0), nil
	case BumpMajor:
		return semver.New(v.Major()+1, 0, 0), nil
	case BumpRelease:
		if !v.IsPreRelease() {
			return v, fmt.Errorf("%s is not a pre-release", v)
		}
		return semver.New(v.Major(), v.Minor(), v.Patch()), nil
	case BumpAuto:
		if v.IsPreRelease() {
			return semver.New(v.Major(), v.Minor(), v.Patch()), nil
		}
		return semver.New(v.Major(), v.Minor(), v.Patch()+1), nil
	default:
		return v, fmt.Errorf("invalid bump type %q", bt)
	}
}

// SetPreRelease stamps a pre-release label onto v. Stamping a label
// onto a final release first bumps patch, so "1.2.3" + "beta" yields
// "1.2.4-beta" rather than re-labeling an already published version.
func SetPreRelease(v semver.Version, label string) semver.Version {
	var base semver.Version
	if v.IsPreRelease() {
		base = semver.New(v.Major(), v.Minor(), v.Patch())
	} else {
		base = semver.New(v.Major(), v.Minor(), v.Patch()+1)
	}
	return base.WithPreRelease(labelIdentifiers(label)...)
}

// IncrementPreRelease advances the numeric suffix of a pre-release
// label: "rc" becomes "rc.1", "rc.1" becomes "rc.2". A version whose
// current pre-release does not match label restarts at "<label>.1".
func IncrementPreRelease(v semver.Version, label string) semver.Version {
	base := labelIdentifiers(label)
	current := v.PreRelease()
	triple := semver.New(v.Major(), v.Minor(), v.Patch())

	// "<label>" -> "<label>.1"
	if slices.Equal(current, base) {
		return triple.WithPreRelease(append(base, "1")...)
	}

	// "<label>.<n>" -> "<label>.<n+1>"
	if len(current) == len(base)+1 && slices.Equal(current[:len(base)], base) {
		if n, err := strconv.Atoi(current[len(current)-1]); err == nil && n >= 0 {
			return triple.WithPreRelease(append(base, strconv.Itoa(n+1))...)
		}
	}

	return triple.WithPreRelease(append(base, "1")...)
}

func labelIdentifiers(label string) []string {
	return strings.Split(label, ".")
}
