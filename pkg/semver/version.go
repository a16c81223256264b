package semver

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Version is an immutable semantic version: major.minor.patch plus
// optional ordered pre-release and build-metadata identifier lists.
// Versions are plain values with no identity beyond their fields; the
// zero value is "0.0.0". Copies are independent and methods never
// mutate their receiver.
type Version struct {
	major      int
	minor      int
	patch      int
	prerelease []string
	build      []string
}

// New constructs a Version from already-validated components.
// It panics if major, minor or patch is negative: a negative component
// is a caller bug, not malformed input. Untrusted text goes through
// Parse instead.
func New(major, minor, patch int) Version {
	if major < 0 || minor < 0 || patch < 0 {
		panic(fmt.Sprintf("semver: negative version component in %d.%d.%d", major, minor, patch))
	}
	return Version{major: major, minor: minor, patch: patch}
}

// WithPreRelease returns a copy of v carrying the given pre-release
// identifiers. Identifiers are taken as-is; callers are expected to
// pass segments free of ".", "-" and "+" (the characters the grammar
// reserves as separators).
func (v Version) WithPreRelease(identifiers ...string) Version {
	v.prerelease = cloneIdentifiers(identifiers)
	return v
}

// WithBuild returns a copy of v carrying the given build-metadata
// identifiers. The same identifier contract as WithPreRelease applies.
func (v Version) WithBuild(identifiers ...string) Version {
	v.build = cloneIdentifiers(identifiers)
	return v
}

// Major returns the major component.
func (v Version) Major() int { return v.major }

// Minor returns the minor component.
func (v Version) Minor() int { return v.minor }

// Patch returns the patch component.
func (v Version) Patch() int { return v.patch }

// PreRelease returns a copy of the pre-release identifiers, nil when
// the version has none.
func (v Version) PreRelease() []string { return cloneIdentifiers(v.prerelease) }

// Build returns a copy of the build-metadata identifiers, nil when the
// version has none.
func (v Version) Build() []string { return cloneIdentifiers(v.build) }

// IsPreRelease reports whether v carries pre-release identifiers.
func (v Version) IsPreRelease() bool { return len(v.prerelease) > 0 }

// String renders the canonical text form: "major.minor.patch", then
// "-" plus the dot-joined pre-release identifiers when present, then
// "+" plus the dot-joined build-metadata identifiers when present.
// For any version whose identifiers avoid the reserved separator
// characters, the result parses back to an equal Version.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.patch))
	if len(v.prerelease) > 0 {
		sb.WriteByte('-')
		sb.WriteString(strings.Join(v.prerelease, "."))
	}
	if len(v.build) > 0 {
		sb.WriteByte('+')
		sb.WriteString(strings.Join(v.build, "."))
	}
	return sb.String()
}

// Equal reports structural equality over all five fields. Build
// metadata counts here even though precedence ignores it: "1.0.0+a"
// and "1.0.0+b" compare equal under Compare but are not Equal.
func (v Version) Equal(other Version) bool {
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch &&
		slices.Equal(v.prerelease, other.prerelease) &&
		slices.Equal(v.build, other.build)
}

// cloneIdentifiers copies an identifier list, normalizing empty input
// to nil so "no identifiers" has a single representation.
func cloneIdentifiers(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	return slices.Clone(ids)
}
