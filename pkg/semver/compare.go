package semver

import (
	"cmp"
	"slices"
	"strconv"
)

// identifier is a pre-release identifier classified once before
// comparison: numeric identifiers carry their integer value, all
// others compare as text.
type identifier struct {
	num     int
	text    string
	numeric bool
}

func classifyIdentifier(s string) identifier {
	if n, err := strconv.Atoi(s); err == nil {
		return identifier{num: n, numeric: true}
	}
	return identifier{text: s}
}

// compareIdentifiers implements the SemVer tie-break for a single
// position: numeric identifiers compare by value, text identifiers
// lexicographically, and a numeric identifier always orders before a
// text one regardless of content.
func compareIdentifiers(a, b identifier) int {
	switch {
	case a.numeric && b.numeric:
		return cmp.Compare(a.num, b.num)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	default:
		return cmp.Compare(a.text, b.text)
	}
}

// Compare orders v against other by SemVer precedence, returning -1,
// 0 or +1. The major.minor.patch triple decides first; on a tie a
// release outranks any pre-release, and two pre-releases compare by
// their identifier lists position by position, the shorter list losing
// when all shared positions agree. Build metadata never participates:
// versions differing only in build metadata compare as 0 even though
// Equal distinguishes them.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.minor, other.minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.patch, other.patch); c != 0 {
		return c
	}

	// A release outranks any pre-release of the same triple.
	switch {
	case len(v.prerelease) == 0 && len(other.prerelease) == 0:
		return 0
	case len(v.prerelease) == 0:
		return 1
	case len(other.prerelease) == 0:
		return -1
	}

	n := min(len(v.prerelease), len(other.prerelease))
	for i := range n {
		if v.prerelease[i] == other.prerelease[i] {
			continue
		}
		a := classifyIdentifier(v.prerelease[i])
		b := classifyIdentifier(other.prerelease[i])
		if c := compareIdentifiers(a, b); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(v.prerelease), len(other.prerelease))
}

// Less reports whether v precedes other in SemVer precedence order.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Sort sorts versions ascending by precedence, in place. The sort is
// stable, so versions that differ only in build metadata keep their
// relative input order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Version.Compare)
}
