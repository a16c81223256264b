package semver

import (
	"github.com/mitchellh/hashstructure/v2"
)

// hashShape mirrors Version with exported fields so hashstructure can
// reach them. Identifier lists normalize to nil when empty to keep the
// hash consistent with Equal.
type hashShape struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease []string
	Build      []string
}

// Hash returns a stable hash of v, consistent with Equal: equal
// versions hash identically, and identifier lists hash
// order-sensitively, so reordered lists produce different hashes.
// Build metadata is included, matching Equal rather than Compare.
func (v Version) Hash() uint64 {
	h, err := hashstructure.Hash(hashShape{
		Major:      v.major,
		Minor:      v.minor,
		Patch:      v.patch,
		PreRelease: normalizeIdentifiers(v.prerelease),
		Build:      normalizeIdentifiers(v.build),
	}, hashstructure.FormatV2, nil)
	if err != nil {
		// hashShape holds only ints and string slices; hashing it
		// cannot fail.
		panic(err)
	}
	return h
}

func normalizeIdentifiers(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	return ids
}
