package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned (wrapped) by Parse when the input is not a
// well-formed semantic version.
var ErrInvalid = errors.New("invalid semantic version")

// Parse parses a semantic version string.
//
// The input splits into up to four zones: the required
// "major.minor.patch" prefix, an optional pre-release suffix introduced
// by the first "-", and an optional build-metadata suffix introduced by
// the first "+". Both marker positions are located once against the
// full input, and the required zone ends at whichever marker occurs
// first. The required zone must split on "." into exactly three
// non-negative integers.
//
// Identifier lists are the naive dot-splits of their zones: empty
// segments are preserved, so "1.0.0-" yields the single empty
// pre-release identifier "" and "1.0.0-a..b" yields ["a", "", "b"].
//
// Parse never panics; malformed input yields an error wrapping
// ErrInvalid and nothing else.
func Parse(s string) (Version, error) {
	preStart := strings.IndexByte(s, '-')
	buildStart := strings.IndexByte(s, '+')

	end := len(s)
	if preStart >= 0 && preStart < end {
		end = preStart
	}
	if buildStart >= 0 && buildStart < end {
		end = buildStart
	}

	parts := strings.Split(s[:end], ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		nums[i] = n
	}

	v := Version{major: nums[0], minor: nums[1], patch: nums[2]}
	if preStart >= 0 {
		preEnd := len(s)
		if buildStart > preStart {
			preEnd = buildStart
		}
		v.prerelease = strings.Split(s[preStart+1:preEnd], ".")
	}
	if buildStart >= 0 {
		v.build = strings.Split(s[buildStart+1:], ".")
	}
	return v, nil
}

// MustParse parses a version string that the caller guarantees is
// valid, such as a compile-time literal. It panics on malformed input;
// untrusted text belongs to Parse.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
