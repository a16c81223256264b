package semver

import (
	"encoding/json"
	"fmt"
)

// DecodeError reports why serialized version data could not be
// decoded: either the node had the wrong kind (not a string) or the
// string was not a valid version. It is a recoverable error for
// external data, unlike the panics guarding programmer contracts.
type DecodeError struct {
	// Input is the offending fragment, verbatim.
	Input string

	// Reason is a short human-readable explanation.
	Reason string

	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("semver: cannot decode %q: %s", e.Input, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.err }

// MarshalText encodes v as its canonical string form. Together with
// UnmarshalText this lets Version round-trip through any encoder that
// honors encoding.TextMarshaler (YAML, TOML, map keys, ...).
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a canonical version string, returning a
// *DecodeError on malformed input.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return &DecodeError{Input: string(text), Reason: "not a valid semantic version", err: err}
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as a JSON string holding the canonical form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string holding a version. A non-string
// node or invalid version text yields a *DecodeError rather than a
// silent default.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Input: string(data), Reason: "expected a JSON string", err: err}
	}
	return v.UnmarshalText([]byte(s))
}
