// Package semver implements a Semantic Versioning 2.0.0 value type:
// parsing, canonical rendering, structural equality, stable hashing, and
// a total precedence order suitable for sorting. It is the foundation the
// semv CLI and any dependency or build tooling build on; the package
// itself is pure (no I/O, no shared state) and safe for concurrent use.
package semver
