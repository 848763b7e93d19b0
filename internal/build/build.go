// Package build holds version information stamped at link time with
// -ldflags "-X github.com/mesh-intelligence/sllist/internal/build.Version=...".
package build

var (
	// Version is the semantic version of the sllist binary.
	Version = "0.1.0"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"
)
