// Package version exposes the build version of the southpole binary.
package version

// Version is the semantic version of the build. It is overridden at link
// time via -ldflags "-X github.com/WynonaL/southpole/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "0.1.0-dev"

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
