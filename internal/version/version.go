package version

import "fmt"

var (
	// Version is the release version of the verinc binary, overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA of the source the binary was built from.
	Commit = "none"
	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare release version.
func Short() string {
	return Version
}

// Full returns the release version together with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
