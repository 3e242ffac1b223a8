package version

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/oshokin/fake-useragent/internal/version.Version=1.2.3"
//
//nolint:gochecknoglobals // Set through -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision of the build.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the version number only.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
