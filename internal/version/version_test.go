package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShort tests the Short function.
func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
}

// TestDefaults tests that build metadata falls back to placeholders when not set at link time.
func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version)
	assert.Equal(t, "none", Commit)
	assert.Equal(t, "unknown", BuildTime)

	// Semantic version: three dot-separated parts, no spaces.
	assert.Len(t, strings.Split(Version, "."), 3)
	assert.NotContains(t, Version, " ")
}

// TestFull tests the Full function with build metadata set the way -ldflags sets it.
//
//nolint:paralleltest // Modifies package-level build metadata.
func TestFull(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		commit    string
		buildTime string
		expected  string
	}{
		{
			name:      "placeholders",
			version:   Version,
			commit:    Commit,
			buildTime: BuildTime,
			expected:  "version: " + Version + ", commit: none, built at: unknown",
		},
		{
			name:      "release build",
			version:   "1.2.3",
			commit:    "4f2a9c1",
			buildTime: "2025-01-02T03:04:05Z",
			expected:  "version: 1.2.3, commit: 4f2a9c1, built at: 2025-01-02T03:04:05Z",
		},
	}

	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime

	t.Cleanup(func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildTime = tt.version, tt.commit, tt.buildTime

			assert.Equal(t, tt.expected, Full())
		})
	}
}
