package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644
)

// Supported metadata file extensions.
const (
	ExtensionTOML = ".toml"
	ExtensionYAML = ".yaml"
	ExtensionYML  = ".yml"
)
