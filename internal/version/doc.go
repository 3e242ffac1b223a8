// Package version exposes build metadata injected at link time.
package version
