// Package utils provides small helpers shared across the application,
// such as safe integer conversion and content type checks.
package utils
