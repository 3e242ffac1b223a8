// Package app provides the command implementations of the fake-useragent CLI.
// It wires the configuration, the User-Agent providers, the HTTP transport
// and the tooling metadata checker together for each command.
package app
