// Package logger wraps a zap SugaredLogger behind package-level helpers.
//
// The level is held in an atomic level so the CLI can change it after flags
// are parsed. Loggers travel in a context.Context: WithKV and WithName derive
// a child logger, FromContext falls back to the global one.
// Output goes to stderr so command output on stdout stays clean.
package logger
