// Package http provides custom HTTP transport utilities,
// including request/response logging and User-Agent header injection.
// NewClient composes them into an *http.Client that sends a User-Agent
// from any useragent.UserAgentProvider.
package http
