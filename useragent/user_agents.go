package useragent

import "slices"

const (
	// WindowsUserAgent is the User-Agent of a 64-bit Windows 10 desktop browser.
	WindowsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	// MacOSUserAgent is the User-Agent of a macOS Catalina desktop browser.
	MacOSUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
	// LinuxUserAgent is the User-Agent of a 64-bit Linux desktop browser.
	LinuxUserAgent = "Mozilla/5.0 (X11; Linux x86_64)"
)

//nolint:gochecknoglobals // Immutable candidate list, never exposed directly.
var userAgents = []string{
	WindowsUserAgent,
	MacOSUserAgent,
	LinuxUserAgent,
}

//nolint:gochecknoglobals // Default provider backing GetRandomUserAgent.
var defaultProvider = NewRandomUserAgentProvider()

// UserAgents returns a copy of the built-in User-Agent list in its fixed order.
func UserAgents() []string {
	return slices.Clone(userAgents)
}

// GetRandomUserAgent returns a User-Agent chosen uniformly at random from the built-in list.
// It is safe for concurrent use.
func GetRandomUserAgent() string {
	return defaultProvider.GetUserAgent()
}
