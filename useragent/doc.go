// Package useragent provides User-Agent providers for outgoing HTTP requests.
// It ships a small built-in list of browser User-Agent strings and a provider
// that picks one of them uniformly at random on every call.
package useragent
