// Package config loads and validates the application configuration.
// Settings are read from a YAML file with viper, defaults fill the gaps,
// and ValidateConfig derives parsed values such as durations and byte sizes.
package config
