package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/fake-useragent/internal/logger"
	"github.com/oshokin/fake-useragent/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout for HTTP requests made by the fetch command (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength is the maximum size of a logged request or response dump (e.g., "1 MB", "64KiB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// Count is the number of User-Agent strings printed by the root command.
	Count int64 `mapstructure:"count"`
	// MetadataFile is the tooling metadata file checked when no file is given.
	MetadataFile string `mapstructure:"metadata_file"`
	// ToolSection is the dotted path of the tooling section inside the metadata file.
	ToolSection string `mapstructure:"tool_section"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed HTTP request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed maximum dump size in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".fake-useragent.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the default timeout for HTTP requests.
	DefaultRequestTimeout = "60s"

	// DefaultMaxLogLength is the default maximum size of a logged request or response dump.
	DefaultMaxLogLength = "1 MiB"

	// DefaultCount is the default number of User-Agent strings to print.
	DefaultCount = 1

	// DefaultMetadataFile is the default tooling metadata file.
	DefaultMetadataFile = "pyproject.toml"

	// DefaultToolSection is the default tooling section inside the metadata file.
	DefaultToolSection = "tool.ruff"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxLogLength indicates that the maximum log length is invalid.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be positive")
	// ErrInvalidCount indicates that the count is invalid.
	ErrInvalidCount = errors.New("count must be a positive integer")
	// ErrEmptyToolSection indicates that the tooling section is empty.
	ErrEmptyToolSection = errors.New("tool_section cannot be empty")
)

// LoadConfig loads configuration settings from a YAML file.
// An empty filename means DefaultConfigFilename, which may be absent: defaults are used then.
// An explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFile := configFilename == ""
	if isDefaultFile {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		if !isDefaultFile || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration populated with default values.
// Derived fields are not set until ValidateConfig is called.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		RequestTimeout: DefaultRequestTimeout,
		MaxLogLength:   DefaultMaxLogLength,
		Count:          DefaultCount,
		MetadataFile:   DefaultMetadataFile,
		ToolSection:    DefaultToolSection,
	}
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	requestTimeout, err := time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if requestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedRequestTimeout = requestTimeout

	maxLogLength, err := humanize.ParseBytes(strings.TrimSpace(cfg.MaxLogLength))
	if err != nil {
		return fmt.Errorf("failed to parse max log length: %w", err)
	}

	if maxLogLength == 0 {
		return ErrInvalidMaxLogLength
	}

	// The transport slices dumps with this value, keep it within int64 range.
	cfg.ParsedMaxLogLength = uint64(utils.SafeUint64ToInt64(maxLogLength)) //nolint:gosec // Clamped above.

	if cfg.Count <= 0 {
		return ErrInvalidCount
	}

	if strings.TrimSpace(cfg.ToolSection) == "" {
		return ErrEmptyToolSection
	}

	if strings.TrimSpace(cfg.MetadataFile) == "" {
		cfg.MetadataFile = DefaultMetadataFile
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
	v.SetDefault("count", defaults.Count)
	v.SetDefault("metadata_file", defaults.MetadataFile)
	v.SetDefault("tool_section", defaults.ToolSection)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
