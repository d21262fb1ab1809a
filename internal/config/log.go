package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" env:"CHESS_LOG_LEVEL" env-default:"info" env-description:"log level"`

	// Format is text or json.
	Format string `yaml:"format" env:"CHESS_LOG_FORMAT" env-default:"text" env-description:"log format: text or json"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// SlogLevel converts Level to a slog level.
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return level, nil
}

// JSON reports whether logs are written as JSON.
func (c *LogConfig) JSON() bool {
	return strings.EqualFold(c.Format, "json")
}

func (c *LogConfig) validate() error {
	var result *multierror.Error
	if _, err := c.SlogLevel(); err != nil {
		result = multierror.Append(result, err)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("log format %q is not text or json", c.Format))
	}
	return result.ErrorOrNil()
}
