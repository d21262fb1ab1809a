// Package config provides configuration for the chess engine tools.
// Values come from defaults, an optional YAML file and CHESS_* environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Search   SearchConfig `yaml:"search"`
	Log      LogConfig    `yaml:"log"`
	Analysis WorkerConfig `yaml:"analysis"`

	// StartFEN is the position games and searches begin from.
	StartFEN string `yaml:"start-fen" env:"CHESS_START_FEN" env-default:"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     *NewSearchConfig(),
		Log:        *NewLogConfig(),
		Analysis:   *NewWorkerConfig(),
		StartFEN:   engine.InitialFEN,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Load reads the YAML file at path, when path is not empty, and then the
// environment. Missing values take their defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	cfg.OutputFile = os.Stdout
	cfg.LogFile = os.Stderr
	return cfg, nil
}

// MustLoad is Load that panics on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks every setting and reports all problems at once. The
// returned error matches ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := c.Search.validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Log.validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Analysis.validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := engine.ParseFEN(c.StartFEN); err != nil {
		result = multierror.Append(result, fmt.Errorf("start-fen: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// Usage returns the environment variables Config reads, for help output.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
