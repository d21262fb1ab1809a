package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing Config, such as one returned
// by Load, so command-line flags can override it.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithPolicy sets the move policy name.
func (b *ConfigBuilder) WithPolicy(policy string) *ConfigBuilder {
	b.cfg.Search.Policy = policy
	return b
}

// WithSeed sets the seed of the random policy.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithStopOnError makes batch analysis stop at the first error.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Analysis.StopOnError = stop
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
