package config

import "fmt"

// WorkerConfig holds settings for batch analysis.
type WorkerConfig struct {
	// Workers is the number of positions analysed in parallel.
	Workers int `yaml:"workers" env:"CHESS_WORKERS" env-default:"1" env-description:"parallel analysis workers"`

	// StopOnError abandons the batch after the first bad position.
	StopOnError bool `yaml:"stop-on-error" env:"CHESS_STOP_ON_ERROR" env-description:"stop a batch at the first error"`
}

// NewWorkerConfig creates a WorkerConfig with default values.
func NewWorkerConfig() *WorkerConfig {
	return &WorkerConfig{Workers: 1}
}

func (c *WorkerConfig) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1", c.Workers)
	}
	return nil
}
