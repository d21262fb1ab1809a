package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/search"
)

// MaxDepth bounds the search depth accepted from configuration.
const MaxDepth = 8

// SearchConfig holds settings for choosing moves.
type SearchConfig struct {
	// Depth is the number of plies searched below the root.
	Depth int `yaml:"depth" env:"CHESS_DEPTH" env-default:"3" env-description:"search depth in plies"`

	// Policy is best, worst or random.
	Policy string `yaml:"policy" env:"CHESS_POLICY" env-default:"best" env-description:"move policy: best, worst or random"`

	// Seed feeds the random policy; zero picks a seed from the clock.
	Seed int64 `yaml:"seed" env:"CHESS_SEED" env-description:"seed for the random policy"`
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:  3,
		Policy: search.PolicyBest.String(),
	}
}

// MovePolicy returns the parsed policy.
func (c *SearchConfig) MovePolicy() (search.Policy, error) {
	return search.ParsePolicy(c.Policy)
}

func (c *SearchConfig) validate() error {
	var result *multierror.Error
	if c.Depth < 1 || c.Depth > MaxDepth {
		result = multierror.Append(result, fmt.Errorf("search depth %d outside 1..%d", c.Depth, MaxDepth))
	}
	if _, err := c.MovePolicy(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
