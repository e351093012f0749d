package engine

import "fmt"

// Config controls a search. It is passed to New and never read from globals,
// so callers and tests can pick their own depths.
type Config struct {
	MinDepth int  `json:"minDepth"`
	MaxDepth int  `json:"maxDepth"`
	Pruning  bool `json:"pruning"`
}

func DefaultConfig() Config {
	return Config{MinDepth: 2, MaxDepth: 3, Pruning: true}
}

func (c Config) Validate() error {
	if c.MinDepth < 1 {
		return fmt.Errorf("min depth must be at least 1, got %d", c.MinDepth)
	}
	if c.MaxDepth < c.MinDepth {
		return fmt.Errorf("max depth %d is below min depth %d", c.MaxDepth, c.MinDepth)
	}
	return nil
}
