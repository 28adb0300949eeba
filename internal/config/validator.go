package config

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Validate rejects configurations the engine cannot honor. Called on initial
// load and before every hot reload; an invalid reload is skipped, keeping the
// previous configuration live.
func Validate(c *Config) error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	if c.GridSize < grid.MinSize || c.GridSize > grid.MaxSize {
		return fmt.Errorf("config: grid_size %d outside [%d, %d]", c.GridSize, grid.MinSize, grid.MaxSize)
	}
	if c.StepDelayMs < 0 {
		return fmt.Errorf("config: step_delay_ms must be >= 0")
	}
	if c.ReadTimeoutSec <= 0 || c.WriteTimeoutSec <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}

	return nil
}
