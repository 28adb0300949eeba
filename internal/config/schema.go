// Package config loads and watches the server's YAML configuration.
package config

// Config is the server configuration. Zero fields are filled with defaults
// at load time; see Default for the values.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// GridSize is the side length of the initial working grid.
	GridSize int `yaml:"grid_size"`

	// Weights enables per-cell traversal weights on the working grid.
	Weights bool `yaml:"weights"`

	// StepDelayMs paces the WebSocket trace stream: the server sleeps this
	// long after each visited/path frame so browsers can animate without
	// client-side buffering. Zero streams at full speed.
	StepDelayMs int `yaml:"step_delay_ms"`

	// ReadTimeoutSec and WriteTimeoutSec bound HTTP request handling.
	// WriteTimeoutSec also caps a streamed run, so keep it generous.
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		GridSize:        15,
		Weights:         false,
		StepDelayMs:     0,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 60,
	}
}

// applyDefaults fills unset fields in place.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.GridSize == 0 {
		c.GridSize = d.GridSize
	}
	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = d.ReadTimeoutSec
	}
	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = d.WriteTimeoutSec
	}
}
