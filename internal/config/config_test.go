package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoader_FullFile(t *testing.T) {
	path := writeFile(t, `
addr: ":9090"
grid_size: 20
weights: true
step_delay_ms: 25
read_timeout_sec: 5
write_timeout_sec: 120
`)
	l, err := NewLoader(path)
	require.NoError(t, err)

	cfg := l.Config()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 20, cfg.GridSize)
	assert.True(t, cfg.Weights)
	assert.Equal(t, 25, cfg.StepDelayMs)
	assert.Equal(t, 5, cfg.ReadTimeoutSec)
	assert.Equal(t, 120, cfg.WriteTimeoutSec)
}

func TestLoader_DefaultsFillUnsetFields(t *testing.T) {
	path := writeFile(t, "grid_size: 8\n")
	l, err := NewLoader(path)
	require.NoError(t, err)

	cfg := l.Config()
	d := Default()
	assert.Equal(t, 8, cfg.GridSize)
	assert.Equal(t, d.Addr, cfg.Addr)
	assert.Equal(t, d.ReadTimeoutSec, cfg.ReadTimeoutSec)
	assert.Equal(t, d.WriteTimeoutSec, cfg.WriteTimeoutSec)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoader_BadYAML(t *testing.T) {
	path := writeFile(t, "addr: [oops\n")
	_, err := NewLoader(path)
	assert.Error(t, err)
}

func TestLoader_RejectsInvalidGridSize(t *testing.T) {
	path := writeFile(t, "grid_size: 3\n")
	_, err := NewLoader(path)
	assert.Error(t, err)

	path = writeFile(t, "grid_size: 31\n")
	_, err = NewLoader(path)
	assert.Error(t, err)
}

func TestLoader_ReloadFiresCallbacks(t *testing.T) {
	path := writeFile(t, "grid_size: 10\n")
	l, err := NewLoader(path)
	require.NoError(t, err)

	var seen []int
	l.OnChange(func(c *Config) { seen = append(seen, c.GridSize) })

	require.NoError(t, os.WriteFile(path, []byte("grid_size: 12\n"), 0o600))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GridSize)
	assert.Equal(t, []int{12}, seen)
	assert.Equal(t, 12, l.Config().GridSize)
}

func TestLoader_FailedReloadKeepsCurrent(t *testing.T) {
	path := writeFile(t, "grid_size: 10\n")
	l, err := NewLoader(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("grid_size: 2\n"), 0o600))
	_, err = l.Reload()
	assert.Error(t, err)
	assert.Equal(t, 10, l.Config().GridSize)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty addr", func(c *Config) { c.Addr = "" }, false},
		{"grid too small", func(c *Config) { c.GridSize = 4 }, false},
		{"grid too large", func(c *Config) { c.GridSize = 99 }, false},
		{"negative delay", func(c *Config) { c.StepDelayMs = -1 }, false},
		{"zero read timeout", func(c *Config) { c.ReadTimeoutSec = 0 }, false},
		{"zero write timeout", func(c *Config) { c.WriteTimeoutSec = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
