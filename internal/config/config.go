// Package config loads runtime configuration for the armada binaries from
// a TOML file, with defaults that work out of the box.
package config

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/armadachess/armada/internal/errors"
)

// Config is the root configuration shared by the armada binaries.
type Config struct {
	Server ServerConfig `toml:"server"`
	Bench  BenchConfig  `toml:"bench"`
}

// ServerConfig configures the HTTP game server.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `toml:"listen_addr"`

	// WindowMax caps how many ranks of board state a single state response
	// may carry. Boards grow without bound; responses must not.
	WindowMax int `toml:"window_max"`
}

// BenchConfig configures the random-playout benchmark tool.
type BenchConfig struct {
	// Workers is the number of parallel playout workers. Zero means one
	// worker per CPU.
	Workers int `toml:"workers"`

	// Games is the total number of playouts to run.
	Games int `toml:"games"`

	// MaxPlies caps the length of a single playout.
	MaxPlies int `toml:"max_plies"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
			WindowMax:  64,
		},
		Bench: BenchConfig{
			Workers:  runtime.NumCPU(),
			Games:    100,
			MaxPlies: 400,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parsing %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "server.listen_addr must not be empty")
	}
	if c.Server.WindowMax < 1 {
		return errors.Wrap(errors.ErrInvalidConfig, "server.window_max must be at least 1")
	}
	if c.Bench.Workers < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "bench.workers must not be negative")
	}
	if c.Bench.Games < 1 {
		return errors.Wrap(errors.ErrInvalidConfig, "bench.games must be at least 1")
	}
	if c.Bench.MaxPlies < 1 {
		return errors.Wrap(errors.ErrInvalidConfig, "bench.max_plies must be at least 1")
	}
	return nil
}
