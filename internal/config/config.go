// Package config loads als's optional TOML configuration file, grounded on
// the teacher's cmd/surge/project_manifest.go manifest loader.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the parsed shape of the optional --config file (spec.md §6's
// Configuration section). Fields left unset keep the built-in defaults;
// zero values are indistinguishable from "not set" for workers/max_queue
// (0 workers already means "hardware parallelism" per spec.md §4.2) and
// max_items/log_level/log_file are only overridden when non-empty/non-zero.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Pool       PoolConfig       `toml:"pool"`
	Completion CompletionConfig `toml:"completion"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

type PoolConfig struct {
	Workers  int `toml:"workers"`
	MaxQueue int `toml:"max_queue"`
}

type CompletionConfig struct {
	MaxItems int `toml:"max_items"`
}

// Default returns the built-in configuration spec.md §4 describes: 0
// workers (hardware parallelism, clamped [1,16]), a 256-deep queue, info
// logging to console only, and completion truncation at 50.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			LogLevel: "info",
		},
		Pool: PoolConfig{
			Workers:  0,
			MaxQueue: 256,
		},
		Completion: CompletionConfig{
			MaxItems: 50,
		},
	}
}

// Load reads and parses a TOML config file, starting from Default and
// overwriting only the fields the file actually sets — an absent [pool]
// table, for instance, leaves the default queue depth untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("pool", "max_queue") {
		cfg.Pool.MaxQueue = Default().Pool.MaxQueue
	}
	if !meta.IsDefined("completion", "max_items") {
		cfg.Completion.MaxItems = Default().Completion.MaxItems
	}
	if !meta.IsDefined("server", "log_level") {
		cfg.Server.LogLevel = Default().Server.LogLevel
	}
	return cfg, nil
}

// ApplyOverrides layers CLI-flag values over the config-file result, per
// spec.md §4's CLI > config file > built-in default precedence. An empty
// string, a negative workers count, or a maxQueue/maxItems of zero or less
// means "flag not set."
func (c *Config) ApplyOverrides(logLevel, logFile string, workers, maxQueue, maxItems int) {
	if logLevel != "" {
		c.Server.LogLevel = logLevel
	}
	if logFile != "" {
		c.Server.LogFile = logFile
	}
	if workers >= 0 {
		c.Pool.Workers = workers
	}
	if maxQueue > 0 {
		c.Pool.MaxQueue = maxQueue
	}
	if maxItems > 0 {
		c.Completion.MaxItems = maxItems
	}
}
