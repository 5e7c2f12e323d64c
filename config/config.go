// Package config holds the run configuration of the analogy CLI.
//
// Values come from, in increasing precedence: Default(), a TOML file,
// a .env file and the process environment (ANALOGY_* variables).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/analogy/search"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvAlgorithm          = "ANALOGY_ALGORITHM"
	EnvSeed               = "ANALOGY_SEED"
	EnvRestarts           = "ANALOGY_RESTARTS"
	EnvWorkers            = "ANALOGY_WORKERS"
	EnvMaxExhaustivePairs = "ANALOGY_MAX_EXHAUSTIVE_PAIRS"
	EnvLogLevel           = "ANALOGY_LOG_LEVEL"
	EnvLogFormat          = "ANALOGY_LOG_FORMAT"
)

// SearchConfig is the [search] table: the knobs converted to search.Option
// values by SearchOptions.
type SearchConfig struct {
	Algorithm          string `toml:"algorithm"`
	Seed               int64  `toml:"seed"`
	Restarts           int    `toml:"restarts"`
	Workers            int    `toml:"workers"`
	MaxExhaustivePairs int    `toml:"max_exhaustive_pairs"`
	AllowLarge         bool   `toml:"allow_large"`
}

// LogConfig is the [log] table. Level is debug, info, warn or error; Format
// is text or json.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full run configuration of the CLI.
type Config struct {
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Algorithm:          search.AlgorithmGreedy.String(),
			Restarts:           search.DefaultRestarts,
			Workers:            search.DefaultWorkers,
			MaxExhaustivePairs: search.DefaultMaxExhaustivePairs,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML file over Default(). Keys absent from the file keep
// their default values; unknown keys are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Variables already set are not overridden. It reports whether
// a file was read; a missing file is not an error.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// ApplyEnv overrides c with any ANALOGY_* variable present in the environment.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		c.Search.Algorithm = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Search.Seed = n
	}
	for _, iv := range []struct {
		name string
		dst  *int
	}{
		{EnvRestarts, &c.Search.Restarts},
		{EnvWorkers, &c.Search.Workers},
		{EnvMaxExhaustivePairs, &c.Search.MaxExhaustivePairs},
	} {
		v, ok := os.LookupEnv(iv.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", iv.name, v, ErrInvalidConfig)
		}
		*iv.dst = n
	}

	return nil
}

// Validate checks every field's domain.
func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("search.algorithm %q: %w", c.Search.Algorithm, ErrInvalidConfig)
	}
	if c.Search.Restarts < 1 {
		return fmt.Errorf("search.restarts=%d must be ≥ 1: %w", c.Search.Restarts, ErrInvalidConfig)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers=%d must be ≥ 1: %w", c.Search.Workers, ErrInvalidConfig)
	}
	if c.Search.MaxExhaustivePairs < 1 {
		return fmt.Errorf("search.max_exhaustive_pairs=%d must be ≥ 1: %w", c.Search.MaxExhaustivePairs, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// SearchOptions converts the search section to search options.
// c must be valid.
func (c *Config) SearchOptions() []search.Option {
	algo, _ := search.ParseAlgorithm(c.Search.Algorithm)
	opts := []search.Option{
		search.WithAlgorithm(algo),
		search.WithSeed(c.Search.Seed),
		search.WithRestarts(c.Search.Restarts),
		search.WithWorkers(c.Search.Workers),
		search.WithMaxExhaustivePairs(c.Search.MaxExhaustivePairs),
	}
	if c.Search.AllowLarge {
		opts = append(opts, search.WithAllowLarge())
	}

	return opts
}
