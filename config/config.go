// Package config provides unified configuration loading for the simulator.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rewire/algorithms"
	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/embedding"
	"github.com/katalvlaran/rewire/logging"
	"github.com/katalvlaran/rewire/wtf"
)

// Config contains every simulation setting.
type Config struct {
	// Algorithm is the registry key of the recommender, e.g. "wtf".
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// Recommendations is c, the number of candidates requested per turn.
	Recommendations int `json:"recommendations" yaml:"recommendations"`

	// Rounds is the number of full passes over all agents.
	Rounds int `json:"rounds" yaml:"rounds"`

	// Hops is accepted for compatibility with older run files; nothing reads it.
	Hops int `json:"hops" yaml:"hops"`

	// Size is the number of agents in the initial graph.
	Size int `json:"size" yaml:"size"`

	// Seed drives graph construction and the engine's random stream.
	// Zero selects the fixed default seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// Invariant is "strong" (default) or "weak".
	Invariant string `json:"invariant" yaml:"invariant"`

	// Workers bounds every parallel read phase; <= 0 means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`

	WTF       wtf.Config       `json:"wtf" yaml:"wtf"`
	Embedding embedding.Params `json:"embedding" yaml:"embedding"`
	Logging   LoggingConfig    `json:"logging" yaml:"logging"`
	Metrics   MetricsConfig    `json:"metrics" yaml:"metrics"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info (default), warn, error.
	Level string `json:"level" yaml:"level"`
}

// MetricsConfig toggles the Prometheus collector.
type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Algorithm:       algorithms.WTF,
		Recommendations: 5,
		Rounds:          1,
		Hops:            5,
		Size:            1000,
		Invariant:       connectivity.Strong.String(),
		WTF:             wtf.DefaultConfig(),
		Embedding:       embedding.DefaultParams(),
		Logging:         LoggingConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid by path (when non-empty) and then by
// environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields the
// file omits keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv applies REWIRE_* environment variable overrides. Malformed
// numbers are reported rather than ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("REWIRE_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("REWIRE_INVARIANT"); v != "" {
		c.Invariant = v
	}
	if v := os.Getenv("REWIRE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("REWIRE_METRICS"); v != "" {
		c.Metrics.Enabled = v == "true" || v == "1"
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"REWIRE_ROUNDS", &c.Rounds},
		{"REWIRE_RECOMMENDATIONS", &c.Recommendations},
		{"REWIRE_SIZE", &c.Size},
		{"REWIRE_WORKERS", &c.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}

	if v := os.Getenv("REWIRE_SEED"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("REWIRE_SEED: %w", err)
		}
		c.Seed = n
	}

	return nil
}

// Validate checks that the configuration is valid. An unknown algorithm key
// is a configuration error, reported before any graph is built.
func (c *Config) Validate() error {
	if !algorithms.Known(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %q (valid: %s)", c.Algorithm, strings.Join(algorithms.Keys(), ", "))
	}
	if c.Recommendations <= 0 {
		return fmt.Errorf("recommendations must be > 0, got %d", c.Recommendations)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be > 0, got %d", c.Rounds)
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0, got %d", c.Size)
	}
	if _, err := connectivity.ParseMode(c.Invariant); err != nil {
		return fmt.Errorf("invalid invariant: %w", err)
	}
	if err := c.WTF.Validate(); err != nil {
		return err
	}
	emb := c.Embedding
	emb.P, emb.Q = 1, 1
	if err := emb.Validate(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Mode returns the parsed invariant; call after Validate.
func (c *Config) Mode() connectivity.Mode {
	m, err := connectivity.ParseMode(c.Invariant)
	if err != nil {
		return connectivity.Strong
	}

	return m
}

// AlgorithmOptions projects the algorithm tunables for algorithms.Default.
func (c *Config) AlgorithmOptions() algorithms.Options {
	return algorithms.Options{
		Workers:   c.Workers,
		WTF:       c.WTF,
		Embedding: c.Embedding,
	}
}
