package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rewire/algorithms"
	"github.com/katalvlaran/rewire/config"
	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/logging"
	"github.com/katalvlaran/rewire/metrics"
	"github.com/katalvlaran/rewire/rewire"
)

// env bundles what every simulating command needs.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// newEnv resolves configuration (defaults, file, REWIRE_*, flags) and builds
// the logger and, when enabled, the metrics collector.
func newEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger}
	if cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		e.metrics = metrics.New(e.registry)
	}

	return e, nil
}

// applyFlags overlays only the flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Logging.Level, _ = f.GetString("log-level")
	}
	if f.Changed("algorithm") {
		cfg.Algorithm, _ = f.GetString("algorithm")
	}
	if f.Changed("rounds") {
		cfg.Rounds, _ = f.GetInt("rounds")
	}
	if f.Changed("recommendations") {
		cfg.Recommendations, _ = f.GetInt("recommendations")
	}
	if f.Changed("size") {
		cfg.Size, _ = f.GetInt("size")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("invariant") {
		cfg.Invariant, _ = f.GetString("invariant")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("metrics") {
		cfg.Metrics.Enabled, _ = f.GetBool("metrics")
	}
}

// addSimulationFlags registers the flags shared by run and compare.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rounds", 0, "Number of rounds")
	cmd.Flags().IntP("recommendations", "c", 0, "Recommendations requested per turn")
	cmd.Flags().IntP("size", "n", 0, "Number of agents in the initial graph")
	cmd.Flags().Int64("seed", 0, "Random seed (0 selects the default seed)")
	cmd.Flags().String("invariant", "", "Connectivity kept after every turn: strong or weak")
	cmd.Flags().Int("workers", 0, "Parallel workers per read phase (0 = GOMAXPROCS)")
	cmd.Flags().Bool("metrics", false, "Collect Prometheus metrics")
	cmd.Flags().String("metrics-file", "", "Write collected metrics in text format to this file")
}

// summary is the printable outcome of one simulation.
type summary struct {
	RunID      string        `json:"run_id"`
	Algorithm  string        `json:"algorithm"`
	Rounds     int           `json:"rounds"`
	Turns      int           `json:"turns"`
	Accepted   int           `json:"accepted"`
	Removed    int           `json:"removed"`
	ColdStarts int           `json:"cold_starts"`
	Edges      int           `json:"edges"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func newSummary(res *rewire.Result, elapsed time.Duration) summary {
	return summary{
		RunID:      res.RunID.String(),
		Algorithm:  res.Algorithm,
		Rounds:     res.Rounds,
		Turns:      res.Turns,
		Accepted:   res.Accepted,
		Removed:    res.Removed,
		ColdStarts: res.ColdStarts,
		Edges:      res.Edges,
		Elapsed:    elapsed,
	}
}

// simulate runs one algorithm on g, which it mutates.
func (e *env) simulate(key string, g *core.Graph) (*rewire.Result, time.Duration, error) {
	reg, err := algorithms.Default(e.cfg.AlgorithmOptions())
	if err != nil {
		return nil, 0, err
	}
	rec, err := reg.Resolve(key)
	if err != nil {
		return nil, 0, err
	}

	eng, err := rewire.New(g, rec,
		rewire.WithRecommendations(e.cfg.Recommendations),
		rewire.WithRounds(e.cfg.Rounds),
		rewire.WithSeed(e.cfg.Seed),
		rewire.WithInvariant(e.cfg.Mode()),
		rewire.WithLogger(e.logger),
		rewire.WithMetrics(e.metrics),
		rewire.WithAlgorithmName(key),
		rewire.WithWorkers(e.cfg.Workers),
	)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	res, err := eng.Run()

	return res, time.Since(start), err
}

// writeMetrics dumps the registry when metrics were collected and a file was requested.
func (e *env) writeMetrics(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("metrics-file")
	if e.registry == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
