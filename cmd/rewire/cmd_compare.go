package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rewire/algorithms"
	"github.com/katalvlaran/rewire/builder"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "Rewire the same initial graph with several algorithms",
		Long: `compare builds one initial graph and runs every named algorithm (all of
them when none is named) on its own copy, with the same seed, so that the
outcomes differ only by algorithm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			keys := args
			if len(keys) == 0 {
				keys = algorithms.Keys()
			}
			for _, k := range keys {
				if !algorithms.Known(k) {
					return fmt.Errorf("unknown algorithm: %q", k)
				}
			}

			initial, err := builder.Initial(e.cfg.Size, e.cfg.Seed)
			if err != nil {
				return fmt.Errorf("building initial graph: %w", err)
			}

			results := make([]summary, 0, len(keys))
			for _, k := range keys {
				g := initial.Clone()
				res, elapsed, err := e.simulate(k, g)
				if err != nil {
					return fmt.Errorf("%s: %w", k, err)
				}
				e.logger.Info("algorithm finished", zap.String("algorithm", k), zap.Duration("elapsed", elapsed))
				results = append(results, newSummary(res, elapsed))
			}
			if err := e.writeMetrics(cmd); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"initial_edges": initial.EdgeCount(),
					"results":       results,
				})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ALGORITHM\tACCEPTED\tREMOVED\tCOLD STARTS\tEDGES\tELAPSED\n")
			for _, s := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", s.Algorithm, s.Accepted, s.Removed, s.ColdStarts, s.Edges, s.Elapsed)
			}
			return tw.Flush()
		},
	}
	addSimulationFlags(cmd)

	return cmd
}
