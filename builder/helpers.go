// SPDX-License-Identifier: MIT
// Package: rewire/builder
//
// helpers.go - shared emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rewire/core"
)

// addAgents inserts agents 0..n-1 in ascending order.
func addAgents(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
}

// tie emits the reciprocal pair u→v, v→u with two independent weight draws,
// forward first.
func tie(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	wuv := cfg.weightFn(cfg.rng)
	wvu := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, wuv); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, wuv, err)
	}
	if err := g.AddEdge(v, u, wvu); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, wvu, err)
	}

	return nil
}
