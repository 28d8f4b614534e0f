// SPDX-License-Identifier: MIT
// Package: rewire/builder
//
// impl_connected_erdos_renyi.go - ConnectedErdosRenyi(n) constructor.
//
// Model:
//   - Undirected G(n, p) with p = ln(n)/n, the connectivity threshold.
//   - Every sampled pair becomes a reciprocal tie with independent weights.
//   - Repair: components are listed by smallest member; for every component
//     after the first, a uniformly chosen member is tied to a uniformly
//     chosen member of the first component.
//   - The result is verified strongly connected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials + O(V+E) component scan.
//
// Determinism:
//   - Trials run over pairs (i<j) in i asc, j asc order; weights are drawn
//     right after a successful trial; repair draws follow component order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rewire/bfs"
	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/core"
)

const (
	methodConnectedErdosRenyi = "ConnectedErdosRenyi"
	minErdosRenyiVertices     = 1
)

// CriticalProbability is ln(n)/n, the G(n,p) connectivity threshold.
// It is 0 for n ≤ 1.
func CriticalProbability(n int) float64 {
	if n <= 1 {
		return 0
	}

	return math.Log(float64(n)) / float64(n)
}

// ConnectedErdosRenyi returns a Constructor for a connected random social
// graph over n agents.
func ConnectedErdosRenyi(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minErdosRenyiVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodConnectedErdosRenyi, n, minErdosRenyiVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodConnectedErdosRenyi, ErrNeedRandSource)
		}

		addAgents(g, n)
		p := CriticalProbability(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := tie(g, cfg, methodConnectedErdosRenyi, i, j); err != nil {
						return err
					}
				}
			}
		}

		comps, err := components(g)
		if err != nil {
			return fmt.Errorf("%s: %w", methodConnectedErdosRenyi, err)
		}
		for _, comp := range comps[1:] {
			base := comps[0][cfg.rng.Intn(len(comps[0]))]
			other := comp[cfg.rng.Intn(len(comp))]
			if err := tie(g, cfg, methodConnectedErdosRenyi, base, other); err != nil {
				return err
			}
		}

		if !connectivity.IsStronglyConnected(g) {
			return fmt.Errorf("%s: graph still disconnected after repair: %w",
				methodConnectedErdosRenyi, ErrConstructFailed)
		}

		return nil
	}
}

// components lists the weakly connected components of g, each in BFS order,
// ordered by their smallest member.
func components(g *core.Graph) ([][]int, error) {
	seen := make(map[int]bool, g.VertexCount())
	var out [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := bfs.BFS(g, v, bfs.WithDirection(bfs.Both))
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
