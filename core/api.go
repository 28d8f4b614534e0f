// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	VertexCount     int     // number of agents
	EdgeCount       int     // number of directed edges
	ReciprocalPairs int     // unordered pairs {u,v} with both u→v and v→u present
	ZeroWeightEdges int     // edges carrying no trust signal yet
	MeanOutDegree   float64 // EdgeCount / VertexCount (0 for an empty graph)
	MeanWeight      float64 // mean edge weight (0 for an edgeless graph)
}

// Stats produces a read-only snapshot of catalog sizes and weight summaries.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot the agent count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock and scan every edge once.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	var sum float64
	for u, targets := range g.out {
		for v, w := range targets {
			sum += w
			if w == MinWeight {
				stats.ZeroWeightEdges++
			}
			// Count each reciprocal pair once, from its smaller endpoint.
			if u < v {
				if _, back := g.out[v][u]; back {
					stats.ReciprocalPairs++
				}
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	if stats.VertexCount > 0 {
		stats.MeanOutDegree = float64(stats.EdgeCount) / float64(stats.VertexCount)
	}
	if stats.EdgeCount > 0 {
		stats.MeanWeight = sum / float64(stats.EdgeCount)
	}

	return &stats
}
