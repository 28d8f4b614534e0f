// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same agents but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.ensureBuckets(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: agents, edges and weights.
// The clone shares no maps with the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for u, targets := range g.out {
		for v, w := range targets {
			clone.out[u][v] = w
			clone.in[v][u] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
