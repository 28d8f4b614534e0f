// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Agent lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Agent catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (keeps adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts an agent if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register it.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap the forward/backward buckets.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return // no-op for existing agent
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	g.ensureBuckets(id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the agent exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all agent IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of agents. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of predecessors (in) and successors (out) of id.
//
// Errors:
//   - ErrVertexNotFound: if the agent does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (in, out int, err error) {
	if !g.HasVertex(id) {
		return 0, 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.in[id]), len(g.out[id]), nil
}

// ensureBuckets makes out[id] and in[id] non-nil. Caller holds muEdgeAdj write lock.
func (g *Graph) ensureBuckets(id int) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[int]float64)
	}
	if _, ok := g.in[id]; !ok {
		g.in[id] = make(map[int]struct{})
	}
}
