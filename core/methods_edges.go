// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge stores the directed relation u→v with weight w.
//
// Steps:
//  1. Reject self-loops and weights outside [MinWeight, MaxWeight].
//  2. Verify both endpoints exist (the agent set is fixed; edges never create agents).
//  3. Lock muEdgeAdj; overwrite the weight if (u,v) already exists, else insert
//     into out[u] and mirror into in[v].
//
// Behavior highlights:
//   - Never creates a parallel edge: at most one weight per ordered pair.
//
// Errors:
//   - ErrLoopNotAllowed, ErrBadWeight, ErrVertexNotFound (wrapped with the endpoint).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || w < MinWeight || w > MaxWeight {
		return fmt.Errorf("AddEdge(%d→%d, w=%g): %w", u, v, w, ErrBadWeight)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("AddEdge: source %d: %w", u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("AddEdge: target %d: %w", v, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.out[u][v]; !exists {
		g.edgeCount++
	}
	g.out[u][v] = w
	g.in[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the directed relation u→v (the reverse direction is untouched).
//
// Errors:
//   - ErrEdgeNotFound if u→v is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.out[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d→%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.out[u], v)
	delete(g.in[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the directed relation u→v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[u][v]

	return ok
}

// Weight returns the weight of u→v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.out[u][v]

	return w, ok
}

// HasReciprocal reports whether both u→v and v→u exist.
// Complexity: O(1).
func (g *Graph) HasReciprocal(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, fwd := g.out[u][v]
	_, bwd := g.out[v][u]

	return fwd && bwd
}

// Edges returns a snapshot of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, targets := range g.out {
		for v, w := range targets {
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the total number of directed edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
