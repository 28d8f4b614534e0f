// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types of the rewiring
// simulator and provides thread-safe primitives for building, querying,
// mutating and cloning directed weighted social graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// agent catalog, muEdgeAdj for the forward/backward adjacency), so read-only
// passes (scorers, connectivity checks, random walks) may run concurrently.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested agent does not exist.
//	ErrEdgeNotFound   - requested directed edge does not exist.
//	ErrBadWeight      - weight outside the closed interval [0,1] (or NaN).
//	ErrLoopNotAllowed - self-loop (u == u) requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent agent.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent directed edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: weight out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; social graphs never contain (x, x).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Weight domain of a trust edge.
const (
	// MinWeight is the weight of a freshly initiated relation that carries no trust signal yet.
	MinWeight = 0.0

	// MaxWeight is the upper bound of a trust weight.
	MaxWeight = 1.0
)

// Edge is a value snapshot of one directed relation From→To.
//
// A present edge with Weight 0 means "relation exists but carries no trust
// signal yet"; absence of an Edge means "no relation".
type Edge struct {
	// From is the source agent ID.
	From int

	// To is the destination agent ID.
	To int

	// Weight is the trust weight in [0,1].
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for n agents.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the weighted directed graph store.
//
// Invariants:
//   - No self-loops.
//   - At most one weight per ordered pair (u,v); AddEdge overwrites.
//   - out[u][v] exists iff in[v][u] exists.
//   - edgeCount == Σ_u len(out[u]).
//
// muVert protects vertices; muEdgeAdj protects out, in and edgeCount.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards out, in, edgeCount

	capacity int // construction-time size hint

	vertices map[int]struct{} // agent catalog

	// out[u][v] = weight(u→v); in[v][u] mirrors existence for predecessor queries.
	out       map[int]map[int]float64
	in        map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) (plus the capacity hint allocation).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options before allocating so WithCapacity can size the maps.
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[int]struct{}, g.capacity)
	g.out = make(map[int]map[int]float64, g.capacity)
	g.in = make(map[int]map[int]struct{}, g.capacity)

	return g
}
