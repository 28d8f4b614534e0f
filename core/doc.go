// Package core provides the thread-safe, in-memory weighted directed graph
// that the rewiring simulator mutates round after round.
//
// The Graph G = (V,E) models a social-influence network:
//
//   - Vertices are integer agent IDs, opaque and stable for a run.
//   - Edges are ordered pairs (u,v) carrying a trust weight in [0,1].
//   - Edges are not symmetric in weight even when both directions exist.
//   - A present edge with weight 0 is a relation with no trust signal yet.
//   - No self-loops; at most one weight per ordered pair (AddEdge overwrites).
//   - Constant-time edge operations via nested maps:
//     out[u][v] = weight, in[v][u] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Agent lifecycle (the agent set is fixed once a simulation starts)
//	AddVertex(id int)                       // O(1), idempotent
//	HasVertex(id int) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) error      // O(1), overwrite on repeat
//	RemoveEdge(u, v int) error              // O(1)
//	HasEdge(u, v int) bool                  // O(1)
//	Weight(u, v int) (float64, bool)        // O(1)
//	HasReciprocal(u, v int) bool            // O(1)
//
//	// Neighbourhoods (sorted, unique)
//	Successors(id), Predecessors(id), Neighbours(id)
//	InNeighbours(id), OutNeighbours(id), TrustNeighbours(id), Followings(id)
//
//	// Strengths & summaries
//	OutStrength(id), InStrength(id), Degree(id), Stats()
//
//	// Cloning
//	CloneEmpty() *Graph, Clone() *Graph
//
// Connectivity queries live in package connectivity, built on package bfs,
// so that hypothetical edge removals can be evaluated as BFS edge filters
// without mutating or copying the graph.
//
// Errors:
//
//	ErrVertexNotFound – missing agent
//	ErrEdgeNotFound   – missing directed edge
//	ErrBadWeight      – weight outside [0,1]
//	ErrLoopNotAllowed – self-loop
package core
