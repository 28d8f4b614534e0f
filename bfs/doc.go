// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Follows successors (Forward), predecessors (Backward) or both (Both).
//   - Masks individual edges via WithFilterEdge, which sees every edge in its
//     stored orientation; this is how package connectivity evaluates
//     "what if the pair u⇄v were removed" without touching the graph.
//
// Determinism
//
//	Neighbours are expanded in ascending ID order unless WithUnordered is set,
//	so the visit sequence is reproducible by default.
//
// Concurrency
//
//	BFS only reads the graph (through core's read locks), so any number of
//	traversals may run in parallel on the same *core.Graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) (plus O(d log d) per vertex when sorting)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (unknown Direction).
//   - context errors on cancellation.
package bfs
