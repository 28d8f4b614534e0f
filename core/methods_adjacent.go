// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood APIs (Successors, Predecessors, Neighbours), the
//       trust-filtered views consumed by scorers, weighted strengths, and
//       unordered range iterators for hot traversal loops.
// Determinism:
//   - Every slice-returning method sorts IDs ascending.
//   - Range* iterators visit in unspecified order (use for order-free passes only).
// Concurrency:
//   - Read operations hold the muEdgeAdj read lock.

package core

import "sort"

// Successors returns the targets of id's outgoing edges, sorted ascending.
// A missing agent yields nil.
// Complexity: O(d log d).
func (g *Graph) Successors(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeysF(g.out[id], nil)
}

// Predecessors returns the sources of id's incoming edges, sorted ascending.
// A missing agent yields nil.
// Complexity: O(d log d).
func (g *Graph) Predecessors(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeysS(g.in[id])
}

// Neighbours returns the union of successors and predecessors of id
// (unique, sorted ascending), regardless of edge weight.
// Complexity: O(d log d).
func (g *Graph) Neighbours(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[int]struct{}, len(g.out[id])+len(g.in[id]))
	for v := range g.out[id] {
		seen[v] = struct{}{}
	}
	for u := range g.in[id] {
		seen[u] = struct{}{}
	}

	return sortedKeysS(seen)
}

// InNeighbours returns predecessors p of id with weight(p→id) > 0: the agents
// id follows with a non-zero trust signal.
// Complexity: O(d log d).
func (g *Graph) InNeighbours(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]int, 0, len(g.in[id]))
	for p := range g.in[id] {
		if g.out[p][id] > 0 {
			ids = append(ids, p)
		}
	}
	sort.Ints(ids)

	return ids
}

// OutNeighbours returns successors s of id with weight(id→s) > 0.
// Complexity: O(d log d).
func (g *Graph) OutNeighbours(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeysF(g.out[id], func(w float64) bool { return w > 0 })
}

// TrustNeighbours returns InNeighbours ∪ OutNeighbours (unique, sorted).
// Complexity: O(d log d).
func (g *Graph) TrustNeighbours(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[int]struct{}, len(g.out[id])+len(g.in[id]))
	for p := range g.in[id] {
		if g.out[p][id] > 0 {
			seen[p] = struct{}{}
		}
	}
	for s, w := range g.out[id] {
		if w > 0 {
			seen[s] = struct{}{}
		}
	}

	return sortedKeysS(seen)
}

// Followings returns the agents id follows with a non-zero trust signal.
// It is an alias of InNeighbours kept for readability at call sites.
func (g *Graph) Followings(id int) []int {
	return g.InNeighbours(id)
}

// OutStrength returns Σ weight(id→s) over all successors s.
// Complexity: O(d).
func (g *Graph) OutStrength(id int) float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var sum float64
	for _, w := range g.out[id] {
		sum += w
	}

	return sum
}

// InStrength returns Σ weight(p→id) over all predecessors p.
// Complexity: O(d).
func (g *Graph) InStrength(id int) float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var sum float64
	for p := range g.in[id] {
		sum += g.out[p][id]
	}

	return sum
}

// RangeSuccessors calls fn for every outgoing edge of id until fn returns false.
// Order is unspecified. fn runs under the read lock and MUST NOT mutate g.
func (g *Graph) RangeSuccessors(id int, fn func(v int, w float64) bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for v, w := range g.out[id] {
		if !fn(v, w) {
			return
		}
	}
}

// RangePredecessors calls fn for every incoming edge of id until fn returns false.
// Order is unspecified. fn runs under the read lock and MUST NOT mutate g.
func (g *Graph) RangePredecessors(id int, fn func(u int, w float64) bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for u := range g.in[id] {
		if !fn(u, g.out[u][id]) {
			return
		}
	}
}

// sortedKeysF returns the keys of m accepted by keep (nil keeps all), sorted.
func sortedKeysF(m map[int]float64, keep func(float64) bool) []int {
	if m == nil {
		return nil
	}
	ids := make([]int, 0, len(m))
	for k, w := range m {
		if keep == nil || keep(w) {
			ids = append(ids, k)
		}
	}
	sort.Ints(ids)

	return ids
}

// sortedKeysS returns the keys of a set, sorted.
func sortedKeysS(m map[int]struct{}) []int {
	if m == nil {
		return nil
	}
	ids := make([]int, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Ints(ids)

	return ids
}
