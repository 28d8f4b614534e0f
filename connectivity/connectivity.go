package connectivity

import (
	"github.com/katalvlaran/rewire/bfs"
	"github.com/katalvlaran/rewire/core"
)

// IsStronglyConnected reports whether every agent reaches every other agent
// along directed edges. Graphs with fewer than two agents are connected.
//
// Complexity: O(V + E), two traversals from one root.
func IsStronglyConnected(g *core.Graph) bool {
	return stronglyConnected(g, nil)
}

// IsWeaklyConnected reports whether the graph is connected once edge
// orientation is ignored.
func IsWeaklyConnected(g *core.Graph) bool {
	return weaklyConnected(g, nil)
}

// Check dispatches to the predicate selected by mode.
func Check(g *core.Graph, mode Mode) bool {
	return check(g, mode, nil)
}

func check(g *core.Graph, mode Mode, mask func(from, to int) bool) bool {
	if mode == Weak {
		return weaklyConnected(g, mask)
	}

	return stronglyConnected(g, mask)
}

func stronglyConnected(g *core.Graph, mask func(from, to int) bool) bool {
	root, ok := pickRoot(g)
	if !ok {
		return true
	}

	return reachesAll(g, root, bfs.Forward, mask) && reachesAll(g, root, bfs.Backward, mask)
}

func weaklyConnected(g *core.Graph, mask func(from, to int) bool) bool {
	root, ok := pickRoot(g)
	if !ok {
		return true
	}

	return reachesAll(g, root, bfs.Both, mask)
}

// pickRoot returns the smallest agent id, or false for graphs with fewer
// than two agents (trivially connected).
func pickRoot(g *core.Graph) (int, bool) {
	if g == nil || g.VertexCount() < 2 {
		return 0, false
	}

	return g.Vertices()[0], true
}

// reachesAll runs one unordered BFS from root and compares the reached count
// with the agent count.
func reachesAll(g *core.Graph, root int, dir bfs.Direction, mask func(from, to int) bool) bool {
	opts := []bfs.Option{bfs.WithDirection(dir), bfs.WithUnordered()}
	if mask != nil {
		opts = append(opts, bfs.WithFilterEdge(mask))
	}
	res, err := bfs.BFS(g, root, opts...)
	if err != nil {
		return false
	}

	return res.Reached() == g.VertexCount()
}
