// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional direction and edge mask.
package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/rewire/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
	scratch []int // reused neighbour buffer
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or a context error on cancellation.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex
	w.enqueue(startID, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors expands item along the configured direction, applies the
// edge mask, and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1

	w.scratch = w.scratch[:0]
	if w.opts.Direction == Forward || w.opts.Direction == Both {
		w.graph.RangeSuccessors(item.id, func(v int, _ float64) bool {
			if !w.visited[v] && w.opts.FilterEdge(item.id, v) {
				w.scratch = append(w.scratch, v)
			}
			return true
		})
	}
	if w.opts.Direction == Backward || w.opts.Direction == Both {
		w.graph.RangePredecessors(item.id, func(u int, _ float64) bool {
			if !w.visited[u] && w.opts.FilterEdge(u, item.id) {
				w.scratch = append(w.scratch, u)
			}
			return true
		})
	}
	if !w.opts.Unordered {
		sort.Ints(w.scratch)
	}

	for _, nbr := range w.scratch {
		// Both may list a vertex twice (as successor and predecessor).
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth)
		}
	}
}
