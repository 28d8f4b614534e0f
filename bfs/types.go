// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which edges a traversal follows out of a vertex.
type Direction int

const (
	// Forward follows u→v edges (successors).
	Forward Direction = iota

	// Backward follows v←u edges in reverse (predecessors).
	Backward

	// Both ignores orientation (successors ∪ predecessors); used for weak connectivity.
	Both
)

// String renders the direction for logs and error messages.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. unknown direction), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction selects successors, predecessors or both.
	Direction Direction

	// FilterEdge can mask edges by returning false. It receives the edge in
	// its stored orientation (from→to), whatever the traversal direction.
	FilterEdge func(from, to int) bool

	// Unordered skips neighbour sorting; Order is then not reproducible but
	// reachability (Depth keys) is unchanged. Used by hot connectivity checks.
	Unordered bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - Forward direction
//   - no filtering (all edges allowed)
//   - sorted neighbour expansion.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		Direction:  Forward,
		FilterEdge: func(_, _ int) bool { return true },
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which edges are followed.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		switch d {
		case Forward, Backward, Both:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
		}
	}
}

// WithFilterEdge masks edges for which fn(from, to) returns false.
func WithFilterEdge(fn func(from, to int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithUnordered disables neighbour sorting for faster reachability passes.
func WithUnordered() Option {
	return func(o *BFSOptions) {
		o.Unordered = true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
type BFSResult struct {
	Order []int
	Depth map[int]int
}

// Reached reports how many distinct vertices the traversal visited.
func (r *BFSResult) Reached() int {
	return len(r.Depth)
}
