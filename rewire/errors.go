package rewire

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("rewire: graph is nil")

	// ErrNilRecommender is returned by New for a nil recommender.
	ErrNilRecommender = errors.New("rewire: recommender is nil")

	// ErrBadOption wraps an invalid Option value.
	ErrBadOption = errors.New("rewire: invalid option")

	// ErrDisconnected is returned by New when the initial graph already
	// breaks the configured invariant.
	ErrDisconnected = errors.New("rewire: initial graph violates connectivity invariant")

	// ErrAgentNotFound is returned by Turn for an unknown agent.
	ErrAgentNotFound = errors.New("rewire: agent not found")

	// ErrInvariantViolated is the root of every InvariantError.
	ErrInvariantViolated = errors.New("rewire: connectivity invariant violated")
)

// InvariantError reports that a turn left the graph without the required
// connectivity. It is fatal: the run stops and the graph is left as is.
type InvariantError struct {
	Round int
	Agent int
	// Removed is the forward edge of the pair dropped in this turn, if any.
	Removed *core.Edge
	Mode    connectivity.Mode
}

// Error implements error.
func (e *InvariantError) Error() string {
	if e.Removed != nil {
		return fmt.Sprintf("rewire: %s connectivity lost in round %d, agent %d, after removing %d⇄%d",
			e.Mode, e.Round, e.Agent, e.Removed.From, e.Removed.To)
	}

	return fmt.Sprintf("rewire: %s connectivity lost in round %d, agent %d", e.Mode, e.Round, e.Agent)
}

// Unwrap lets errors.Is match ErrInvariantViolated.
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolated
}
