package connectivity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed to DetectBridges.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrAgentNotFound is returned when the focal agent is not in the graph.
	ErrAgentNotFound = errors.New("connectivity: agent not found")

	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("connectivity: unknown mode")
)

// Mode names the connectivity invariant a graph must keep.
type Mode int

const (
	// Strong requires a directed path between every ordered pair of agents.
	Strong Mode = iota

	// Weak requires a path between every pair when orientation is ignored.
	Weak
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "strong" or "weak" (case-insensitive) to a Mode.
// An empty string selects Strong.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strong":
		return Strong, nil
	case "weak":
		return Weak, nil
	default:
		return Strong, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option tunes DetectBridges.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	mode    Mode
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
		mode:    Strong,
	}
}

// WithWorkers bounds the number of concurrent hypothetical-removal checks.
// n <= 0 keeps the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithMode selects which connectivity a removal must preserve (default Strong).
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithContext attaches a context that cancels outstanding checks.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
