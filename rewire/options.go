package rewire

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/metrics"
	"github.com/katalvlaran/rewire/rng"
)

// Default engine settings.
const (
	DefaultRecommendations = 5
	DefaultRounds          = 1
)

// Option configures an Engine. Invalid values are recorded and reported by New.
type Option func(*options)

// Hooks observe the engine without influencing it.
type Hooks struct {
	// OnTurn runs after every successful turn.
	OnTurn func(TurnReport)
	// OnRound runs after every completed round.
	OnRound func(round int)
}

type options struct {
	recommendations int
	rounds          int
	rand            *rand.Rand
	mode            connectivity.Mode
	logger          *zap.Logger
	metrics         *metrics.Collector
	algorithm       string
	workers         int
	hooks           Hooks
	err             error
}

func defaultOptions() options {
	return options{
		recommendations: DefaultRecommendations,
		rounds:          DefaultRounds,
		mode:            connectivity.Strong,
		logger:          zap.NewNop(),
		algorithm:       "custom",
	}
}

// WithRecommendations sets c, the number of candidates requested per turn (> 0).
func WithRecommendations(c int) Option {
	return func(o *options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: recommendations must be > 0 (got %d)", ErrBadOption, c)
			return
		}
		o.recommendations = c
	}
}

// WithRounds sets how many rounds Run performs (> 0).
func WithRounds(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: rounds must be > 0 (got %d)", ErrBadOption, n)
			return
		}
		o.rounds = n
	}
}

// WithRand supplies the engine's single random stream. It must not be shared
// with other goroutines while the engine runs.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrBadOption)
			return
		}
		o.rand = r
	}
}

// WithSeed is WithRand(rng.New(seed)).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = rng.New(seed)
	}
}

// WithInvariant selects the connectivity every turn must preserve.
func WithInvariant(m connectivity.Mode) Option {
	return func(o *options) {
		if m != connectivity.Strong && m != connectivity.Weak {
			o.err = fmt.Errorf("%w: unknown invariant %s", ErrBadOption, m)
			return
		}
		o.mode = m
	}
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches a Prometheus collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithAlgorithmName labels logs and metrics with the algorithm key.
func WithAlgorithmName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.algorithm = name
		}
	}
}

// WithWorkers bounds the parallel bridge checks of a turn.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithHooks installs observation callbacks.
func WithHooks(h Hooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}
