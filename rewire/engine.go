package rewire

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/metrics"
	"github.com/katalvlaran/rewire/rng"
	"github.com/katalvlaran/rewire/scoring"
)

// TurnReport describes one agent turn.
type TurnReport struct {
	Round int
	Agent int
	// P is the acceptance probability; 1−P is the disconnection probability.
	P           float64
	ColdStart   bool
	Recommended []int
	Accepted    []int
	Bridges     []int
	// Removed is the forward edge (agent→neighbour, weight before removal)
	// of the dropped reciprocal pair, or nil.
	Removed  *core.Edge
	Duration time.Duration
}

// Result summarizes a completed Run.
type Result struct {
	RunID      uuid.UUID
	Algorithm  string
	Rounds     int
	Turns      int
	Accepted   int
	Removed    int
	ColdStarts int
	Edges      int
}

// Engine runs the rewiring simulation on one graph. Turns are strictly
// sequential: each reads the graph as left by the previous turn.
// An Engine is not safe for concurrent use.
type Engine struct {
	g    *core.Graph
	rec  scoring.Recommender
	opts options
	log  *zap.Logger
}

// New validates the options and the starting graph, which must already
// satisfy the configured invariant.
func New(g *core.Graph, rec scoring.Recommender, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rec == nil {
		return nil, ErrNilRecommender
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.rand == nil {
		o.rand = rng.New(0)
	}
	if !connectivity.Check(g, o.mode) {
		return nil, fmt.Errorf("%w (%s)", ErrDisconnected, o.mode)
	}

	return &Engine{
		g:    g,
		rec:  rec,
		opts: o,
		log:  o.logger.With(zap.String("algorithm", o.algorithm)),
	}, nil
}

// Graph returns the graph the engine mutates.
func (e *Engine) Graph() *core.Graph {
	return e.g
}

// AcceptanceProbability is 1/|predecessors(agent)|. An agent nobody points
// to has no signal to be selective with and accepts everything (p = 1).
func AcceptanceProbability(g *core.Graph, agent int) float64 {
	n := len(g.Predecessors(agent))
	if n == 0 {
		return 1
	}

	return 1 / float64(n)
}

// Connect makes u⇄v reciprocal. A new u→v starts at weight 0 (no trust yet);
// a new v→u gets a fresh weight in [0,1) from r. Existing weights are kept.
func Connect(g *core.Graph, u, v int, r *rand.Rand) error {
	if !g.HasEdge(u, v) {
		if err := g.AddEdge(u, v, 0); err != nil {
			return err
		}
	}
	if !g.HasEdge(v, u) {
		if err := g.AddEdge(v, u, r.Float64()); err != nil {
			return err
		}
	}

	return nil
}

// Turn plays one agent's turn:
//
//  1. p = AcceptanceProbability.
//  2. Recommend c candidates (ColdStart when the agent has no following).
//  3. Accept each independently with probability p and Connect it.
//  4. Among reciprocal neighbours not accepted this turn, drop bridges; if any
//     remain, with probability 1−p remove the pair with the lowest forward
//     weight (ties: lowest id).
//  5. Assert the connectivity invariant.
//
// An *InvariantError is fatal; other errors come from collaborators.
func (e *Engine) Turn(round, agent int) (TurnReport, error) {
	start := time.Now()
	rep := TurnReport{Round: round, Agent: agent}
	if !e.g.HasVertex(agent) {
		return rep, fmt.Errorf("%w: %d", ErrAgentNotFound, agent)
	}
	r := e.opts.rand
	c := e.opts.recommendations

	rep.P = AcceptanceProbability(e.g, agent)

	// Read phase: the recommender sees the graph before this turn's writes.
	var err error
	if scoring.NeedsColdStart(e.g, agent) {
		rep.ColdStart = true
		rep.Recommended, err = scoring.ColdStart(e.g, agent, c, r)
	} else {
		rep.Recommended, err = e.rec.Recommend(e.g, agent, c, r)
	}
	if err != nil {
		return rep, fmt.Errorf("rewire: recommend for agent %d: %w", agent, err)
	}

	accepted := make(map[int]struct{}, len(rep.Recommended))
	for _, cand := range rep.Recommended {
		if _, dup := accepted[cand]; dup || cand == agent {
			continue
		}
		if r.Float64() < rep.P {
			if err := Connect(e.g, agent, cand, r); err != nil {
				return rep, fmt.Errorf("rewire: connect %d⇄%d: %w", agent, cand, err)
			}
			accepted[cand] = struct{}{}
			rep.Accepted = append(rep.Accepted, cand)
		}
	}

	removed, bridges, err := e.disconnect(agent, accepted, rep.P)
	if err != nil {
		return rep, err
	}
	rep.Bridges = bridges
	rep.Removed = removed

	if !connectivity.Check(e.g, e.opts.mode) {
		ierr := &InvariantError{Round: round, Agent: agent, Removed: removed, Mode: e.opts.mode}
		e.log.Error("connectivity invariant violated",
			zap.Int("round", round),
			zap.Int("agent", agent),
			zap.Stringer("mode", e.opts.mode),
			zap.Any("removed", removed),
			zap.Error(ierr),
		)
		return rep, ierr
	}

	rep.Duration = time.Since(start)
	e.log.Debug("turn",
		zap.Int("round", round),
		zap.Int("agent", agent),
		zap.Float64("p", rep.P),
		zap.Bool("cold_start", rep.ColdStart),
		zap.Ints("recommended", rep.Recommended),
		zap.Ints("accepted", rep.Accepted),
		zap.Int("bridges", len(rep.Bridges)),
		zap.Bool("removed", rep.Removed != nil),
	)
	e.opts.metrics.ObserveTurn(e.opts.algorithm, metrics.Turn{
		Accepted:  len(rep.Accepted),
		Removed:   boolToInt(rep.Removed != nil),
		Bridges:   len(rep.Bridges),
		ColdStart: rep.ColdStart,
		Duration:  rep.Duration,
	})
	e.opts.metrics.SetEdges(e.opts.algorithm, e.g.EdgeCount())
	if e.opts.hooks.OnTurn != nil {
		e.opts.hooks.OnTurn(rep)
	}

	return rep, nil
}

// disconnect runs step 4 of Turn and returns the removed forward edge (or
// nil) and the bridge set.
func (e *Engine) disconnect(agent int, accepted map[int]struct{}, p float64) (*core.Edge, []int, error) {
	var nb []int
	for _, v := range e.g.Neighbours(agent) {
		if _, fresh := accepted[v]; !fresh {
			nb = append(nb, v)
		}
	}
	reciprocal := connectivity.Reciprocal(e.g, agent, nb)
	bridges, err := connectivity.DetectBridges(e.g, agent, reciprocal,
		connectivity.WithMode(e.opts.mode),
		connectivity.WithWorkers(e.opts.workers),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("rewire: %w", err)
	}

	isBridge := make(map[int]struct{}, len(bridges))
	for _, b := range bridges {
		isBridge[b] = struct{}{}
	}
	var candidates []int
	for _, v := range reciprocal {
		if _, ok := isBridge[v]; !ok {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil, bridges, nil
	}
	if r := e.opts.rand; r.Float64() >= 1-p {
		return nil, bridges, nil
	}

	// candidates ascend, so strict < keeps the lowest id on ties.
	weakest := candidates[0]
	weakestW, _ := e.g.Weight(agent, weakest)
	for _, v := range candidates[1:] {
		if w, _ := e.g.Weight(agent, v); w < weakestW {
			weakest, weakestW = v, w
		}
	}
	if err := e.g.RemoveEdge(agent, weakest); err != nil {
		return nil, bridges, fmt.Errorf("rewire: remove %d→%d: %w", agent, weakest, err)
	}
	if err := e.g.RemoveEdge(weakest, agent); err != nil {
		return nil, bridges, fmt.Errorf("rewire: remove %d→%d: %w", weakest, agent, err)
	}

	return &core.Edge{From: agent, To: weakest, Weight: weakestW}, bridges, nil
}

// Round plays one turn per agent in a freshly shuffled order and adds the
// outcome to res.
func (e *Engine) Round(round int, res *Result) error {
	order := e.g.Vertices()
	rng.Shuffle(order, e.opts.rand)
	e.log.Info("round started", zap.Int("round", round), zap.Int("agents", len(order)))
	for _, agent := range order {
		rep, err := e.Turn(round, agent)
		if err != nil {
			return err
		}
		if res != nil {
			res.Turns++
			res.Accepted += len(rep.Accepted)
			if rep.Removed != nil {
				res.Removed++
			}
			if rep.ColdStart {
				res.ColdStarts++
			}
		}
	}
	e.log.Info("round finished", zap.Int("round", round), zap.Int("edges", e.g.EdgeCount()))
	if e.opts.hooks.OnRound != nil {
		e.opts.hooks.OnRound(round)
	}

	return nil
}

// Run plays exactly the configured number of rounds. On error the partial
// Result is returned alongside it.
func (e *Engine) Run() (*Result, error) {
	res := &Result{RunID: uuid.New(), Algorithm: e.opts.algorithm}
	e.log.Info("run started",
		zap.String("run_id", res.RunID.String()),
		zap.Int("rounds", e.opts.rounds),
		zap.Int("recommendations", e.opts.recommendations),
		zap.Stringer("invariant", e.opts.mode),
	)
	for round := 0; round < e.opts.rounds; round++ {
		if err := e.Round(round, res); err != nil {
			res.Edges = e.g.EdgeCount()
			return res, err
		}
		res.Rounds++
	}
	res.Edges = e.g.EdgeCount()
	e.log.Info("run finished",
		zap.String("run_id", res.RunID.String()),
		zap.Int("turns", res.Turns),
		zap.Int("accepted", res.Accepted),
		zap.Int("removed", res.Removed),
		zap.Int("cold_starts", res.ColdStarts),
		zap.Int("edges", res.Edges),
	)

	return res, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
