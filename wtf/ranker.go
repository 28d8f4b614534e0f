package wtf

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/scoring"
	"github.com/katalvlaran/rewire/topk"
)

// Ranker recommends with the WTF pipeline: circle of trust, hub/authority
// projection, one-step SALSA weights.
type Ranker struct {
	cfg Config
}

// New returns a Ranker; cfg is validated.
func New(cfg Config) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Ranker{cfg: cfg}, nil
}

// Config returns the ranker's configuration.
func (rk *Ranker) Config() Config {
	return rk.cfg
}

// CircleOfTrust returns up to size agents most visited by egocentric walks
// from node, best first (ties by ascending id), and their trust scores
// visits / (walks × size × 2).
func (rk *Ranker) CircleOfTrust(g *core.Graph, node, size int, r *rand.Rand) ([]int, map[int]float64) {
	counts := visits(g, node, rk.cfg, r)
	norm := float64(rk.cfg.Walks * size * 2)
	trust := make(map[int]float64, len(counts))
	for a, n := range counts {
		trust[a] = float64(n) / norm
	}

	return topk.Select(trust, size), trust
}

// Authorities returns, ascending, every agent that follows some hub with a
// positive trust weight.
func Authorities(g *core.Graph, hubs []int) []int {
	set := make(map[int]struct{})
	for _, h := range hubs {
		for _, a := range g.InNeighbours(h) {
			set[a] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Ints(out)

	return out
}

// Recommend implements scoring.Recommender.
//
// When the projection has no edges (node reaches nobody, or no hub has a
// positive follower) the query falls back to scoring.ColdStart.
func (rk *Ranker) Recommend(g *core.Graph, node, c int, r *rand.Rand) ([]int, error) {
	if !g.HasVertex(node) {
		return nil, fmt.Errorf("%w: %d", scoring.ErrAgentNotFound, node)
	}
	if c <= 0 {
		return []int{}, nil
	}
	// A sink cannot leave itself; skip the walks and keep r untouched.
	if len(g.Successors(node)) == 0 {
		return scoring.ColdStart(g, node, c, r)
	}

	size := rk.cfg.CircleSize
	if size == 0 {
		size = c
	}
	hubs, _ := rk.CircleOfTrust(g, node, size, r)
	bp := Project(g, hubs, Authorities(g, hubs))
	if bp.Empty() {
		return scoring.ColdStart(g, node, c, r)
	}

	hubPi, authPi := bp.Stationary()
	exclude := make(map[int]struct{})
	exclude[node] = struct{}{}
	for _, p := range g.Predecessors(node) {
		exclude[p] = struct{}{}
	}

	union := make(map[int]struct{})
	for _, pi := range []map[int]float64{hubPi, authPi} {
		for _, id := range topk.Select(pi, c) {
			a := bp.Origin(id)
			if _, skip := exclude[a]; !skip {
				union[a] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(union))
	for a := range union {
		out = append(out, a)
	}
	sort.Ints(out)

	return out, nil
}
