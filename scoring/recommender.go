package scoring

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/rng"
	"github.com/katalvlaran/rewire/topk"
)

// Sentinel errors.
var (
	// ErrAgentNotFound is returned when the querying agent is not in the graph.
	ErrAgentNotFound = errors.New("scoring: agent not found")

	// ErrNilScorer is returned by a PairwiseRecommender without a Scorer.
	ErrNilScorer = errors.New("scoring: nil scorer")
)

// Recommender produces up to c candidate ids for agent. Every algorithm the
// engine can run (pairwise heuristic, embedding, trust ranker, random) is a
// Recommender. r is the caller's stream; implementations that need
// parallel randomness derive child streams from it and never share r.
type Recommender interface {
	Recommend(g *core.Graph, agent, c int, r *rand.Rand) ([]int, error)
}

// RecommenderFunc adapts a plain function to Recommender.
type RecommenderFunc func(g *core.Graph, agent, c int, r *rand.Rand) ([]int, error)

// Recommend calls f.
func (f RecommenderFunc) Recommend(g *core.Graph, agent, c int, r *rand.Rand) ([]int, error) {
	return f(g, agent, c, r)
}

// PairwiseRecommender scores every agent outside agent's trust neighbourhood
// with Scorer and returns the top c.
//
// Scores are computed in a read-only phase fanned out over Workers goroutines
// (GOMAXPROCS when <= 0) and fully collected before selection.
type PairwiseRecommender struct {
	Scorer  Scorer
	Workers int
}

// Recommend implements Recommender. r is unused: pairwise scores are deterministic.
func (p PairwiseRecommender) Recommend(g *core.Graph, agent, c int, _ *rand.Rand) ([]int, error) {
	if p.Scorer == nil {
		return nil, ErrNilScorer
	}
	if !g.HasVertex(agent) {
		return nil, fmt.Errorf("%w: %d", ErrAgentNotFound, agent)
	}
	if c <= 0 {
		return []int{}, nil
	}

	candidates := excluding(g.Vertices(), agent, g.TrustNeighbours(agent))
	scores := make([]float64, len(candidates))

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(candidates) + workers - 1) / workers
	var eg errgroup.Group
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := min(lo+chunk, len(candidates))
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				scores[i] = p.Scorer.Score(g, agent, candidates[i])
			}
			return nil
		})
	}
	_ = eg.Wait() // scorers do not fail

	byID := make(map[int]float64, len(candidates))
	for i, id := range candidates {
		byID[id] = scores[i]
	}

	return topk.Select(byID, c), nil
}

// ColdStart samples min(c, |pool|) agents uniformly without replacement, where
// pool is every agent except agent and its predecessors. It is the fallback
// for agents with no trust signal to rank from.
func ColdStart(g *core.Graph, agent, c int, r *rand.Rand) ([]int, error) {
	if !g.HasVertex(agent) {
		return nil, fmt.Errorf("%w: %d", ErrAgentNotFound, agent)
	}
	pool := excluding(g.Vertices(), agent, g.Predecessors(agent))

	return rng.Sample(pool, c, r), nil
}

// Random always recommends through ColdStart.
var Random Recommender = RecommenderFunc(ColdStart)

// NeedsColdStart reports whether agent has fewer than one following, i.e. no
// predecessor with a positive trust weight.
func NeedsColdStart(g *core.Graph, agent int) bool {
	return len(g.Followings(agent)) < 1
}

// excluding returns all minus self minus skip; all and skip are ascending.
func excluding(all []int, self int, skip []int) []int {
	out := make([]int, 0, len(all))
	j := 0
	for _, v := range all {
		for j < len(skip) && skip[j] < v {
			j++
		}
		if v == self || (j < len(skip) && skip[j] == v) {
			continue
		}
		out = append(out, v)
	}

	return out
}
