package embedding

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/topk"
)

// Sentinel errors.
var (
	// ErrAgentNotFound is returned when the query agent is absent.
	ErrAgentNotFound = errors.New("embedding: agent not found")

	// ErrFactorize is returned when the SVD fails to converge.
	ErrFactorize = errors.New("embedding: svd factorization failed")
)

// Oracle ranks the agents most similar to agent in some embedding space.
// It returns at most count ids, never agent itself nor one of its followers.
type Oracle interface {
	Neighbourhood(g *core.Graph, agent, count int, r *rand.Rand) ([]int, error)
}

// Node2Vec embeds the walk neighbourhood of the query agent and ranks tokens
// by cosine similarity to it. The embedding is rebuilt on every query from
// walks starting at the agent, so it tracks the live graph.
type Node2Vec struct {
	params Params
}

// NewNode2Vec validates p and returns the oracle.
func NewNode2Vec(p Params) (*Node2Vec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Node2Vec{params: p}, nil
}

// Params returns the oracle's parameters.
func (n *Node2Vec) Params() Params {
	return n.params
}

// Neighbourhood implements Oracle. The top count tokens are selected first
// and then stripped of agent's followers, so fewer than count may remain.
func (n *Node2Vec) Neighbourhood(g *core.Graph, agent, count int, r *rand.Rand) ([]int, error) {
	if !g.HasVertex(agent) {
		return nil, fmt.Errorf("%w: %d", ErrAgentNotFound, agent)
	}
	if count <= 0 {
		return []int{}, nil
	}
	corpus := walks(g, agent, n.params, r)
	m, err := train(corpus, n.params.Dimensions, n.params.Window)
	if err != nil {
		return nil, fmt.Errorf("embedding: agent %d: %w", agent, err)
	}

	followers := make(map[int]struct{})
	for _, p := range g.Predecessors(agent) {
		followers[p] = struct{}{}
	}
	ranked := topk.Select(m.similarities(agent), count)
	out := make([]int, 0, len(ranked))
	for _, id := range ranked {
		if _, skip := followers[id]; !skip {
			out = append(out, id)
		}
	}

	return out, nil
}

// Recommender exposes an Oracle through the scoring.Recommender contract.
type Recommender struct {
	Oracle Oracle
}

// Recommend asks the oracle for c candidates.
func (rec Recommender) Recommend(g *core.Graph, agent, c int, r *rand.Rand) ([]int, error) {
	return rec.Oracle.Neighbourhood(g, agent, c, r)
}
