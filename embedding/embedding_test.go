package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/embedding"
	"github.com/katalvlaran/rewire/rng"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// twoCliques: reciprocal cliques {0,1,2,3} and {4,5,6,7} joined by 3⇄4.
func twoCliques(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 8; i++ {
		g.AddVertex(i)
	}
	link := func(u, v int) {
		require.NoError(t, g.AddEdge(u, v, 0.5))
		require.NoError(t, g.AddEdge(v, u, 0.5))
	}
	for _, block := range [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}} {
		for i := range block {
			for j := i + 1; j < len(block); j++ {
				link(block[i], block[j])
			}
		}
	}
	link(3, 4)

	return g
}

func TestParams(t *testing.T) {
	assert.NoError(t, embedding.DefaultParams().Validate())
	assert.InDelta(t, 0.5, embedding.Homophilic().Q, 1e-12)
	assert.InDelta(t, 2.0, embedding.Structural().Q, 1e-12)

	bad := embedding.DefaultParams()
	bad.Q = 0
	_, err := embedding.NewNode2Vec(bad)
	assert.ErrorIs(t, err, embedding.ErrBadParams)
}

// TestNeighbourhood_Contract: never the agent, never a follower, never more
// than count, and reproducible for a fixed stream.
func TestNeighbourhood_Contract(t *testing.T) {
	g := twoCliques(t)
	for _, params := range []embedding.Params{embedding.Homophilic(), embedding.Structural()} {
		params.Dimensions = 4
		params.Workers = 3
		o, err := embedding.NewNode2Vec(params)
		require.NoError(t, err)

		got, err := o.Neighbourhood(g, 5, 6, rng.New(21))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), 6)
		assert.NotContains(t, got, 5)
		for _, p := range g.Predecessors(5) {
			assert.NotContains(t, got, p)
		}

		again, err := o.Neighbourhood(g, 5, 6, rng.New(21))
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

// TestNeighbourhood_Sink: walks from a sink never leave it, so nothing is
// similar to it.
func TestNeighbourhood_Sink(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(0)
	g.AddVertex(1)
	require.NoError(t, g.AddEdge(1, 0, 0.3))

	o, err := embedding.NewNode2Vec(embedding.DefaultParams())
	require.NoError(t, err)
	got, err := o.Neighbourhood(g, 0, 3, rng.New(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommender_Adapter(t *testing.T) {
	g := twoCliques(t)
	params := embedding.DefaultParams()
	params.Dimensions = 3
	o, err := embedding.NewNode2Vec(params)
	require.NoError(t, err)

	rec := embedding.Recommender{Oracle: o}
	want, err := o.Neighbourhood(g, 0, 4, rng.New(8))
	require.NoError(t, err)
	got, err := rec.Recommend(g, 0, 4, rng.New(8))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = rec.Recommend(g, 99, 4, rng.New(8))
	assert.ErrorIs(t, err, embedding.ErrAgentNotFound)
}
