package rewire_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rewire/builder"
	"github.com/katalvlaran/rewire/connectivity"
	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/metrics"
	"github.com/katalvlaran/rewire/rewire"
	"github.com/katalvlaran/rewire/scoring"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fixed recommends the same ids on every turn.
func fixed(ids ...int) scoring.Recommender {
	return scoring.RecommenderFunc(func(*core.Graph, int, int, *rand.Rand) ([]int, error) {
		return append([]int(nil), ids...), nil
	})
}

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func TestAcceptanceProbability(t *testing.T) {
	g := mustBuild(t, builder.Star(5))
	assert.InDelta(t, 0.25, rewire.AcceptanceProbability(g, 0), 1e-12)
	assert.InDelta(t, 1.0, rewire.AcceptanceProbability(g, 3), 1e-12)

	lonely := core.NewGraph()
	lonely.AddVertex(0)
	assert.InDelta(t, 1.0, rewire.AcceptanceProbability(lonely, 0), 1e-12)
}

func TestConnect(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(3, 0))
	r := rand.New(rand.NewSource(1))

	require.NoError(t, rewire.Connect(g, 0, 1, r))
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Zero(t, w)
	back, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.GreaterOrEqual(t, back, 0.0)
	assert.Less(t, back, 1.0)

	// Existing directions keep their weights.
	require.NoError(t, g.AddEdge(2, 0, 0.7))
	require.NoError(t, rewire.Connect(g, 0, 2, r))
	w, _ = g.Weight(2, 0)
	assert.InDelta(t, 0.7, w, 1e-12)
	w, _ = g.Weight(0, 2)
	assert.Zero(t, w)
	assert.ErrorIs(t, rewire.Connect(g, 0, 0, r), core.ErrLoopNotAllowed)
}

func TestNew_Errors(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))

	_, err := rewire.New(nil, fixed())
	assert.ErrorIs(t, err, rewire.ErrNilGraph)
	_, err = rewire.New(g, nil)
	assert.ErrorIs(t, err, rewire.ErrNilRecommender)

	for name, opt := range map[string]rewire.Option{
		"rounds":          rewire.WithRounds(0),
		"recommendations": rewire.WithRecommendations(-1),
		"rand":            rewire.WithRand(nil),
		"invariant":       rewire.WithInvariant(connectivity.Mode(9)),
	} {
		_, err := rewire.New(g, fixed(), opt)
		assert.ErrorIs(t, err, rewire.ErrBadOption, name)
	}

	sparse := mustBuild(t, builder.RandomSparse(4, 0))
	_, err = rewire.New(sparse, fixed())
	assert.ErrorIs(t, err, rewire.ErrDisconnected)

	// A one-way chain is weakly but not strongly connected.
	chain := mustBuild(t, builder.RandomSparse(3, 0))
	require.NoError(t, chain.AddEdge(0, 1, 1))
	require.NoError(t, chain.AddEdge(1, 2, 1))
	_, err = rewire.New(chain, fixed())
	assert.ErrorIs(t, err, rewire.ErrDisconnected)
	_, err = rewire.New(chain, fixed(), rewire.WithInvariant(connectivity.Weak))
	assert.NoError(t, err)
}

func TestTurn_FullAcceptance(t *testing.T) {
	// 0⇄1⇄2: agent 0 has exactly one predecessor, so p = 1.
	g := mustBuild(t, builder.Path(3))
	e, err := rewire.New(g, fixed(2, 2, 0), rewire.WithSeed(3))
	require.NoError(t, err)

	rep, err := e.Turn(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rep.P, 1e-12)
	assert.False(t, rep.ColdStart)
	assert.Equal(t, []int{2}, rep.Accepted)
	// With p = 1 the disconnection probability is 0.
	assert.Nil(t, rep.Removed)
	assert.True(t, g.HasReciprocal(0, 2))
	w, _ := g.Weight(0, 2)
	assert.Zero(t, w)
	assert.False(t, g.HasEdge(0, 0))
}

func TestTurn_RemovesWeakestNonBridge(t *testing.T) {
	removals := 0
	for seed := int64(1); seed <= 50; seed++ {
		g := mustBuild(t, builder.Complete(4))
		require.NoError(t, g.AddEdge(0, 2, 0.1))
		require.NoError(t, g.AddEdge(0, 3, 0.1))

		e, err := rewire.New(g, fixed(), rewire.WithSeed(seed))
		require.NoError(t, err)
		rep, err := e.Turn(0, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3, rep.P, 1e-12)
		assert.Empty(t, rep.Bridges)

		if rep.Removed == nil {
			assert.Equal(t, 12, g.EdgeCount())
			continue
		}
		removals++
		// 2 and 3 tie at 0.1; the lower id goes.
		assert.Equal(t, core.Edge{From: 0, To: 2, Weight: 0.1}, *rep.Removed)
		assert.False(t, g.HasEdge(0, 2))
		assert.False(t, g.HasEdge(2, 0))
		assert.Equal(t, 10, g.EdgeCount())
	}
	assert.Positive(t, removals)
}

func TestTurn_BridgesAreKept(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := mustBuild(t, builder.Star(5))
		e, err := rewire.New(g, fixed(), rewire.WithSeed(seed))
		require.NoError(t, err)

		rep, err := e.Turn(0, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, rep.Bridges)
		assert.Nil(t, rep.Removed)
		assert.Equal(t, 8, g.EdgeCount())
	}
}

func TestTurn_ColdStart(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(0)}, builder.Path(4))
	require.NoError(t, err)
	failing := scoring.RecommenderFunc(func(*core.Graph, int, int, *rand.Rand) ([]int, error) {
		return nil, errors.New("must not be called")
	})
	e, err := rewire.New(g, failing, rewire.WithSeed(1), rewire.WithRecommendations(2))
	require.NoError(t, err)

	rep, err := e.Turn(0, 0)
	require.NoError(t, err)
	assert.True(t, rep.ColdStart)
	assert.Len(t, rep.Recommended, 2)
	assert.NotContains(t, rep.Recommended, 0)
	assert.NotContains(t, rep.Recommended, 1)
}

func TestTurn_UnknownAgent(t *testing.T) {
	e, err := rewire.New(mustBuild(t, builder.Cycle(3)), fixed())
	require.NoError(t, err)
	_, err = e.Turn(0, 99)
	assert.ErrorIs(t, err, rewire.ErrAgentNotFound)
}

func TestTurn_RecommenderError(t *testing.T) {
	boom := errors.New("boom")
	rec := scoring.RecommenderFunc(func(*core.Graph, int, int, *rand.Rand) ([]int, error) {
		return nil, boom
	})
	e, err := rewire.New(mustBuild(t, builder.Cycle(3)), rec)
	require.NoError(t, err)
	_, err = e.Turn(0, 0)
	assert.ErrorIs(t, err, boom)
}

func TestTurn_InvariantError(t *testing.T) {
	// A collaborator that cuts 1→2 behind the engine's back.
	rec := scoring.RecommenderFunc(func(g *core.Graph, _, _ int, _ *rand.Rand) ([]int, error) {
		_ = g.RemoveEdge(1, 2)
		return []int{}, nil
	})
	obs, logs := observer.New(zapcore.ErrorLevel)
	g := mustBuild(t, builder.Path(3))
	e, err := rewire.New(g, rec, rewire.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	res, err := e.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, rewire.ErrInvariantViolated)
	var ierr *rewire.InvariantError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 0, ierr.Round)
	assert.Equal(t, connectivity.Strong, ierr.Mode)
	assert.Nil(t, ierr.Removed)
	assert.Zero(t, res.Rounds)
	assert.Equal(t, 1, logs.FilterMessage("connectivity invariant violated").Len())
}

func TestRound_SeesEarlierTurns(t *testing.T) {
	type view struct {
		agent, edges int
		pair         bool
	}
	checked := 0
	for seed := int64(1); seed <= 20; seed++ {
		// 0⇄1⇄2⇄3: every pair is a bridge until agent 0, with p = 1, joins 2.
		g := mustBuild(t, builder.Path(4))
		var seen []view
		rec := scoring.RecommenderFunc(func(g *core.Graph, agent, _ int, _ *rand.Rand) ([]int, error) {
			seen = append(seen, view{agent: agent, edges: g.EdgeCount(), pair: g.HasReciprocal(0, 2)})
			if agent == 0 {
				return []int{2}, nil
			}
			return []int{}, nil
		})
		e, err := rewire.New(g, rec, rewire.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, e.Round(0, nil))
		require.Len(t, seen, 4, "seed %d", seed)

		for i, v := range seen {
			if v.agent != 0 || i+1 == len(seen) {
				continue
			}
			assert.Equal(t, 6, v.edges, "seed %d", seed)
			assert.False(t, v.pair, "seed %d", seed)
			next := seen[i+1]
			assert.Equal(t, v.edges+2, next.edges, "seed %d: agent %d", seed, next.agent)
			assert.True(t, next.pair, "seed %d: agent %d", seed, next.agent)
			checked++
		}
	}
	require.NotZero(t, checked, "agent 0 never played before another agent")
}

func TestRun_KeepsInvariant(t *testing.T) {
	g, err := builder.Initial(30, 11)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	turns, rounds := 0, []int{}
	hooks := rewire.Hooks{
		OnTurn: func(rep rewire.TurnReport) {
			turns++
			assert.True(t, connectivity.IsStronglyConnected(g), "round %d agent %d", rep.Round, rep.Agent)
			assert.NotContains(t, rep.Accepted, rep.Agent)
			assert.False(t, g.HasEdge(rep.Agent, rep.Agent))
		},
		OnRound: func(r int) { rounds = append(rounds, r) },
	}
	e, err := rewire.New(g, scoring.PairwiseRecommender{Scorer: scoring.Jaccard},
		rewire.WithSeed(5),
		rewire.WithRounds(3),
		rewire.WithRecommendations(3),
		rewire.WithLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.InfoLevel))),
		rewire.WithMetrics(metrics.New(reg)),
		rewire.WithAlgorithmName("jaccard_coefficient"),
		rewire.WithHooks(hooks),
	)
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 90, res.Turns)
	assert.Equal(t, 90, turns)
	assert.Equal(t, []int{0, 1, 2}, rounds)
	assert.Equal(t, g.EdgeCount(), res.Edges)
	assert.Equal(t, "jaccard_coefficient", res.Algorithm)

	n, err := testutil.GatherAndCount(reg, "rewire_turns_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() []core.Edge {
		g, err := builder.Initial(25, 3)
		require.NoError(t, err)
		e, err := rewire.New(g, scoring.Random, rewire.WithSeed(8), rewire.WithRounds(2))
		require.NoError(t, err)
		_, err = e.Run()
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, run(), run())
}

func TestRun_WeakInvariant(t *testing.T) {
	g, err := builder.Initial(20, 4)
	require.NoError(t, err)
	e, err := rewire.New(g, scoring.Random,
		rewire.WithSeed(2),
		rewire.WithRounds(2),
		rewire.WithInvariant(connectivity.Weak),
		rewire.WithHooks(rewire.Hooks{OnTurn: func(rewire.TurnReport) {
			assert.True(t, connectivity.IsWeaklyConnected(g))
		}}),
	)
	require.NoError(t, err)
	_, err = e.Run()
	require.NoError(t, err)
}
