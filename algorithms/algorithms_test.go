package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rewire/algorithms"
	"github.com/katalvlaran/rewire/embedding"
	"github.com/katalvlaran/rewire/scoring"
	"github.com/katalvlaran/rewire/wtf"
)

func TestDefault_AllKeys(t *testing.T) {
	reg, err := algorithms.Default(algorithms.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"adamic_coefficient", "common_followed", "common_neighbours",
		"homophilic_node2vec", "jaccard_coefficient", "preferential_attachment",
		"random", "structural_node2vec", "two_hops", "wtf",
	}, reg.Keys())
	assert.Equal(t, reg.Keys(), algorithms.Keys())

	rec, err := reg.Resolve(algorithms.WTF)
	require.NoError(t, err)
	assert.IsType(t, &wtf.Ranker{}, rec)

	rec, err = reg.Resolve(algorithms.HomophilicNode2Vec)
	require.NoError(t, err)
	n2v := rec.(embedding.Recommender).Oracle.(*embedding.Node2Vec)
	assert.InDelta(t, 0.5, n2v.Params().Q, 1e-12)

	rec, err = reg.Resolve(algorithms.Jaccard)
	require.NoError(t, err)
	assert.IsType(t, scoring.PairwiseRecommender{}, rec)
}

func TestDefault_PropagatesWorkers(t *testing.T) {
	opts := algorithms.DefaultOptions()
	opts.Workers = 3
	reg, err := algorithms.Default(opts)
	require.NoError(t, err)

	rec, err := reg.Resolve(algorithms.WTF)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.(*wtf.Ranker).Config().Workers)
}

func TestDefault_InvalidOptions(t *testing.T) {
	opts := algorithms.DefaultOptions()
	opts.WTF.Walks = 0
	_, err := algorithms.Default(opts)
	assert.ErrorIs(t, err, wtf.ErrBadConfig)

	opts = algorithms.DefaultOptions()
	opts.Embedding.Dimensions = 0
	_, err = algorithms.Default(opts)
	assert.ErrorIs(t, err, embedding.ErrBadParams)
}

func TestKnown(t *testing.T) {
	for _, k := range algorithms.Keys() {
		assert.True(t, algorithms.Known(k), k)
	}
	assert.True(t, algorithms.Known("two_hops"))
	assert.False(t, algorithms.Known("ordinary"))
	assert.False(t, algorithms.Known("graph_distance"))

	// Callers get a copy.
	ks := algorithms.Keys()
	ks[0] = "ordinary"
	assert.False(t, algorithms.Known("ordinary"))
}
