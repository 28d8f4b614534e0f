// Package algorithms assembles every recommendation algorithm the simulator
// knows into one scoring.Registry, keyed by the names used in configuration.
//
// It sits above scoring, wtf and embedding so that none of those packages
// has to import the others.
package algorithms

import (
	"fmt"

	"github.com/katalvlaran/rewire/embedding"
	"github.com/katalvlaran/rewire/scoring"
	"github.com/katalvlaran/rewire/wtf"
)

// Configuration keys.
const (
	Random                 = "random"
	Jaccard                = "jaccard_coefficient"
	AdamicAdar             = "adamic_coefficient"
	PreferentialAttachment = "preferential_attachment"
	CommonNeighbours       = "common_neighbours"
	TwoHops                = "two_hops"
	CommonFollowed         = "common_followed"
	HomophilicNode2Vec     = "homophilic_node2vec"
	StructuralNode2Vec     = "structural_node2vec"
	WTF                    = "wtf"
)

// Options carries the tunables of the heavier algorithms.
type Options struct {
	// Workers bounds every parallel read phase (scoring fan-out, walks).
	Workers int

	// WTF configures the trust ranker.
	WTF wtf.Config

	// Embedding supplies walk and vector sizes for both node2vec presets;
	// P and Q are ignored, each preset sets its own.
	Embedding embedding.Params
}

// DefaultOptions returns the stock configuration of every algorithm.
func DefaultOptions() Options {
	return Options{
		WTF:       wtf.DefaultConfig(),
		Embedding: embedding.DefaultParams(),
	}
}

// Default builds the registry of all algorithms.
func Default(opts Options) (*scoring.Registry, error) {
	reg := scoring.NewRegistry()
	reg.Register(Random, scoring.Random)

	pairwise := map[string]scoring.Scorer{
		Jaccard:                scoring.Jaccard,
		AdamicAdar:             scoring.AdamicAdar,
		PreferentialAttachment: scoring.PreferentialAttachment,
		CommonNeighbours:       scoring.CommonNeighbours,
		TwoHops:                scoring.TwoHops,
		CommonFollowed:         scoring.CommonFollowed,
	}
	for key, s := range pairwise {
		reg.Register(key, scoring.PairwiseRecommender{Scorer: s, Workers: opts.Workers})
	}

	wcfg := opts.WTF
	if wcfg.Workers == 0 {
		wcfg.Workers = opts.Workers
	}
	rk, err := wtf.New(wcfg)
	if err != nil {
		return nil, fmt.Errorf("algorithms: %s: %w", WTF, err)
	}
	reg.Register(WTF, rk)

	presets := map[string]embedding.Params{
		HomophilicNode2Vec: embedding.Homophilic(),
		StructuralNode2Vec: embedding.Structural(),
	}
	for key, preset := range presets {
		p := opts.Embedding
		p.P, p.Q = preset.P, preset.Q
		if p.Workers == 0 {
			p.Workers = opts.Workers
		}
		n2v, err := embedding.NewNode2Vec(p)
		if err != nil {
			return nil, fmt.Errorf("algorithms: %s: %w", key, err)
		}
		reg.Register(key, embedding.Recommender{Oracle: n2v})
	}

	return reg, nil
}

// keys mirrors what Default registers, ascending.
var keys = []string{
	AdamicAdar, CommonFollowed, CommonNeighbours, HomophilicNode2Vec, Jaccard,
	PreferentialAttachment, Random, StructuralNode2Vec, TwoHops, WTF,
}

// Keys lists every key Default registers, ascending.
func Keys() []string {
	return append([]string(nil), keys...)
}

// Known reports whether key names a registered algorithm.
func Known(key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}

	return false
}
