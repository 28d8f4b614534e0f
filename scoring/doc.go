// Package scoring defines how recommendation candidates are produced.
//
// A Scorer rates one (agent, candidate) pair; a Recommender turns a graph
// and an agent into a ranked candidate list. The pairwise heuristics of this
// package (Jaccard, AdamicAdar, PreferentialAttachment, CommonNeighbours,
// TwoHops, CommonFollowed) become Recommenders through PairwiseRecommender,
// which scores every non-neighbour in parallel and keeps the top c with
// package topk.
//
// ColdStart is the uniform fallback used when an agent has no following to
// rank from, and Random exposes it as an algorithm of its own. Registry maps
// configuration keys to Recommenders; package algorithms fills one with the
// full set, including the trust ranker and the embedding oracle.
package scoring
