// Package wtf implements a "who to follow" trust-propagation ranker in the
// style of Twitter's WTF service.
//
// A query (g, node, c) runs in four steps:
//
//  1. Egocentric sampling. Weighted random walks from node, run concurrently
//     on per-walk streams, tally visits; the most visited agents form the
//     circle of trust (the hubs).
//  2. Authority extraction. Every positive-weight follower of a hub is an
//     authority.
//  3. Bipartite projection. Hubs are paired with a private replica of every
//     authority (see Bipartite).
//  4. Ranking. One-step SALSA weights rank hubs and replicas; the top c of
//     each, mapped back to agents and stripped of node and its followers,
//     are the recommendation.
//
// A projection without edges falls back to scoring.ColdStart.
package wtf
