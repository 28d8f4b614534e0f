// Package embedding provides the node2vec-style embedding oracle.
//
// Biased second-order walks (return parameter p, in-out parameter q) start
// at the query agent; the walk corpus is turned into vectors by factorizing
// its positive PMI co-occurrence matrix with gonum's SVD, and candidates are
// ranked by cosine similarity to the agent. Homophilic (q = 0.5) and
// Structural (q = 2) are the two presets the simulator registers.
package embedding
