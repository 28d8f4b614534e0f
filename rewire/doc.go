// Package rewire is the rewiring engine: the per-agent decision cycle that
// grows and prunes a social graph round after round while keeping it
// connected.
//
// Each round visits every agent once, in a freshly shuffled order. An agent
// with n followers-in accepts each of c recommendations with p = 1/n, then
// with probability 1−p drops its weakest reciprocal tie that is not a
// bridge. The graph must satisfy the configured connectivity (strong by
// default) after every turn; a violation surfaces as *InvariantError.
//
// Turns are sequential by construction. Parallelism lives only inside the
// read phases of collaborators (scoring fan-out, ranker walks, bridge
// checks), which finish before the turn writes anything. One *rand.Rand
// drives every draw, so a seed fixes the whole run.
package rewire
