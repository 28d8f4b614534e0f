// Package rewire is a simulator of social-graph rewiring: agents on a
// weighted directed trust graph follow recommendations and drop weak ties,
// round after round, while the graph is never allowed to fall apart.
//
// Each turn an agent asks a recommender for candidates, accepts each with
// probability 1/|followers|, and with the complementary probability drops
// its weakest reciprocal tie, unless that tie is a bridge whose removal would
// disconnect the graph.
//
// Packages:
//
//	core/         - thread-safe weighted directed graph of integer agents
//	bfs/          - direction-aware BFS with edge masks
//	connectivity/ - strong/weak connectivity and the bridge detector
//	topk/         - bounded top-K selection with deterministic ties
//	scoring/      - Scorer and Recommender interfaces, heuristics, cold start
//	wtf/          - Who-To-Follow: circle of trust + SALSA ranking
//	embedding/    - node2vec walks and a factorized embedding oracle
//	algorithms/   - registry of every algorithm by configuration key
//	rewire/       - the rewiring engine (turns, rounds, invariant)
//	builder/      - initial graph construction (connected Erdős–Rényi, fixtures)
//	rng/          - seeded and derived random streams
//	config/       - YAML + environment configuration
//	logging/      - zap logger construction
//	metrics/      - Prometheus collectors
//	cmd/rewire    - the command-line front end
//
// Quick start:
//
//	g, _ := builder.Initial(1000, 42)
//	reg, _ := algorithms.Default(algorithms.DefaultOptions())
//	rec, _ := reg.Resolve(algorithms.WTF)
//	eng, _ := rewire.New(g, rec, rewire.WithSeed(42), rewire.WithRounds(3))
//	res, err := eng.Run()
//
// The same run from the shell:
//
//	rewire run --algorithm wtf --size 1000 --rounds 3 --seed 42
package rewire
