// Package builder constructs the social graphs a simulation starts from.
//
// It follows a functional-options design: BuildGraph resolves BuilderOption
// values into an immutable configuration (RNG, weight distribution) and
// applies Constructor closures in order.
//
//   - ConnectedErdosRenyi(n): G(n, ln n / n) with component repair; the
//     graph construction oracle of a run (see Initial).
//   - RandomSparse(n, p): directed random graph without repair.
//   - Cycle, Path, Star, Complete: small reciprocal fixtures.
//
// Weight distributions (WeightFn), all within the trust range [0,1]:
//   - UnitWeightFn (default): U[0,1).
//   - ConstantWeightFn, UniformWeightFn, NormalWeightFn (clipped).
//
// Guarantees:
//
//   - Determinism: a fixed seed and constructor order yield identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels in
//     errors.go with the constructor name as context.
package builder
