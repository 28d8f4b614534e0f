// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when a stochastic WeightFn has no RNG.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight in [0,1] given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// UnitWeightFn samples U[0,1); without an RNG it yields DefaultEdgeWeight.
// It is the default trust distribution of a fresh social tie.
func UnitWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}

	return rng.Float64()
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value ∉ [0,1].
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || value > 1 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [0,1], got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max ≤ 1.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || max > 1 {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev) clipped to [0,1].
// Panics if stddev < 0.
// If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*stddev + mean

		return math.Min(1, math.Max(0, sample))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev), clipped, via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
