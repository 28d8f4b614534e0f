package rng_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rewire/rng"
)

// TestNew_SeedZeroIsDefault locks the seed==0 policy.
func TestNew_SeedZeroIsDefault(t *testing.T) {
	a, b := rng.New(0), rng.New(rng.DefaultSeed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

// TestDerive_Deterministic checks that the same base seed yields the same
// child streams and that distinct stream ids diverge.
func TestDerive_Deterministic(t *testing.T) {
	c1 := rng.Derive(rng.New(42), 3)
	c2 := rng.Derive(rng.New(42), 3)
	assert.Equal(t, c1.Int63(), c2.Int63())

	d1 := rng.Derive(rng.New(42), 3)
	d2 := rng.Derive(rng.New(42), 4)
	assert.NotEqual(t, d1.Int63(), d2.Int63())
}

// TestSeeds_Reproducible verifies the batch form.
func TestSeeds_Reproducible(t *testing.T) {
	assert.Equal(t, rng.Seeds(rng.New(7), 4), rng.Seeds(rng.New(7), 4))
	assert.Len(t, rng.Seeds(nil, 3), 3)
}

// TestSample_WithoutReplacement verifies distinctness, bounds and that the
// pool is left untouched.
func TestSample_WithoutReplacement(t *testing.T) {
	pool := []int{10, 11, 12, 13, 14, 15}
	snapshot := append([]int(nil), pool...)

	got := rng.Sample(pool, 4, rng.New(9))
	require.Len(t, got, 4)
	seen := map[int]bool{}
	for _, v := range got {
		assert.Contains(t, pool, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
	assert.Equal(t, snapshot, pool)

	all := rng.Sample(pool, 100, rng.New(9))
	sort.Ints(all)
	assert.Equal(t, pool, all)

	assert.Empty(t, rng.Sample(pool, 0, rng.New(9)))
	assert.Empty(t, rng.Sample(nil, 3, rng.New(9)))
}

// TestPerm_IsPermutation verifies Perm covers 0..n-1 exactly once.
func TestPerm_IsPermutation(t *testing.T) {
	p := rng.Perm(8, rng.New(5))
	sort.Ints(p)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, p)
	assert.Empty(t, rng.Perm(0, nil))
}
