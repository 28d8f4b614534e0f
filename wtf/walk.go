package wtf

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/rng"
)

// walk performs one weighted random walk of at most length agents from start.
// The next hop is drawn proportionally to edge weight, uniformly when every
// outgoing weight is zero. A sink ends the walk early.
func walk(g *core.Graph, start, length int, r *rand.Rand) []int {
	seq := make([]int, 1, length)
	seq[0] = start
	cur := start
	for len(seq) < length {
		succ := g.Successors(cur)
		if len(succ) == 0 {
			break
		}
		cur = pick(g, cur, succ, r)
		seq = append(seq, cur)
	}

	return seq
}

// pick draws one successor of u; succ is ascending so the draw is reproducible.
func pick(g *core.Graph, u int, succ []int, r *rand.Rand) int {
	weights := make([]float64, len(succ))
	var total float64
	for i, v := range succ {
		w, _ := g.Weight(u, v)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return succ[r.Intn(len(succ))]
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return succ[i]
		}
		x -= w
	}

	return succ[len(succ)-1] // float rounding
}

// visits runs n independent walks concurrently and tallies how often each
// agent other than start appears. Every walk owns a stream seeded from r
// before any goroutine starts, so the tally depends only on r.
func visits(g *core.Graph, start int, cfg Config, r *rand.Rand) map[int]int {
	seeds := rng.Seeds(r, cfg.Walks)
	walks := make([][]int, cfg.Walks)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, seed := range seeds {
		eg.Go(func() error {
			walks[i] = walk(g, start, cfg.WalkLength, rng.New(seed))
			return nil
		})
	}
	_ = eg.Wait() // walks do not fail

	counts := make(map[int]int)
	for _, w := range walks {
		for _, a := range w {
			if a != start {
				counts[a]++
			}
		}
	}

	return counts
}
