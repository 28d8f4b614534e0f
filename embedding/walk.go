package embedding

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/rng"
)

// biasedWalk is one second-order node2vec walk over successors. With prev the
// agent before cur, a successor x is drawn with weight w(cur→x)·α where
// α = 1/p if x == prev, 1 if prev→x exists, 1/q otherwise. If every
// w(cur→x) is zero the edge weights are ignored and only α counts.
func biasedWalk(g *core.Graph, start int, p Params, r *rand.Rand) []int {
	seq := make([]int, 1, p.WalkLength)
	seq[0] = start
	prev, cur := -1, start
	hasPrev := false
	for len(seq) < p.WalkLength {
		succ := g.Successors(cur)
		if len(succ) == 0 {
			break
		}
		base := make([]float64, len(succ))
		var sum float64
		for i, x := range succ {
			base[i], _ = g.Weight(cur, x)
			sum += base[i]
		}
		probs := make([]float64, len(succ))
		var total float64
		for i, x := range succ {
			b := base[i]
			if sum == 0 {
				b = 1
			}
			alpha := 1.0
			if hasPrev {
				switch {
				case x == prev:
					alpha = 1 / p.P
				case g.HasEdge(prev, x):
					alpha = 1
				default:
					alpha = 1 / p.Q
				}
			}
			probs[i] = b * alpha
			total += probs[i]
		}
		next := succ[len(succ)-1]
		u := r.Float64() * total
		for i, pr := range probs {
			if u < pr {
				next = succ[i]
				break
			}
			u -= pr
		}
		prev, cur, hasPrev = cur, next, true
		seq = append(seq, cur)
	}

	return seq
}

// walks runs p.Walks biased walks from start concurrently; each walk gets its
// own stream seeded from r up front.
func walks(g *core.Graph, start int, p Params, r *rand.Rand) [][]int {
	seeds := rng.Seeds(r, p.Walks)
	out := make([][]int, p.Walks)

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, seed := range seeds {
		eg.Go(func() error {
			out[i] = biasedWalk(g, start, p, rng.New(seed))
			return nil
		})
	}
	_ = eg.Wait()

	return out
}
