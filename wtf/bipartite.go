package wtf

import (
	"github.com/katalvlaran/rewire/core"
)

// Bipartite is the hub/authority projection of a circle of trust.
//
// Hubs occupy ids 0..H-1. Every hub gets its own replica of every authority,
// at id H + h·A + a, so each hub keeps a private copy of its authority edges.
// origin maps every projection id back to the agent it stands for.
type Bipartite struct {
	g      *core.Graph
	hubs   int
	origin []int
}

// Project builds the projection for hubs and authorities over g. Each
// hub/replica pair is joined both ways: hub→replica weighs w(hub→authority)
// and replica→hub weighs w(authority→hub), each defaulting to 1 when the
// corresponding edge is absent from g.
func Project(g *core.Graph, hubs, authorities []int) *Bipartite {
	h, a := len(hubs), len(authorities)
	n := h + h*a
	bp := &Bipartite{
		g:      core.NewGraph(core.WithCapacity(n)),
		hubs:   h,
		origin: make([]int, n),
	}
	for i, hub := range hubs {
		bp.g.AddVertex(i)
		bp.origin[i] = hub
	}
	for i, hub := range hubs {
		for j, auth := range authorities {
			rep := h + i*a + j
			bp.g.AddVertex(rep)
			bp.origin[rep] = auth
			// Weights come from g, so they are already in [0,1].
			_ = bp.g.AddEdge(i, rep, weightOr(g, hub, auth, 1))
			_ = bp.g.AddEdge(rep, i, weightOr(g, auth, hub, 1))
		}
	}

	return bp
}

func weightOr(g *core.Graph, u, v int, def float64) float64 {
	if w, ok := g.Weight(u, v); ok {
		return w
	}

	return def
}

// Empty reports whether the projection has no edges.
func (bp *Bipartite) Empty() bool {
	return bp.g.EdgeCount() == 0
}

// Graph exposes the projection graph (read-only use).
func (bp *Bipartite) Graph() *core.Graph {
	return bp.g
}

// Origin maps a projection id back to its agent id.
func (bp *Bipartite) Origin(id int) int {
	return bp.origin[id]
}

// Hubs returns the hub ids of the projection.
func (bp *Bipartite) Hubs() []int {
	out := make([]int, bp.hubs)
	for i := range out {
		out[i] = i
	}

	return out
}

// Replicas returns the authority-replica ids of the projection.
func (bp *Bipartite) Replicas() []int {
	out := make([]int, 0, len(bp.origin)-bp.hubs)
	for id := bp.hubs; id < len(bp.origin); id++ {
		out = append(out, id)
	}

	return out
}

// Stationary approximates SALSA's stationary distribution in one step: a hub
// weighs its out-strength over the total hub out-strength, a replica its
// in-strength over the total replica in-strength. A zero total gives zeros.
func (bp *Bipartite) Stationary() (hubs, authorities map[int]float64) {
	return distribution(bp.Hubs(), bp.g.OutStrength), distribution(bp.Replicas(), bp.g.InStrength)
}

func distribution(ids []int, strength func(int) float64) map[int]float64 {
	pi := make(map[int]float64, len(ids))
	var total float64
	for _, id := range ids {
		s := strength(id)
		pi[id] = s
		total += s
	}
	for id := range pi {
		if total == 0 {
			pi[id] = 0
		} else {
			pi[id] /= total
		}
	}

	return pi
}
