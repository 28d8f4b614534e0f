package scoring

import (
	"math"

	"github.com/katalvlaran/rewire/core"
)

// Scorer rates how good a recommendation candidate is for agent.
// Implementations must only read g and must be safe for concurrent calls on
// the same graph; PairwiseRecommender fans them out across workers.
type Scorer interface {
	Score(g *core.Graph, agent, candidate int) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(g *core.Graph, agent, candidate int) float64

// Score calls f.
func (f ScorerFunc) Score(g *core.Graph, agent, candidate int) float64 {
	return f(g, agent, candidate)
}

// Pairwise heuristics. Every set below is a trust neighbourhood: only edges
// carrying a positive weight count.
var (
	// Jaccard is |N(a) ∩ N(c)| / |N(a) ∪ N(c)|, 0 when both are empty.
	Jaccard Scorer = ScorerFunc(jaccard)

	// AdamicAdar sums 1/log10|N(z)| over common neighbours z.
	AdamicAdar Scorer = ScorerFunc(adamicAdar)

	// PreferentialAttachment is |N(a)| · |N(c)|.
	PreferentialAttachment Scorer = ScorerFunc(preferentialAttachment)

	// CommonNeighbours is |N(a) ∩ N(c)|.
	CommonNeighbours Scorer = ScorerFunc(commonNeighbours)

	// TwoHops counts agents that follow a and are followed by c: |In(a) ∩ Out(c)|.
	TwoHops Scorer = ScorerFunc(twoHops)

	// CommonFollowed counts agents following both: |In(a) ∩ In(c)|.
	CommonFollowed Scorer = ScorerFunc(commonFollowed)
)

func jaccard(g *core.Graph, agent, candidate int) float64 {
	a, c := g.TrustNeighbours(agent), g.TrustNeighbours(candidate)
	inter := intersectSorted(a, c)
	union := len(a) + len(c) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

func adamicAdar(g *core.Graph, agent, candidate int) float64 {
	var total float64
	for _, z := range commonSorted(g.TrustNeighbours(agent), g.TrustNeighbours(candidate)) {
		// |N(z)| <= 1 would divide by log10(1) = 0; such a z contributes nothing.
		if n := len(g.TrustNeighbours(z)); n > 1 {
			total += 1 / math.Log10(float64(n))
		}
	}

	return total
}

func preferentialAttachment(g *core.Graph, agent, candidate int) float64 {
	return float64(len(g.TrustNeighbours(agent)) * len(g.TrustNeighbours(candidate)))
}

func commonNeighbours(g *core.Graph, agent, candidate int) float64 {
	return float64(intersectSorted(g.TrustNeighbours(agent), g.TrustNeighbours(candidate)))
}

func twoHops(g *core.Graph, agent, candidate int) float64 {
	return float64(intersectSorted(g.InNeighbours(agent), g.OutNeighbours(candidate)))
}

func commonFollowed(g *core.Graph, agent, candidate int) float64 {
	return float64(intersectSorted(g.InNeighbours(agent), g.InNeighbours(candidate)))
}

// intersectSorted counts common elements of two ascending, duplicate-free slices.
func intersectSorted(a, b []int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// commonSorted returns the common elements of two ascending slices.
func commonSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
