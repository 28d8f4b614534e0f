package connectivity

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rewire/core"
)

// Reciprocal keeps the candidates joined to agent by both directed edges,
// preserving input order.
func Reciprocal(g *core.Graph, agent int, candidates []int) []int {
	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if g.HasReciprocal(agent, c) {
			out = append(out, c)
		}
	}

	return out
}

// DetectBridges returns the candidates whose reciprocal pair with agent is a
// cut: removing both agent→c and c→agent would break connectivity (Strong by
// default, see WithMode). Candidates without a full reciprocal pair are never
// tested and never reported.
//
// Each removal is evaluated as an edge mask on a read-only traversal, so g is
// neither copied nor modified. Checks are independent and run concurrently on
// a bounded worker group; the result is assembled only after every check has
// finished and keeps the input order of candidates.
//
// Complexity: O(k · (V + E)) for k reciprocal candidates.
func DetectBridges(g *core.Graph, agent int, candidates []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(agent) {
		return nil, fmt.Errorf("%w: %d", ErrAgentNotFound, agent)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tested := Reciprocal(g, agent, candidates)
	if len(tested) == 0 {
		return []int{}, nil
	}

	cut := make([]bool, len(tested))
	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.workers)
	for i, c := range tested {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mask := func(from, to int) bool {
				return !((from == agent && to == c) || (from == c && to == agent))
			}
			cut[i] = !check(g, o.mode, mask)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("connectivity: bridge detection for agent %d: %w", agent, err)
	}

	bridges := make([]int, 0, len(tested))
	for i, c := range tested {
		if cut[i] {
			bridges = append(bridges, c)
		}
	}

	return bridges, nil
}
