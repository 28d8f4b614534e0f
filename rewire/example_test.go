package rewire_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rewire/builder"
	"github.com/katalvlaran/rewire/core"
	"github.com/katalvlaran/rewire/rewire"
	"github.com/katalvlaran/rewire/scoring"
)

// ExampleEngine_Turn shows an agent with a single follower (p = 1) accepting
// its recommendation and keeping every existing tie.
func ExampleEngine_Turn() {
	g, _ := builder.BuildGraph(nil, builder.Path(3))
	rec := scoring.RecommenderFunc(func(*core.Graph, int, int, *rand.Rand) ([]int, error) {
		return []int{2}, nil
	})
	eng, _ := rewire.New(g, rec, rewire.WithSeed(1))

	rep, _ := eng.Turn(0, 0)
	fmt.Println(rep.P, rep.Accepted, rep.Removed == nil)
	fmt.Println(g.HasReciprocal(0, 1), g.HasReciprocal(0, 2))
	// Output:
	// 1 [2] true
	// true true
}
