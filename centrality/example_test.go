package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/core"
)

// ExampleDegree prints degree centrality on the chain A–B–C–D.
func ExampleDegree() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")

	for _, s := range centrality.Rank(centrality.Degree(g)) {
		fmt.Printf("%s: %.3f\n", s.ID, s.Value)
	}
	// Output:
	// B: 0.667
	// C: 0.667
	// A: 0.333
	// D: 0.333
}

// ExampleEigenvector shows the hub of a star-with-chord dominating.
func ExampleEigenvector() {
	g := core.NewGraph()
	for _, id := range []string{"H", "L1", "L2", "L3", "L4"} {
		_ = g.AddVertex(id)
	}
	for _, leaf := range []string{"L1", "L2", "L3", "L4"} {
		_ = g.AddEdge("H", leaf)
	}
	_ = g.AddEdge("L1", "L2")

	res, _ := centrality.Eigenvector(g)
	fmt.Println("converged:", res.Converged)
	for _, s := range centrality.Rank(res.Scores) {
		fmt.Printf("%s: %.4f\n", s.ID, s.Value)
	}
	// Output:
	// converged: true
	// H: 0.6359
	// L1: 0.4735
	// L2: 0.4735
	// L3: 0.2714
	// L4: 0.2714
}
