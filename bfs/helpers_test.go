package bfs_test

import (
	"testing"

	"github.com/katalvlaran/socialgraph/core"
)

// buildGraph registers every endpoint and befriends each pair in order.
func buildGraph(tb testing.TB, vertices []string, edges [][2]string) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			tb.Fatalf("AddVertex(%s): %v", v, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			tb.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}

	return g
}
