package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// line registers ids and befriends consecutive pairs.
func line(ids ...string) *core.Graph {
	g := core.NewGraph()
	for _, id := range ids {
		_ = g.AddVertex(id)
	}
	for i := 1; i < len(ids); i++ {
		_ = g.AddEdge(ids[i-1], ids[i])
	}
	return g
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	for _, u := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		_ = g.AddVertex(u)
	}
	// Route1: A–B–C–D–K (4 hops)
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "K")
	// Route2: A–E–F–K (3 hops)
	_ = g.AddEdge("A", "E")
	_ = g.AddEdge("E", "F")
	_ = g.AddEdge("F", "K")
	// Some extra branches to other nodes
	_ = g.AddEdge("C", "G")
	_ = g.AddEdge("G", "H")
	_ = g.AddEdge("D", "I")
	_ = g.AddEdge("I", "J")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	fmt.Println(res.Interior("K"))
	// Output:
	// [A E F K]
	// [E F]
}

// ExampleMutualFriends shows the shortest-path interior between two users.
func ExampleMutualFriends() {
	g := line("A", "B", "C", "D")

	mutual, _ := bfs.MutualFriends(g, "A", "D")
	fmt.Println(mutual)
	// Output:
	// [B C]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	g := line(ids...)

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleBFS_hooksAndCancellation demonstrates OnEnqueue, OnDequeue, OnVisit hooks
// alongside context cancellation on a 7-node chain.
func ExampleBFS_hooksAndCancellation() {
	g := line("n0", "n1", "n2", "n3", "n4", "n5", "n6")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, deqSeq, visSeq []string

	// after depth 4, we call cancel()
	hookVisit := func(id string, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", id, d))
		if d == 4 {
			cancel() // force mid-traversal cancellation
		}
		return nil
	}

	_, err := bfs.BFS(
		g, "n0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deqSeq = append(deqSeq, fmt.Sprintf("D[%s@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Dequeued:", deqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Dequeued: [D[n0@0] D[n1@1] D[n2@2] D[n3@3] D[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3] V[n4@4]]
}
