package centrality

import "github.com/katalvlaran/socialgraph/core"

// Degree returns deg(u)/(n-1) for every vertex u of an n-vertex graph.
//
// A single-vertex graph maps that vertex to 0.0 instead of dividing by zero;
// an empty graph yields an empty map. A nil graph yields an empty map.
//
// Complexity: O(V + E).
func Degree(g *core.Graph) map[string]float64 {
	out := make(map[string]float64)
	if g == nil {
		return out
	}
	adj := g.AdjacencyList()
	n := len(adj)
	for id, nbrs := range adj {
		if n <= 1 {
			out[id] = 0
			continue
		}
		out[id] = float64(len(nbrs)) / float64(n-1)
	}

	return out
}
