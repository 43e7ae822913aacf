package centrality

import (
	"math"
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// Eigenvector computes eigenvector centrality by power iteration over the
// friendship adjacency relation.
//
// Implementation:
//   - Stage 1: Snapshot the adjacency list once and index vertices in sorted order.
//   - Stage 2: Start from the all-ones vector.
//   - Stage 3: Each pass computes next[u] = Σ prev[v] for v ∈ adj(u), reading
//     only the previous pass; then divides by the L2 norm of next. A zero norm
//     (no edges anywhere) leaves every score at zero.
//   - Stage 4: Track max |next[u] - prev[u]|, swap buffers and stop once it is
//     below Tolerance or MaxIterations passes have run.
//
// Errors: ErrGraphNil, ErrOptionViolation.
// Complexity: O(MaxIterations · (V + E)) time, O(V + E) memory.
func Eigenvector(g *core.Graph, opts ...Option) (*EigenResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveEigenOptions(opts)
	if err != nil {
		return nil, err
	}

	// Stage 1: index vertices of one adjacency snapshot for slice-based buffers.
	adj := g.AdjacencyList()
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	n := len(ids)
	res := &EigenResult{Scores: make(map[string]float64, n)}
	if n == 0 {
		res.Converged = true
		return res, nil
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	links := make([][]int, n)
	for i, id := range ids {
		links[i] = make([]int, 0, len(adj[id]))
		for _, nbr := range adj[id] {
			links[i] = append(links[i], index[nbr])
		}
	}

	// Stage 2: uniform start.
	prev := make([]float64, n)
	next := make([]float64, n)
	for i := range prev {
		prev[i] = 1.0
	}

	// Stage 3+4: iterate.
	var (
		i, j         int
		sum, sumSq   float64
		norm, change float64
	)
	for res.Iterations < o.MaxIterations {
		res.Iterations++
		sumSq = 0
		for i = 0; i < n; i++ {
			sum = 0
			for _, j = range links[i] {
				sum += prev[j]
			}
			next[i] = sum
			sumSq += sum * sum
		}

		norm = math.Sqrt(sumSq)
		change = 0
		for i = 0; i < n; i++ {
			if norm > 0 {
				next[i] /= norm
			} else {
				next[i] = 0
			}
			change = math.Max(change, math.Abs(next[i]-prev[i]))
		}

		prev, next = next, prev
		if change < o.Tolerance {
			res.Converged = true
			break
		}
	}

	for i, id := range ids {
		res.Scores[id] = prev[i]
	}

	return res, nil
}
