// Package suggest ranks friend candidates with the common-neighbor heuristic.
//
// For a subject U, every friend-of-a-friend M that is neither U nor already a
// friend of U scores one point per friend it shares with U. Candidates are
// ranked by score descending; ties break by ID ascending so results are
// reproducible.
//
// Complexity: O(Σ deg(F) for F ∈ adj(U)) to count, O(k log k) to rank k candidates.
package suggest

import (
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// CommonNeighbors returns friend suggestions for id, ranked by shared friend count.
// A subject with no friends yields an empty (non-nil) list.
func CommonNeighbors(g *core.Graph, id string, opts ...Option) ([]Suggestion, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	// One snapshot so the whole count sees a single consistent graph.
	adj := g.AdjacencyList()
	direct := make(map[string]struct{}, len(adj[id]))
	for _, f := range adj[id] {
		direct[f] = struct{}{}
	}

	counts := make(map[string]int)
	for _, f := range adj[id] {
		for _, m := range adj[f] {
			if m == id {
				continue
			}
			if _, isFriend := direct[m]; isFriend {
				continue
			}
			counts[m]++
		}
	}

	return rank(counts, o.Limit), nil
}

// rank orders counts by Count desc, then ID asc, truncated to limit when > 0.
func rank(counts map[string]int, limit int) []Suggestion {
	out := make([]Suggestion, 0, len(counts))
	for id, c := range counts {
		out = append(out, Suggestion{ID: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
