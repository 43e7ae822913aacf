// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex sorted slices; returned slices are
//     independent copies (no shared backing with the graph).
// AI-HINT (file):
//   - Analytics packages read a single AdjacencyList() snapshot instead of
//     calling NeighborIDs() per vertex, so one pass sees one consistent graph.

package core

import "sort"

// NeighborIDs returns the friends of id, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(bucket), nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to its sorted
// friend IDs. Isolated vertices map to an empty, non-nil slice.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	var (
		id     string
		bucket map[string]struct{}
	)
	for id, bucket = range g.adjacency {
		out[id] = sortedKeys(bucket)
	}

	return out
}

// sortedKeys copies the keys of a bucket into a sorted slice.
func sortedKeys(bucket map[string]struct{}) []string {
	ids := make([]string, 0, len(bucket))
	var id string
	for id = range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
