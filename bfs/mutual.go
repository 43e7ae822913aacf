package bfs

import "github.com/katalvlaran/socialgraph/core"

// MutualFriends returns the interior of the BFS shortest-path branch from
// source to target: every vertex on the parent chain strictly between them,
// sorted by ID.
//
// This is path reconstruction, not neighbor intersection. For the path
// A–B–C–D, MutualFriends(A, D) is [B C] even though A and D share no friend.
// The traversal stops as soon as target is dequeued.
//
// Edge cases:
//   - source == target: empty result.
//   - target unreachable from source: empty result, no error.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound.
// Complexity: O(V + E) time, O(V) memory.
func MutualFriends(g *core.Graph, source, target string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetVertexNotFound
	}
	res, err := BFS(g, source, WithStopAt(target))
	if err != nil {
		return nil, err
	}

	return res.Interior(target), nil
}
