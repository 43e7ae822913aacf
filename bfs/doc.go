// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the shortest-path "mutual friends" query built on top of it.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Start: the root
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops as soon as a target is dequeued with WithStopAt.
//
// Mutual friends
//
//	MutualFriends(g, a, b) runs BFS from a with WithStopAt(b) and returns the
//	vertices strictly between a and b on b's parent chain. It is the interior
//	of one shortest path, not the intersection of the two friend sets:
//
//	    A───B───C───D      MutualFriends(A, D) = [B C]
//
// Determinism
//
//	core.NeighborIDs returns friends sorted by ID and BFS enqueues them in that
//	order, so the visit sequence and the chosen shortest-path branch are fully
//	reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)   (each vertex expanded once, neighbors sorted)
//   - Memory: O(V)             (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "alice", bfs.WithMaxDepth(2))
//	path, err := res.PathTo("dave")
//	mutual, err := bfs.MutualFriends(g, "alice", "dave")
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the start vertex does not exist.
//   - ErrTargetVertexNotFound  if the stop/target vertex does not exist.
//   - ErrOptionViolation       if invalid Option (negative MaxDepth, empty StopAt).
//   - ErrNeighbors             if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
