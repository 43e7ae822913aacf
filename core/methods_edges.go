// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
//
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.
//   - Validation happens under the same lock as the mutation, so a failed
//     call never leaves a half-mirrored edge behind.

package core

// AddEdge befriends a and b by inserting each into the other's bucket.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock verify both endpoints exist (ErrVertexNotFound).
//   - Stage 3: If the pair is already present, return nil (idempotent).
//   - Stage 4: Insert a→b and b→a and bump the undirected edge count.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ba, okA := g.adjacency[a]
	bb, okB := g.adjacency[b]
	if !okA || !okB {
		return ErrVertexNotFound
	}
	if _, exists := ba[b]; exists {
		return nil
	}
	ba[b] = struct{}{}
	bb[a] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the symmetric pair a–b.
// Removing a pair that is not present is a no-op, not an error.
//
// Errors:
//   - ErrEmptyVertexID: if either ID is empty.
//   - ErrVertexNotFound: if either endpoint is not registered.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ba, okA := g.adjacency[a]
	bb, okB := g.adjacency[b]
	if !okA || !okB {
		return ErrVertexNotFound
	}
	if _, exists := ba[b]; !exists {
		return nil
	}
	delete(ba, b)
	delete(bb, a)
	g.edgeCount--

	return nil
}

// HasEdge reports whether a and b are friends. Unknown IDs yield false.
// Complexity: O(1)
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if bucket, ok := g.adjacency[a]; ok {
		_, ok = bucket[b]
		return ok
	}

	return false
}

// EdgeCount returns the number of undirected friendships.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
