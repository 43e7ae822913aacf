// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of the Graph: vertices, adjacency and edge count.
// Mutating the clone never affects the source and vice versa.
//
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	var (
		id, nbr string
		bucket  map[string]struct{}
	)
	for id, bucket = range g.adjacency {
		cp := make(map[string]struct{}, len(bucket))
		for nbr = range bucket {
			cp[nbr] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}
