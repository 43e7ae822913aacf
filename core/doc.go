// Package core provides the friendship Graph Store: a simple, undirected,
// unweighted in-memory graph keyed by user identity.
//
// The Graph G = (V,E) enforces the invariants every analytics package relies on:
//
//   - Symmetry: if b ∈ adj(a) then a ∈ adj(b). Every edge is mirrored on insert
//     and removed from both buckets on delete.
//   - No self-loops: AddEdge(v,v) → ErrLoopNotAllowed.
//   - Closed adjacency: every identity in any adjacency bucket is a registered
//     vertex. Edges never auto-create vertices; AddEdge on a missing endpoint
//     returns ErrVertexNotFound and leaves the graph untouched.
//   - Unique identities: AddVertex on an existing ID → ErrVertexExists.
//   - Set semantics: adding an existing edge is a no-op (no duplicate entries).
//
// Determinism:
//
//	Vertices(), NeighborIDs() and AdjacencyList() return lexicographically
//	sorted IDs, so traversals and rankings built on top are reproducible.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string) error          // O(1), idempotent
//	RemoveEdge(a, b string) error       // O(1), no-op when absent
//	HasEdge(a, b string) bool           // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Degree(id string) (int, error)           // O(1)
//	Vertices() []string                      // O(V·log V)
//	AdjacencyList() map[string][]string      // O(V+E)
//	VertexCount(), EdgeCount() int           // O(1)
//
//	// Cloning
//	Clone() *Graph                            // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrVertexExists    – duplicate vertex registration
//	ErrLoopNotAllowed  – edge from a vertex to itself
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex catalog and adjacency buckets.
//	Mutations take the write lock; queries take the read lock.
package core
