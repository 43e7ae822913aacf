// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
)

// newGraph registers ids in order and fails the test on any error.
func newGraph(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id), "AddVertex(%s)", id)
	}

	return g
}

// TestGraph_AddVertex verifies registration rules: empty IDs and duplicates are rejected.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))

	// duplicate registration must fail and leave the catalog unchanged
	require.ErrorIs(t, g.AddVertex("A"), core.ErrVertexExists)
	require.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeSymmetry checks that friendship is mirrored on insert and removal.
func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := newGraph(t, "A", "B")

	require.NoError(t, g.AddEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_AddEdgeIdempotent ensures adding the same pair twice equals adding it once.
func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := newGraph(t, "A", "B")

	require.NoError(t, g.AddEdge("A", "B"))
	once := g.AdjacencyList()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	assert.Equal(t, once, g.AdjacencyList())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdgeErrors covers loops, empty IDs and unknown endpoints.
func TestGraph_AddEdgeErrors(t *testing.T) {
	g := newGraph(t, "X")
	before := g.AdjacencyList()

	require.ErrorIs(t, g.AddEdge("X", "X"), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge("", "X"), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("X", "ghost"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge("ghost", "X"), core.ErrVertexNotFound)

	// failed calls must not auto-register or half-insert anything
	assert.Equal(t, before, g.AdjacencyList())
	assert.False(t, g.HasVertex("ghost"))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_RemoveEdge covers the no-op and error paths of RemoveEdge.
func TestGraph_RemoveEdge(t *testing.T) {
	g := newGraph(t, "A", "B", "C")
	require.NoError(t, g.AddEdge("A", "B"))

	// not friends: no-op
	require.NoError(t, g.RemoveEdge("A", "C"))
	assert.True(t, g.HasEdge("A", "B"))

	require.ErrorIs(t, g.RemoveEdge("A", "ghost"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.RemoveEdge("", "A"), core.ErrEmptyVertexID)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_NeighborIDsAndDegree checks sorted neighbor enumeration and degree counts.
func TestGraph_NeighborIDsAndDegree(t *testing.T) {
	g := newGraph(t, "A", "B", "C", "D")
	require.NoError(t, g.AddEdge("A", "D"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, nbrs)

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = g.NeighborIDs("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestGraph_VerticesSorted anchors the deterministic ordering contract.
func TestGraph_VerticesSorted(t *testing.T) {
	g := newGraph(t, "carol", "alice", "bob")
	assert.Equal(t, []string{"alice", "bob", "carol"}, g.Vertices())
}

// TestGraph_AdjacencyListSnapshot verifies the snapshot is complete and detached from the graph.
func TestGraph_AdjacencyListSnapshot(t *testing.T) {
	g := newGraph(t, "A", "B", "Z")
	require.NoError(t, g.AddEdge("A", "B"))

	adj := g.AdjacencyList()
	require.Len(t, adj, 3)
	assert.Equal(t, []string{"B"}, adj["A"])
	assert.Equal(t, []string{"A"}, adj["B"])
	assert.NotNil(t, adj["Z"])
	assert.Empty(t, adj["Z"])

	// mutate the snapshot; the graph must not change
	adj["A"][0] = "mutated"
	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrs)
}

// TestGraph_Clone ensures a deep copy: later mutations do not leak across instances.
func TestGraph_Clone(t *testing.T) {
	g := newGraph(t, "A", "B", "C")
	require.NoError(t, g.AddEdge("A", "B"))

	clone := g.Clone()
	require.Equal(t, g.AdjacencyList(), clone.AdjacencyList())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())

	require.NoError(t, clone.AddEdge("B", "C"))
	require.NoError(t, g.RemoveEdge("A", "B"))

	assert.True(t, clone.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "C"))
	assert.Equal(t, 2, clone.EdgeCount())
	assert.Equal(t, 0, g.EdgeCount())
}
