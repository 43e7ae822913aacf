package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/bfs"
)

func TestMutualFriends_PathInterior(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
	)

	got, err := bfs.MutualFriends(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)

	// direct friends have no interior
	got, err = bfs.MutualFriends(g, "A", "B")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMutualFriends_SameVertex(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})

	got, err := bfs.MutualFriends(g, "A", "A")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMutualFriends_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "Z"}, [][2]string{{"A", "B"}})

	got, err := bfs.MutualFriends(g, "A", "Z")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Two shortest branches exist (A-B-D and A-C-D); sorted expansion makes B
// the discoverer of D, so the answer is stable across calls.
func TestMutualFriends_Deterministic(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "C"}, {"A", "B"}, {"C", "D"}, {"B", "D"}},
	)

	first, err := bfs.MutualFriends(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, first)
	for i := 0; i < 10; i++ {
		again, err := bfs.MutualFriends(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMutualFriends_Errors(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)

	_, err := bfs.MutualFriends(nil, "A", "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.MutualFriends(g, "ghost", "A")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.MutualFriends(g, "A", "ghost")
	require.ErrorIs(t, err, bfs.ErrTargetVertexNotFound)
}
