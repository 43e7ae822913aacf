package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/dataset"
	"github.com/katalvlaran/socialgraph/network"
)

const sample = `
users:
  - name: alice
    posts: ["hello", "second"]
    likes: 2
  - name: bob
  - name: carol
  - name: dave
friendships:
  - [alice, bob]
  - [bob, carol]
  - [carol, dave]
follows:
  - {follower: dave, followed: alice}
`

func newNetwork(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.New()
	require.NoError(t, err)
	return n
}

func TestApply_RoundTrip(t *testing.T) {
	ds, err := dataset.Parse([]byte(sample))
	require.NoError(t, err)
	n := newNetwork(t)
	require.NoError(t, ds.Apply(n))

	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, n.Users())
	mutual, err := n.MutualFriends("alice", "dave")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, mutual)

	p, err := n.User("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Likes)
	assert.Equal(t, []string{"dave"}, p.Followers)
	require.Len(t, p.Posts, 2)
	assert.Equal(t, "second", p.Posts[1].Text)
}

func TestApply_Topology(t *testing.T) {
	doc := "topology:\n  kind: star\n  size: 4\n  prefix: u\nusers:\n  - name: extra\nfriendships:\n  - [extra, Center]\n"
	ds, err := dataset.Parse([]byte(doc))
	require.NoError(t, err)
	n := newNetwork(t)
	require.NoError(t, ds.Apply(n))

	assert.Equal(t, []string{"Center", "extra", "u1", "u2", "u3"}, n.Users())
	friends, err := n.Friends("Center")
	require.NoError(t, err)
	assert.Equal(t, []string{"extra", "u1", "u2", "u3"}, friends)
}

func TestApply_Errors(t *testing.T) {
	ds, err := dataset.Parse([]byte("users:\n  - name: a\nfriendships:\n  - [a, ghost]\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, ds.Apply(newNetwork(t)), network.ErrUserNotFound)

	ds, err = dataset.Parse([]byte("users:\n  - name: a\n  - name: a\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, ds.Apply(newNetwork(t)), network.ErrDuplicateUser)

	ds, err = dataset.Parse([]byte("topology:\n  kind: cycle\n  size: 2\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, ds.Apply(newNetwork(t)), builder.ErrTooFewVertices)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"yaml":          "users: [",
		"missing name":  "users:\n  - likes: 1\n",
		"negative like": "users:\n  - name: a\n    likes: -1\n",
		"bad kind":      "topology:\n  kind: torus\n  size: 3\n",
		"bad follow":    "follows:\n  - {follower: a}\n",
		"short pair":    "friendships:\n  - [a]\n",
	} {
		_, err := dataset.Parse([]byte(doc))
		assert.ErrorIs(t, err, dataset.ErrInvalidDataset, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Users, 4)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
