// Package socialgraph is an in-memory social network with graph analytics:
// users, undirected friendships, directed follows, post logs and like
// counters, plus traversal, friend suggestion and centrality.
//
// Packages:
//
//	core/        - thread-safe undirected friendship graph (string IDs, no loops)
//	bfs/         - breadth-first traversal with hooks, stop-at target and MutualFriends
//	suggest/     - common-neighbor friend suggestions
//	centrality/  - degree and eigenvector (power iteration) centrality
//	builder/     - deterministic topologies: Complete, Path, Star, Cycle
//	network/     - the social-network facade (users, follows, likes, posts, analytics)
//	dataset/     - YAML network descriptions applied to a Network
//	config/      - YAML configuration and zap logger construction
//	cmd/socialnet - cobra CLI with one-shot commands and a line shell
//
// Quick start:
//
//	n, _ := network.New()
//	_ = n.AddUser("alice")
//	_ = n.AddUser("bob")
//	_ = n.AddFriend("alice", "bob")
//	scores, _ := n.EigenvectorCentrality()
//
// Determinism: every listing is sorted by ID and BFS expands neighbors in
// ascending order, so equal inputs always produce equal outputs.
package socialgraph
