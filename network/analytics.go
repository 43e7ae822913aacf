// SPDX-License-Identifier: MIT
// File: analytics.go
// Role: graph analytics exposed through the facade.

package network

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/suggest"
)

// MutualFriends returns the users strictly between a and b on the BFS
// shortest path from a, sorted. Empty when a == b or b is unreachable.
func (n *Network) MutualFriends(a, b string) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []string
	_, err := n.lookup(a)
	if err == nil {
		_, err = n.lookup(b)
	}
	if err == nil {
		out, err = bfs.MutualFriends(n.graph, a, b)
	}
	n.observe("mutual_friends", err, zap.String("a", a), zap.String("b", b), zap.Int("count", len(out)))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SuggestFriends ranks non-friends of name by the number of friends they
// share with name.
func (n *Network) SuggestFriends(name string) ([]suggest.Suggestion, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []suggest.Suggestion
	_, err := n.lookup(name)
	if err == nil {
		out, err = suggest.CommonNeighbors(n.graph, name, suggest.WithLimit(n.suggestLimit))
	}
	n.observe("suggest_friends", err, zap.String("user", name), zap.Int("count", len(out)))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DegreeCentrality returns degree/(n-1) for every user.
func (n *Network) DegreeCentrality() map[string]float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	scores := centrality.Degree(n.graph)
	n.observe("degree_centrality", nil, zap.Int("users", len(scores)))
	return scores
}

// EigenvectorCentrality runs power iteration over the friendship graph.
// Non-convergence within the iteration cap is not an error; the last
// iterate is returned and a warning is logged.
func (n *Network) EigenvectorCentrality() (map[string]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	res, err := centrality.Eigenvector(n.graph, n.eigenOpts...)
	if err != nil {
		err = fmt.Errorf("network: eigenvector centrality: %w", err)
		n.observe("eigenvector_centrality", err)
		return nil, err
	}
	n.metrics.observeIterations(res.Iterations)
	if !res.Converged {
		n.log.Warn("eigenvector centrality did not converge", zap.Int("iterations", res.Iterations))
	}
	n.observe("eigenvector_centrality", nil,
		zap.Int("iterations", res.Iterations), zap.Bool("converged", res.Converged))

	return res.Scores, nil
}
