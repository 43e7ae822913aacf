// SPDX-License-Identifier: MIT
// File: types.go
// Role: Network, User, Post and Profile types plus functional options.

package network

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/core"
)

// Post is one entry of a user's append-only post log.
type Post struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// user is the bookkeeping record kept next to the friendship graph.
type user struct {
	name      string
	posts     []Post
	followers map[string]struct{}
	follows   map[string]struct{}
	likes     int
}

func newUser(name string) *user {
	return &user{
		name:      name,
		followers: make(map[string]struct{}),
		follows:   make(map[string]struct{}),
	}
}

// Profile is an immutable snapshot of a user.
type Profile struct {
	Name      string
	Posts     []Post
	Followers []string // sorted
	Follows   []string // sorted
	Likes     int
	Friends   int
}

// Network is the social-network facade. It is safe to share between
// goroutines; operations are serialized by an internal mutex.
type Network struct {
	mu      sync.Mutex
	graph   *core.Graph
	users   map[string]*user
	log     *zap.Logger
	metrics *Metrics

	eigenOpts    []centrality.Option
	suggestLimit int
	now          func() time.Time

	// err records the first invalid option; see New.
	err error
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithLogger sets the zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics attaches a Prometheus metrics set.
func WithMetrics(m *Metrics) Option {
	return func(n *Network) { n.metrics = m }
}

// WithEigenOptions forwards options to centrality.Eigenvector. Invalid
// values are recorded as ErrOptionViolation and fail New.
func WithEigenOptions(opts ...centrality.Option) Option {
	return func(n *Network) {
		n.eigenOpts = append(n.eigenOpts, opts...)
		if err := centrality.ValidateEigenOptions(n.eigenOpts...); err != nil {
			n.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
		}
	}
}

// WithSuggestLimit truncates SuggestFriends results (0 = unlimited).
// Negative values are recorded as ErrOptionViolation.
func WithSuggestLimit(limit int) Option {
	return func(n *Network) {
		if limit < 0 {
			n.err = fmt.Errorf("%w: suggest limit must be >= 0, got %d", ErrOptionViolation, limit)
			return
		}
		n.suggestLimit = limit
	}
}

// WithClock overrides the time source used to stamp posts.
func WithClock(now func() time.Time) Option {
	return func(n *Network) {
		if now != nil {
			n.now = now
		}
	}
}
