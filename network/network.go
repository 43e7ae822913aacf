// SPDX-License-Identifier: MIT
// File: network.go
// Role: construction, user registry and shared lookup/observe helpers.

package network

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/core"
)

// New returns an empty Network. An invalid option value is reported as an
// error wrapping ErrOptionViolation.
func New(opts ...Option) (*Network, error) {
	n := &Network{
		graph: core.NewGraph(),
		users: make(map[string]*user),
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.err != nil {
		return nil, n.err
	}

	return n, nil
}

// Graph returns a deep copy of the friendship graph.
func (n *Network) Graph() *core.Graph {
	return n.graph.Clone()
}

// AddUser registers a new user with no friends, posts, follows or likes.
func (n *Network) AddUser(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := n.addUser(name)
	n.observe("add_user", err, zap.String("user", name))
	return err
}

func (n *Network) addUser(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, ok := n.users[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUser, name)
	}
	if err := n.graph.AddVertex(name); err != nil {
		return fmt.Errorf("network: add user %q: %w", name, err)
	}
	n.users[name] = newUser(name)
	n.metrics.setUsers(len(n.users))

	return nil
}

// HasUser reports whether name is registered.
func (n *Network) HasUser(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, ok := n.users[name]
	return ok
}

// Users returns every registered name in ascending order.
func (n *Network) Users() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	names := make([]string, 0, len(n.users))
	for name := range n.users {
		names = append(names, name)
	}
	sort.Strings(names)
	n.observe("users", nil)

	return names
}

// User returns a snapshot of name's profile.
func (n *Network) User(name string) (Profile, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, err := n.lookup(name)
	if err != nil {
		n.observe("user", err, zap.String("user", name))
		return Profile{}, err
	}
	friends, _ := n.graph.Degree(name)
	p := Profile{
		Name:      u.name,
		Posts:     append([]Post(nil), u.posts...),
		Followers: sortedSet(u.followers),
		Follows:   sortedSet(u.follows),
		Likes:     u.likes,
		Friends:   friends,
	}
	n.observe("user", nil, zap.String("user", name))

	return p, nil
}

// lookup resolves name to its record. Caller holds n.mu.
func (n *Network) lookup(name string) (*user, error) {
	u, ok := n.users[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	return u, nil
}

// lookupPair resolves a and b and rejects a == b.
func (n *Network) lookupPair(a, b string) (*user, *user, error) {
	ua, err := n.lookup(a)
	if err != nil {
		return nil, nil, err
	}
	ub, err := n.lookup(b)
	if err != nil {
		return nil, nil, err
	}
	if a == b {
		return nil, nil, fmt.Errorf("%w: %q", ErrSelfRelation, a)
	}
	return ua, ub, nil
}

// observe logs and counts one completed operation.
func (n *Network) observe(op string, err error, fields ...zap.Field) {
	status := "ok"
	if err != nil {
		status = "error"
		n.log.Warn(op+" failed", append(fields, zap.Error(err))...)
	} else {
		n.log.Debug(op, fields...)
	}
	n.metrics.countOp(op, status)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
