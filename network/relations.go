// SPDX-License-Identifier: MIT
// File: relations.go
// Role: undirected friendships (stored in core.Graph) and directed follows.

package network

import (
	"fmt"

	"go.uber.org/zap"
)

// AddFriend creates the undirected friendship a–b. Repeating it is a no-op.
func (n *Network) AddFriend(a, b string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := n.addFriend(a, b)
	n.observe("add_friend", err, zap.String("a", a), zap.String("b", b))
	return err
}

func (n *Network) addFriend(a, b string) error {
	if _, _, err := n.lookupPair(a, b); err != nil {
		return err
	}
	if err := n.graph.AddEdge(a, b); err != nil {
		return fmt.Errorf("network: befriend %q–%q: %w", a, b, err)
	}
	n.metrics.setFriendships(n.graph.EdgeCount())
	return nil
}

// RemoveFriend deletes the friendship a–b. Removing a missing friendship
// between existing users is a no-op.
func (n *Network) RemoveFriend(a, b string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	err := n.removeFriend(a, b)
	n.observe("remove_friend", err, zap.String("a", a), zap.String("b", b))
	return err
}

func (n *Network) removeFriend(a, b string) error {
	if _, _, err := n.lookupPair(a, b); err != nil {
		return err
	}
	if err := n.graph.RemoveEdge(a, b); err != nil {
		return fmt.Errorf("network: unfriend %q–%q: %w", a, b, err)
	}
	n.metrics.setFriendships(n.graph.EdgeCount())
	return nil
}

// Friends returns name's friends in ascending order.
func (n *Network) Friends(name string) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var friends []string
	_, err := n.lookup(name)
	if err == nil {
		friends, err = n.graph.NeighborIDs(name)
	}
	n.observe("friends", err, zap.String("user", name))
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// Follow records that follower follows followed. The reverse follower entry
// is kept in step.
func (n *Network) Follow(follower, followed string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	a, b, err := n.lookupPair(follower, followed)
	if err == nil {
		a.follows[followed] = struct{}{}
		b.followers[follower] = struct{}{}
	}
	n.observe("follow", err, zap.String("follower", follower), zap.String("followed", followed))
	return err
}

// Unfollow removes the follow relation; it is a no-op when absent.
func (n *Network) Unfollow(follower, followed string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	a, b, err := n.lookupPair(follower, followed)
	if err == nil {
		delete(a.follows, followed)
		delete(b.followers, follower)
	}
	n.observe("unfollow", err, zap.String("follower", follower), zap.String("followed", followed))
	return err
}

// IsFollowing reports whether follower follows followed.
func (n *Network) IsFollowing(follower, followed string) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	a, err := n.lookup(follower)
	if err == nil {
		_, err = n.lookup(followed)
	}
	n.observe("is_following", err, zap.String("follower", follower), zap.String("followed", followed))
	if err != nil {
		return false, err
	}
	_, ok := a.follows[followed]
	return ok, nil
}
