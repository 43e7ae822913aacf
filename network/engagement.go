// SPDX-License-Identifier: MIT
// File: engagement.go
// Role: like counters and the append-only post log.

package network

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Like increments name's like counter.
func (n *Network) Like(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, err := n.lookup(name)
	if err == nil {
		u.likes++
	}
	n.observe("like", err, zap.String("user", name))
	return err
}

// LikePost records that liker liked one of owner's posts, which increments
// owner's like counter. Both users must exist; liking oneself is allowed.
func (n *Network) LikePost(liker, owner string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := n.lookup(liker)
	var u *user
	if err == nil {
		u, err = n.lookup(owner)
	}
	if err == nil {
		u.likes++
	}
	n.observe("like_post", err, zap.String("liker", liker), zap.String("owner", owner))
	return err
}

// Unlike decrements name's like counter, never below zero.
func (n *Network) Unlike(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, err := n.lookup(name)
	if err == nil && u.likes > 0 {
		u.likes--
	}
	n.observe("unlike", err, zap.String("user", name))
	return err
}

// AddPost appends a post to name's log and returns it.
func (n *Network) AddPost(name, text string) (Post, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, err := n.lookup(name)
	if err != nil {
		n.observe("add_post", err, zap.String("user", name))
		return Post{}, err
	}
	p := Post{ID: uuid.NewString(), Text: text, CreatedAt: n.now()}
	u.posts = append(u.posts, p)
	n.observe("add_post", nil, zap.String("user", name), zap.String("post_id", p.ID))

	return p, nil
}

// Posts returns a copy of name's posts, oldest first.
func (n *Network) Posts(name string) ([]Post, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, err := n.lookup(name)
	n.observe("posts", err, zap.String("user", name))
	if err != nil {
		return nil, err
	}
	return append([]Post{}, u.posts...), nil
}
