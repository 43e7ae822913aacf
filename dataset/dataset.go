// SPDX-License-Identifier: MIT
// Package dataset loads a YAML description of a social network and applies
// it to a network.Network.
//
// Document shape:
//
//	topology:            # optional, generated first
//	  kind: star         # complete | path | star | cycle
//	  size: 5
//	  prefix: user       # optional ID prefix
//	users:
//	  - name: alice
//	    posts: ["hello"]
//	    likes: 2
//	friendships:
//	  - [alice, bob]
//	follows:
//	  - {follower: alice, followed: bob}
package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/network"
)

// ErrInvalidDataset wraps every decode or validation failure.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// Dataset is a decoded network description.
type Dataset struct {
	Topology    *Topology  `yaml:"topology"`
	Users       []User     `yaml:"users" validate:"dive"`
	Friendships [][]string `yaml:"friendships" validate:"dive,len=2,dive,required"`
	Follows     []Follow   `yaml:"follows" validate:"dive"`
}

// Topology generates users and friendships with a builder constructor.
type Topology struct {
	Kind   string `yaml:"kind" validate:"required,oneof=complete path star cycle"`
	Size   int    `yaml:"size" validate:"gt=0"`
	Prefix string `yaml:"prefix"`
}

// User seeds one user with posts and a like count.
type User struct {
	Name  string   `yaml:"name" validate:"required"`
	Posts []string `yaml:"posts"`
	Likes int      `yaml:"likes" validate:"gte=0"`
}

// Follow is one directed follow edge.
type Follow struct {
	Follower string `yaml:"follower" validate:"required"`
	Followed string `yaml:"followed" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return &ds, nil
}

// constructor maps a topology kind to its builder constructor.
func (t *Topology) constructor() (builder.Constructor, error) {
	switch t.Kind {
	case "complete":
		return builder.Complete(t.Size), nil
	case "path":
		return builder.Path(t.Size), nil
	case "star":
		return builder.Star(t.Size), nil
	case "cycle":
		return builder.Cycle(t.Size), nil
	}
	return nil, fmt.Errorf("%w: unknown topology %q", ErrInvalidDataset, t.Kind)
}

// Apply replays the dataset into n: topology users and friendships first,
// then users, friendships, follows, posts and likes in document order.
// It stops at the first failing operation.
func (ds *Dataset) Apply(n *network.Network) error {
	if ds.Topology != nil {
		if err := ds.applyTopology(n); err != nil {
			return err
		}
	}
	for _, u := range ds.Users {
		if err := n.AddUser(u.Name); err != nil {
			return fmt.Errorf("dataset: user %q: %w", u.Name, err)
		}
	}
	for _, f := range ds.Friendships {
		if err := n.AddFriend(f[0], f[1]); err != nil {
			return fmt.Errorf("dataset: friendship %s–%s: %w", f[0], f[1], err)
		}
	}
	for _, f := range ds.Follows {
		if err := n.Follow(f.Follower, f.Followed); err != nil {
			return fmt.Errorf("dataset: follow %s→%s: %w", f.Follower, f.Followed, err)
		}
	}
	for _, u := range ds.Users {
		for _, text := range u.Posts {
			if _, err := n.AddPost(u.Name, text); err != nil {
				return fmt.Errorf("dataset: post by %q: %w", u.Name, err)
			}
		}
		for i := 0; i < u.Likes; i++ {
			if err := n.Like(u.Name); err != nil {
				return fmt.Errorf("dataset: like %q: %w", u.Name, err)
			}
		}
	}
	return nil
}

// applyTopology builds the topology graph and copies it into n.
func (ds *Dataset) applyTopology(n *network.Network) error {
	ctor, err := ds.Topology.constructor()
	if err != nil {
		return err
	}
	var bopts []builder.BuilderOption
	if ds.Topology.Prefix != "" {
		bopts = append(bopts, builder.WithPrefix(ds.Topology.Prefix))
	}
	g, err := builder.BuildGraph(bopts, ctor)
	if err != nil {
		return fmt.Errorf("dataset: topology %s(%d): %w", ds.Topology.Kind, ds.Topology.Size, err)
	}

	adj := g.AdjacencyList()
	for _, id := range g.Vertices() {
		if err := n.AddUser(id); err != nil {
			return fmt.Errorf("dataset: topology user %q: %w", id, err)
		}
	}
	for _, id := range g.Vertices() {
		for _, nb := range adj[id] {
			if id < nb {
				if err := n.AddFriend(id, nb); err != nil {
					return fmt.Errorf("dataset: topology friendship %s–%s: %w", id, nb, err)
				}
			}
		}
	}
	return nil
}
