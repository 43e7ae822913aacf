// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates an attempt to register an ID that is already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is the undirected friendship graph.
//
// adjacency[a][b] = struct{}{} iff a and b are friends; the mirror entry
// adjacency[b][a] is always present as well. Every registered vertex owns a
// (possibly empty) bucket, so len(adjacency) == VertexCount().
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[string]map[string]struct{}
	edgeCount int // undirected edges, each counted once
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
