// SPDX-License-Identifier: MIT
// Package builder provides deterministic topology constructors for friendship
// graphs: Complete (K_n), Path (P_n), Star and Cycle (C_n).
//
// Constructors are composed through BuildGraph, which creates a fresh
// core.Graph, resolves BuilderOption values into an immutable config and runs
// the constructors in order. They are used for test fixtures and for dataset
// topologies that seed a social network with a known shape.
//
// Determinism:
//   - Vertex IDs come from the configured IDFn (decimal by default).
//   - Edges are emitted in a stable, documented order.
//
// Errors:
//   - ErrTooFewVertices: size parameter below the constructor minimum.
//   - ErrConstructFailed: nil constructor or a core mutation failure.
package builder
