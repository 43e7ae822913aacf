// SPDX-License-Identifier: MIT
// Package network is the social-network facade over the friendship graph.
//
// A Network owns a core.Graph for undirected friendships and keeps the
// per-user bookkeeping the graph does not model: ordered posts, directed
// follows/followers and a non-negative like counter. Analytics (mutual
// friends, suggestions, degree and eigenvector centrality) delegate to the
// bfs, suggest and centrality packages.
//
// Every operation is logged at debug level through zap and counted in the
// optional Prometheus Metrics; failures are additionally logged at warn.
//
// Errors:
//   - ErrInvalidName:   name failed validation (empty, >64 bytes, whitespace, non-printable).
//   - ErrDuplicateUser: AddUser on an existing name.
//   - ErrUserNotFound:  any operation naming an unknown user.
//   - ErrSelfRelation:  befriending or following oneself.
//
// All errors wrap one of the sentinels above (or an engine sentinel) with %w.
package network
