// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus instrumentation for the network facade.
//
// Metrics live in a private registry so several Networks (and tests) never
// collide on the default global registerer.

package network

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collectors updated by a Network. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Operations      *prometheus.CounterVec
	Users           prometheus.Gauge
	Friendships     prometheus.Gauge
	EigenIterations prometheus.Histogram
}

// NewMetrics creates and registers the collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of network operations",
			},
			[]string{"op", "status"},
		),
		Users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users",
			Help:      "Number of registered users",
		}),
		Friendships: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "friendships",
			Help:      "Number of undirected friendships",
		}),
		EigenIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "eigenvector_iterations",
			Help:      "Power iterations per eigenvector centrality run",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
	}

	registry.MustRegister(m.Operations, m.Users, m.Friendships, m.EigenIterations)

	return m
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) countOp(op, status string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, status).Inc()
}

func (m *Metrics) setUsers(n int) {
	if m == nil {
		return
	}
	m.Users.Set(float64(n))
}

func (m *Metrics) setFriendships(n int) {
	if m == nil {
		return
	}
	m.Friendships.Set(float64(n))
}

func (m *Metrics) observeIterations(n int) {
	if m == nil {
		return
	}
	m.EigenIterations.Observe(float64(n))
}
