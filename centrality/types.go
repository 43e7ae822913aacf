// Package centrality defines options, sentinel errors and result types for
// centrality analysis over a core.Graph.
package centrality

import (
	"errors"
	"fmt"
	"sort"
)

// Defaults for the eigenvector power iteration.
const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
)

// Sentinel errors for centrality analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures the eigenvector solver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*EigenOptions)

// EigenOptions holds the stopping rules for power iteration.
type EigenOptions struct {
	// MaxIterations caps the number of passes. Must be > 0.
	MaxIterations int

	// Tolerance is the convergence threshold on the max per-vertex change
	// between two consecutive normalized vectors. Must be > 0.
	Tolerance float64

	err error
}

// DefaultEigenOptions returns MaxIterations=100, Tolerance=1e-6.
func DefaultEigenOptions() EigenOptions {
	return EigenOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// ValidateEigenOptions applies opts to the defaults and reports the first
// invalid value as ErrOptionViolation, without running the solver.
func ValidateEigenOptions(opts ...Option) error {
	_, err := resolveEigenOptions(opts)
	return err
}

// resolveEigenOptions applies opts over DefaultEigenOptions.
func resolveEigenOptions(opts []Option) (EigenOptions, error) {
	o := DefaultEigenOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *EigenOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance overrides the convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *EigenOptions) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// EigenResult is the outcome of Eigenvector.
//   - Scores: vertex ID → L2-normalized centrality.
//   - Iterations: passes actually performed.
//   - Converged: true if the last pass changed no score by Tolerance or more.
type EigenResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// Score pairs a vertex with its centrality value.
type Score struct {
	ID    string
	Value float64
}

// Rank orders scores by Value descending, ties by ID ascending.
func Rank(scores map[string]float64) []Score {
	out := make([]Score, 0, len(scores))
	for id, v := range scores {
		out = append(out, Score{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].ID < out[j].ID
	})

	return out
}
