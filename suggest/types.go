// Package suggest defines options, sentinel errors and result types for
// friend suggestion over a core.Graph.
package suggest

import (
	"errors"
	"fmt"
)

// Sentinel errors for suggestion scoring.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("suggest: graph is nil")

	// ErrVertexNotFound is returned when the subject vertex is absent.
	ErrVertexNotFound = errors.New("suggest: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("suggest: invalid option supplied")
)

// Suggestion is one candidate friend and the number of friends it shares
// with the subject.
type Suggestion struct {
	ID    string
	Count int
}

// Option configures suggestion scoring via functional arguments.
type Option func(*Options)

// Options holds tunables for CommonNeighbors.
type Options struct {
	// Limit, if > 0, truncates the ranked list. 0 means no limit.
	Limit int

	err error
}

// DefaultOptions returns Options with no limit.
func DefaultOptions() Options {
	return Options{}
}

// WithLimit keeps only the top n suggestions.
//
//	n > 0: keep at most n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}
