// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
}

// newBuilderConfig resolves options over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix is a convenience ID scheme: prefix + decimal index,
// e.g. WithPrefix("user") yields "user0", "user1", ...
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(idx int) string {
		return prefix + DefaultIDFn(idx)
	})
}
