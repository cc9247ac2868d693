// SPDX-License-Identifier: MIT

// Package decompose: functional configuration for Decomposer.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).

package decompose

// DefaultName tags log lines emitted by a Decomposer built without WithName.
const DefaultName = "decompose"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTraceNil  = "decompose: WithTrace: trace must be non-nil"
	panicNameEmpty = "decompose: WithName: name must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration of a Decomposer.
// Fields are unexported; use the WithX constructors.
type Options struct {
	trace *Trace // nil disables ERO recording
	name  string // log tag
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{name: DefaultName}
}

// WithTrace records the elementary row operations of every successful
// factorization into t. Failed attempts are not recorded.
// Panics if t is nil.
func WithTrace(t *Trace) Option {
	if t == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = t }
}

// WithName sets the tag used in log lines. Panics if name is empty.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *Options) { o.name = name }
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
