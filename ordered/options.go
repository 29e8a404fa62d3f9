package ordered

import (
	"go.uber.org/zap"

	"github.com/Gouvernathor/go-orderbitfield/orderkey"
)

const defaultDegree = 32

type config[E comparable] struct {
	degree  int
	logger  *zap.Logger
	store   KeyStore[E]
	initial []E
	keyed   []E
}

// Option configures a [Container] at construction time.
type Option[E comparable] func(*config[E])

// WithElements seeds the container with elems, in that order, assigned
// fresh unbounded keys.
func WithElements[E comparable](elems ...E) Option[E] {
	return func(cfg *config[E]) {
		cfg.initial = append(cfg.initial, elems...)
	}
}

// WithAccessors selects accessor-pair storage: keys are read and written
// through get and set on caller-owned objects, and the container keeps no
// key state of its own. The container writes an element's key before ever
// reading it, so the underlying field may start out uninitialized.
func WithAccessors[E comparable](get func(E) orderkey.Key, set func(E, orderkey.Key)) Option[E] {
	return func(cfg *config[E]) {
		cfg.store = accessorStore[E]{get: get, set: set}
	}
}

// WithStore selects a custom storage collaborator.
func WithStore[E comparable](store KeyStore[E]) Option[E] {
	return func(cfg *config[E]) {
		cfg.store = store
	}
}

// WithKeyedElements adopts elems with the keys their storage already
// holds, without regenerating them. Only meaningful with storage that
// outlives the container ([WithAccessors] or [WithStore]); construction
// fails with ErrAccessorsRequired otherwise. The adopted keys must be
// valid and pairwise distinct.
func WithKeyedElements[E comparable](elems ...E) Option[E] {
	return func(cfg *config[E]) {
		cfg.keyed = append(cfg.keyed, elems...)
	}
}

// WithDegree sets the branching degree of the container's ordered index.
func WithDegree[E comparable](degree int) Option[E] {
	return func(cfg *config[E]) {
		cfg.degree = degree
	}
}

// WithLogger attaches a logger for debug-level instrumentation of key
// assignment. The default is a no-op logger.
func WithLogger[E comparable](logger *zap.Logger) Option[E] {
	return func(cfg *config[E]) {
		cfg.logger = logger
	}
}
