package ordered

import "github.com/Gouvernathor/go-orderbitfield/orderkey"

// KeyStore is the storage capability a [Container] drives its key reads
// and writes through. The container is the sole writer: it always sets an
// element's key before it ever reads it back, so implementations need no
// notion of a missing key.
//
// Two shapes are provided: the owned map every container uses by default,
// and the accessor pair over caller-owned objects selected by
// [WithAccessors]. Custom implementations can be supplied with
// [WithStore].
type KeyStore[E comparable] interface {
	// Key returns the key currently assigned to e. The result is
	// unspecified for elements never passed to SetKey.
	Key(e E) orderkey.Key

	// SetKey assigns e's key, replacing any previous assignment.
	SetKey(e E, k orderkey.Key)

	// Forget releases whatever the store holds for e, after e leaves the
	// container. Stores that keep keys on caller-owned objects may treat
	// this as a no-op.
	Forget(e E)
}

type mapStore[E comparable] map[E]orderkey.Key

func (s mapStore[E]) Key(e E) orderkey.Key { return s[e] }

func (s mapStore[E]) SetKey(e E, k orderkey.Key) { s[e] = k }

func (s mapStore[E]) Forget(e E) { delete(s, e) }

// accessorStore reads and writes keys through caller-supplied closures,
// typically against a key field on the element objects themselves. The
// container still fully owns the writes; callers must not assign keys on
// their own.
type accessorStore[E comparable] struct {
	get func(E) orderkey.Key
	set func(E, orderkey.Key)
}

func (s accessorStore[E]) Key(e E) orderkey.Key { return s.get(e) }

func (s accessorStore[E]) SetKey(e E, k orderkey.Key) { s.set(e, k) }

// Forget leaves the caller's object untouched; the key field simply goes
// stale once the element is out of the container.
func (s accessorStore[E]) Forget(E) {}
