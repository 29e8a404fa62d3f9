package ordered

import (
	"fmt"
	"iter"

	"github.com/google/btree"
	"go.uber.org/zap"

	"github.com/Gouvernathor/go-orderbitfield/orderkey"
)

// Container is a totally ordered collection of elements backed by order
// keys. See the package documentation for the model; see New for
// construction.
//
// A Container must not be mutated concurrently.
type Container[E comparable] struct {
	store   KeyStore[E]
	members map[E]struct{}
	tree    *btree.BTreeG[E]
	log     *zap.Logger
}

// New returns an empty container configured by opts. Without options the
// container owns its element-to-key map privately.
func New[E comparable](opts ...Option[E]) (*Container[E], error) {
	cfg := config[E]{degree: defaultDegree, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.store == nil {
		if len(cfg.keyed) > 0 {
			return nil, ErrAccessorsRequired
		}
		cfg.store = make(mapStore[E])
	}

	c := &Container[E]{
		store:   cfg.store,
		members: make(map[E]struct{}),
		log:     cfg.logger,
	}
	// The index orders elements by their current keys, read through the
	// store. Every mutation detaches an element before touching its key.
	c.tree = btree.NewG(cfg.degree, func(a, b E) bool {
		return c.store.Key(a).Less(c.store.Key(b))
	})

	for _, e := range cfg.keyed {
		if _, dup := c.members[e]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, e)
		}
		c.members[e] = struct{}{}
		c.tree.ReplaceOrInsert(e)
	}
	if len(cfg.initial) > 0 {
		if err := c.PutAtEnd(true, cfg.initial...); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Of returns a container holding elems in the given order, with owned-map
// storage.
func Of[E comparable](elems ...E) (*Container[E], error) {
	return New(WithElements(elems...))
}

// Len returns the number of elements in the container.
func (c *Container[E]) Len() int {
	return c.tree.Len()
}

// Contains reports whether e is in the container.
func (c *Container[E]) Contains(e E) bool {
	_, ok := c.members[e]
	return ok
}

// KeyOf returns the key currently assigned to e, for export to external
// storage. Fails with ErrNotFound when e is not in the container.
func (c *Container[E]) KeyOf(e E) (orderkey.Key, error) {
	if !c.Contains(e) {
		return orderkey.Key{}, fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	return c.store.Key(e), nil
}

// All returns the elements in ascending key order. The sequence is lazy
// and restartable; mutating the container during a traversal is undefined
// behaviour.
func (c *Container[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		c.tree.Ascend(func(e E) bool {
			return yield(e)
		})
	}
}

// Keys returns the elements with their keys, in ascending key order, with
// the same laziness and caveats as [Container.All].
func (c *Container[E]) Keys() iter.Seq2[E, orderkey.Key] {
	return func(yield func(E, orderkey.Key) bool) {
		c.tree.Ascend(func(e E) bool {
			return yield(e, c.store.Key(e))
		})
	}
}

// ordered returns the elements as a slice in ascending key order.
func (c *Container[E]) ordered() []E {
	out := make([]E, 0, c.tree.Len())
	c.tree.Ascend(func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// movingSet indexes the elements of a single mutating call, rejecting
// duplicates: one comparable value cannot hold two positions.
func movingSet[E comparable](elems []E) (map[E]struct{}, error) {
	m := make(map[E]struct{}, len(elems))
	for _, e := range elems {
		if _, dup := m[e]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, e)
		}
		m[e] = struct{}{}
	}
	return m, nil
}

// place assigns freshly generated keys strictly between lower and upper to
// elems, in argument order. Keys are generated in full before any state is
// touched, so a generation failure leaves the container unchanged.
// Elements already present are moved.
func (c *Container[E]) place(elems []E, lower, upper orderkey.Key) error {
	keys, err := orderkey.Generate(len(elems), lower, upper)
	if err != nil {
		return err
	}
	// Detach every moving element while its old key still orders it.
	for _, e := range elems {
		if c.Contains(e) {
			c.tree.Delete(e)
		}
	}
	maxDigits := 0
	for i, e := range elems {
		c.store.SetKey(e, keys[i])
		c.members[e] = struct{}{}
		c.tree.ReplaceOrInsert(e)
		maxDigits = max(maxDigits, keys[i].Len())
	}
	c.log.Debug("assigned order keys",
		zap.Int("elements", len(elems)),
		zap.Int("maxDigits", maxDigits),
		zap.Stringer("lower", lower),
		zap.Stringer("upper", upper),
	)
	return nil
}

// reassign gives elems, in the given order, fresh minimal evenly spaced
// keys covering the whole key space. elems must be exactly the current
// membership.
func (c *Container[E]) reassign(elems []E) error {
	keys, err := orderkey.Generate(len(elems), orderkey.Key{}, orderkey.Key{})
	if err != nil {
		return err
	}
	c.tree.Clear(false)
	for i, e := range elems {
		c.store.SetKey(e, keys[i])
		c.tree.ReplaceOrInsert(e)
	}
	c.log.Debug("reassigned all order keys", zap.Int("elements", len(elems)))
	return nil
}

// lastKey returns the greatest key among elements outside moving, or the
// zero Key when there is none.
func (c *Container[E]) lastKey(moving map[E]struct{}) orderkey.Key {
	var k orderkey.Key
	c.tree.Descend(func(e E) bool {
		if _, skip := moving[e]; skip {
			return true
		}
		k = c.store.Key(e)
		return false
	})
	return k
}

// firstKey is the ascending counterpart of lastKey.
func (c *Container[E]) firstKey(moving map[E]struct{}) orderkey.Key {
	var k orderkey.Key
	c.tree.Ascend(func(e E) bool {
		if _, skip := moving[e]; skip {
			return true
		}
		k = c.store.Key(e)
		return false
	})
	return k
}

// keyAfter returns the key of the nearest element above anchor that is not
// moving, or the zero Key when there is none.
func (c *Container[E]) keyAfter(anchor E, moving map[E]struct{}) orderkey.Key {
	var k orderkey.Key
	c.tree.AscendGreaterOrEqual(anchor, func(e E) bool {
		if e == anchor {
			return true
		}
		if _, skip := moving[e]; skip {
			return true
		}
		k = c.store.Key(e)
		return false
	})
	return k
}

// keyBefore is the descending counterpart of keyAfter.
func (c *Container[E]) keyBefore(anchor E, moving map[E]struct{}) orderkey.Key {
	var k orderkey.Key
	c.tree.DescendLessOrEqual(anchor, func(e E) bool {
		if e == anchor {
			return true
		}
		if _, skip := moving[e]; skip {
			return true
		}
		k = c.store.Key(e)
		return false
	})
	return k
}
