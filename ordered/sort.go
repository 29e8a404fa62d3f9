package ordered

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Gouvernathor/go-orderbitfield/orderkey"
)

// Recompute reassigns every element a fresh, minimal, evenly spaced key,
// preserving the current order exactly. This is the compaction that
// reclaims the key growth caused by repeated same-spot insertion.
func (c *Container[E]) Recompute() error {
	return c.reassign(c.ordered())
}

// SortWith stably reorders the whole container by cmp and recomputes every
// key. Elements comparing equal under cmp keep their prior relative order.
func (c *Container[E]) SortWith(cmp func(a, b E) int) error {
	elems := c.ordered()
	slices.SortStableFunc(elems, cmp)
	return c.reassign(elems)
}

// SortTrancheWith is [Container.SortWith] restricted to the elements
// strictly between start and end, which must be present when given; nil
// leaves the corresponding side of the tranche unbounded. The boundary
// elements and everything outside the tranche keep their keys untouched.
//
// Fails with ErrNotFound for an absent boundary, or with
// orderkey.ErrInvalidBounds when end does not sort after start, without
// mutating anything.
func (c *Container[E]) SortTrancheWith(start, end *E, cmp func(a, b E) int) error {
	var lower, upper orderkey.Key
	if start != nil {
		if !c.Contains(*start) {
			return fmt.Errorf("%w: %v", ErrNotFound, *start)
		}
		lower = c.store.Key(*start)
	}
	if end != nil {
		if !c.Contains(*end) {
			return fmt.Errorf("%w: %v", ErrNotFound, *end)
		}
		upper = c.store.Key(*end)
	}

	tranche := c.tranche(start, end)
	slices.SortStableFunc(tranche, cmp)
	return c.place(tranche, lower, upper)
}

// tranche collects the elements strictly between the optional boundary
// elements, in ascending key order.
func (c *Container[E]) tranche(start, end *E) []E {
	var out []E
	take := func(e E) bool {
		if end != nil && e == *end {
			return false
		}
		out = append(out, e)
		return true
	}
	if start == nil {
		c.tree.Ascend(take)
		return out
	}
	c.tree.AscendGreaterOrEqual(*start, func(e E) bool {
		if e == *start {
			return true
		}
		return take(e)
	})
	return out
}

// Sort stably reorders the container by the natural order of its elements
// and recomputes every key.
func Sort[E cmp.Ordered](c *Container[E]) error {
	return c.SortWith(cmp.Compare)
}

// SortBy stably reorders the container by the sort key keyFn derives from
// each element, then recomputes every key.
func SortBy[E comparable, K cmp.Ordered](c *Container[E], keyFn func(E) K) error {
	return c.SortWith(func(a, b E) int {
		return cmp.Compare(keyFn(a), keyFn(b))
	})
}

// SortTranche is [Sort] restricted to the open interval between start and
// end, like [Container.SortTrancheWith].
func SortTranche[E cmp.Ordered](c *Container[E], start, end *E) error {
	return c.SortTrancheWith(start, end, cmp.Compare)
}

// SortTrancheBy is [SortBy] restricted to the open interval between start
// and end, like [Container.SortTrancheWith].
func SortTrancheBy[E comparable, K cmp.Ordered](c *Container[E], start, end *E, keyFn func(E) K) error {
	return c.SortTrancheWith(start, end, func(a, b E) int {
		return cmp.Compare(keyFn(a), keyFn(b))
	})
}
