package ordered

import (
	"fmt"

	"github.com/Gouvernathor/go-orderbitfield/orderkey"
)

// PutBetween inserts elems, in the given order, with keys strictly between
// the current keys of start and end. Both boundaries must be present and
// distinct; they may be given in either order. When other elements already
// sit between non-adjacent boundaries, the relative order of elems against
// those bystanders is unspecified; use [Container.PutNextTo] for a precise
// splice.
//
// Elements of elems already in the container are moved. Fails with
// ErrSameBoundary, ErrNotFound or ErrDuplicateElement without mutating
// anything.
func (c *Container[E]) PutBetween(start, end E, elems ...E) error {
	if start == end {
		return fmt.Errorf("%w: %v", ErrSameBoundary, start)
	}
	if !c.Contains(start) {
		return fmt.Errorf("%w: %v", ErrNotFound, start)
	}
	if !c.Contains(end) {
		return fmt.Errorf("%w: %v", ErrNotFound, end)
	}
	if _, err := movingSet(elems); err != nil {
		return err
	}
	lower, upper := c.store.Key(start), c.store.Key(end)
	if upper.Less(lower) {
		lower, upper = upper, lower
	}
	return c.place(elems, lower, upper)
}

// PutAtEnd inserts elems, in the given order, after every other element
// when atLast is true, or before every other element otherwise. Elements
// of elems already in the container are moved: the boundary key is taken
// from the extreme element that is not itself being inserted. When nothing
// else is in the container the elements receive fresh unbounded keys.
func (c *Container[E]) PutAtEnd(atLast bool, elems ...E) error {
	moving, err := movingSet(elems)
	if err != nil {
		return err
	}
	if atLast {
		return c.place(elems, c.lastKey(moving), orderkey.Key{})
	}
	return c.place(elems, orderkey.Key{}, c.firstKey(moving))
}

// PutNextTo inserts elems, in the given order, immediately after anchor
// when after is true, or immediately before it otherwise. The gap is
// bounded by the anchor's key and its nearest neighbour on the requested
// side, neighbours being considered among the elements not themselves
// being inserted.
//
// The anchor itself may appear in elems, re-inserting it alongside the
// others; its stale key then serves only to locate the gap, and the
// nearest non-moving elements on both sides bound it instead.
//
// Fails with ErrNotFound when anchor is absent, or ErrDuplicateElement,
// without mutating anything.
func (c *Container[E]) PutNextTo(anchor E, after bool, elems ...E) error {
	if !c.Contains(anchor) {
		return fmt.Errorf("%w: %v", ErrNotFound, anchor)
	}
	moving, err := movingSet(elems)
	if err != nil {
		return err
	}
	_, anchorMoving := moving[anchor]
	switch {
	case anchorMoving:
		return c.place(elems, c.keyBefore(anchor, moving), c.keyAfter(anchor, moving))
	case after:
		return c.place(elems, c.store.Key(anchor), c.keyAfter(anchor, moving))
	default:
		return c.place(elems, c.keyBefore(anchor, moving), c.store.Key(anchor))
	}
}
