package ordered

import "fmt"

// Remove removes the given elements. Fails with ErrNotFound when any of
// them is absent, in which case nothing is removed.
func (c *Container[E]) Remove(elems ...E) error {
	for _, e := range elems {
		if !c.Contains(e) {
			return fmt.Errorf("%w: %v", ErrNotFound, e)
		}
	}
	for _, e := range elems {
		c.drop(e)
	}
	return nil
}

// Discard removes whichever of the given elements are present, silently
// ignoring the rest.
func (c *Container[E]) Discard(elems ...E) {
	for _, e := range elems {
		if c.Contains(e) {
			c.drop(e)
		}
	}
}

func (c *Container[E]) drop(e E) {
	c.tree.Delete(e)
	delete(c.members, e)
	c.store.Forget(e)
}
