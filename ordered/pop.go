package ordered

// PopItem removes and returns the greatest element when last is true, or
// the smallest otherwise. Fails with ErrEmptyContainer on an empty
// container.
func (c *Container[E]) PopItem(last bool) (E, error) {
	var e E
	var ok bool
	if last {
		e, ok = c.tree.DeleteMax()
	} else {
		e, ok = c.tree.DeleteMin()
	}
	if !ok {
		return e, ErrEmptyContainer
	}
	delete(c.members, e)
	c.store.Forget(e)
	return e, nil
}

// PopItems removes and returns up to n extreme elements, most extreme
// first, so PopItems(2, true) on a < b < c < d returns [d, c]. An
// under-filled container yields fewer elements without error; only a
// negative n fails, with ErrNegativeCount.
func (c *Container[E]) PopItems(n int, last bool) ([]E, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]E, 0, min(n, c.Len()))
	for range n {
		e, err := c.PopItem(last)
		if err != nil {
			break
		}
		out = append(out, e)
	}
	return out, nil
}
