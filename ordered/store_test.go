package ordered

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Gouvernathor/go-orderbitfield/orderkey"
)

type task struct {
	name string
	rank orderkey.Key
}

func taskAccessors() (func(*task) orderkey.Key, func(*task, orderkey.Key)) {
	get := func(t *task) orderkey.Key { return t.rank }
	set := func(t *task, k orderkey.Key) { t.rank = k }
	return get, set
}

func TestAccessorStorage(t *testing.T) {
	a := &task{name: "a"}
	b := &task{name: "b"}
	c := &task{name: "c"}

	get, set := taskAccessors()
	cont, err := New(WithAccessors(get, set), WithElements(a, b, c))
	assert.NilError(t, err)

	got := slices.Collect(cont.All())
	assert.DeepEqual(t, []string{"a", "b", "c"}, names(got))

	// Keys live on the caller's objects, nowhere else.
	assert.Assert(t, !a.rank.IsZero())
	assert.Assert(t, a.rank.Less(b.rank))
	assert.Assert(t, b.rank.Less(c.rank))

	// Mutations rewrite the objects' key fields.
	assert.NilError(t, cont.PutBetween(a, b, &task{name: "x"}))
	assert.NilError(t, cont.PutAtEnd(true, a))
	assert.DeepEqual(t, []string{"x", "b", "c", "a"}, names(slices.Collect(cont.All())))
	assert.Assert(t, c.rank.Less(a.rank))
}

// The container must write an element's key before it ever reads it, so
// the key field may start out uninitialized.
func TestAccessorWriteBeforeRead(t *testing.T) {
	written := make(map[*task]bool)
	get := func(e *task) orderkey.Key {
		if !written[e] {
			t.Fatalf("key of %q read before first write", e.name)
		}
		return e.rank
	}
	set := func(e *task, k orderkey.Key) {
		written[e] = true
		e.rank = k
	}

	a, b := &task{name: "a"}, &task{name: "b"}
	cont, err := New(WithAccessors(get, set), WithElements(a, b))
	assert.NilError(t, err)
	assert.NilError(t, cont.PutNextTo(a, true, &task{name: "n"}))
	assert.Equal(t, 3, cont.Len())
}

func TestAdoptKeyedElements(t *testing.T) {
	mk := func(name string, digits ...byte) *task {
		k, err := orderkey.New(digits)
		assert.NilError(t, err)
		return &task{name: name, rank: k}
	}
	// Keys were assigned in a previous life, e.g. read back from storage;
	// adoption must preserve them bit for bit.
	a := mk("a", 10)
	b := mk("b", 20)
	c := mk("c", 20, 5)

	get, set := taskAccessors()
	cont, err := New(WithAccessors(get, set), WithKeyedElements(c, a, b))
	assert.NilError(t, err)

	assert.DeepEqual(t, []string{"a", "b", "c"}, names(slices.Collect(cont.All())))
	assert.DeepEqual(t, []byte{10}, a.rank.Digits())
	assert.DeepEqual(t, []byte{20}, b.rank.Digits())
	assert.DeepEqual(t, []byte{20, 5}, c.rank.Digits())

	// Adopted elements take part in mutation like any other.
	assert.NilError(t, cont.PutBetween(a, b, mk("m", 15)))
	assert.DeepEqual(t, []string{"a", "m", "b", "c"}, names(slices.Collect(cont.All())))

	assert.NilError(t, cont.Recompute())
	assert.DeepEqual(t, []string{"a", "m", "b", "c"}, names(slices.Collect(cont.All())))
	assert.Equal(t, 1, a.rank.Len())
}

func TestAdoptKeyedElementsRejectsDuplicates(t *testing.T) {
	a := &task{name: "a"}
	get, set := taskAccessors()
	_, err := New(WithAccessors(get, set), WithKeyedElements(a, a))
	assert.ErrorIs(t, err, ErrDuplicateElement)
}

func names(tasks []*task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.name
	}
	return out
}
