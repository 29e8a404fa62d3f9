package orderkey

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, digits ...byte) Key {
	t.Helper()
	k, err := New(digits)
	require.NoError(t, err)
	return k
}

func TestGenerateExact(t *testing.T) {
	type args struct {
		count        int
		lower, upper []byte // nil means unbounded
	}
	tests := []struct {
		name string
		args args
		want [][]byte
	}{
		{"one unbounded key is the midpoint", args{1, nil, nil}, [][]byte{{128}}},
		{"two unbounded keys are the thirds", args{2, nil, nil}, [][]byte{{85}, {170}}},
		{"three unbounded keys quarter the space", args{3, nil, nil}, [][]byte{{64}, {128}, {192}}},
		{"adjacent bounds force a second digit", args{1, []byte{5}, []byte{6}}, [][]byte{{5, 128}}},
		{"prefix bound with nothing above forces depth", args{1, []byte{5}, []byte{5, 1}}, [][]byte{{5, 0, 128}}},
		{"room between sibling digits stays direct", args{1, []byte{5, 10}, []byte{5, 20}}, [][]byte{{5, 15}}},
		{"lower bound only", args{1, []byte{10}, nil}, [][]byte{{133}}},
		{"upper bound only", args{1, nil, []byte{10}}, [][]byte{{5}}},
		{"overflow past a two-digit gap", args{2, []byte{5, 10}, []byte{7}}, [][]byte{{6}, {6, 128}}},
		{"zero count yields nothing", args{0, []byte{5}, []byte{6}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lower, upper Key
			if tt.args.lower != nil {
				lower = mustKey(t, tt.args.lower...)
			}
			if tt.args.upper != nil {
				upper = mustKey(t, tt.args.upper...)
			}
			got, err := Generate(tt.args.count, lower, upper)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, digits := range tt.want {
				assert.Equal(t, digits, got[i].Digits(), "key %d", i)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	five, six := mustKey(t, 5), mustKey(t, 6)

	_, err := Generate(-1, Key{}, Key{})
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Generate(1, six, five)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = Generate(1, five, five)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	// Bound order is part of the contract even when no key is requested.
	_, err = Generate(0, six, five)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

// checkKeys verifies the invariants every generated batch must satisfy:
// exact count, well-formed keys, strictly ascending, strictly inside the
// bounds.
func checkKeys(t *testing.T, keys []Key, count int, lower, upper Key) {
	t.Helper()
	require.Len(t, keys, count)
	for i, k := range keys {
		require.False(t, k.IsZero(), "key %d is empty", i)
		digits := k.Digits()
		require.NotZero(t, digits[len(digits)-1], "key %d has a trailing zero: %v", i, k)
		if i > 0 {
			require.Negative(t, keys[i-1].Compare(k),
				"keys %d and %d out of order: %v, %v", i-1, i, keys[i-1], k)
		}
		if !lower.IsZero() {
			require.Negative(t, lower.Compare(k), "key %d not above the lower bound: %v", i, k)
		}
		if !upper.IsZero() {
			require.Negative(t, k.Compare(upper), "key %d not below the upper bound: %v", i, k)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	bounds := []struct {
		name         string
		lower, upper Key
	}{
		{"unbounded", Key{}, Key{}},
		{"lower only", mustKey(t, 200), Key{}},
		{"high lower only", mustKey(t, 255, 255, 3), Key{}},
		{"upper only", Key{}, mustKey(t, 1)},
		{"low upper only", Key{}, mustKey(t, 0, 0, 2)},
		{"wide", mustKey(t, 10), mustKey(t, 240)},
		{"adjacent digits", mustKey(t, 10), mustKey(t, 11)},
		{"shared prefix", mustKey(t, 7, 7, 10), mustKey(t, 7, 7, 10, 4)},
		{"tight sub gap", mustKey(t, 7, 255), mustKey(t, 8, 0, 1)},
		{"deep bounds", mustKey(t, 1, 2, 3, 4, 5), mustKey(t, 1, 2, 3, 4, 6)},
	}
	counts := []int{1, 2, 3, 10, 255, 256, 300, 1000}
	for _, b := range bounds {
		for _, count := range counts {
			t.Run(fmt.Sprintf("%s/%d", b.name, count), func(t *testing.T) {
				keys, err := Generate(count, b.lower, b.upper)
				require.NoError(t, err)
				checkKeys(t, keys, count, b.lower, b.upper)
			})
		}
	}
}

// With no bounds, n keys never need more than ceil(log256(n)) digits.
func TestGenerateCompactness(t *testing.T) {
	tests := []struct {
		count  int
		maxLen int
	}{
		{1, 1},
		{100, 1},
		{255, 1},
		{1000, 2},
		{65535, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d keys", tt.count), func(t *testing.T) {
			keys, err := Generate(tt.count, Key{}, Key{})
			require.NoError(t, err)
			checkKeys(t, keys, tt.count, Key{}, Key{})
			longest := 0
			for _, k := range keys {
				longest = max(longest, k.Len())
			}
			assert.LessOrEqual(t, longest, tt.maxLen)
		})
	}
}

// A constraining bound costs at most one extra digit of depth per digit of
// the bound that actually pinches the space.
func TestGenerateBoundDepth(t *testing.T) {
	lower, upper := mustKey(t, 5), mustKey(t, 6)
	keys, err := Generate(200, lower, upper)
	require.NoError(t, err)
	checkKeys(t, keys, 200, lower, upper)
	for _, k := range keys {
		assert.LessOrEqual(t, k.Len(), 3, "key %v deeper than the gap warrants", k)
	}
}

func TestGenerateSuccessiveInsertions(t *testing.T) {
	// Simulate the worst case for key growth: always inserting in the
	// same spot. Each round generates one key between the previous key
	// and its right neighbour; depth must grow only logarithmically
	// (roughly one digit per 255 same-spot insertions, fewer in practice
	// because of the even spread).
	left, err := Generate(2, Key{}, Key{})
	require.NoError(t, err)
	lower, upper := left[0], left[1]
	for i := 0; i < 300; i++ {
		keys, err := Generate(1, lower, upper)
		require.NoError(t, err)
		checkKeys(t, keys, 1, lower, upper)
		lower = keys[0]
	}
	assert.LessOrEqual(t, lower.Len(), 60, "same-spot insertion grew keys too fast: %v", lower)
}
