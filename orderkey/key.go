package orderkey

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyKey      = errors.New("an order key requires at least one digit")
	ErrTrailingZero  = errors.New("an order key must not end with a zero digit")
	ErrNoFixedLength = errors.New("the key has no declared fixed length")
	ErrPadTooShort   = errors.New("the pad target is shorter than the key")
	ErrFixedTooShort = errors.New("the declared fixed length is shorter than the key")
)

// Key is an order key: a non-empty sequence of byte digits whose last digit
// is never zero. Keys are immutable values with a strict total order, see
// [Key.Compare]. The zero Key is not a valid key; it stands for an absent
// bound in [Generate] and an unassigned key elsewhere.
//
// A Key may additionally declare a fixed length, the width of the storage
// column it is destined for. The declared length caps the digit count and
// enables [Key.RightPad] and [Key.Concat]; it has no effect on ordering.
type Key struct {
	digits []byte
	fixed  int // 0 means variable length
}

// New returns a Key over a copy of digits.
//
// Fails with ErrEmptyKey or ErrTrailingZero when digits violate the key
// invariants.
func New(digits []byte) (Key, error) {
	if len(digits) == 0 {
		return Key{}, ErrEmptyKey
	}
	if digits[len(digits)-1] == 0 {
		return Key{}, ErrTrailingZero
	}
	return Key{digits: bytes.Clone(digits)}, nil
}

// NewFixed is [New] for a key destined for a fixed-width column. The key
// itself may be shorter than fixed; [Key.RightPad] produces the full-width
// storage image.
func NewFixed(digits []byte, fixed int) (Key, error) {
	k, err := New(digits)
	if err != nil {
		return Key{}, err
	}
	if fixed < len(digits) {
		return Key{}, fmt.Errorf("%w: %d < %d", ErrFixedTooShort, fixed, len(digits))
	}
	k.fixed = fixed
	return k, nil
}

// IsZero reports whether k is the zero Key (no digits assigned).
func (k Key) IsZero() bool {
	return len(k.digits) == 0
}

// Len returns the number of digits.
func (k Key) Len() int {
	return len(k.digits)
}

// FixedLen returns the declared fixed length, if any.
func (k Key) FixedLen() (int, bool) {
	return k.fixed, k.fixed > 0
}

// Digits returns a copy of the raw digit bytes. This is the external
// representation of the key: stored as-is in a variable-length binary
// column, the column's natural byte order is the key order.
func (k Key) Digits() []byte {
	return bytes.Clone(k.digits)
}

// Compare orders keys digit by digit; at the first differing position the
// smaller digit wins, and a strict prefix sorts before its extensions. It
// returns -1, 0 or 1 in the manner of bytes.Compare.
func (k Key) Compare(o Key) int {
	return bytes.Compare(k.digits, o.digits)
}

// Less reports whether k sorts strictly before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// Equal reports whether k and o have identical digits. The declared fixed
// length does not participate in equality.
func (k Key) Equal(o Key) bool {
	return bytes.Equal(k.digits, o.digits)
}

// CommonPrefix returns the longest run of leading digits shared by a and b.
// The caller must ensure a <= b; the result may be empty and is not itself
// a well formed key.
func CommonPrefix(a, b Key) []byte {
	n := min(len(a.digits), len(b.digits))
	i := 0
	for i < n && a.digits[i] == b.digits[i] {
		i++
	}
	return bytes.Clone(a.digits[:i])
}

// RightPad returns the key's digits extended with zero digits to the
// declared fixed length. The result is a storage image, not a key: it
// deliberately breaks the trailing-zero invariant and compares differently
// from the key it was made from, so it must only be written to fixed-width
// storage or displayed, never fed back into comparisons.
//
// Fails with ErrNoFixedLength when the key declares no fixed length.
func (k Key) RightPad() ([]byte, error) {
	if k.fixed == 0 {
		return nil, ErrNoFixedLength
	}
	return k.RightPadTo(k.fixed)
}

// RightPadTo is [Key.RightPad] with an explicit target length. Fails with
// ErrPadTooShort when target is less than the key's own length.
func (k Key) RightPadTo(target int) ([]byte, error) {
	if target < len(k.digits) {
		return nil, fmt.Errorf("%w: %d < %d", ErrPadTooShort, target, len(k.digits))
	}
	padded := make([]byte, target)
	copy(padded, k.digits)
	return padded, nil
}

// Concat builds a composite key: k right-padded to its declared fixed
// length, followed by o's digits. Composites order first by k and then by
// o, which is what makes "parent rank ++ child rank" schemes work over a
// single column. The result declares a fixed length only when o does.
//
// Fails with ErrNoFixedLength when k declares no fixed length; without it
// the boundary between the two halves would be ambiguous.
func (k Key) Concat(o Key) (Key, error) {
	if k.fixed == 0 {
		return Key{}, ErrNoFixedLength
	}
	if o.IsZero() {
		return Key{}, ErrEmptyKey
	}
	left, err := k.RightPad()
	if err != nil {
		return Key{}, err
	}
	out := Key{digits: append(left, o.digits...)}
	if o.fixed > 0 {
		out.fixed = k.fixed + o.fixed
	}
	return out, nil
}

// String renders the digits as dot-separated decimal, e.g. "5.128". The
// zero Key renders as "<none>".
func (k Key) String() string {
	if k.IsZero() {
		return "<none>"
	}
	var b strings.Builder
	for i, d := range k.digits {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(d)))
	}
	return b.String()
}
