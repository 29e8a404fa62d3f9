package orderkey

import (
	"bytes"
	"errors"
)

var (
	ErrInvalidBounds = errors.New("the lower bound must sort strictly before the upper bound")
	ErrInvalidCount  = errors.New("the key count must not be negative")
)

// topValue is one past the largest digit value. It never appears as a
// digit; it is the open end of the digit space when weighting how much
// room is left under a boundary digit.
const topValue = 256

// Generate returns count distinct keys in ascending order, each strictly
// greater than lower and strictly less than upper. A zero Key leaves the
// corresponding side unbounded. A count of zero yields no keys and no
// error.
//
// The produced keys are as short as the available space permits and are
// spread as evenly as the space permits, so that later insertions between
// them have room on either side. Generating n keys with no bounds never
// produces a key longer than ceil(log256(n)) digits; each bound that
// actually pinches the space can add at most one digit of depth per digit
// of the bound.
//
// Fails with ErrInvalidCount for a negative count, and with
// ErrInvalidBounds when both bounds are given out of order. Bound order is
// checked even for a zero count.
func Generate(count int, lower, upper Key) ([]Key, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	lo := lower.digits
	var hi []byte // nil while unbounded above
	if !upper.IsZero() {
		hi = upper.digits
	}

	// The recursion works on the bounds with their shared prefix stripped,
	// and stamps the prefix back onto every key it emits.
	var prefix []byte
	if len(lo) > 0 && hi != nil {
		if bytes.Compare(lo, hi) >= 0 {
			return nil, ErrInvalidBounds
		}
		p := sharedLen(lo, hi)
		prefix, lo, hi = lo[:p], lo[p:], hi[p:]
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]Key, 0, count)
	between(count, prefix, lo, hi, func(digits []byte) {
		out = append(out, Key{digits: digits})
	})
	return out, nil
}

// between emits count keys strictly inside the bounds, every one a proper
// extension of prefix. lo is the lower bound with prefix stripped; when
// empty, any proper extension of prefix is admissible. hi is the stripped
// upper bound; nil means unbounded above. hi is never empty: an empty
// upper remainder would admit nothing, and no caller recurses into one.
func between(count int, prefix, lo, hi []byte, emit func([]byte)) {
	start := 0
	if len(lo) > 0 {
		start = int(lo[0])
	}
	end := topValue - 1
	if hi != nil {
		end = int(hi[0])
	}

	// last is the largest digit usable at this level, as a direct key and
	// as a branch for longer keys. The end digit only qualifies while the
	// upper bound retains a suffix under it: with nothing below an empty
	// remainder, prefix+end would collide with the bound itself.
	last := end
	if hi != nil && len(hi) == 1 {
		last = end - 1
	}

	// Direct keys are prefix plus a single digit from (start, last]. When
	// they can satisfy the whole request no recursion happens at all,
	// which is what keeps generated keys minimal-length.
	if nDirect := last - start; count <= nDirect {
		for _, d := range spread(count, start+1, last) {
			emit(withDigit(prefix, byte(d)))
		}
		return
	}

	// Overflow: every direct digit is consumed as a key, and the remainder
	// recurses one digit deeper, split over [start, last] in proportion to
	// the room actually available under each digit. Interior digits have
	// the full digit space below them; a digit still constrained by a
	// bound only has the slice between the bound's next digit and the open
	// end of the space.
	remaining := count - (last - start)
	nd := last - start + 1
	weights := make([]int, nd)
	sum := 0
	for i := range weights {
		w := topValue
		switch d := start + i; {
		case d == start && len(lo) > 1:
			w = topValue - int(lo[1])
		case d == end && hi != nil && len(hi) > 1:
			w = int(hi[1])
		}
		weights[i] = w
		sum += w
	}
	if sum == 0 {
		// Every usable digit sits tight against a bound. The space below
		// is still unbounded in depth, so fall back to a uniform split.
		for i := range weights {
			weights[i] = 1
		}
		sum = nd
	}

	counts := make([]int, nd)
	assigned := 0
	for i, w := range weights {
		n := remaining * w / sum
		counts[i] = n
		assigned += n
	}
	// Truncation leaves fewer than nd keys over; place them one per digit.
	for _, d := range spread(remaining-assigned, start, last) {
		counts[d-start]++
	}

	for d := start; d <= last; d++ {
		if d > start {
			emit(withDigit(prefix, byte(d)))
		}
		n := counts[d-start]
		if n == 0 {
			continue
		}
		var sublo, subhi []byte
		if d == start && len(lo) > 0 {
			sublo = lo[1:]
		}
		if d == end && hi != nil {
			subhi = hi[1:]
		}
		between(n, withDigit(prefix, byte(d)), sublo, subhi, emit)
	}
}

func withDigit(prefix []byte, d byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = d
	return out
}

func sharedLen(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
