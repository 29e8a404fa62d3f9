package orderkey

// spread places k values as evenly as possible among the digit positions
// [mn, mx] inclusive, returning them in ascending order. The caller must
// ensure k <= mx-mn+1.
//
// The pivot of every split is the midpoint rounded down, and after taking
// the pivot the right side receives the smaller or equal share. Both rules
// bias the leftover room toward the low end of the range, because appending
// after the last element is assumed to be more frequent than prepending.
//
// k == 2 is special-cased at the thirds of the range: splitting two values
// around a midpoint pivot would otherwise leave them lopsided.
func spread(k, mn, mx int) []int {
	if k == 0 {
		return nil
	}
	n := mx - mn + 1
	switch k {
	case 1:
		return []int{mn + n/2}
	case 2:
		return []int{mn + (n-1)/3, mn + (2*n-1)/3}
	}
	pivot := mn + n/2
	right := (k - 1) / 2
	left := k - 1 - right
	out := spread(left, mn, pivot-1)
	out = append(out, pivot)
	return append(out, spread(right, pivot+1, mx)...)
}
