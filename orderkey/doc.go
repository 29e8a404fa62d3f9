package orderkey

/*

# Order keys for gap-free reordering

This package implements the key half of the classic fractional indexing
problem: maintaining a total order over a collection that supports inserting
at an arbitrary position, without renumbering everything on each insert.

Instead of integer indices, every element is assigned a Key: a variable
length sequence of byte digits compared lexicographically, with a shorter
key sorting before any of its extensions. Between any two distinct keys
there are infinitely many others, so an insert between two neighbours never
disturbs anything else - it only mints a new key.

In summary,

  - A Key is a non-empty sequence of digits in [0, 255] whose last digit is
    never zero. The trailing-zero rule matters because a key and that same
    key with a zero appended would occupy adjacent-but-distinct points for
    no benefit, and padded storage forms (see [Key.RightPad]) could not be
    distinguished from them.
  - Comparison is digit by digit; at the first difference the smaller digit
    wins, and a strict prefix sorts before its extensions. This is exactly
    the ordering of the raw digit bytes under bytes.Compare, so keys can be
    stored directly in a variable-length binary column and sorted there.
  - [Generate] produces any number of fresh keys strictly between two
    existing keys (or at an open end), as short as possible and spread as
    evenly as possible over the available space.

## How generation stays short

Generate works down a base-256 digit tree. At each level the first digits
of the two bounds delimit an inclusive digit range. Whenever the range has
enough single-digit slots for the whole request, every produced key is
"direct": the shared prefix plus one digit, which is what keeps keys at the
information-theoretic minimum length. Only when the request overflows the
level does the remainder recurse one digit deeper, and the overflow is
distributed across the digit range proportionally to how much room actually
exists under each digit, so a tight boundary does not end up crowded.

The even-spread placement deliberately leaves slightly more room on the low
side of every split. Appending after the last element is assumed to be the
most common mutation, and the bias keeps repeated appends from digging into
longer keys sooner than necessary.

## What this package is not

Keys are opaque sort keys, not indices: nothing about a key reveals an
element's position, and keys of unrelated collections are not comparable in
any meaningful way. The package performs no storage and no synchronization;
see the ordered package for the container that assigns keys to elements.

Repeated insertion at the same spot grows keys (by roughly one digit per
255 same-spot inserts). Reclaiming that growth is a bulk operation over the
whole collection - the ordered package exposes it as Recompute - rather
than anything automatic here.

*/
