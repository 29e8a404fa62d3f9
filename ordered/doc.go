package ordered

/*

# Reorderable containers

This package provides [Container], a totally ordered collection of elements
whose order is carried by orderkey keys rather than by indices. Moving or
inserting an element means minting a key between its new neighbours, so
position-relative mutation never disturbs the rest of the collection.

In summary,

  - Elements are arbitrary comparable values. Each present element is
    assigned exactly one key; the observable order of the container is the
    ascending key order, and the keys themselves are an implementation
    detail unless explicitly exported for storage.
  - All position-relative mutations (PutBetween, PutAtEnd, PutNextTo)
    derive boundary keys from the neighbouring elements and hand the gap
    to the key generator. Bulk operations (Recompute, SortWith and
    friends) reassign fresh, minimal, evenly spaced keys wholesale.
  - The container is the sole writer of keys. Where keys live is a
    construction-time choice of storage collaborator: an owned map, or a
    getter/setter pair over caller-owned objects (see [KeyStore],
    [WithAccessors]).

Repeated insertion at the same spot grows keys; that is the documented
cost of never renumbering. [Container.Recompute] compacts the whole
container back to minimal keys while preserving the order exactly. There
is no automatic rebalancing.

A Container is not safe for concurrent mutation. Every operation completes
synchronously; callers needing concurrent access must serialize it
themselves. Mutating the container in the middle of an [Container.All]
traversal is undefined behaviour, as for ordinary collections.

*/
