// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements a treap data structure that is used to hold a set of
ordered keys using a combination of binary search tree and heap semantics.  It
is a self-organizing and randomized data structure that doesn't require complex
operations to maintain balance.  Search, insert, and delete operations are all
O(log n) expected time.

Every node carries a priority that is drawn once, when the node is created,
from the random source the treap was constructed with, and the tree is kept as
a max-heap on those priorities.  The expected logarithmic depth depends
entirely on the priorities being unpredictable to whoever chooses the keys, so
production callers should pass a nil source, which selects the randomly seeded
process-wide generator.  Tests may pass a seeded source to obtain reproducible
shapes.

In addition to the usual set operations, a treap can be split into two treaps
around a key boundary and two treaps with non-interleaving key ranges can be
merged back into one.  Both operations only walk a single root-to-leaf path and
reuse the existing nodes, so they run in O(log n) expected time.  A split
places keys strictly less than the boundary in the left treap and all other
keys, including one equal to the boundary, in the right treap.  The treap that
was split and the treaps that were merged are left empty; their nodes now
belong to the returned treaps.

Traversal is provided by iterators that keep an explicit stack of parent nodes
rather than recursing, so walking even a degenerate tree never grows the call
stack.  Ascending, descending and pre-order iterators are available along with
range-over-func adapters for each.

A treap is not safe for concurrent mutation and mutating a treap while an
iterator over it is live leaves the iterator in an undefined state.  Callers
that share a treap between goroutines must provide their own locking.
*/
package treap
