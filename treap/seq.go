// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "iter"

// seq adapts the iterators produced by newIter to a range-over-func sequence.
func seq[K any](newIter func() *Iterator[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := newIter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// All returns a sequence of the keys in ascending order.
func (t *Treap[K]) All() iter.Seq[K] {
	return seq(t.Iterator)
}

// Backward returns a sequence of the keys in descending order.
func (t *Treap[K]) Backward() iter.Seq[K] {
	return seq(t.ReverseIterator)
}

// PreOrder returns a sequence of the keys in pre-order.
func (t *Treap[K]) PreOrder() iter.Seq[K] {
	return seq(t.PreOrderIterator)
}
