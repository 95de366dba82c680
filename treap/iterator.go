// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// order identifies the sequence in which an iterator visits nodes.
type order int

const (
	// ascending visits the left subtree, the node, then the right subtree.
	ascending order = iota

	// descending visits the right subtree, the node, then the left subtree.
	descending

	// preOrder visits the node, the left subtree, then the right subtree.
	preOrder
)

// Iterator represents a forward-only iterator over the keys of a treap.  It is
// created positioned before the first key, so Next must be called before the
// first call to Key.
//
// The iterator holds an explicit stack of the nodes it still has to visit, so
// each step costs O(1) amortized and the stack never holds more than the height
// of the treap.  Once Next has returned false the iterator stays exhausted.
//
// Mutating the treap while an iterator over it is in use results in undefined
// behavior.  The iterator may return keys that were removed, skip keys or
// return keys out of order.
type Iterator[K any] struct {
	order   order          // The order keys are visited in
	node    *treapNode[K]  // The node the iterator is positioned at
	parents parentStack[K] // The nodes that are still to be visited
}

// newIterator returns an iterator over the subtree rooted at the passed node.
// The stack is primed with the path to the first node to visit before anything
// is returned.
func newIterator[K any](root *treapNode[K], o order) *Iterator[K] {
	iter := &Iterator[K]{order: o}
	switch o {
	case ascending:
		iter.parents.pushLeftSpine(root)
	case descending:
		iter.parents.pushRightSpine(root)
	case preOrder:
		if root != nil {
			iter.parents.Push(root)
		}
	}
	return iter
}

// Next moves the iterator to the next key and returns false when the iterator
// is exhausted.
func (iter *Iterator[K]) Next() bool {
	node := iter.parents.Pop()
	iter.node = node
	if node == nil {
		return false
	}

	switch iter.order {
	case ascending:
		// The next node is the left-most node down the right subtree.
		iter.parents.pushLeftSpine(node.right)

	case descending:
		// The next node is the right-most node down the left subtree.
		iter.parents.pushRightSpine(node.left)

	case preOrder:
		// Push the right child first so the left subtree is visited
		// before it.
		if node.right != nil {
			iter.parents.Push(node.right)
		}
		if node.left != nil {
			iter.parents.Push(node.left)
		}
	}
	return true
}

// Key returns the key the iterator is positioned at, or the zero value of K
// when the iterator is newly created or exhausted.
func (iter *Iterator[K]) Key() K {
	if iter.node == nil {
		var zero K
		return zero
	}
	return iter.node.key
}

// Valid indicates whether the iterator is positioned at a valid key.  It will
// be considered invalid when the iterator is newly created or exhausted.
func (iter *Iterator[K]) Valid() bool {
	return iter.node != nil
}

// Iterator returns a new iterator that visits the keys of the treap in
// ascending order.  Every call returns an independent iterator starting from
// the smallest key.
func (t *Treap[K]) Iterator() *Iterator[K] {
	return newIterator(t.root, ascending)
}

// ReverseIterator returns a new iterator that visits the keys of the treap in
// descending order.
func (t *Treap[K]) ReverseIterator() *Iterator[K] {
	return newIterator(t.root, descending)
}

// PreOrderIterator returns a new iterator that visits every node of the treap
// before the nodes of its subtrees, left subtree first.  Since the shape of the
// treap depends on the random node priorities, the resulting key order is
// effectively shuffled while still being deterministic for a given treap.
func (t *Treap[K]) PreOrderIterator() *Iterator[K] {
	return newIterator(t.root, preOrder)
}
