// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"
	"math/rand/v2"
)

// Treap represents a treap data structure which is used to hold ordered keys
// using a combination of binary search tree and heap semantics.  It is a
// self-organizing and randomized data structure that doesn't require complex
// operations to maintain balance.  Search, insert, and delete operations are
// all O(log n) expected time.
type Treap[K any] struct {
	root  *treapNode[K]
	count int

	// compare returns a negative number when a < b, zero when a == b and
	// a positive number when a > b.
	compare func(a, b K) int

	// src provides the priorities of newly created nodes.
	src rand.Source
}

// New returns a new empty treap ordering its keys by their natural order.
// Node priorities are drawn from src, or from the process-wide random
// generator when src is nil.
func New[K cmp.Ordered](src rand.Source) *Treap[K] {
	return NewFunc(cmp.Compare[K], src)
}

// NewFunc returns a new empty treap ordering its keys with the passed compare
// function, which must define a total order.  Node priorities are drawn from
// src, or from the process-wide random generator when src is nil.
func NewFunc[K any](compare func(a, b K) int, src rand.Source) *Treap[K] {
	if src == nil {
		src = globalSource{}
	}
	return &Treap[K]{compare: compare, src: src}
}

// adopt returns a new treap that takes ownership of the passed root and shares
// the ordering and priority source of t.  The number of keys below the root is
// not tracked anywhere, so it is counted with a full traversal.
func (t *Treap[K]) adopt(root *treapNode[K]) *Treap[K] {
	return &Treap[K]{
		root:    root,
		count:   countNodes(root),
		compare: t.compare,
		src:     t.src,
	}
}

// countNodes returns the number of nodes reachable from the passed root.
func countNodes[K any](root *treapNode[K]) int {
	var count int
	for iter := newIterator(root, preOrder); iter.Next(); {
		count++
	}
	return count
}

// Len returns the number of keys stored in the treap.
func (t *Treap[K]) Len() int {
	return t.count
}

// IsEmpty returns whether or not the treap holds no keys.
func (t *Treap[K]) IsEmpty() bool {
	return t.count == 0
}

// get returns the treap node that contains the passed key and its parent.  When
// the found node is the root of the tree, the parent will be nil.  When the key
// does not exist, both the node and the parent will be nil.
func (t *Treap[K]) get(key K) (*treapNode[K], *treapNode[K]) {
	var parent *treapNode[K]
	for node := t.root; node != nil; {
		// Traverse left or right depending on the result of the
		// comparison.
		compareResult := t.compare(key, node.key)
		if compareResult < 0 {
			parent = node
			node = node.left
			continue
		}
		if compareResult > 0 {
			parent = node
			node = node.right
			continue
		}

		// The key exists.
		return node, parent
	}

	// A nil node was reached which means the key does not exist.
	return nil, nil
}

// Has returns whether or not the passed key exists.
func (t *Treap[K]) Has(key K) bool {
	node, _ := t.get(key)
	return node != nil
}

// Search returns the stored key that compares equal to the passed key and
// whether or not it was found.  This is useful when the compare function only
// looks at part of the key, since the returned key is the one that was
// inserted.
func (t *Treap[K]) Search(key K) (K, bool) {
	if node, _ := t.get(key); node != nil {
		return node.key, true
	}
	var zero K
	return zero, false
}

// Min returns the smallest key in the treap.  The second return value is false
// when the treap is empty.
func (t *Treap[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	node := t.root
	for node.left != nil {
		node = node.left
	}
	return node.key, true
}

// Max returns the largest key in the treap.  The second return value is false
// when the treap is empty.
func (t *Treap[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	node := t.root
	for node.right != nil {
		node = node.right
	}
	return node.key, true
}

// Height returns the number of nodes on the longest root-to-leaf path.  It
// walks the whole treap and is intended for diagnostics.
func (t *Treap[K]) Height() int {
	type entry struct {
		node  *treapNode[K]
		depth int
	}

	var height int
	var pending []entry
	if t.root != nil {
		pending = append(pending, entry{t.root, 1})
	}
	for len(pending) > 0 {
		e := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if e.depth > height {
			height = e.depth
		}
		if e.node.left != nil {
			pending = append(pending, entry{e.node.left, e.depth + 1})
		}
		if e.node.right != nil {
			pending = append(pending, entry{e.node.right, e.depth + 1})
		}
	}
	return height
}

// relinkGrandparent relinks the node into the treap after it has been rotated
// by changing the passed grandparent's left or right pointer, depending on
// where the old parent was, to point at the passed node.  Otherwise, when there
// is no grandparent, it means the node is now the root of the tree, so update
// it accordingly.
func (t *Treap[K]) relinkGrandparent(node, parent, grandparent *treapNode[K]) {
	// The node is now the root of the tree when there is no grandparent.
	if grandparent == nil {
		t.root = node
		return
	}

	// Relink the grandparent's left or right pointer based on which side
	// the old parent was.
	if grandparent.left == parent {
		grandparent.left = node
	} else {
		grandparent.right = node
	}
}

// Insert adds the passed key to the treap.  An Error with the ErrDuplicateKey
// code is returned, and the treap is left unmodified, when a key that compares
// equal is already present.
func (t *Treap[K]) Insert(key K) error {
	// The node is the root of the tree if there isn't already one.
	if t.root == nil {
		t.root = newTreapNode(key, t.src.Uint64())
		t.count = 1
		return nil
	}

	// Find the binary tree insertion point and construct a list of parents
	// while doing so.  Nothing has been modified yet when the key turns out
	// to already exist.
	var parents parentStack[K]
	var compareResult int
	for node := t.root; node != nil; {
		parents.Push(node)
		compareResult = t.compare(key, node.key)
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}

		str := fmt.Sprintf("key %v already exists", key)
		return makeError(ErrDuplicateKey, str)
	}

	// Link the new node into the binary tree in the correct position.
	node := newTreapNode(key, t.src.Uint64())
	t.count++
	parent := parents.At(0)
	if compareResult < 0 {
		parent.left = node
	} else {
		parent.right = node
	}

	// Perform any rotations needed to maintain the max-heap.
	for parents.Len() > 0 {
		// There is nothing left to do when the node's priority is
		// less than or equal to its parent's priority.
		parent = parents.Pop()
		if node.priority <= parent.priority {
			break
		}

		// Perform a right rotation if the node is on the left side or
		// a left rotation if the node is on the right side.
		if parent.left == node {
			node.right, parent.left = parent, node.right
		} else {
			node.left, parent.right = parent, node.left
		}
		t.relinkGrandparent(node, parent, parents.At(0))
	}

	return nil
}

// Delete removes the passed key if it exists.  Deleting a key that does not
// exist is not an error and leaves the treap unmodified.
func (t *Treap[K]) Delete(key K) {
	// Find the node for the key along with its parent.  There is nothing to
	// do if the key does not exist.
	node, parent := t.get(key)
	if node == nil {
		return
	}

	// Perform rotations to move the node to delete down while it has two
	// children.  The child with the higher priority always moves up, which
	// maintains the max-heap.
	for node.left != nil && node.right != nil {
		var child *treapNode[K]
		if node.left.priority >= node.right.priority {
			child = node.left
			child.right, node.left = node, child.right
		} else {
			child = node.right
			child.left, node.right = node, child.left
		}
		t.relinkGrandparent(child, node, parent)

		// The parent for the node to delete is now what was previously
		// its child.
		parent = child
	}

	// The node has at most one child now, so splice that child, or nothing,
	// into the slot the node occupied.
	replacement := node.left
	if replacement == nil {
		replacement = node.right
	}
	t.relinkGrandparent(replacement, node, parent)
	node.left, node.right = nil, nil
	t.count--
}

// ForEach invokes the passed function with every key in the treap in ascending
// order.  Iteration stops early when the function returns false.
func (t *Treap[K]) ForEach(fn func(k K) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.
	var parents parentStack[K]
	parents.pushLeftSpine(t.root)
	for parents.Len() > 0 {
		node := parents.Pop()
		if !fn(node.key) {
			return
		}

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		parents.pushLeftSpine(node.right)
	}
}

// Reset efficiently removes all keys in the treap.
func (t *Treap[K]) Reset() {
	t.count = 0
	t.root = nil
}

// Split partitions the treap around the passed key.  The returned left treap
// holds every key that compares less than the passed key and the returned
// right treap holds every other key, so a key equal to the boundary ends up on
// the right.  Callers that need a specific key isolated on one side must search
// for it first.
//
// The nodes are moved rather than copied, so the treap Split is called on is
// left empty.  Both returned treaps share its ordering and priority source.
func (t *Treap[K]) Split(key K) (*Treap[K], *Treap[K]) {
	// Walk the search path for the key.  Each node on it belongs to the
	// left side when it is smaller than the key and to the right side
	// otherwise, and it keeps the whole subtree facing away from the key.
	// The hooks track the child slot where the next node of each side
	// attaches, which is always on the side facing the key.
	var leftRoot, rightRoot *treapNode[K]
	leftHook, rightHook := &leftRoot, &rightRoot
	for node := t.root; node != nil; {
		if t.compare(node.key, key) < 0 {
			*leftHook = node
			leftHook = &node.right
			node = node.right
			continue
		}

		*rightHook = node
		rightHook = &node.left
		node = node.left
	}
	*leftHook, *rightHook = nil, nil

	left, right := t.adopt(leftRoot), t.adopt(rightRoot)
	log.Tracef("Split %d keys at %v into %d and %d keys", t.count, key,
		left.count, right.count)
	t.Reset()
	return left, right
}

// Merge combines two treaps into a new one.  Every key in left must compare
// less than every key in right.  That precondition is verified and an Error
// with the ErrInvalidMerge code is returned, leaving both treaps unmodified,
// when it does not hold.
//
// The nodes are moved rather than copied, so both passed treaps are left empty
// on success.  The merged treap uses the ordering and priority source of left.
func Merge[K any](left, right *Treap[K]) (*Treap[K], error) {
	if left.root != nil && right.root != nil {
		maxLeft, _ := left.Max()
		minRight, _ := right.Min()
		if left.compare(maxLeft, minRight) >= 0 {
			str := fmt.Sprintf("key ranges overlap: left maximum %v "+
				"is not less than right minimum %v", maxLeft,
				minRight)
			return nil, makeError(ErrInvalidMerge, str)
		}
	}

	// Repeatedly pick whichever remaining root has the higher priority.
	// The winner keeps the subtree facing away from the other tree and the
	// merge continues into its child slot facing the other tree, which is
	// where the next winner is attached.
	var root *treapNode[K]
	hook := &root
	l, r := left.root, right.root
	for l != nil && r != nil {
		if l.priority > r.priority {
			*hook = l
			hook = &l.right
			l = l.right
			continue
		}

		*hook = r
		hook = &r.left
		r = r.left
	}
	if l != nil {
		*hook = l
	} else {
		*hook = r
	}

	merged := &Treap[K]{
		root:    root,
		count:   left.count + right.count,
		compare: left.compare,
		src:     left.src,
	}
	log.Tracef("Merged %d and %d keys, height %v", left.count, right.count,
		newLogClosure(func() string {
			return fmt.Sprint(merged.Height())
		}))
	left.Reset()
	right.Reset()
	return merged, nil
}
