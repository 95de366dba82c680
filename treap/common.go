// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand/v2"
)

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap traversal.  Since a treap has a very
	// high probability that the tree height is logarithmic, it is
	// exceedingly unlikely that the parent stack will ever exceed this size
	// even for extremely large numbers of items.
	staticDepth = 128
)

// treapNode represents a node in the treap.
type treapNode[K any] struct {
	key      K
	priority uint64
	left     *treapNode[K]
	right    *treapNode[K]
}

// newTreapNode returns a new node from the given key and priority.  The node
// is not initially linked to any others.
func newTreapNode[K any](key K, priority uint64) *treapNode[K] {
	return &treapNode[K]{key: key, priority: priority}
}

// globalSource is a rand.Source backed by the process-wide generator of the
// math/rand/v2 package, which is seeded randomly at program start.
type globalSource struct{}

// Uint64 returns a pseudo-random 64-bit value from the global generator.
func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

// parentStack represents a stack of parent treap nodes that are used during
// insertion and traversal.  It consists of a static array for holding the
// parents and a dynamic overflow slice.  It is extremely unlikely the overflow
// will ever be hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.  This approach
// is used because it is much more efficient for the majority case than
// dynamically allocating heap space every time the treap is walked.
type parentStack[K any] struct {
	index    int
	items    [staticDepth]*treapNode[K]
	overflow []*treapNode[K]
}

// Len returns the current number of items in the stack.
func (s *parentStack[K]) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  It returns nil if n exceeds the
// number of items on the stack.
func (s *parentStack[K]) At(n int) *treapNode[K] {
	index := s.index - n - 1
	if index < 0 {
		return nil
	}

	if index < staticDepth {
		return s.items[index]
	}

	return s.overflow[index-staticDepth]
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[K]) Pop() *treapNode[K] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[K]) Push(node *treapNode[K]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// Reslicing to pop would make the compiler allocate, and the depth only
	// grows logarithmically with the item count, so grow the overflow one
	// item at a time instead of using append.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*treapNode[K], index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}

// pushLeftSpine pushes the passed node and every node reachable from it by
// following left children.
func (s *parentStack[K]) pushLeftSpine(node *treapNode[K]) {
	for ; node != nil; node = node.left {
		s.Push(node)
	}
}

// pushRightSpine pushes the passed node and every node reachable from it by
// following right children.
func (s *parentStack[K]) pushRightSpine(node *treapNode[K]) {
	for ; node != nil; node = node.right {
		s.Push(node)
	}
}
