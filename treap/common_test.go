// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// seededSource returns a deterministic priority source so treap shapes are
// reproducible between test runs.
func seededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// descendingSource hands out strictly decreasing priorities.  Inserting keys
// in ascending order with it never triggers a rotation, which produces a
// degenerate treap shaped like a linked list.
type descendingSource struct {
	next uint64
}

func (s *descendingSource) Uint64() uint64 {
	s.next--
	return s.next
}

// collect returns all keys of the treap in ascending order.
func collect[K any](tr *Treap[K]) []K {
	keys := make([]K, 0, tr.Len())
	tr.ForEach(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// isHeap tests whether the subtree rooted at the node meets the max-heap
// invariant.
func (n *treapNode[K]) isHeap() bool {
	for iter := newIterator(n, preOrder); iter.Next(); {
		node := iter.node
		if node.left != nil && node.left.priority > node.priority {
			return false
		}
		if node.right != nil && node.right.priority > node.priority {
			return false
		}
	}
	return true
}

// assertInvariants fails the test when the treap violates the binary search
// tree ordering, the max-heap property or the cached count.
func assertInvariants[K any](t *testing.T, tr *Treap[K]) {
	t.Helper()

	var count int
	var prev *treapNode[K]
	for iter := tr.Iterator(); iter.Next(); {
		if prev != nil && tr.compare(prev.key, iter.node.key) >= 0 {
			t.Fatalf("keys out of order: %v before %v\n%s", prev.key,
				iter.node.key, spew.Sdump(collect(tr)))
		}
		prev = iter.node
		count++
	}

	if !tr.root.isHeap() {
		t.Fatalf("treap violates the heap property:\n%s",
			spew.Sdump(tr.root))
	}

	if count != tr.Len() {
		t.Fatalf("Len: unexpected length - got %d, traversed %d",
			tr.Len(), count)
	}
}

// TestParentStack ensures the parentStack functionality works as intended.
func TestParentStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numNodes int
	}{
		{numNodes: 1},
		{numNodes: staticDepth},
		{numNodes: staticDepth + 1}, // Test dynamic code paths
	}

testLoop:
	for i, test := range tests {
		nodes := make([]*treapNode[uint32], 0, test.numNodes)
		for j := 0; j < test.numNodes; j++ {
			node := newTreapNode(uint32(j), 0)
			nodes = append(nodes, node)
		}

		// Push all of the nodes onto the parent stack while testing
		// various stack properties.
		stack := &parentStack[uint32]{}
		for j, node := range nodes {
			stack.Push(node)

			// Ensure the stack length is the expected value.
			if stack.Len() != j+1 {
				t.Errorf("Len #%d (%d): unexpected stack "+
					"length - got %d, want %d", i, j,
					stack.Len(), j+1)
				continue testLoop
			}

			// Ensure the node at each index is the expected one.
			for k := 0; k <= j; k++ {
				atNode := stack.At(j - k)
				if !reflect.DeepEqual(atNode, nodes[k]) {
					t.Errorf("At #%d (%d): mismatched node "+
						"- got %v, want %v", i, j-k,
						atNode, nodes[k])
					continue testLoop
				}
			}
		}

		// Ensure each popped node is the expected one.
		for j := 0; j < len(nodes); j++ {
			node := stack.Pop()
			expected := nodes[len(nodes)-j-1]
			if !reflect.DeepEqual(node, expected) {
				t.Errorf("At #%d (%d): mismatched node - "+
					"got %v, want %v", i, j, node, expected)
				continue testLoop
			}
		}

		// Ensure the stack is now empty.
		if stack.Len() != 0 {
			t.Errorf("Len #%d: stack is not empty - got %d", i,
				stack.Len())
			continue testLoop
		}

		// Ensure attempting to retrieve a node at an index beyond the
		// stack's length returns nil.
		if node := stack.At(2); node != nil {
			t.Errorf("At #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}

		// Ensure attempting to pop a node from an empty stack returns
		// nil.
		if node := stack.Pop(); node != nil {
			t.Errorf("Pop #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}
	}
}

// TestParentStackSpines ensures the spine helpers push every node along the
// left and right edges of a subtree.
func TestParentStackSpines(t *testing.T) {
	t.Parallel()

	tr := New[int](seededSource(7))
	for i := 0; i < 64; i++ {
		if err := tr.Insert(i); err != nil {
			t.Fatalf("Insert #%d: unexpected error: %v", i, err)
		}
	}

	var stack parentStack[int]
	stack.pushLeftSpine(tr.root)
	if got := stack.At(0).key; got != 0 {
		t.Fatalf("pushLeftSpine: top is %d, want 0", got)
	}

	stack = parentStack[int]{}
	stack.pushRightSpine(tr.root)
	if got := stack.At(0).key; got != 63 {
		t.Fatalf("pushRightSpine: top is %d, want 63", got)
	}

	// Pushing the spine of a nil subtree is a no-op.
	stack = parentStack[int]{}
	stack.pushLeftSpine(nil)
	stack.pushRightSpine(nil)
	if stack.Len() != 0 {
		t.Fatalf("spine of nil subtree pushed %d nodes", stack.Len())
	}

	// The keys along the left spine must be strictly decreasing from the
	// root downwards.
	stack = parentStack[int]{}
	stack.pushLeftSpine(tr.root)
	var spine []int
	for node := stack.Pop(); node != nil; node = stack.Pop() {
		spine = append(spine, node.key)
	}
	if !slices.IsSorted(spine) {
		t.Fatalf("left spine popped out of order: %v", spine)
	}
}
