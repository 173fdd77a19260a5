package Heaps

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// LeftistHeap is a classic two-link leftist heap: for every node the right
// child's leaf distance never exceeds the left child's, so the right spine has
// O(log n) length and merging along it is O(log n). It hands out no node
// handles and supports no iteration; use MinDistHeap when those are needed.
// Merge is recursive with depth bounded by the combined right spines.
type LeftistHeap[T any] struct {
	root *lhNode[T]
	lt   func(a, b T) bool
}

// NewLeftist returns an empty LeftistHeap ordered by lt. lt must be a pure
// strict weak order; heaps that are to be merged must use an identical lt.
func NewLeftist[T any](lt func(a, b T) bool) *LeftistHeap[T] {
	return &LeftistHeap[T]{lt: lt}
}

// NewLeftistOrdered returns an empty LeftistHeap under the natural < order.
func NewLeftistOrdered[T constraints.Ordered]() *LeftistHeap[T] {
	return NewLeftist[T](Less[T])
}

// lhSingleton detaches node into a one-element heap.
func lhSingleton[T any](node *lhNode[T]) *lhNode[T] {
	if node != nil {
		node.l, node.r = nil, nil
		node.dist = 1
	}
	return node
}

// merge two heaps given by their roots. Recursive on the right spines; after
// the lower root absorbs the other heap on the right, children are swapped
// whenever the right one got heavier, restoring the leftist shape.
// Time: O(log n)
func (u *LeftistHeap[T]) merge(h1, h2 *lhNode[T]) *lhNode[T] {
	if h1 == nil {
		h1, h2 = h2, h1
	}
	if h2 != nil {
		if u.lt(h2.v, h1.v) {
			h1, h2 = h2, h1
		}
		h1.r = u.merge(h1.r, h2)
		if h1.l == nil || h1.r.dist > h1.l.dist {
			h1.l, h1.r = h1.r, h1.l
		}
		if h1.r != nil {
			h1.dist = h1.r.dist + 1
		} else {
			h1.dist = 1
		}
	}
	return h1
}

// Push v into the heap.
// Time: O(log n)
func (u *LeftistHeap[T]) Push(v T) {
	u.root = u.merge(u.root, &lhNode[T]{v: v, dist: 1})
}

// PushAll pushes every value in vs, combining them binomial-style before one
// final merge with the existing heap.
// Time: O(len(vs)), amortized O(1) per value
func (u *LeftistHeap[T]) PushAll(vs ...T) {
	var head *lhNode[T]
	for i := range vs {
		head = lhCons(&lhNode[T]{v: vs[i], dist: 1}, head)
	}
	u.pushList(head)
}

// pushList batch-builds a heap from a list of nodes chained through r and
// merges it in. hedge[i] holds an intermediate heap of roughly 2^i nodes; a
// new singleton is folded into slots from the bottom until a free one takes
// the accumulated tree, like incrementing a binary counter.
func (u *LeftistHeap[T]) pushList(head *lhNode[T]) {
	const limit = bits.UintSize
	var hedge [limit]*lhNode[T]
	hsize := 0
	var node *lhNode[T]
	for head != nil {
		node = head
		head = node.r
		lhSingleton(node)
		hidx := 0
		for ; hidx < hsize && hedge[hidx] != nil; hidx++ {
			node = u.merge(hedge[hidx], node)
			hedge[hidx] = nil
		}
		if hidx < hsize {
			hedge[hidx] = node
		} else if hsize < limit {
			hedge[hsize] = node
			hsize++
		} else {
			hedge[limit-1] = node
		}
	}
	node = nil
	for hidx := 0; hidx < hsize; hidx++ {
		if hedge[hidx] != nil {
			node = u.merge(hedge[hidx], node)
		}
	}
	u.root = u.merge(u.root, node)
}

// Peek returns a reference to the least element, valid until the next
// operation on u. Returns EmptyHeapError on an empty heap.
// Time: O(1)
func (u *LeftistHeap[T]) Peek() (*T, error) {
	if u.root == nil {
		return nil, &EmptyHeapError{}
	}
	return &u.root.v, nil
}

// Pop removes and returns the least element. Returns EmptyHeapError on an
// empty heap.
// Time: O(log n)
func (u *LeftistHeap[T]) Pop() (T, error) {
	retv := u.root
	if retv == nil {
		return *new(T), &EmptyHeapError{}
	}
	u.root = u.merge(retv.l, retv.r)
	lhSingleton(retv)
	return retv.v, nil
}

// Empty reports whether the heap holds no elements.
func (u *LeftistHeap[T]) Empty() bool {
	return u.root == nil
}

// Merge absorbs o into u, leaving o empty. Both heaps must have been built
// with an identical order function. Merging a heap with itself is a no-op.
// Time: O(log n)
func (u *LeftistHeap[T]) Merge(o *LeftistHeap[T]) {
	if u != o {
		hold := o.root
		o.root = nil
		u.root = u.merge(u.root, hold)
	}
}

// lhShredPop serializes a dying tree one node at a time: the right subtree is
// grafted onto the end of the left subtree's right spine, then the left
// subtree replaces the root. The spine walk is charged against the pops that
// later consume it, so a full drain is O(n). Once shredding starts *pref is no
// longer a leftist heap; the caller must drain it to nil.
func lhShredPop[T any](pref **lhNode[T]) *lhNode[T] {
	retv := *pref
	if retv != nil {
		if retv.r == nil {
			*pref = retv.l
		} else if retv.l == nil {
			*pref = retv.r
		} else {
			scan := retv.l
			for scan.r != nil {
				scan = scan.r
			}
			scan.r = retv.r
			*pref = retv.l
		}
	}
	return lhSingleton(retv)
}

// Clear detaches and zeroes every node.
// Time: O(n)
func (u *LeftistHeap[T]) Clear() {
	hold := u.root
	u.root = nil
	for hold != nil {
		lhShredPop(&hold).v = *new(T)
	}
}
