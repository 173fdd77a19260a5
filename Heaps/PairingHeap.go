package Heaps

import "golang.org/x/exp/constraints"

// PairingHeap is a pairing heap with forward links only: each node knows its
// right sibling and its first child. Push and Merge are O(1) actual; Pop pays
// for them with an amortized O(log n) pairing pass over the root's children.
// No handles, no iteration; use LinkedPairingHeap when those are needed.
type PairingHeap[T any] struct {
	root *phNode[T]
	lt   func(a, b T) bool
}

// NewPairing returns an empty PairingHeap ordered by lt. lt must be a pure
// strict weak order; heaps that are to be merged must use an identical lt.
func NewPairing[T any](lt func(a, b T) bool) *PairingHeap[T] {
	return &PairingHeap[T]{lt: lt}
}

// NewPairingOrdered returns an empty PairingHeap under the natural < order.
func NewPairingOrdered[T constraints.Ordered]() *PairingHeap[T] {
	return NewPairing[T](Less[T])
}

// merge two heaps given by their roots: the root that sorts lower absorbs the
// other as its first child. h1 wins ties. The returned root's sibling link is
// cleared.
// Time: O(1)
func (u *PairingHeap[T]) merge(h1, h2 *phNode[T]) *phNode[T] {
	var retv *phNode[T]
	if h1 == nil {
		retv = h2
	} else if h2 == nil {
		retv = h1
	} else if !u.lt(h2.v, h1.v) {
		retv = phDunk(h1, phCons(h2, h1.down))
	} else {
		retv = phDunk(h2, phCons(h1, h2.down))
	}
	if retv != nil {
		retv.next = nil
	}
	return retv
}

// build one heap from a sibling list: merge adjacent pairs left to right onto
// a stack threaded through next, then fold the stack right to left.
// Time: O(k) for k siblings, amortized O(log n) per pop
func (u *PairingHeap[T]) build(h *phNode[T]) *phNode[T] {
	var q *phNode[T]
	for a := h; a != nil && a.next != nil; a = h {
		b := a.next
		h = b.next
		q = phCons(u.merge(a, b), q)
	}
	for a := q; a != nil; a = q {
		q = a.next
		h = u.merge(a, h)
	}
	return h
}

// Push v into the heap.
// Time: O(1)
func (u *PairingHeap[T]) Push(v T) {
	u.root = u.merge(u.root, &phNode[T]{v: v})
}

// PushAll pushes every value in vs.
// Time: O(len(vs))
func (u *PairingHeap[T]) PushAll(vs ...T) {
	for i := range vs {
		u.Push(vs[i])
	}
}

// Peek returns a reference to the least element, valid until the next
// operation on u. Returns EmptyHeapError on an empty heap.
// Time: O(1)
func (u *PairingHeap[T]) Peek() (*T, error) {
	if u.root == nil {
		return nil, &EmptyHeapError{}
	}
	return &u.root.v, nil
}

// Pop removes and returns the least element. Returns EmptyHeapError on an
// empty heap.
// Time: amortized O(log n)
func (u *PairingHeap[T]) Pop() (T, error) {
	retv := u.root
	if retv == nil {
		return *new(T), &EmptyHeapError{}
	}
	u.root = u.build(retv.down)
	retv.down, retv.next = nil, nil
	return retv.v, nil
}

// Empty reports whether the heap holds no elements.
func (u *PairingHeap[T]) Empty() bool {
	return u.root == nil
}

// Merge absorbs o into u, leaving o empty. Both heaps must have been built
// with an identical order function. Merging a heap with itself is a no-op.
// Time: O(1)
func (u *PairingHeap[T]) Merge(o *PairingHeap[T]) {
	if u != o {
		hold := o.root
		o.root = nil
		u.root = u.merge(u.root, hold)
	}
}

// phShredPop serializes a dying tree one node at a time, grafting the sibling
// list onto the end of the child list's sibling spine. Amortized O(1) per pop;
// once shredding starts *pref is no longer a pairing heap and must be drained
// to nil.
func phShredPop[T any](pref **phNode[T]) *phNode[T] {
	retv := *pref
	if retv != nil {
		if retv.next == nil {
			*pref = retv.down
		} else if retv.down == nil {
			*pref = retv.next
		} else {
			scan := retv.down
			for scan.next != nil {
				scan = scan.next
			}
			scan.next = retv.next
			*pref = retv.down
		}
		retv.down, retv.next = nil, nil
	}
	return retv
}

// Clear detaches and zeroes every node.
// Time: O(n)
func (u *PairingHeap[T]) Clear() {
	hold := u.root
	u.root = nil
	for hold != nil {
		phShredPop(&hold).v = *new(T)
	}
}
