package Heaps

import "golang.org/x/exp/constraints"

// LinkedPairingHeap is a pairing heap whose nodes carry a back link: prev
// points at whichever node links here, through next or down. Structurally the
// (down, next) pair is the (left, right) pair of a binary tree and prev plays
// parent, so the heap hands out stable handles (LPIterator) with the same
// removal and bidirectional iteration semantics as MinDistHeap, while Push,
// Merge and Decrease stay O(1) actual.
//
// The embedded sentinel anchors the tree (the user root is its down child) and
// doubles as the End iterator; because of it a LinkedPairingHeap must never be
// copied.
type LinkedPairingHeap[T any] struct {
	root lpNode[T]
	lt   func(a, b T) bool
}

// NewLinkedPairing returns an empty LinkedPairingHeap ordered by lt. lt must
// be a pure strict weak order; heaps that are to be merged must use an
// identical lt.
func NewLinkedPairing[T any](lt func(a, b T) bool) *LinkedPairingHeap[T] {
	return &LinkedPairingHeap[T]{lt: lt}
}

// NewLinkedPairingOrdered returns an empty LinkedPairingHeap under the natural
// < order.
func NewLinkedPairingOrdered[T constraints.Ordered]() *LinkedPairingHeap[T] {
	return NewLinkedPairing[T](Less[T])
}

// yield cuts the whole tree from the sentinel.
func (u *LinkedPairingHeap[T]) yield() *lpNode[T] {
	temp := u.root.down
	u.root.down = nil
	if temp != nil {
		temp.prev = nil
	}
	return temp
}

// merge two heaps given by their roots: the root that sorts lower absorbs the
// other as its first child. h1 wins ties. The returned root's sibling links
// are cleared.
// Time: O(1)
func (u *LinkedPairingHeap[T]) merge(h1, h2 *lpNode[T]) *lpNode[T] {
	var retv *lpNode[T]
	if h1 == nil {
		retv = h2
	} else if h2 == nil {
		retv = h1
	} else if !u.lt(h2.v, h1.v) {
		retv = lpDunk(h1, lpCons(h2, h1.down))
	} else {
		retv = lpDunk(h2, lpCons(h1, h2.down))
	}
	if retv != nil {
		retv.prev, retv.next = nil, nil
	}
	return retv
}

// build one heap from a sibling list: merge adjacent pairs left to right onto
// a stack threaded through next, then fold the stack right to left. A leftover
// singleton skipped the merges, so its dangling back link is cleared here.
// Time: O(k) for k siblings, amortized O(log n) per pop
func (u *LinkedPairingHeap[T]) build(node *lpNode[T]) *lpNode[T] {
	var q *lpNode[T]
	for a := node; a != nil && a.next != nil; a = node {
		b := a.next
		node = b.next
		q = lpCons(u.merge(a, b), q)
	}
	if q != nil {
		for a := q; a != nil; a = q {
			q = a.next
			node = u.merge(a, node)
		}
	} else if node != nil {
		node.prev = nil
	}
	return node
}

// Push v into the heap. The returned handle stays valid until the node is
// removed or the heap cleared.
// Time: O(1)
func (u *LinkedPairingHeap[T]) Push(v T) LPIterator[T] {
	node := &lpNode[T]{v: v}
	lpDunk(&u.root, u.merge(u.root.down, node))
	return LPIterator[T]{node}
}

// PushAll pushes every value in vs.
// Time: O(len(vs))
func (u *LinkedPairingHeap[T]) PushAll(vs ...T) {
	for i := range vs {
		u.Push(vs[i])
	}
}

// Peek returns a reference to the least element, valid until the next
// operation on u. Returns EmptyHeapError on an empty heap.
// Time: O(1)
func (u *LinkedPairingHeap[T]) Peek() (*T, error) {
	if u.root.down == nil {
		return nil, &EmptyHeapError{}
	}
	return &u.root.down.v, nil
}

// Pop removes and returns the least element. Returns EmptyHeapError on an
// empty heap.
// Time: amortized O(log n)
func (u *LinkedPairingHeap[T]) Pop() (T, error) {
	retv := u.root.down
	if retv == nil {
		return *new(T), &EmptyHeapError{}
	}
	lpDunk(&u.root, u.build(retv.down))
	retv.prev, retv.next, retv.down = nil, nil, nil
	return retv.v, nil
}

// Empty reports whether the heap holds no elements.
func (u *LinkedPairingHeap[T]) Empty() bool {
	return u.root.down == nil
}

// Merge absorbs o into u, leaving o empty. Both heaps must have been built
// with an identical order function; handles into o keep working against u.
// Merging a heap with itself is a no-op.
// Time: O(1)
func (u *LinkedPairingHeap[T]) Merge(o *LinkedPairingHeap[T]) {
	if u != o {
		lpDunk(&u.root, u.merge(u.yield(), o.yield()))
	}
}

// ncut cuts node from the tree, splicing the heap built from its child list
// into its place so most of the order already achieved around it survives.
func (u *LinkedPairingHeap[T]) ncut(node *lpNode[T]) *lpNode[T] {
	repl := u.build(node.down)
	pred := node.prev
	if node == pred.next {
		lpCons(pred, lpCons(repl, node.next))
	} else {
		lpDunk(pred, lpCons(repl, node.next))
	}
	node.prev, node.next, node.down = nil, nil, nil
	return node
}

// tcut cuts the whole subtree rooted at node from the tree, splicing its
// siblings around the gap.
func (u *LinkedPairingHeap[T]) tcut(node *lpNode[T]) *lpNode[T] {
	pred := node.prev
	if node == pred.next {
		lpCons(pred, node.next)
	} else {
		lpDunk(pred, node.next)
	}
	node.prev, node.next = nil, nil
	return node
}

// Remove detaches the node behind it and returns the handle of its forward
// successor, so a traversal that removes its current node can continue and
// still reach every surviving node. Other live handles stay valid but their
// continued iteration is no longer guaranteed to be complete. Returns
// OutOfRangeError when it is the End sentinel.
// Time: amortized O(log n)
func (u *LinkedPairingHeap[T]) Remove(it LPIterator[T]) (LPIterator[T], error) {
	if it.pos == nil || it.pos.prev == nil {
		return it, &OutOfRangeError{}
	}
	succ := lpSucc(it.pos)
	node := u.ncut(it.pos)
	node.v = *new(T)
	return LPIterator[T]{succ}, nil
}

// Decrease restores the heap order after the key under it was reduced. The
// subtree below it still satisfies the order, so the whole subtree is cut and
// melded back against the root. Returns OutOfRangeError when it is the End
// sentinel.
// Time: O(1)
func (u *LinkedPairingHeap[T]) Decrease(it LPIterator[T]) (LPIterator[T], error) {
	if it.pos == nil || it.pos.prev == nil {
		return it, &OutOfRangeError{}
	}
	if it.pos != u.root.down {
		lpDunk(&u.root, u.merge(u.root.down, u.tcut(it.pos)))
	}
	return it, nil
}

// Readjust restores the heap order after an arbitrary change to the key under
// it: the node is cut out with its child list rebuilt in its place, then
// melded back in as a singleton. Returns OutOfRangeError when it is the End
// sentinel.
// Time: amortized O(log n)
func (u *LinkedPairingHeap[T]) Readjust(it LPIterator[T]) (LPIterator[T], error) {
	if it.pos == nil || it.pos.prev == nil {
		return it, &OutOfRangeError{}
	}
	lpDunk(&u.root, u.merge(u.root.down, u.ncut(it.pos)))
	return it, nil
}

// lpShredPop serializes a dying tree one node at a time: the head's child and
// sibling are pushed onto the remainder through their now-free back links.
// O(1) actual per pop, but *pref stops being a tree at the first call; the
// caller must drain it to nil.
func lpShredPop[T any](pref **lpNode[T]) *lpNode[T] {
	retv := *pref
	if retv != nil {
		*pref = retv.prev
		for _, hold := range [...]*lpNode[T]{retv.down, retv.next} {
			if hold != nil {
				hold.prev = *pref
				*pref = hold
			}
		}
	}
	return retv
}

// Clear detaches and zeroes every node, invalidating all handles.
// Time: O(n)
func (u *LinkedPairingHeap[T]) Clear() {
	for hold := u.yield(); hold != nil; {
		node := lpShredPop(&hold)
		node.prev, node.next, node.down = nil, nil, nil
		node.v = *new(T)
	}
}

// lpAbseil steps from node into its child list, then on to the first node of
// that subtree's right-to-left post-order, preferring the sibling and falling
// back to the child. Returns node itself when it has no child.
func lpAbseil[T any](node *lpNode[T]) *lpNode[T] {
	next := node.down
	for next != nil {
		node = next
		if node.next != nil {
			next = node.next
		} else {
			next = node.down
		}
	}
	return node
}

// lpSucc steps forward in right-to-left post-order. From the sentinel it
// returns the sentinel.
func lpSucc[T any](node *lpNode[T]) *lpNode[T] {
	if prev := node.prev; prev != nil {
		if node == prev.next {
			return lpAbseil(prev)
		}
		return prev
	}
	return node
}

// lpPred steps backward (left-to-right pre-order). Returns nil past the first
// post-order node.
func lpPred[T any](node *lpNode[T]) *lpNode[T] {
	if node.down != nil {
		return node.down
	}
	if node.next != nil {
		return node.next
	}
	prev := node.prev
	for prev != nil && (node == prev.next || prev.next == nil) {
		node = prev
		prev = prev.prev
	}
	if prev == nil {
		return nil
	}
	return prev.next
}

// LPIterator is a handle to a LinkedPairingHeap node. It stays valid until the
// node is removed or the heap cleared; any mutation of the heap may distort it
// as an iterator, leaving the reference usable but continued stepping
// incomplete.
type LPIterator[T any] struct {
	pos *lpNode[T]
}

// Value returns a reference to the element under u. Undefined on End.
func (u LPIterator[T]) Value() *T {
	return &u.pos.v
}

// Next advances u one step in right-to-left post-order; at End it stays put.
func (u *LPIterator[T]) Next() {
	u.pos = lpSucc(u.pos)
}

// Prev moves u one step backward. Stepping before Begin returns
// OutOfRangeError and leaves u unchanged; so does Prev from End on an empty
// heap, which has no last node.
func (u *LPIterator[T]) Prev() error {
	p := lpPred(u.pos)
	if p == nil {
		return &OutOfRangeError{}
	}
	u.pos = p
	return nil
}

// Same reports whether both iterators reference the same node; all references
// to an end sentinel count as equal.
func (u LPIterator[T]) Same(o LPIterator[T]) bool {
	return u.pos == o.pos || (u.pos.prev == nil && o.pos.prev == nil)
}

// Begin returns the first node of the forward iteration, or End on an empty
// heap.
func (u *LinkedPairingHeap[T]) Begin() LPIterator[T] {
	return LPIterator[T]{lpAbseil(&u.root)}
}

// End returns the past-the-end sentinel.
func (u *LinkedPairingHeap[T]) End() LPIterator[T] {
	return LPIterator[T]{&u.root}
}
