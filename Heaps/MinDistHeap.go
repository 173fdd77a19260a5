package Heaps

import "golang.org/x/exp/constraints"

// MinDistHeap is a leftist heap gone symmetric: instead of keeping the right
// child lighter by swapping children, the meld always descends into whichever
// side currently has the smaller leaf distance and repairs the distances on the
// way back up. Nodes never flip sides, which is what keeps handles and
// iteration stable across melds: with a plain leftist heap any node may swap
// within its parent on any operation.
//
// Every node carries an uplink, so the heap hands out stable handles
// (MDIterator) supporting removal, key-change repositioning and bidirectional
// iteration. The embedded sentinel anchors the tree (the user root is its left
// child) and doubles as the End iterator; because of it a MinDistHeap must
// never be copied.
type MinDistHeap[T any] struct {
	root mdNode[T]
	lt   func(a, b T) bool
}

// NewMinDist returns an empty MinDistHeap ordered by lt. lt must be a pure
// strict weak order; heaps that are to be merged must use an identical lt.
func NewMinDist[T any](lt func(a, b T) bool) *MinDistHeap[T] {
	return &MinDistHeap[T]{lt: lt}
}

// NewMinDistOrdered returns an empty MinDistHeap under the natural < order.
func NewMinDistOrdered[T constraints.Ordered]() *MinDistHeap[T] {
	return NewMinDist[T](Less[T])
}

// mdSingleton detaches node into a one-element heap.
func mdSingleton[T any](node *mdNode[T]) *mdNode[T] {
	if node != nil {
		node.l, node.r, node.parent = nil, nil, nil
		node.dist = 1
	}
	return node
}

// yield cuts the whole tree from the sentinel.
func (u *MinDistHeap[T]) yield() *mdNode[T] {
	temp := u.root.l
	u.root.l = nil
	if temp != nil {
		temp.parent = nil
	}
	return temp
}

// meld merges h1 and h2 into the slot link of node root, in three phases.
//
// Phase I interleaves the two heaps: the root that sorts lower takes the slot,
// then the descent continues into that root's lighter side (left if empty,
// otherwise whichever child has the smaller leaf distance, an empty right child
// counting as 0 and ties going right), whose old content becomes the next merge
// operand. The descent never permutes siblings.
//
// Phase II drops the surviving heap into the final slot and fixes its uplink.
//
// Phase III walks the uplinks recomputing dist = min(children)+1, at least as
// far as phase I descended and beyond that until a node's value is unchanged.
// dist is bounded by the log of the subtree size, so the walk cuts off after
// O(log n) extra steps no matter how deep the tree is.
func (u *MinDistHeap[T]) meld(root *mdNode[T], link **mdNode[T], h1, h2 *mdNode[T]) {
	steps := 1
	for h1 != nil && h2 != nil {
		steps++
		if u.lt(h2.v, h1.v) {
			h1, h2 = h2, h1
		}
		*link = h1
		h1.parent = root
		root = h1
		if root.l == nil || (root.r != nil && root.r.dist > root.l.dist) {
			link = &root.l
		} else {
			link = &root.r
		}
		h1 = *link
	}

	if h1 == nil {
		h1 = h2
	}
	if *link = h1; h1 != nil {
		h1.parent = root
	}

	for root != nil {
		var lcw, rcw int16
		if root.l != nil {
			lcw = root.l.dist
		}
		if root.r != nil {
			rcw = root.r.dist
		}
		nnw := min(lcw, rcw) + 1
		if steps--; steps < 0 && nnw == root.dist {
			break
		}
		root.dist = nnw
		root = root.parent
	}
}

// build one heap from a list of detached nodes chained through the parent
// link: meld adjacent pairs into a shorter list, repeat until one root is
// left. While the list is threaded this way the structure is not a tree.
// Time: O(k) for k nodes
func (u *MinDistHeap[T]) build(head *mdNode[T]) *mdNode[T] {
	for head != nil && head.parent != nil {
		var list *mdNode[T]
		h1, h2 := head, head.parent
		for {
			head = h2.parent
			var hold *mdNode[T]
			u.meld(nil, &hold, h1, h2)
			hold.parent = list
			list = hold
			if h1 = head; h1 == nil {
				break
			}
			if h2 = head.parent; h2 == nil {
				break
			}
		}
		if head != nil {
			head.parent = list
		} else {
			head = list
		}
	}
	return head
}

// Push v into the heap. The returned handle stays valid until the node is
// removed or the heap cleared.
// Time: O(log n)
func (u *MinDistHeap[T]) Push(v T) MDIterator[T] {
	node := &mdNode[T]{v: v, dist: 1}
	u.meld(&u.root, &u.root.l, u.root.l, node)
	return MDIterator[T]{node}
}

// PushAll pushes every value in vs, batch-building them into one heap before
// a single meld.
// Time: O(len(vs))
func (u *MinDistHeap[T]) PushAll(vs ...T) {
	var head *mdNode[T]
	for i := range vs {
		head = pcons(&mdNode[T]{v: vs[i], dist: 1}, head)
	}
	u.meld(&u.root, &u.root.l, u.root.l, u.build(head))
}

// Peek returns a reference to the least element, valid until the next
// operation on u. Returns EmptyHeapError on an empty heap.
// Time: O(1)
func (u *MinDistHeap[T]) Peek() (*T, error) {
	if u.root.l == nil {
		return nil, &EmptyHeapError{}
	}
	return &u.root.l.v, nil
}

// Pop removes and returns the least element. Returns EmptyHeapError on an
// empty heap.
// Time: O(log n)
func (u *MinDistHeap[T]) Pop() (T, error) {
	retv := u.root.l
	if retv == nil {
		return *new(T), &EmptyHeapError{}
	}
	u.meld(&u.root, &u.root.l, retv.l, retv.r)
	retv.l, retv.r, retv.parent = nil, nil, nil
	retv.dist = 0
	return retv.v, nil
}

// Empty reports whether the heap holds no elements.
func (u *MinDistHeap[T]) Empty() bool {
	return u.root.l == nil
}

// Merge absorbs o into u, leaving o empty. Both heaps must have been built
// with an identical order function; handles into o keep working against u.
// Merging a heap with itself is a no-op.
// Time: O(log n)
func (u *MinDistHeap[T]) Merge(o *MinDistHeap[T]) {
	if u != o {
		u.meld(&u.root, &u.root.l, u.root.l, o.yield())
	}
}

// ncut cuts node from the tree, replacing it by the meld of its own children
// so most of the order already achieved around it survives. The meld runs with
// node's parent as propagation root, refreshing dist on the way up.
func (u *MinDistHeap[T]) ncut(node *mdNode[T]) *mdNode[T] {
	root := node.parent
	if node == root.l {
		u.meld(root, &root.l, node.l, node.r)
	} else {
		u.meld(root, &root.r, node.l, node.r)
	}
	node.l, node.r, node.parent = nil, nil, nil
	return node
}

// tcut cuts the whole subtree rooted at node from the tree. Melding two empty
// heaps into the vacated slot both clears it and refreshes the parent leaf
// distances; a slight abuse, but convenient.
func (u *MinDistHeap[T]) tcut(node *mdNode[T]) *mdNode[T] {
	root := node.parent
	if node == root.l {
		u.meld(root, &root.l, nil, nil)
	} else {
		u.meld(root, &root.r, nil, nil)
	}
	node.parent = nil
	return node
}

// Remove detaches the node behind it and returns the handle of its forward
// successor, so a traversal that removes its current node can continue and
// still reach every surviving node. Other live handles stay valid but their
// continued iteration is no longer guaranteed to be complete. Returns
// OutOfRangeError when it is the End sentinel.
// Time: O(log n)
func (u *MinDistHeap[T]) Remove(it MDIterator[T]) (MDIterator[T], error) {
	if it.pos == nil || it.pos.parent == nil {
		return it, &OutOfRangeError{}
	}
	succ := mdSucc(it.pos)
	node := u.ncut(it.pos)
	node.dist = 0
	node.v = *new(T)
	return MDIterator[T]{succ}, nil
}

// Decrease restores the heap order after the key under it was reduced. The
// subtree below it still satisfies the order, so the whole subtree is cut and
// melded back against the root. Returns OutOfRangeError when it is the End
// sentinel.
// Time: O(log n)
func (u *MinDistHeap[T]) Decrease(it MDIterator[T]) (MDIterator[T], error) {
	if it.pos == nil || it.pos.parent == nil {
		return it, &OutOfRangeError{}
	}
	if it.pos != u.root.l {
		u.meld(&u.root, &u.root.l, u.root.l, u.tcut(it.pos))
	}
	return it, nil
}

// Readjust restores the heap order after an arbitrary change to the key under
// it: the node is cut out with its children melded in its place, then melded
// back in as a singleton. Returns OutOfRangeError when it is the End sentinel.
// Time: O(log n)
func (u *MinDistHeap[T]) Readjust(it MDIterator[T]) (MDIterator[T], error) {
	if it.pos == nil || it.pos.parent == nil {
		return it, &OutOfRangeError{}
	}
	u.meld(&u.root, &u.root.l, u.root.l, mdSingleton(u.ncut(it.pos)))
	return it, nil
}

// mdShredPop serializes a dying tree one node at a time: the head's children
// are pushed onto the remainder through their now-free parent links. O(1)
// actual per pop, but *pref stops being a tree at the first call; the caller
// must drain it to nil.
func mdShredPop[T any](pref **mdNode[T]) *mdNode[T] {
	retv := *pref
	if retv != nil {
		*pref = retv.parent
		for _, hold := range [...]*mdNode[T]{retv.l, retv.r} {
			if hold != nil {
				hold.parent = *pref
				*pref = hold
			}
		}
	}
	return retv
}

// Clear detaches and zeroes every node, invalidating all handles.
// Time: O(n)
func (u *MinDistHeap[T]) Clear() {
	for hold := u.yield(); hold != nil; {
		node := mdShredPop(&hold)
		node.l, node.r, node.parent = nil, nil, nil
		node.dist = 0
		node.v = *new(T)
	}
}

// mdAbseil steps from node into its left child, then on to the first node of
// that subtree's right-to-left post-order, preferring the right child and
// falling back to the left. Returns node itself when it has no left child.
func mdAbseil[T any](node *mdNode[T]) *mdNode[T] {
	next := node.l
	for next != nil {
		node = next
		if node.r != nil {
			next = node.r
		} else {
			next = node.l
		}
	}
	return node
}

// mdSucc steps forward in right-to-left post-order. From the sentinel it
// returns the sentinel.
func mdSucc[T any](node *mdNode[T]) *mdNode[T] {
	if next := node.parent; next != nil {
		if node == next.r {
			return mdAbseil(next)
		}
		return next
	}
	return node
}

// mdPred steps backward (left-to-right pre-order). Returns nil past the first
// post-order node.
func mdPred[T any](node *mdNode[T]) *mdNode[T] {
	if node.l != nil {
		return node.l
	}
	if node.r != nil {
		return node.r
	}
	prev := node.parent
	for prev != nil && (node == prev.r || prev.r == nil) {
		node = prev
		prev = prev.parent
	}
	if prev == nil {
		return nil
	}
	return prev.r
}

// MDIterator is a handle to a MinDistHeap node. It stays valid until the node
// is removed or the heap cleared; any mutation of the heap may distort it as
// an iterator, leaving the reference usable but continued stepping incomplete.
type MDIterator[T any] struct {
	pos *mdNode[T]
}

// Value returns a reference to the element under u. Undefined on End.
func (u MDIterator[T]) Value() *T {
	return &u.pos.v
}

// Next advances u one step in right-to-left post-order; at End it stays put.
func (u *MDIterator[T]) Next() {
	u.pos = mdSucc(u.pos)
}

// Prev moves u one step backward. Stepping before Begin returns
// OutOfRangeError and leaves u unchanged; so does Prev from End on an empty
// heap, which has no last node.
func (u *MDIterator[T]) Prev() error {
	p := mdPred(u.pos)
	if p == nil {
		return &OutOfRangeError{}
	}
	u.pos = p
	return nil
}

// Same reports whether both iterators reference the same node; all references
// to an end sentinel count as equal.
func (u MDIterator[T]) Same(o MDIterator[T]) bool {
	return u.pos == o.pos || (u.pos.parent == nil && o.pos.parent == nil)
}

// Begin returns the first node of the forward iteration, or End on an empty
// heap.
func (u *MinDistHeap[T]) Begin() MDIterator[T] {
	return MDIterator[T]{mdAbseil(&u.root)}
}

// End returns the past-the-end sentinel.
func (u *MinDistHeap[T]) End() MDIterator[T] {
	return MDIterator[T]{&u.root}
}
