package Heaps

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/g-m-twostay/heap-utils/Sets/IdentSet"
	"unsafe"
)

// The validators below enumerate every reachable node and re-check the
// invariants of their variant. Full traversal of a distance-balanced heap is
// tricky because the nesting can be very deep, so the two dist-carrying
// variants use a priority queue to enumerate the nodes of a priority queue:
// the frontier is ordered by leaf distance and always continues through the
// node with the shortest currently available path to a leaf. A simple stack
// descending into the lighter side would not do, as a short right spine does
// not prevent a very heavy left child below it.
//
// The forward-only variants cannot prove a node is linked just once from its
// own fields; they track every reached identity in an IdentSet instead.

// Validate deep-checks the heap: order at every link, single reachability, the
// leftist property, and leaf-distance bookkeeping. Returns a CorruptHeapError
// describing the first breach found.
// Time: O(n log n)
func (u *LeftistHeap[T]) Validate() error {
	que := priorityqueue.NewWith(func(a, b interface{}) int {
		return int(a.(*lhNode[T]).dist) - int(b.(*lhNode[T]).dist)
	})
	seen := IdentSet.New(0, 0)
	if u.root != nil {
		seen.Put(uintptr(unsafe.Pointer(u.root)))
		que.Enqueue(u.root)
	}
	for !que.Empty() {
		e, _ := que.Dequeue()
		node := e.(*lhNode[T])
		var wlc, wrc int16
		if node.l != nil {
			if !seen.Put(uintptr(unsafe.Pointer(node.l))) {
				return &CorruptHeapError{"node is linked more than once"}
			}
			if u.lt(node.l.v, node.v) {
				return &CorruptHeapError{"left child sorts before its parent"}
			}
			que.Enqueue(node.l)
			wlc = node.l.dist
		}
		if node.r != nil {
			if !seen.Put(uintptr(unsafe.Pointer(node.r))) {
				return &CorruptHeapError{"node is linked more than once"}
			}
			if u.lt(node.r.v, node.v) {
				return &CorruptHeapError{"right child sorts before its parent"}
			}
			que.Enqueue(node.r)
			wrc = node.r.dist
		}
		if wrc > wlc {
			return &CorruptHeapError{"right child outweighs the left child"}
		}
		if node.dist != wrc+1 {
			return &CorruptHeapError{"wrong leaf distance"}
		}
	}
	return nil
}

// Validate deep-checks the heap: order at every link, uplink consistency, and
// leaf-distance bookkeeping. Returns a CorruptHeapError describing the first
// breach found.
// Time: O(n log n)
func (u *MinDistHeap[T]) Validate() error {
	if u.root.parent != nil || u.root.r != nil {
		return &CorruptHeapError{"sentinel has grown extra links"}
	}
	que := priorityqueue.NewWith(func(a, b interface{}) int {
		return int(a.(*mdNode[T]).dist) - int(b.(*mdNode[T]).dist)
	})
	if u.root.l != nil {
		if u.root.l.parent != &u.root {
			return &CorruptHeapError{"root does not link back to the sentinel"}
		}
		que.Enqueue(u.root.l)
	}
	for !que.Empty() {
		e, _ := que.Dequeue()
		node := e.(*mdNode[T])
		var wlc, wrc int16
		if node.l != nil {
			if node.l.parent != node {
				return &CorruptHeapError{"left child lost its uplink"}
			}
			if u.lt(node.l.v, node.v) {
				return &CorruptHeapError{"left child sorts before its parent"}
			}
			que.Enqueue(node.l)
			wlc = node.l.dist
		}
		if node.r != nil {
			if node.r.parent != node {
				return &CorruptHeapError{"right child lost its uplink"}
			}
			if u.lt(node.r.v, node.v) {
				return &CorruptHeapError{"right child sorts before its parent"}
			}
			que.Enqueue(node.r)
			wrc = node.r.dist
		}
		if node.dist != min(wlc, wrc)+1 {
			return &CorruptHeapError{"wrong leaf distance"}
		}
	}
	return nil
}

// Validate deep-checks the heap: order along every child list and single
// reachability. The walk replaces the stack top with its sibling and only
// pushes child-list heads, so a pure horizontal or vertical list costs a stack
// depth of one. Returns a CorruptHeapError describing the first breach found.
// Time: O(n)
func (u *PairingHeap[T]) Validate() error {
	seen := IdentSet.New(0, 0)
	var que []*phNode[T]
	if u.root != nil {
		if u.root.next != nil {
			return &CorruptHeapError{"root has a sibling"}
		}
		seen.Put(uintptr(unsafe.Pointer(u.root)))
		que = append(que, u.root)
	}
	for len(que) > 0 {
		node := que[len(que)-1]
		chld := node.down
		if que[len(que)-1] = node.next; que[len(que)-1] == nil {
			que = que[:len(que)-1]
		}
		if chld != nil {
			que = append(que, chld)
			for ; chld != nil; chld = chld.next {
				if !seen.Put(uintptr(unsafe.Pointer(chld))) {
					return &CorruptHeapError{"node is linked more than once"}
				}
				if u.lt(chld.v, node.v) {
					return &CorruptHeapError{"child sorts before its parent"}
				}
			}
		}
	}
	return nil
}

// Validate deep-checks the heap: order along every child list, back-link
// consistency of children and siblings, and the sentinel anchoring. Returns a
// CorruptHeapError describing the first breach found.
// Time: O(n)
func (u *LinkedPairingHeap[T]) Validate() error {
	var que []*lpNode[T]
	if node := u.root.down; node != nil {
		if node.prev != &u.root || node.next != nil {
			return &CorruptHeapError{"root is not anchored to the sentinel alone"}
		}
		que = append(que, node)
	}
	for len(que) > 0 {
		node := que[len(que)-1]
		chld := node.down
		if que[len(que)-1] = node.next; que[len(que)-1] == nil {
			que = que[:len(que)-1]
		}
		if chld != nil {
			if chld.prev != node {
				return &CorruptHeapError{"child list lost its uplink"}
			}
			que = append(que, chld)
			for ; chld != nil; chld = chld.next {
				if u.lt(chld.v, node.v) {
					return &CorruptHeapError{"child sorts before its parent"}
				}
				if chld.next != nil && chld.next.prev != chld {
					return &CorruptHeapError{"broken sibling back link"}
				}
			}
		}
	}
	return nil
}
