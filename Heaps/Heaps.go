/*
Package Heaps implements meldable priority queues over linked nodes.

# Variants

Four implementations are offered. LeftistHeap and PairingHeap carry two links
per node and support only the queue surface (push, peek, pop, merge).
MinDistHeap and LinkedPairingHeap carry a third back link per node, which buys
stable handles: any node can be removed, repositioned after a key change, and
iterated to in both directions while the heap lives.

# Ordering

Every heap is ordered by a caller-supplied strict weak order lt fixed at
construction. lt must be a pure function: merging consumes the donor heap's
nodes, so two heaps may only be merged when they were built with an identical
order function. Mutating a key under a handle is allowed, but the heap must be
told through Decrease or Readjust before any other operation observes it.

# Copying

Constructors return pointers; a heap value must never be copied. The handle
variants embed their end sentinel, so a copy would tear every back link to it.
*/
package Heaps

import "golang.org/x/exp/constraints"

// Heap is a meldable priority queue. Peek returns a reference to the least
// element under the heap's order, valid until the next operation. Pop removes
// and returns the least element. Both report EmptyHeapError on an empty heap.
// Validate deep-checks the structure and is meant for tests and debugging; it
// reports a CorruptHeapError describing the first breach found.
type Heap[T any] interface {
	Push(v T)
	PushAll(vs ...T)
	Peek() (*T, error)
	Pop() (T, error)
	Empty() bool
	Clear()
	Validate() error
}

// IterHeap is a Heap whose nodes are addressable: Push hands out a handle of
// type It that stays valid until the node is removed or the heap cleared.
// Forward iteration (Begin, Next) runs right-to-left post-order and ends at
// the End sentinel; Next at End stays put. Backward iteration (Prev from End)
// runs left-to-right pre-order and fails with OutOfRangeError when stepped
// before the first node. Remove detaches the node behind a handle and returns
// the handle of its forward successor, so removal during iteration keeps the
// traversal total over the surviving nodes; other live handles stay valid but
// their continued iteration is no longer guaranteed to be complete.
type IterHeap[T, It any] interface {
	Push(v T) It
	PushAll(vs ...T)
	Peek() (*T, error)
	Pop() (T, error)
	Empty() bool
	Clear()
	Begin() It
	End() It
	Remove(it It) (It, error)
	Decrease(it It) (It, error)
	Readjust(it It) (It, error)
	Validate() error
}

// Less is the natural < order for ordered types, usable as the lt argument of
// the constructors.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

type EmptyHeapError struct {
}

func (e *EmptyHeapError) Error() string {
	return "Heap is Empty: cannot access the front."
}

type OutOfRangeError struct {
}

func (e *OutOfRangeError) Error() string {
	return "iterator is out of range."
}

// CorruptHeapError reports the first structural breach Validate found.
type CorruptHeapError struct {
	msg string
}

func (e *CorruptHeapError) Error() string {
	return e.msg
}

var (
	_ Heap[int]                      = (*LeftistHeap[int])(nil)
	_ Heap[int]                      = (*PairingHeap[int])(nil)
	_ IterHeap[int, MDIterator[int]] = (*MinDistHeap[int])(nil)
	_ IterHeap[int, LPIterator[int]] = (*LinkedPairingHeap[int])(nil)
)
