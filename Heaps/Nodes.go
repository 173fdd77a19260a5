package Heaps

// A node in a LeftistHeap. dist is the leaf distance: the least number of child
// steps to a missing child, 1 for a leaf; a detached node is reset to a
// singleton with dist 1.
type lhNode[T any] struct {
	v    T
	l, r *lhNode[T]
	dist int16
}

// lhCons chains node in front of tail through the r link, for threading detached
// nodes into a temporary list. Either argument may be nil; the non-nil one wins.
func lhCons[T any](node, tail *lhNode[T]) *lhNode[T] {
	if node != nil {
		node.r = tail
		return node
	}
	return tail
}

// A node in a PairingHeap: next is the right sibling, down the head of the child
// list. Forward links only.
type phNode[T any] struct {
	v          T
	next, down *phNode[T]
}

// phCons makes b the immediate successor of a.
func phCons[T any](a, b *phNode[T]) *phNode[T] {
	if a != nil {
		a.next = b
		return a
	}
	return b
}

// phDunk makes b the first child of a.
func phDunk[T any](a, b *phNode[T]) *phNode[T] {
	if a != nil {
		a.down = b
		return a
	}
	return b
}

// A node in a MinDistHeap. parent points at the linking node; the tree root's
// parent is the heap's sentinel, whose own parent stays nil.
type mdNode[T any] struct {
	v      T
	l, r   *mdNode[T]
	parent *mdNode[T]
	dist   int16
}

// lgraft makes b the left child of a, fixing b's uplink.
func lgraft[T any](a, b *mdNode[T]) *mdNode[T] {
	if a != nil {
		a.l = b
	}
	if b != nil {
		b.parent = a
	}
	if a != nil {
		return a
	}
	return b
}

// rgraft makes b the right child of a, fixing b's uplink.
func rgraft[T any](a, b *mdNode[T]) *mdNode[T] {
	if a != nil {
		a.r = b
	}
	if b != nil {
		b.parent = a
	}
	if a != nil {
		return a
	}
	return b
}

// pcons chains a in front of b through the parent link. Only valid on detached
// nodes: while a list is threaded this way the structure is not a tree.
func pcons[T any](a, b *mdNode[T]) *mdNode[T] {
	if a != nil {
		a.parent = b
		return a
	}
	return b
}

// A node in a LinkedPairingHeap. prev points at whichever node links here,
// through either next or down; the tree root's prev is the heap's sentinel.
type lpNode[T any] struct {
	v                T
	prev, next, down *lpNode[T]
}

// lpCons makes b the immediate successor of a, fixing b's back link.
func lpCons[T any](a, b *lpNode[T]) *lpNode[T] {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
	if a != nil {
		return a
	}
	return b
}

// lpDunk makes b the first child of a, fixing b's back link.
func lpDunk[T any](a, b *lpNode[T]) *lpNode[T] {
	if a != nil {
		a.down = b
	}
	if b != nil {
		b.prev = a
	}
	if a != nil {
		return a
	}
	return b
}
