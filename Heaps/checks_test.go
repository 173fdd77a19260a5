package Heaps

import "testing"

// The positive halves below assemble small trees by hand so the negative
// halves can break exactly one invariant at a time.

func TestMinDistHeap_ValidateDetects(t *testing.T) {
	h := NewMinDistOrdered[int]()
	n1 := &mdNode[int]{v: 1, dist: 2}
	n2 := &mdNode[int]{v: 2, dist: 1}
	n3 := &mdNode[int]{v: 3, dist: 1}
	lgraft(n1, n2)
	rgraft(n1, n3)
	lgraft(&h.root, n1)
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	n2.v = 0
	if h.Validate() == nil {
		t.Error("order breach went unnoticed")
	}
	n2.v = 2
	n3.dist = 9
	if h.Validate() == nil {
		t.Error("distance breach went unnoticed")
	}
	n3.dist = 1
	n3.parent = n2
	if h.Validate() == nil {
		t.Error("uplink breach went unnoticed")
	}
	rgraft(n1, n3)
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLeftistHeap_ValidateDetects(t *testing.T) {
	h := NewLeftistOrdered[int]()
	n1 := &lhNode[int]{v: 1, dist: 2}
	n2 := &lhNode[int]{v: 2, dist: 1}
	n3 := &lhNode[int]{v: 3, dist: 1}
	n1.l, n1.r = n2, n3
	h.root = n1
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	n3.v = 0
	if h.Validate() == nil {
		t.Error("order breach went unnoticed")
	}
	n3.v = 3
	n1.dist = 1
	if h.Validate() == nil {
		t.Error("distance breach went unnoticed")
	}
	n1.dist = 2
	n1.r = n2
	if h.Validate() == nil {
		t.Error("double link went unnoticed")
	}
	n1.r = n3
	n2.r = &lhNode[int]{v: 5, dist: 1}
	if h.Validate() == nil {
		t.Error("leftist breach went unnoticed")
	}
}

func TestPairingHeap_ValidateDetects(t *testing.T) {
	h := NewPairingOrdered[int]()
	n1 := &phNode[int]{v: 1}
	n2 := &phNode[int]{v: 2}
	n3 := &phNode[int]{v: 3}
	phDunk(n1, phCons(n2, n3))
	h.root = n1
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	n1.next = n3
	if h.Validate() == nil {
		t.Error("root sibling went unnoticed")
	}
	n1.next = nil
	n2.v = 0
	if h.Validate() == nil {
		t.Error("order breach went unnoticed")
	}
	n2.v = 2
	n3.next = n2
	if h.Validate() == nil {
		t.Error("double link went unnoticed")
	}
}

func TestLinkedPairingHeap_ValidateDetects(t *testing.T) {
	h := NewLinkedPairingOrdered[int]()
	n1 := &lpNode[int]{v: 1}
	n2 := &lpNode[int]{v: 2}
	n3 := &lpNode[int]{v: 3}
	lpDunk(n1, lpCons(n2, n3))
	lpDunk(&h.root, n1)
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	n3.v = 0
	if h.Validate() == nil {
		t.Error("order breach went unnoticed")
	}
	n3.v = 3
	n3.prev = n3
	if h.Validate() == nil {
		t.Error("sibling back link breach went unnoticed")
	}
	n3.prev = n2
	n2.prev = nil
	if h.Validate() == nil {
		t.Error("uplink breach went unnoticed")
	}
	lpDunk(n1, n2)
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
}
