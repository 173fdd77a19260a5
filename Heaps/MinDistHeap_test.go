package Heaps

import (
	"slices"
	"testing"
)

// task is a payload with a mutable priority, for exercising the key-change
// operations through handles.
type task struct {
	pri, id int
}

func taskLess(a, b task) bool {
	return a.pri < b.pri
}

func TestMinDistHeap_PushPopOrder(t *testing.T) {
	h := NewMinDistOrdered[int]()
	h.Push(5)
	h.Push(1)
	h.Push(3)
	for _, want := range []int{1, 3, 5} {
		f, err := h.Peek()
		if err != nil {
			t.Fatal(err)
		}
		if *f != want {
			t.Errorf("front is %d, want %d", *f, want)
		}
		if v, err := h.Pop(); err != nil || v != want {
			t.Errorf("popped %d, want %d", v, want)
		}
	}
	if _, err := h.Peek(); err == nil {
		t.Error("front of an empty heap should fail")
	}
	if _, err := h.Pop(); err == nil {
		t.Error("pop of an empty heap should fail")
	}
}

func TestMinDistHeap_Merge(t *testing.T) {
	a, b := NewMinDistOrdered[int](), NewMinDistOrdered[int]()
	a.PushAll(1, 3, 5)
	b.PushAll(2, 4, 6)
	a.Merge(b)
	if !b.Empty() {
		t.Error("donor heap is not empty")
	}
	if err := a.Validate(); err != nil {
		t.Fatal(err)
	}
	for want := 1; want <= 6; want++ {
		if v, err := a.Pop(); err != nil || v != want {
			t.Errorf("popped %d, want %d", v, want)
		}
	}
	if !a.Empty() {
		t.Error("drained heap is not empty")
	}
}

func TestMinDistHeap_PushAll(t *testing.T) {
	a := make([]int, tPushN)
	for i := range a {
		a[i] = rg.Intn(tValRange)
	}
	h1, h2 := NewMinDistOrdered[int](), NewMinDistOrdered[int]()
	for _, v := range a {
		h1.Push(v)
	}
	h2.PushAll(a...)
	if err := h2.Validate(); err != nil {
		t.Fatal(err)
	}
	for !h1.Empty() {
		v1, _ := h1.Pop()
		v2, err := h2.Pop()
		if err != nil {
			t.Fatal(err)
		}
		if v1 != v2 {
			t.Fatalf("batch built heap popped %d, want %d", v2, v1)
		}
	}
	if !h2.Empty() {
		t.Error("batch built heap has leftover elements")
	}
}

func TestMinDistHeap_IterReach(t *testing.T) {
	h := NewMinDistOrdered[int]()
	h.PushAll(1, 3, 5, 2, 4, 6)
	visited := make(map[int]struct{})
	cnt := 0
	for it := h.Begin(); !it.Same(h.End()); it.Next() {
		visited[*it.Value()] = struct{}{}
		if cnt++; cnt > 6 {
			t.Fatal("iteration does not terminate")
		}
	}
	if cnt != 6 || len(visited) != 6 {
		t.Errorf("visited %d nodes with %d distinct values, want 6", cnt, len(visited))
	}
}

func TestMinDistHeap_IterDelete(t *testing.T) {
	h := NewMinDistOrdered[int]()
	for _, v := range []int{1, 3, 5, 2, 4, 6} {
		h.Push(v)
	}
	for it := h.Begin(); !it.Same(h.End()); {
		if *it.Value()&1 == 1 {
			var err error
			if it, err = h.Remove(it); err != nil {
				t.Fatal(err)
			}
		} else {
			it.Next()
		}
	}
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	cnt := 0
	for it := h.Begin(); !it.Same(h.End()); it.Next() {
		cnt++
	}
	if cnt != 3 {
		t.Errorf("visited %d nodes after removal, want 3", cnt)
	}
	for _, want := range []int{2, 4, 6} {
		if v, err := h.Pop(); err != nil || v != want {
			t.Errorf("popped %d, want %d", v, want)
		}
	}
	if !h.Empty() {
		t.Error("drained heap is not empty")
	}
}

func TestMinDistHeap_IterBack(t *testing.T) {
	h := NewMinDistOrdered[int]()
	h.PushAll(1, 3, 5, 2, 4, 6)
	it, last := h.End(), h.Begin()
	cnt := 0
	for !it.Same(last) {
		if err := it.Prev(); err != nil {
			t.Fatal(err)
		}
		cnt++
	}
	if cnt != 6 {
		t.Errorf("stepped back over %d nodes, want 6", cnt)
	}
	if err := it.Prev(); err == nil {
		t.Error("stepping before the first node should fail")
	}
}

func TestMinDistHeap_IterBackAfterErase(t *testing.T) {
	h := NewMinDistOrdered[int]()
	for i := 0; i < 100; i++ {
		h.Push(i)
	}
	for it := h.Begin(); !it.Same(h.End()); {
		if *it.Value()&1 == 1 {
			var err error
			if it, err = h.Remove(it); err != nil {
				t.Fatal(err)
			}
		} else {
			it.Next()
		}
	}
	it, last := h.End(), h.Begin()
	cnt := 0
	for !it.Same(last) {
		if err := it.Prev(); err != nil {
			t.Fatal(err)
		}
		if *it.Value()&1 != 0 {
			t.Errorf("odd value %d survived the erase", *it.Value())
		}
		cnt++
	}
	if cnt != 50 {
		t.Errorf("stepped back over %d nodes, want 50", cnt)
	}
}

func TestMinDistHeap_EmptyIter(t *testing.T) {
	h := NewMinDistOrdered[int]()
	if !h.Begin().Same(h.End()) {
		t.Error("begin of an empty heap should equal end")
	}
	it := h.End()
	it.Next()
	if !it.Same(h.End()) {
		t.Error("advancing end should stay at end")
	}
	if err := it.Prev(); err == nil {
		t.Error("stepping back from end of an empty heap should fail")
	}
	if _, err := h.Remove(h.End()); err == nil {
		t.Error("removing the sentinel should fail")
	}
}

func TestMinDistHeap_Count(t *testing.T) {
	h := NewMinDistOrdered[int]()
	const k = 200
	hs := make([]MDIterator[int], 0, k)
	for i := 0; i < k; i++ {
		hs = append(hs, h.Push(i))
	}
	const m, r = 30, 50
	for i := 0; i < m; i++ {
		if _, err := h.Pop(); err != nil {
			t.Fatal(err)
		}
	}
	// the first m pushes went out through Pop, so remove from the back
	for i := 0; i < r; i++ {
		if _, err := h.Remove(hs[len(hs)-1-i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	cnt := 0
	for !h.Empty() {
		h.Pop()
		cnt++
	}
	if cnt != k-m-r {
		t.Errorf("drained %d elements, want %d", cnt, k-m-r)
	}
}

func TestMinDistHeap_Decrease(t *testing.T) {
	h := NewMinDist[task](taskLess)
	hs := make([]MDIterator[task], 0, 500)
	for i := 0; i < cap(hs); i++ {
		hs = append(hs, h.Push(task{rg.Intn(tValRange) + 1000, i}))
	}
	for i := 0; i < 200; i++ {
		it := hs[rg.Intn(len(hs))]
		old, err := h.Peek()
		if err != nil {
			t.Fatal(err)
		}
		oldPri := old.pri
		it.Value().pri -= rg.Intn(1000)
		if _, err = h.Decrease(it); err != nil {
			t.Fatal(err)
		}
		front, _ := h.Peek()
		if front.pri > oldPri {
			t.Errorf("front rose from %d to %d after a decrease", oldPri, front.pri)
		}
		if err = h.Validate(); err != nil {
			t.Fatal(err)
		}
	}
	prev := -1 << 31
	for !h.Empty() {
		v, _ := h.Pop()
		if v.pri < prev {
			t.Fatal("drain is not sorted")
		}
		prev = v.pri
	}
}

func TestMinDistHeap_Readjust(t *testing.T) {
	h := NewMinDist[task](taskLess)
	hs := make([]MDIterator[task], 0, 500)
	for i := 0; i < cap(hs); i++ {
		hs = append(hs, h.Push(task{rg.Intn(tValRange), i}))
	}
	for i := 0; i < 200; i++ {
		it := hs[rg.Intn(len(hs))]
		it.Value().pri = rg.Intn(tValRange) - tValRange/2
		if _, err := h.Readjust(it); err != nil {
			t.Fatal(err)
		}
		if err := h.Validate(); err != nil {
			t.Fatal(err)
		}
	}
	prev := -1 << 31
	cnt := 0
	for !h.Empty() {
		v, _ := h.Pop()
		if v.pri < prev {
			t.Fatal("drain is not sorted")
		}
		prev = v.pri
		cnt++
	}
	if cnt != cap(hs) {
		t.Errorf("drained %d elements, want %d", cnt, cap(hs))
	}
}

func TestMinDistHeap_Soak(t *testing.T) {
	h := NewMinDist[task](taskLess)
	var hs []MDIterator[task]
	ref := make(map[int]int) // priority multiset
	id := 0
	for i := 0; i < 600; i++ {
		switch op := rg.Intn(4); {
		case op == 0 || len(hs) == 0:
			pri := rg.Intn(tValRange)
			hs = append(hs, h.Push(task{pri, id}))
			ref[pri]++
			id++
		case op == 1:
			i := rg.Intn(len(hs))
			ref[hs[i].Value().pri]--
			if _, err := h.Remove(hs[i]); err != nil {
				t.Fatal(err)
			}
			hs[i] = hs[len(hs)-1]
			hs = hs[:len(hs)-1]
		case op == 2:
			i := rg.Intn(len(hs))
			ref[hs[i].Value().pri]--
			hs[i].Value().pri -= rg.Intn(1000)
			ref[hs[i].Value().pri]++
			if _, err := h.Decrease(hs[i]); err != nil {
				t.Fatal(err)
			}
		default:
			i := rg.Intn(len(hs))
			ref[hs[i].Value().pri]--
			hs[i].Value().pri = rg.Intn(tValRange)
			ref[hs[i].Value().pri]++
			if _, err := h.Readjust(hs[i]); err != nil {
				t.Fatal(err)
			}
		}
		if err := h.Validate(); err != nil {
			t.Fatal(err)
		}
	}
	var drain []int
	for !h.Empty() {
		v, _ := h.Pop()
		drain = append(drain, v.pri)
	}
	if !slices.IsSorted(drain) {
		t.Error("drain is not sorted")
	}
	var want []int
	for pri, n := range ref {
		for i := 0; i < n; i++ {
			want = append(want, pri)
		}
	}
	slices.Sort(want)
	if !slices.Equal(drain, want) {
		t.Error("drain lost or invented elements")
	}
}

func TestMinDistHeap_Shred(t *testing.T) {
	h := NewMinDistOrdered[int]()
	for i := 0; i < tPushN; i++ {
		h.Push(rg.Intn(tValRange))
	}
	seen := make(map[*mdNode[int]]struct{})
	for hold := h.yield(); hold != nil; {
		n := mdShredPop(&hold)
		if _, in := seen[n]; in {
			t.Fatal("node shredded twice")
		}
		seen[n] = struct{}{}
	}
	if len(seen) != tPushN {
		t.Errorf("shredded %d nodes, want %d", len(seen), tPushN)
	}
}

func TestMinDistHeap_Clear(t *testing.T) {
	h := NewMinDistOrdered[int]()
	h.PushAll(3, 1, 2)
	h.Clear()
	if !h.Empty() {
		t.Error("cleared heap is not empty")
	}
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	h.Push(9)
	if v, err := h.Pop(); err != nil || v != 9 {
		t.Error("cleared heap is unusable")
	}
}
