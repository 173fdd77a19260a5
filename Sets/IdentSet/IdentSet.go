package IdentSet

import (
	Heap_Utils "github.com/g-m-twostay/heap-utils"
	"github.com/g-m-twostay/heap-utils/Sets"
)

// The probe steps are in the range [1,128], so every table length below is co-prime
// to all primes <= 128; this guarantees that probing visits the whole table. The
// lengths grow roughly by the golden ratio, and bias is the precomputed correction
// for mapping a 32-bit hash onto [0,tlen) by multiply-shift.
type tableInfo struct {
	tcap, tlen, bias uint32
}

var tables = [...]tableInfo{
	{132, 199, 46},
	{211, 317, 232},
	{347, 521, 117},
	{559, 839, 446},
	{911, 1367, 932},
	{1471, 2207, 1841},
	{2380, 3571, 611},
	{3852, 5779, 2938},
	{6232, 9349, 8649},
	{10087, 15131, 2684},
	{16315, 24473, 4742},
	{26400, 39601, 1240},
	{42719, 64079, 8242},
	{69120, 103681, 85552},
	{111839, 167759, 1378},
	{180960, 271441, 227794},
	{292804, 439207, 401250},
	{473760, 710641, 563733},
	{766568, 1149853, 266341},
	{1240327, 1860491, 954068},
	{2006899, 3010349, 2209622},
	{3247231, 4870847, 3751089},
	{5254131, 7881197, 7596128},
	{8501360, 12752041, 10281520},
	{13755491, 20633237, 3254000},
	{22256852, 33385279, 21651584},
	{36012347, 54018521, 27504137},
	{58269200, 87403801, 12181047},
	{94281552, 141422329, 52297426},
	{152550748, 228826123, 176097082},
	{246832300, 370248451, 222234335},
}

// SizeLimitError is raised when no table in the schedule can hold the requested
// number of identities.
type SizeLimitError struct {
}

func (e *SizeLimitError) Error() string {
	return "IdentSet: no larger table available."
}

// IdentSet is an open-addressed set over opaque nonzero identities (pointer values,
// indexes, ...). It only grows: identities can be added and looked up, never removed.
// The zero identity marks a free slot and must not be inserted.
type IdentSet struct {
	table []uintptr
	seed  Heap_Utils.Hasher
	info  int
	used  uint32
}

var _ Sets.Set[uintptr] = (*IdentSet)(nil)

// New IdentSet that holds size identities before the first rehash. Panics with
// SizeLimitError if size exceeds the largest table in the schedule.
func New(size, seed uint) *IdentSet {
	ti := 0
	for ti < len(tables) && uint(tables[ti].tcap) < size {
		ti++
	}
	if ti == len(tables) {
		panic(&SizeLimitError{})
	}
	return &IdentSet{table: make([]uintptr, tables[ti].tlen), seed: Heap_Utils.Hasher(seed), info: ti}
}

// stepInfo gives the start slot and probe step for p. The step is derived from the
// low hash bits, the slot from all of them, so colliding slots still probe apart.
func (u *IdentSet) stepInfo(p uintptr) (uint32, uint32) {
	h := u.seed.HashUintptr(p)
	phash := uint32(h ^ h>>32)
	step := phash&127 + 1
	slot := uint32((uint64(phash)*uint64(tables[u.info].tlen) + uint64(tables[u.info].bias)) >> 32)
	return slot, step
}

// Put p into the set. Returns true if p wasn't present before.
// Time: amortized O(1)
func (u *IdentSet) Put(p uintptr) bool {
	slot, step := u.stepInfo(p)
	tlen := uint32(len(u.table))
	for u.table[slot] != 0 && u.table[slot] != p {
		if slot += step; slot >= tlen {
			slot -= tlen
		}
	}
	if u.table[slot] != 0 {
		return false
	}
	u.table[slot] = p
	if u.used++; u.used > tables[u.info].tcap {
		u.rehash()
	}
	return true
}

// Has p in the set.
// Time: O(1); Space: O(1)
func (u *IdentSet) Has(p uintptr) bool {
	slot, step := u.stepInfo(p)
	tlen := uint32(len(u.table))
	for u.table[slot] != 0 && u.table[slot] != p {
		if slot += step; slot >= tlen {
			slot -= tlen
		}
	}
	return u.table[slot] != 0
}

// Size of the set.
func (u *IdentSet) Size() uint {
	return uint(u.used)
}

// Cap is the number of identities the set holds before the next rehash.
func (u *IdentSet) Cap() uint {
	return uint(tables[u.info].tcap)
}

func (u *IdentSet) rehash() {
	if u.info+1 == len(tables) {
		panic(&SizeLimitError{})
	}
	u.info++
	holder := u.table
	u.table = make([]uintptr, tables[u.info].tlen)
	u.used = 0
	for _, p := range holder {
		if p != 0 {
			u.Put(p)
		}
	}
}
