package bitmap

import (
	"math/bits"
)

// T is a set of small non-negative integers. Iteration is always in
// increasing order.
type T []uint64

// New returns a T with room for n entries and all of [0, n) set.
func New(n int) T {
	b := make(T, (n+63)/64)
	for i := range b {
		b[i] = ^uint64(0)
	}
	if r := uint(n) % 64; r != 0 {
		b[len(b)-1] = 1<<r - 1
	}
	return b
}

func (b T) Set(idx uint) {
	b[idx>>6] |= 1 << (idx & 63)
}

// Clear removes idx and reports if it was present.
func (b T) Clear(idx uint) bool {
	w, m := &b[idx>>6], uint64(1)<<(idx&63)
	had := *w&m > 0
	*w &^= m
	return had
}

// Len returns the number of set entries.
func (b T) Len() (n int) {
	for _, u := range b {
		n += bits.OnesCount64(u)
	}
	return n
}

// Nth returns the kth smallest set entry. It returns false if there are not
// enough entries.
func (b T) Nth(k int) (idx uint, ok bool) {
	for i, u := range b {
		c := bits.OnesCount64(u)
		if k >= c {
			k -= c
			continue
		}
		for ; k > 0; k-- {
			u &= u - 1
		}
		return uint(i)*64 + uint(bits.TrailingZeros64(u)), true
	}
	return 0, false
}

// Next removes and returns the smallest set entry.
func (b T) Next() (idx uint, ok bool) {
	for i, u := range b {
		if u == 0 {
			continue
		}
		b[i] = u & (u - 1)
		return uint(i)*64 + uint(bits.TrailingZeros64(u)), true
	}
	return 0, false
}
