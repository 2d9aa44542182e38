package uint128

import (
	"fmt"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// T is an unsigned 128 bit value. All arithmetic wraps modulo 2^128.
type T struct {
	H uint64
	L uint64
}

// From64 returns v as a T.
func From64(v uint64) T { return T{L: v} }

// Less returns true if s < t.
func Less(s, t T) bool {
	return s.H < t.H || (s.H == t.H && s.L < t.L)
}

// Add returns a + b.
func Add(a, b T) T {
	l, carry := bits.Add64(a.L, b.L, 0)
	return T{H: a.H + b.H + carry, L: l}
}

// Mul returns a * b.
func Mul(a, b T) T {
	// the a.H * b.H term is shifted by 128 bits and vanishes, and only the
	// low words of the cross terms survive the shift by 64.
	h, l := bits.Mul64(a.L, b.L)
	return T{H: h + a.L*b.H + a.H*b.L, L: l}
}

// Half returns t / 2.
func (t T) Half() T {
	return T{H: t.H >> 1, L: t.L>>1 | t.H<<63}
}

// IsZero returns true if t is zero.
func (t T) IsZero() bool { return t.H == 0 && t.L == 0 }

// Neg returns -t.
func (t T) Neg() T { return Add(T{H: ^t.H, L: ^t.L}, From64(1)) }

// String returns t as 32 hex digits.
func (t T) String() string { return fmt.Sprintf("%016x%016x", t.H, t.L) }

// HashString returns a T derived from the data.
func HashString(data string) T {
	h := xxh3.HashString128(data)
	return T{H: h.Hi, L: h.Lo}
}
