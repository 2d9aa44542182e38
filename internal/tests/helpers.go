package tests

import (
	"strings"

	"github.com/zeebo/pcg"
)

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	filler = " ,.!?'-0123456789"
)

// Text returns a random string of n runes drawn mostly from ascii letters of
// both cases with some punctuation and digits mixed in.
func Text(rng *pcg.T, n int) string {
	var b strings.Builder
	b.Grow(n)

	for i := 0; i < n; i++ {
		switch rng.Uint32n(8) {
		case 0:
			b.WriteByte(filler[rng.Uint32n(uint32(len(filler)))])
		case 1, 2:
			b.WriteByte(upper[rng.Uint32n(uint32(len(upper)))])
		default:
			b.WriteByte(lower[rng.Uint32n(uint32(len(lower)))])
		}
	}

	return b.String()
}

// Solutions returns n random solution texts.
func Solutions(rng *pcg.T, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Text(rng, 10+int(rng.Uint32n(50)))
	}
	return out
}
