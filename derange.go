package scramble

import (
	"slices"

	"github.com/zeebo/scramble/internal/bitmap"
)

// Derange returns a permutation of the distinct values in in such that no
// value except possibly the last keeps its position. If every value would
// keep its position and there are at least two, the first two are swapped.
//
// It draws len(in)-1 bounded values from rng.
func Derange[T comparable](rng *PCG, in []T) []T {
	out := make([]T, 0, len(in))
	if len(in) == 0 {
		return out
	}

	// remaining holds indexes into in, so that picking the kth remaining
	// value is stable across runs.
	remaining := bitmap.New(len(in))

	for i := range in[:len(in)-1] {
		had := remaining.Clear(uint(i))

		r, _ := remaining.Nth(rng.Intn(remaining.Len()))
		out = append(out, in[r])
		remaining.Clear(r)

		if had {
			remaining.Set(uint(i))
		}
	}

	for {
		r, ok := remaining.Next()
		if !ok {
			break
		}
		out = append(out, in[r])
	}

	if len(out) > 1 && slices.Equal(out, in) {
		out[0], out[1] = out[1], out[0]
	}

	return out
}
