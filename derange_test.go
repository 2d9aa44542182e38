package scramble

import (
	"slices"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/scramble/internal/uint128"
)

func TestDerange(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		p := NewDefault()
		start := p.State()
		assert.Equal(t, len(Derange(p, []rune(nil))), 0)
		assert.Equal(t, p.State(), start)
	})

	t.Run("Single", func(t *testing.T) {
		p := NewDefault()
		start := p.State()
		assert.DeepEqual(t, Derange(p, []rune{'a'}), []rune{'a'})
		assert.Equal(t, p.State(), start)
	})

	t.Run("Pair", func(t *testing.T) {
		p := NewDefault()
		for i := 0; i < 100; i++ {
			assert.DeepEqual(t, Derange(p, []rune{'c', 't'}), []rune{'t', 'c'})
		}
	})

	t.Run("Golden", func(t *testing.T) {
		got := Derange(NewDefault(), []rune("abcdefghij"))
		assert.Equal(t, string(got), "hfjcgibade")
	})

	t.Run("Properties", func(t *testing.T) {
		rng := pcg.New(0)
		for n := 2; n <= 10; n++ {
			in := make([]int, n)
			for i := range in {
				in[i] = i * 7
			}

			for trial := 0; trial < 1000; trial++ {
				p := New(uint128.T{H: rng.Uint64(), L: rng.Uint64()})
				out := Derange(p, in)

				for i := 0; i < n-1; i++ {
					assert.That(t, out[i] != in[i])
				}

				sorted := slices.Clone(out)
				slices.Sort(sorted)
				assert.DeepEqual(t, sorted, in)
			}
		}
	})

	t.Run("Draws", func(t *testing.T) {
		// each position but the last draws once; no draw from the default
		// seed is rejected at these pool sizes.
		for n := 2; n <= 10; n++ {
			a, b := NewDefault(), NewDefault()
			in := make([]int, n)
			for i := range in {
				in[i] = i
			}
			Derange(a, in)
			b.Advance(uint128.From64(uint64(n - 1)))
			assert.Equal(t, a.State(), b.State())
		}
	})
}

func BenchmarkDerange(b *testing.B) {
	in := []rune("bcdfghjklmnpqrstvwxyz")
	p := NewDefault()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		Derange(p, in)
	}
}
