package bitmap

import (
	"runtime"
	"testing"

	"github.com/zeebo/assert"
)

func has(b T, idx uint) bool {
	return int(idx>>6) < len(b) && b[idx>>6]&(1<<(idx&63)) > 0
}

func TestBitmap(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		for _, n := range []int{0, 1, 63, 64, 65, 128, 200} {
			b := New(n)
			assert.Equal(t, b.Len(), n)
			for i := 0; i < n; i++ {
				assert.That(t, has(b, uint(i)))
			}
			if n%64 != 0 {
				assert.That(t, !has(b, uint(n)))
			}
		}
	})

	t.Run("Next", func(t *testing.T) {
		for _, n := range []int{1, 64, 130} {
			b := New(n)
			for i := 0; i < n; i++ {
				got, ok := b.Next()
				assert.That(t, ok)
				assert.Equal(t, got, uint(i))
			}
			_, ok := b.Next()
			assert.That(t, !ok)
			assert.Equal(t, b.Len(), 0)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		b := New(100)
		assert.That(t, b.Clear(70))
		assert.That(t, !b.Clear(70))
		assert.That(t, !has(b, 70))
		assert.Equal(t, b.Len(), 99)

		b.Set(70)
		assert.That(t, has(b, 70))
		assert.Equal(t, b.Len(), 100)
	})

	t.Run("Nth", func(t *testing.T) {
		b := New(130)
		for i := uint(0); i < 130; i += 2 {
			b.Clear(i)
		}

		for k := 0; k < 65; k++ {
			got, ok := b.Nth(k)
			assert.That(t, ok)
			assert.Equal(t, got, uint(2*k+1))
		}
		_, ok := b.Nth(65)
		assert.That(t, !ok)
	})

}

func BenchmarkBitmap(b *testing.B) {
	b.Run("Nth", func(b *testing.B) {
		idx := uint(0)
		bm := New(26)
		for i := 0; i < b.N; i++ {
			idx, _ = bm.Nth(i % 26)
		}
		runtime.KeepAlive(idx)
	})

	b.Run("NextAll", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bm := New(128)
			for {
				_, ok := bm.Next()
				if !ok {
					break
				}
			}
		}
	})
}
