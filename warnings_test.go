package scramble

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestWarnings(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		assert.Equal(t, len(Warnings([]string{"2022-01-01", "2022-01-02", "2022-01-05"})), 0)
		assert.Equal(t, len(Warnings(nil)), 0)
	})

	t.Run("Duplicate", func(t *testing.T) {
		assert.DeepEqual(t, Warnings([]string{"2022-01-02", "2022-01-01", "2022-01-02"}), []Warning{
			{Kind: Duplicate, Date: "2022-01-02"},
		})
	})

	t.Run("Gap", func(t *testing.T) {
		assert.DeepEqual(t, Warnings([]string{"2022-02-28", "2022-03-02", "2021-12-31", "2022-01-02"}), []Warning{
			{Kind: Gap, Date: "2022-01-01"},
			{Kind: Gap, Date: "2022-03-01"},
		})
	})

	t.Run("Sorted", func(t *testing.T) {
		assert.DeepEqual(t, Warnings([]string{"2024-02-28", "2024-03-01", "2024-03-01", "2024-02-28", "bogus"}), []Warning{
			{Kind: Duplicate, Date: "2024-02-28"},
			{Kind: Gap, Date: "2024-02-29"},
			{Kind: Duplicate, Date: "2024-03-01"},
		})
	})

	t.Run("File", func(t *testing.T) {
		f := &File{Puzzles: []Puzzle{{Date: "2022-01-01"}, {Date: "2022-01-01"}}}
		assert.DeepEqual(t, f.Warnings(), []Warning{{Kind: Duplicate, Date: "2022-01-01"}})
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, Duplicate.String(), "duplicate")
		assert.Equal(t, Gap.String(), "gap")
	})
}
