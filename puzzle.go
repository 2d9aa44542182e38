package scramble

import (
	"crypto/sha256"
	"encoding/hex"
)

// Kind discriminates the two shapes of a Puzzle.
type Kind int

const (
	Plain Kind = iota
	Scrambled
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Scrambled:
		return "scrambled"
	default:
		return "unknown"
	}
}

// Puzzle is one entry of a puzzle file. Solution is only meaningful for Plain
// puzzles, and Text and Hash are only meaningful for Scrambled puzzles.
// Comment is nil when the entry has none, which is distinct from an empty
// comment.
type Puzzle struct {
	Date    string
	Author  string
	Comment *string

	Kind     Kind
	Solution string
	Text     string
	Hash     string
}

// Scramble turns a plain puzzle into a scrambled one. Scrambled puzzles are
// left alone and draw nothing from rng.
func (p *Puzzle) Scramble(rng *PCG) {
	if p.Kind != Plain {
		return
	}

	*p = Puzzle{
		Date:    p.Date,
		Author:  p.Author,
		Comment: p.Comment,
		Kind:    Scrambled,
		Text:    Encipher(rng, p.Solution),
		Hash:    Digest(p.Solution),
	}
}

// Verify reports whether guess is the solution to the scrambled puzzle.
func (p *Puzzle) Verify(guess string) bool {
	if p.Kind != Scrambled {
		return guess == p.Solution
	}
	return Digest(guess) == p.Hash
}

// Digest returns the hex encoded sha256 of the solution.
func Digest(solution string) string {
	sum := sha256.Sum256([]byte(solution))
	return hex.EncodeToString(sum[:])
}

// File is a collection of puzzles.
type File struct {
	Puzzles []Puzzle
}

// Scramble scrambles every plain puzzle in order using the same generator.
func (f *File) Scramble(rng *PCG) {
	for i := range f.Puzzles {
		f.Puzzles[i].Scramble(rng)
	}
}

// Dates returns the date of every puzzle in order.
func (f *File) Dates() []string {
	dates := make([]string, len(f.Puzzles))
	for i, p := range f.Puzzles {
		dates[i] = p.Date
	}
	return dates
}

// Warnings returns the date warnings for the puzzles in the file.
func (f *File) Warnings() []Warning { return Warnings(f.Dates()) }
