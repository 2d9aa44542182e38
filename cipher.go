package scramble

import (
	"strings"
	"unicode"
)

// Cipher is a letter substitution. Runes that are not keys map to themselves.
type Cipher map[rune]rune

// isVowel reports whether the lower case letter is a vowel.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// letters returns the distinct case folded letters of text in order of first
// appearance, split into vowels and consonants.
func letters(text string) (vowels, consonants []rune) {
	seen := make(map[rune]struct{})
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		r = unicode.ToLower(r)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}

		if isVowel(r) {
			vowels = append(vowels, r)
		} else {
			consonants = append(consonants, r)
		}
	}
	return vowels, consonants
}

// NewCipher derives a cipher for text. Vowels only map to vowels and
// consonants only map to consonants, and a letter only maps to itself when
// it is the sole member of its class or in the trailing position of its
// class's derangement. Upper case letters follow their lower case form.
//
// The vowels are deranged before the consonants.
func NewCipher(rng *PCG, text string) Cipher {
	vowels, consonants := letters(text)

	c := make(Cipher, 2*(len(vowels)+len(consonants)))
	for _, class := range [][]rune{vowels, consonants} {
		for i, v := range Derange(rng, class) {
			k := class[i]
			c[k] = v
			if uk := unicode.ToUpper(k); uk != k {
				c[uk] = unicode.ToUpper(v)
			}
		}
	}

	return c
}

// Apply returns text with every rune passed through the cipher.
func (c Cipher) Apply(text string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := c[r]; ok {
			return v
		}
		return r
	}, text)
}

// Invert returns the cipher that undoes c.
func (c Cipher) Invert() Cipher {
	inv := make(Cipher, len(c))
	for k, v := range c {
		inv[v] = k
	}
	return inv
}

// Encipher derives a cipher for text and applies it.
func Encipher(rng *PCG, text string) string {
	return NewCipher(rng, text).Apply(text)
}
