package scramble

import (
	"strconv"
	"strings"

	"github.com/zeebo/scramble/internal/uint128"
)

// ParseSeed parses a 128 bit value. It accepts "high:low" with both halves in
// decimal, up to 32 hex digits prefixed with "0x", or a plain decimal number
// that fits in 128 bits.
func ParseSeed(s string) (uint128.T, error) {
	s = strings.TrimSpace(s)

	if high, low, ok := strings.Cut(s, ":"); ok {
		h, err := strconv.ParseUint(high, 10, 64)
		if err != nil {
			return uint128.T{}, Error.New("invalid seed %q: %v", s, err)
		}
		l, err := strconv.ParseUint(low, 10, 64)
		if err != nil {
			return uint128.T{}, Error.New("invalid seed %q: %v", s, err)
		}
		return uint128.T{H: h, L: l}, nil
	}

	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		if len(hex) == 0 || len(hex) > 32 {
			return uint128.T{}, Error.New("invalid seed %q: need 1 to 32 hex digits", s)
		}
		var v uint128.T
		if len(hex) > 16 {
			h, err := strconv.ParseUint(hex[:len(hex)-16], 16, 64)
			if err != nil {
				return uint128.T{}, Error.New("invalid seed %q: %v", s, err)
			}
			v.H, hex = h, hex[len(hex)-16:]
		}
		l, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return uint128.T{}, Error.New("invalid seed %q: %v", s, err)
		}
		v.L = l
		return v, nil
	}

	return parseDecimal(s)
}

// maxDiv10 is the largest value that can be multiplied by ten without
// overflowing 128 bits.
var maxDiv10 = uint128.T{H: 0x1999999999999999, L: 0x9999999999999999}

// parseDecimal parses a base 10 number that fits in 128 bits.
func parseDecimal(s string) (v uint128.T, err error) {
	if s == "" {
		return v, Error.New("invalid number %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return uint128.T{}, Error.New("invalid number %q", s)
		}
		d := uint64(r - '0')
		if uint128.Less(maxDiv10, v) || (v == maxDiv10 && d > 5) {
			return uint128.T{}, Error.New("number %q overflows 128 bits", s)
		}
		v = uint128.Add(uint128.Mul(v, uint128.From64(10)), uint128.From64(d))
	}
	return v, nil
}

// ParseSteps parses a decimal count of generator outputs.
func ParseSteps(s string) (uint128.T, error) {
	return parseDecimal(strings.TrimSpace(s))
}

// PhraseSeed derives a seed from a phrase.
func PhraseSeed(phrase string) uint128.T {
	return uint128.HashString(phrase)
}
