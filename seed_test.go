package scramble

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/scramble/internal/uint128"
)

func TestParseSeed(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp uint128.T
	}{
		{"123:456", uint128.T{H: 123, L: 456}},
		{" 0:1 ", uint128.T{L: 1}},
		{"0x1c8", uint128.T{L: 456}},
		{"0X7B00000000000001C8", uint128.T{H: 123, L: 456}},
		{"0xffffffffffffffffffffffffffffffff", uint128.T{H: ^uint64(0), L: ^uint64(0)}},
		{"456", uint128.T{L: 456}},
		{"18446744073709551616", uint128.T{H: 1}},
		{"340282366920938463463374607431768211455", uint128.T{H: ^uint64(0), L: ^uint64(0)}},
	} {
		got, err := ParseSeed(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, got, tc.exp)
	}

	for _, in := range []string{
		"",
		"1:",
		":1",
		"1:2:3",
		"0x",
		"0xzz",
		"0x1ffffffffffffffffffffffffffffffff",
		"-1",
		"12a",
		"340282366920938463463374607431768211456",
		"3402823669209384634633746074317682114550",
	} {
		_, err := ParseSeed(in)
		assert.Error(t, err)
		assert.That(t, Error.Has(err))
	}
}

func TestParseSteps(t *testing.T) {
	got, err := ParseSteps("1267650600228229401496703205376")
	assert.NoError(t, err)
	assert.Equal(t, got, uint128.T{H: 1 << 36})

	_, err = ParseSteps("0x10")
	assert.Error(t, err)
}

func TestPhraseSeed(t *testing.T) {
	assert.Equal(t, PhraseSeed("delia"), PhraseSeed("delia"))
	assert.That(t, PhraseSeed("delia") != PhraseSeed("Delia"))
}
