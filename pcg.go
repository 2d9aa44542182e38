package scramble

import (
	"math/bits"

	"github.com/zeebo/scramble/internal/uint128"
)

// PCG is a PCG XSL RR 128/64 generator: 128 bits of state, 64 bits of output.
// The zero value is valid but unseeded; use New.
type PCG struct {
	state uint128.T
}

var (
	pcgMul = uint128.T{H: 2549297995355413924, L: 4865540595714422341}
	pcgInc = uint128.T{H: 6364136223846793005, L: 1442695040888963407}
)

// DefaultSeed is the seed used by NewDefault.
var DefaultSeed = uint128.T{H: 123, L: 456}

// New constructs a PCG from the seed.
func New(seed uint128.T) *PCG {
	// a bare lcg started at the seed is weak, so step once from zero, mix in
	// the seed, and step again.
	var p PCG
	p.step()
	p.state = uint128.Add(p.state, seed)
	p.step()
	return &p
}

// NewDefault constructs a PCG from DefaultSeed.
func NewDefault() *PCG { return New(DefaultSeed) }

// FromState constructs a PCG with exactly the given state. No warm up is
// performed.
func FromState(state uint128.T) *PCG { return &PCG{state: state} }

// State returns the current state of the generator.
func (p *PCG) State() uint128.T { return p.state }

// step advances the lcg one step.
func (p *PCG) step() {
	p.state = uint128.Add(uint128.Mul(p.state, pcgMul), pcgInc)
}

// Uint64 returns a random uint64.
func (p *PCG) Uint64() uint64 {
	p.step()
	return bits.RotateLeft64(p.state.L^p.state.H, -int(p.state.H>>58))
}

// Uint64n returns a uint64 uniformly in [0, n). It returns 0 if n is 0.
func (p *PCG) Uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(p.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(p.Uint64(), n)
		}
	}
	return hi
}

// Intn returns an int uniformly in [0, n). It returns 0 if n <= 0.
func (p *PCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.Uint64n(uint64(n)))
}

// Advance moves the generator forward by steps outputs in O(log steps) time.
// After Advance(k), the next output is the one that k+1 calls to Uint64 would
// have returned.
func (p *PCG) Advance(steps uint128.T) {
	accMul, accInc := uint128.From64(1), uint128.T{}
	curMul, curInc := pcgMul, pcgInc

	for !steps.IsZero() {
		if steps.L&1 == 1 {
			accMul = uint128.Mul(accMul, curMul)
			accInc = uint128.Add(uint128.Mul(accInc, curMul), curInc)
		}
		curInc = uint128.Mul(uint128.Add(curMul, uint128.From64(1)), curInc)
		curMul = uint128.Mul(curMul, curMul)
		steps = steps.Half()
	}

	p.state = uint128.Add(uint128.Mul(accMul, p.state), accInc)
}
