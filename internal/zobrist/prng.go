package zobrist

// prng is a xorshift64* generator. The output sequence for a given seed is
// fixed; the key tables depend on it.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	if seed == 0 {
		panic("zobrist: prng seed must be nonzero")
	}
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}
