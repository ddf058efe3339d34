package board

import "math/bits"

// Key is a 64-bit hash value.
type Key uint64

// MakeKey mixes seed with a 64-bit LCG step.
func MakeKey(seed uint64) Key {
	return Key(seed*6364136223846793005 + 1442695040888963407)
}

// KeyIndex maps k uniformly onto [0, n) using the high half of k*n.
func KeyIndex(k Key, n uint64) uint64 {
	hi, _ := bits.Mul64(uint64(k), n)
	return hi
}
