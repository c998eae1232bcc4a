package deck

import "hash/fnv"

// hashSeed derives a 32-bit seed from an arbitrary seed string using FNV-1a.
// Any stable non-cryptographic hash works here; what matters is that the
// same string always maps to the same seed on every platform.
func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return h.Sum32()
}

// rng is a mulberry32 generator. It is deliberately 32-bit so that a given
// seed string reproduces the exact same shuffle everywhere; swapping in a
// different generator would silently change every replay.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	return &rng{state: seed}
}

func (r *rng) next() uint32 {
	r.state += 0x6d2b79f5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Float64 returns a value in [0, 1). The strict upper bound is load-bearing
// for the shuffle's index arithmetic.
func (r *rng) Float64() float64 {
	return float64(r.next()) / (1 << 32)
}
