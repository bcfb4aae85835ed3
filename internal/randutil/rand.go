package randutil

import (
	"hash/fnv"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive produces a session seed from a base seed, a strategy label and a
// session index. Sessions seeded this way are independent of the order in
// which workers pick them up: the same inputs always yield the same seed.
func Derive(base int64, label string, session int) int64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return int64(mix(uint64(base) ^ h.Sum64() ^ mix(uint64(session)*goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
