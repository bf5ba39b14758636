// Package rngtest provides a deterministic rng.Source for reproducible test
// fixtures. It is test tooling only and must never be wired into production
// code; the services always receive rng.CryptoSource outside of tests.
package rngtest

import (
	"errors"
	"hash/fnv"
)

// Seeded is a hash-seeded linear congruential generator. Identical seeds
// yield identical draw sequences.
type Seeded struct {
	state uint64
}

// NewSeeded derives the initial LCG state from an FNV-1a hash of the seed
func NewSeeded(seed string) *Seeded {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return &Seeded{state: h.Sum64()}
}

// Intn returns a deterministic integer in [0, n)
func (s *Seeded) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("rngtest: n must be > 0")
	}
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return int((s.state >> 33) % uint64(n)), nil
}
