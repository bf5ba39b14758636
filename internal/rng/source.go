package rng

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Source yields uniformly distributed integers. The production implementation
// is CryptoSource; it is injected into the services rather than hard-wired so
// tests can substitute a deterministic source.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand and is suitable for fairness-critical
// winner selection.
type CryptoSource struct{}

// NewCryptoSource creates a CryptoSource
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// Intn returns a uniform random int in [0, n) from the system CSPRNG
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("rng: n must be > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("rng: reading random integer: %w", err)
	}
	return int(v.Int64()), nil
}
