// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sampler

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/danielhkuo/lucky-wheel/models"
)

var (
	ErrInvalidCount           = errors.New("count must be positive")
	ErrInsufficientCandidates = errors.New("not enough candidates for requested count")
)

// RNG abstracts random index generation so draws are deterministic in tests.
type RNG interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) (int, error)
}

// CryptoRNG draws indices from crypto/rand. rand.Int performs rejection
// sampling internally, so indices are uniform with no modulo bias.
type CryptoRNG struct{}

func (CryptoRNG) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("crypto rand: %w", err)
	}
	return int(v.Int64()), nil
}

// Sampler performs fair draws from a candidate pool.
type Sampler struct {
	rng RNG
}

// New returns a Sampler backed by the given RNG. Pass CryptoRNG{} in
// production.
func New(rng RNG) *Sampler {
	return &Sampler{rng: rng}
}

// Draw selects count unique winners from candidates, uniformly. The input
// slice is never modified. Every permutation of the pool is equally
// likely, so every subset of size count is too.
func (s *Sampler) Draw(candidates []string, count int) (models.DrawResult, error) {
	if count <= 0 {
		return models.DrawResult{}, ErrInvalidCount
	}
	if count > len(candidates) {
		return models.DrawResult{}, fmt.Errorf("%w: have %d, want %d",
			ErrInsufficientCandidates, len(candidates), count)
	}

	// Fisher-Yates over a copy of the pool.
	shuffled := append([]string(nil), candidates...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j, err := s.rng.Intn(i + 1)
		if err != nil {
			return models.DrawResult{}, err
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return models.DrawResult{
		Winners:   shuffled[:count:count],
		Remaining: shuffled[count:],
	}, nil
}

// Default is a ready-to-use crypto-backed sampler.
var Default = New(CryptoRNG{})
