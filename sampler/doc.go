// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sampler implements cryptographically fair winner selection.

# Algorithm

Draw produces a uniformly random permutation of the candidate pool with a
Fisher-Yates shuffle, then takes the first count elements as winners and
returns the rest as the remaining pool. Each swap index comes from
crypto/rand, which rejection-samples internally, so the permutation is
unbiased.

	result, err := sampler.Default.Draw(pool, 2)

# Errors

  - ErrInvalidCount: count <= 0
  - ErrInsufficientCandidates: count > len(candidates)

Both are precondition violations, surfaced immediately with no side
effects on the input pool.

# Determinism in Tests

The RNG interface lets tests inject a scripted random source:

	s := sampler.New(fixedRNG{seq: []int{0, 0, 1}})
*/
package sampler
