// Package rng wraps frand's process-wide generator, used to sample
// uniformly among tied candidates.
package rng

import (
	"encoding/hex"
	"fmt"

	"lukechampine.com/frand"
)

// Seed is the hex-encoded seed logged at startup. It does not drive
// Source.Sample, so a run cannot be replayed from it.
type Seed [16]byte

// NewSeed generates a fresh random seed.
func NewSeed() Seed {
	var s Seed
	frand.Read(s[:])
	return s
}

// ParseSeed decodes a hex-encoded seed string.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	b, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("rng: invalid seed %q: %w", s, err)
	}
	if len(b) != len(seed) {
		return seed, fmt.Errorf("rng: seed %q must be %d bytes, got %d", s, len(seed), len(b))
	}
	copy(seed[:], b)
	return seed, nil
}

// String formats the seed as lowercase hex.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// Source samples uniformly among tied candidates using the process-wide
// frand generator. Seed is carried alongside purely so it can be logged
// at startup; frand is never seeded from it.
type Source struct {
	seed Seed
}

// New returns a Source that remembers seed for logging purposes.
func New(seed Seed) *Source {
	return &Source{seed: seed}
}

// Seed returns the seed this Source was constructed with.
func (s *Source) Seed() Seed {
	return s.seed
}

// Sample returns a uniformly random index in [0, n).
func (s *Source) Sample(n int) int {
	return frand.Intn(n)
}
