// Package random provides the randomness source used to pick palettes and
// populate boards. It is an interface so tests can queue exact results.
package random

import (
	"math/rand"
	"time"
)

// Random provides random number generation that can be mocked for testing.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// Seeded implements Random on top of math/rand with an explicit seed,
// so a given seed always produces the same boards.
type Seeded struct {
	rng  *rand.Rand
	seed int64
}

// NewSeeded creates a Seeded source. A zero seed means "use current time".
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Seed returns the seed actually in use.
func (s *Seeded) Seed() int64 {
	return s.seed
}
