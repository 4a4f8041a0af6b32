package random

import "math/rand"

// DefaultSeed is the fixed seed used for dice so that every run with the
// same interactive choices produces the same sequence of rolls
const DefaultSeed int64 = 0

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random using a privately owned math/rand source
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeeded creates a SeededRandom from the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// New creates a SeededRandom using DefaultSeed
func New() *SeededRandom {
	return NewSeeded(DefaultSeed)
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
