// Package dice implements the six-sided die used for Pig.
package dice

import (
	"github.com/mcoot/pig/internal/dependencies/random"
)

// Sides is the number of faces on the die
const Sides = 6

// Die rolls uniformly over 1..Sides using an owned random source
type Die struct {
	random random.Random
}

// New creates a Die backed by the given random source
func New(rnd random.Random) *Die {
	return &Die{random: rnd}
}

// NewSeeded creates a Die with its own generator seeded with seed.
// Two dice built from the same seed produce the same sequence.
func NewSeeded(seed int64) *Die {
	return New(random.NewSeeded(seed))
}

// Roll returns a value in [1, Sides]
func (d *Die) Roll() int {
	return d.random.Intn(Sides) + 1
}

// Stats counts how often each face came up over a number of rolls
type Stats struct {
	Rolls  int
	Counts [Sides]int
}

// Count returns how many times face was rolled, or 0 for faces off the die
func (s Stats) Count(face int) int {
	if face < 1 || face > Sides {
		return 0
	}
	return s.Counts[face-1]
}

// Percent returns the share of rolls that came up face, in [0, 100]
func (s Stats) Percent(face int) float64 {
	if s.Rolls == 0 {
		return 0
	}
	return float64(s.Count(face)) / float64(s.Rolls) * 100
}

// Tally rolls the die n times and counts the faces
func Tally(d *Die, n int) Stats {
	stats := Stats{}
	for i := 0; i < n; i++ {
		stats.Counts[d.Roll()-1]++
		stats.Rolls++
	}
	return stats
}
