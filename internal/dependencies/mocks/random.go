package mocks

import (
	"github.com/mcoot/pig/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueRolls queues die faces (1-6) as the Intn results a six-sided die
// needs to produce them
func (r *MockRandom) QueueRolls(faces ...int) {
	for _, f := range faces {
		r.IntnResults = append(r.IntnResults, f-1)
	}
}

// Remaining returns how many queued results have not been consumed
func (r *MockRandom) Remaining() int {
	return len(r.IntnResults) - r.intnIndex
}
