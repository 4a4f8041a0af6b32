package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	results map[model.ResultID]*model.GameResult
	order   []model.ResultID // oldest first
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[model.ResultID]*model.GameResult),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Result operations

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[result.ID]; ok {
		s.order = slices.DeleteFunc(s.order, func(id model.ResultID) bool {
			return id == result.ID
		})
	}
	s.order = append(s.order, result.ID)
	stored := *result
	s.results[result.ID] = &stored
	return nil
}

func (s *Storage) GetResult(ctx context.Context, id model.ResultID) (*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	copied := *result
	return &copied, nil
}

func (s *Storage) ListResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	results := make([]*model.GameResult, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(results) < limit; i-- {
		copied := *s.results[s.order[i]]
		results = append(results, &copied)
	}
	return results, nil
}

func (s *Storage) Close() error {
	return nil
}
