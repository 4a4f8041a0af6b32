package storage

import (
	"context"

	"github.com/mcoot/pig/internal/model"
)

// Storage defines the interface for recording finished games
type Storage interface {
	// Result operations
	SaveResult(ctx context.Context, result *model.GameResult) error
	GetResult(ctx context.Context, id model.ResultID) (*model.GameResult, error)
	// ListResults returns up to limit results, most recently saved first.
	// A non-positive limit returns all results.
	ListResults(ctx context.Context, limit int) ([]*model.GameResult, error)

	Close() error
}
