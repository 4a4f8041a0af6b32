package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/storage"
)

// DefaultListLimit is how many results List returns when no limit is given
const DefaultListLimit = 20

// Service records finished games and lists them back
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new history Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger.With(slog.String("component", "history-service")),
	}
}

// Record stores a finished game. It assigns the result an ID and stamps
// FinishedAt when those are unset.
func (s *Service) Record(ctx context.Context, result model.GameResult) (*model.GameResult, error) {
	if result.ID == "" {
		result.ID = model.ResultID(uuid.NewString())
	}
	if result.FinishedAt.IsZero() {
		result.FinishedAt = s.clock.Now()
	}

	if err := s.storage.SaveResult(ctx, &result); err != nil {
		s.logger.Error("failed to save result",
			slog.String("result_id", string(result.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("result recorded",
		slog.String("result_id", string(result.ID)),
		slog.String("winner", result.Winner),
		slog.Int("winner_score", result.WinnerScore),
		slog.Bool("timed_out", result.TimedOut),
	)

	return &result, nil
}

// Get retrieves a recorded result by ID
func (s *Service) Get(ctx context.Context, id model.ResultID) (*model.GameResult, error) {
	return s.storage.GetResult(ctx, id)
}

// List returns recent results, newest first
func (s *Service) List(ctx context.Context, limit int) ([]*model.GameResult, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.storage.ListResults(ctx, limit)
}
