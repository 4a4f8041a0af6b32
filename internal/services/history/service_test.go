package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig/internal/dependencies/mocks"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/history"
	"github.com/mcoot/pig/internal/storage/memory"
	"github.com/mcoot/pig/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *history.Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = history.New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRecordAssignsIDAndFinishTime() {
	recorded, err := s.service.Record(s.ctx, model.GameResult{Winner: "Player 2", WinnerScore: 101})
	s.Require().NoError(err)

	s.NotEmpty(recorded.ID)
	s.Equal(s.clock.CurrentTime, recorded.FinishedAt)

	stored, err := s.service.Get(s.ctx, recorded.ID)
	s.Require().NoError(err)
	s.Equal("Player 2", stored.Winner)
}

func (s *ServiceSuite) TestRecordKeepsGivenID() {
	finished := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	recorded, err := s.service.Record(s.ctx, model.GameResult{ID: "fixed", FinishedAt: finished})
	s.Require().NoError(err)

	s.Equal(model.ResultID("fixed"), recorded.ID)
	s.Equal(finished, recorded.FinishedAt)
}

func (s *ServiceSuite) TestRecordGeneratesDistinctIDs() {
	a, err := s.service.Record(s.ctx, model.GameResult{})
	s.Require().NoError(err)
	b, err := s.service.Record(s.ctx, model.GameResult{})
	s.Require().NoError(err)

	s.NotEqual(a.ID, b.ID)
}

func (s *ServiceSuite) TestListDefaultsLimit() {
	for i := 0; i < history.DefaultListLimit+5; i++ {
		_, err := s.service.Record(s.ctx, model.GameResult{})
		s.Require().NoError(err)
	}

	results, err := s.service.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(results, history.DefaultListLimit)

	results, err = s.service.List(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(results, 3)
}

type failingStorage struct {
	*memory.Storage
}

var errUnavailable = errors.New("storage unavailable")

func (f failingStorage) SaveResult(ctx context.Context, result *model.GameResult) error {
	return errUnavailable
}

func (s *ServiceSuite) TestRecordReturnsStorageError() {
	logger, logs := testutil.CaptureLogger()
	svc := history.New(failingStorage{memory.New()}, s.clock, logger)

	recorded, err := svc.Record(s.ctx, model.GameResult{})
	s.ErrorIs(err, errUnavailable)
	s.Nil(recorded)
	s.Contains(logs.String(), `"msg":"failed to save result"`)
	s.Contains(logs.String(), `"error":"storage unavailable"`)
}
