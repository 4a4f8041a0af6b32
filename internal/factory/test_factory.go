package factory

import (
	"bytes"
	"strings"
	"time"

	"github.com/mcoot/pig/internal/dependencies/mocks"
	"github.com/mcoot/pig/internal/services/game"
	"github.com/mcoot/pig/internal/storage/memory"
	"github.com/mcoot/pig/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// Recorder holds every event reported by games built from this app
	Recorder *game.Recorder
	// Prompts collects the questions asked of human players
	Prompts *bytes.Buffer
	// Logs collects everything the app logged
	Logs *testutil.LogBuffer
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. Human players read their answers from input.
func NewTestApp(input string) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	recorder := &game.Recorder{}
	prompts := &bytes.Buffer{}
	logger, logs := testutil.CaptureLogger()

	app := newWithDependencies(store, mockClock, mockRandom, strings.NewReader(input), prompts, recorder, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Recorder:   recorder,
		Prompts:    prompts,
		Logs:       logs,
	}
}
