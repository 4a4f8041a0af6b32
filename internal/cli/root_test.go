package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig/internal/model"
)

type RootCmdSuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdSuite))
}

func (s *RootCmdSuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *RootCmdSuite) run(stdin string, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

func (s *RootCmdSuite) TestComputerVsComputer() {
	err := s.run("", "--player1", "computer", "--player2", "computer")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Player 1's turn\n")
	s.Contains(out, "Player 2's turn\n")
	s.Regexp(`Player [12] wins with \d+ points!\n$`, out)
}

func (s *RootCmdSuite) TestSameSeedSameGame() {
	s.Require().NoError(s.run("", "--player1", "computer", "--player2", "computer"))
	first := s.stdout.String()

	s.SetupTest()
	s.Require().NoError(s.run("", "--player1", "computer", "--player2", "computer"))

	s.Equal(first, s.stdout.String())
}

func (s *RootCmdSuite) TestHumanPromptsOnStdout() {
	// An empty stdin holds every time, so each turn is a single roll
	err := s.run("", "--player1", "human", "--player2", "computer")
	s.Require().NoError(err)

	s.Contains(s.stdout.String(), "Player 1, do you want to roll (r) or hold (h)? ")
}

func (s *RootCmdSuite) TestJSONOutputKeepsPromptsOffStdout() {
	err := s.run("", "--player1", "human", "--player2", "computer", "--output", "json")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(s.stdout.String()), "\n")
	s.Require().NotEmpty(lines)
	for _, line := range lines {
		var e model.Event
		s.Require().NoError(json.Unmarshal([]byte(line), &e), "line %q", line)
	}

	var last model.Event
	s.Require().NoError(json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	s.Equal(model.EventGameWon, last.Type)
	s.GreaterOrEqual(last.TotalScore, 100)

	s.Contains(s.stderr.String(), "do you want to roll (r) or hold (h)?")
}

func (s *RootCmdSuite) TestTimedFlagAccepted() {
	err := s.run("", "--player1", "computer", "--player2", "computer", "--timed")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "wins with")
}

func (s *RootCmdSuite) TestInvalidPlayerType() {
	err := s.run("", "--player1", "robot")
	s.ErrorIs(err, model.ErrInvalidPlayerType)
	s.Empty(s.stdout.String())
}

func (s *RootCmdSuite) TestInvalidPlayer2Type() {
	err := s.run("", "--player2", "HUMAN")
	s.ErrorIs(err, model.ErrInvalidPlayerType)
	s.Contains(err.Error(), "--player2")
}

func (s *RootCmdSuite) TestInvalidOutputFormat() {
	err := s.run("", "--output", "yaml")
	s.ErrorIs(err, model.ErrInvalidOutputFormat)
}

func (s *RootCmdSuite) TestInvalidStorageType() {
	err := s.run("", "--storage", "disk")
	s.ErrorIs(err, model.ErrInvalidStorageType)
}

func (s *RootCmdSuite) TestRejectsPositionalArgs() {
	err := s.run("", "extra")
	s.Error(err)
}

func (s *RootCmdSuite) TestVerboseLogsGameCompletion() {
	err := s.run("", "--player1", "computer", "--player2", "computer", "--verbose")
	s.Require().NoError(err)

	s.Contains(s.stderr.String(), `"msg":"game complete"`)
	s.Contains(s.stderr.String(), `"msg":"turn complete"`)
}

func (s *RootCmdSuite) TestQuietByDefault() {
	err := s.run("", "--player1", "computer", "--player2", "computer")
	s.Require().NoError(err)

	s.Empty(s.stderr.String())
}

func (s *RootCmdSuite) TestStats() {
	err := s.run("", "stats", "--rolls", "6000")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Rolled 6,000 times\n")
	for _, face := range []string{"  1: ", "  2: ", "  3: ", "  4: ", "  5: ", "  6: "} {
		s.Contains(out, face)
	}
}

func (s *RootCmdSuite) TestStatsRejectsNonPositiveRolls() {
	err := s.run("", "stats", "--rolls", "0")
	s.Error(err)
}

func (s *RootCmdSuite) TestHistoryEmptyInMemory() {
	err := s.run("", "history")
	s.Require().NoError(err)
	s.Equal("No games recorded.\n", s.stdout.String())
}

func (s *RootCmdSuite) TestHistoryUnknownID() {
	err := s.run("", "history", "does-not-exist")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *RootCmdSuite) TestHistoryAcrossRunsWithRedis() {
	mr := miniredis.RunT(s.T())
	url := "redis://" + mr.Addr()

	s.Require().NoError(s.run("", "--player1", "computer", "--player2", "computer", "--storage", "redis", "--redis-url", url))

	s.SetupTest()
	s.Require().NoError(s.run("", "history", "--storage", "redis", "--redis-url", url, "--output", "json"))

	var results []*model.GameResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &results))
	s.Require().Len(results, 1)
	s.NotEmpty(results[0].ID)
	s.GreaterOrEqual(results[0].WinnerScore, 100)
	s.Equal(model.PlayerTypeComputer, results[0].Players[0].Type)

	s.SetupTest()
	s.Require().NoError(s.run("", "history", string(results[0].ID), "--storage", "redis", "--redis-url", url))
	s.Contains(s.stdout.String(), "Game: "+string(results[0].ID))
}

func (s *RootCmdSuite) TestRedisUnavailable() {
	err := s.run("", "--player1", "computer", "--player2", "computer", "--storage", "redis", "--redis-url", "redis://127.0.0.1:1")
	s.Error(err)
}

func TestDefaultConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PIG_PLAYER1", "computer")
	t.Setenv("PIG_OUTPUT", "json")
	t.Setenv("PIG_STORAGE", "redis")
	t.Setenv("PIG_REDIS_URL", "redis://example:6379/2")

	cfg := DefaultConfig()

	assert.Equal(t, "computer", cfg.Player1)
	assert.Equal(t, "human", cfg.Player2)
	assert.Equal(t, OutputJSON, cfg.Output)
	require.NotNil(t, cfg.RedisConfig())
	assert.Equal(t, "redis://example:6379/2", cfg.RedisConfig().URL)
}

func TestConfigRedisConfigOnlyForRedisStorage(t *testing.T) {
	cfg := &Config{StorageType: "memory", RedisURL: "redis://localhost:6379/0"}
	assert.Nil(t, cfg.RedisConfig())
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("PIG_PLAYER1", "robot")

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--player1", "computer", "--player2", "computer"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "wins with")
}
