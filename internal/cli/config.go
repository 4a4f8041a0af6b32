package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mcoot/pig/internal/factory"
	"github.com/mcoot/pig/internal/model"
	redisstorage "github.com/mcoot/pig/internal/storage/redis"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Player1     string
	Player2     string
	Timed       bool
	Output      string
	Verbose     bool
	StorageType string
	RedisURL    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Player1:     getEnvOrDefault("PIG_PLAYER1", string(model.PlayerTypeHuman)),
		Player2:     getEnvOrDefault("PIG_PLAYER2", string(model.PlayerTypeHuman)),
		Timed:       false,
		Output:      getEnvOrDefault("PIG_OUTPUT", OutputText),
		Verbose:     false,
		StorageType: getEnvOrDefault("PIG_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("PIG_REDIS_URL", redisstorage.DefaultConfig().URL),
	}
}

// Validate checks the settings shared by every command
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: %q (must be %q or %q)", model.ErrInvalidOutputFormat, c.Output, OutputText, OutputJSON)
	}
	if c.StorageType != factory.StorageTypeMemory && c.StorageType != factory.StorageTypeRedis {
		return fmt.Errorf("%w: %q (must be %q or %q)", model.ErrInvalidStorageType, c.StorageType, factory.StorageTypeMemory, factory.StorageTypeRedis)
	}
	return nil
}

// ValidatePlayers checks both player type tags
func (c *Config) ValidatePlayers() error {
	if _, err := model.ParsePlayerType(c.Player1); err != nil {
		return fmt.Errorf("--player1: %w", err)
	}
	if _, err := model.ParsePlayerType(c.Player2); err != nil {
		return fmt.Errorf("--player2: %w", err)
	}
	return nil
}

// RedisConfig returns the Redis settings when Redis storage is selected
func (c *Config) RedisConfig() *redisstorage.Config {
	if c.StorageType != factory.StorageTypeRedis {
		return nil
	}
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = c.RedisURL
	return &redisCfg
}

// LogLevel returns the minimum level logged to stderr
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
