package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// ResultTTL is how long a recorded game result is kept; zero keeps it forever
	ResultTTL time.Duration
	// MaxResults caps the length of the result index
	MaxResults int64
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     2,
		MinIdleConns: 0,
		ResultTTL:    30 * 24 * time.Hour,
		MaxResults:   1000,
	}
}
