package redis

import (
	"fmt"

	"github.com/mcoot/pig/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "pig"

// resultKey returns the Redis key for a GameResult
func resultKey(id model.ResultID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultsIndexKey returns the Redis key for the LIST of result IDs, newest first
func resultsIndexKey() string {
	return fmt.Sprintf("%s:idx:results", keyPrefix)
}
