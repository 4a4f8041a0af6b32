package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Result operations

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, resultKey(result.ID), data, s.cfg.ResultTTL)
	pipe.LRem(ctx, resultsIndexKey(), 0, string(result.ID))
	pipe.LPush(ctx, resultsIndexKey(), string(result.ID))
	if s.cfg.MaxResults > 0 {
		pipe.LTrim(ctx, resultsIndexKey(), 0, s.cfg.MaxResults-1)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetResult(ctx context.Context, id model.ResultID) (*model.GameResult, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) ListResults(ctx context.Context, limit int) ([]*model.GameResult, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := s.client.LRange(ctx, resultsIndexKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.GameResult{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = resultKey(model.ResultID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.GameResult, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue // Expired
		}
		var result model.GameResult
		if err := json.Unmarshal([]byte(str), &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, nil
}
