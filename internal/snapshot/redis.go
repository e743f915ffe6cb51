package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "aaru:snapshot:"

// RedisStore keeps each snapshot under one Redis key, no expiry.
type RedisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, error) {
	doc, err := s.rdb.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read snapshot", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

func (s *RedisStore) Set(ctx context.Context, name string, doc []byte) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+name, doc, 0).Err(); err != nil {
		s.logger.Error("Failed to write snapshot", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+name).Err(); err != nil {
		s.logger.Error("Failed to delete snapshot", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
