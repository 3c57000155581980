package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

type RedisConnector struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

var DEFAULT_REDIS_POOL_SIZE = 20

func NewRedisConnector(cfg *config.RedisConfig) (*RedisConnector, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_REDIS_POOL_SIZE
	}

	options := &redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	}

	client := redis.NewClient(options)

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Msgf("Connected to Redis at %s", cfg.Addr)
	return &RedisConnector{
		client: client,
		cfg:    cfg,
	}, nil
}

func (r *RedisConnector) key(blockNumber uint64) string {
	return r.cfg.Prefix + string(blockKey(blockNumber))
}

func (r *RedisConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	count, err := r.client.Exists(ctx, r.key(blockNumber)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check block in Redis: %w", err)
	}
	return count > 0, nil
}

func (r *RedisConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	data, err := r.client.Get(ctx, r.key(blockNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read block from Redis: %w", err)
	}
	return common.RawBlock(data), nil
}

// Write stores the payload without expiry.
func (r *RedisConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	return r.client.Set(ctx, r.key(blockNumber), []byte(payload), 0).Err()
}

func (r *RedisConnector) Close() error {
	return r.client.Close()
}
