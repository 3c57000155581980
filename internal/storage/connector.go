package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

var ErrNotFound = errors.New("block not found in store")

// NotFoundError is returned by Read for a block number that has no entry.
type NotFoundError struct {
	BlockNumber uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("block %d not found in store", e.BlockNumber)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IBlockStore keeps raw block payloads by block number. Entries are written once and
// never expire; a second Write for the same number is harmless.
type IBlockStore interface {
	Has(ctx context.Context, blockNumber uint64) (bool, error)
	Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error)
	Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error
	Close() error
}

// NewBlockStore opens the first configured backend, falling back to the file store.
func NewBlockStore(cfg *config.StorageConfig) (IBlockStore, error) {
	var store IBlockStore
	var err error
	var driver string
	switch {
	case cfg.Badger != nil:
		driver = "badger"
		store, err = NewBadgerConnector(cfg.Badger)
	case cfg.Pebble != nil:
		driver = "pebble"
		store, err = NewPebbleConnector(cfg.Pebble)
	case cfg.Bolt != nil:
		driver = "bolt"
		store, err = NewBoltConnector(cfg.Bolt)
	case cfg.Redis != nil:
		driver = "redis"
		store, err = NewRedisConnector(cfg.Redis)
	case cfg.Postgres != nil:
		driver = "postgres"
		store, err = NewPostgresConnector(cfg.Postgres)
	case cfg.S3 != nil:
		driver = "s3"
		store, err = NewS3Connector(cfg.S3)
	case cfg.Memory != nil:
		driver = "memory"
		store, err = NewMemoryConnector(cfg.Memory)
	case cfg.File != nil:
		driver = "file"
		store, err = NewFileConnector(cfg.File)
	default:
		driver = "file"
		store, err = NewFileConnector(&config.FileConfig{Dir: config.DEFAULT_CACHE_DIR})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s block store: %w", driver, err)
	}

	log.Info().Str("driver", driver).Msg("Block store initialized")
	return store, nil
}

func blockKey(blockNumber uint64) []byte {
	return []byte("block:" + common.BlockKey(blockNumber))
}
