package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

type PebbleConnector struct {
	db *pebble.DB
}

func NewPebbleConnector(cfg *config.PebbleConfig) (*PebbleConnector, error) {
	path := pebblePath(cfg)

	cache := pebble.NewCache(64 << 20) // 64MB
	defer cache.Unref()

	opts := &pebble.Options{
		MemTableSize: 32 << 20, // 32MB per memtable
		Cache:        cache,
		Levels:       make([]pebble.LevelOptions, 7),
	}
	for i := range opts.Levels {
		opts.Levels[i] = pebble.LevelOptions{
			BlockSize:   32 << 10, // 32KB blocks
			Compression: pebble.SnappyCompression,
		}
		if i > 0 {
			// payloads are written once and read often, zstd pays off below L0
			opts.Levels[i].Compression = pebble.ZstdCompression
		}
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db: %w", err)
	}

	return &PebbleConnector{db: db}, nil
}

func (pc *PebbleConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	_, closer, err := pc.db.Get(blockKey(blockNumber))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	closer.Close()
	return true, nil
}

func (pc *PebbleConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	value, closer, err := pc.db.Get(blockKey(blockNumber))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read block from pebble: %w", err)
	}
	defer closer.Close()

	// value is only valid until closer is closed
	data := make([]byte, len(value))
	copy(data, value)
	return common.RawBlock(data), nil
}

func (pc *PebbleConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	return pc.db.Set(blockKey(blockNumber), payload, pebble.Sync)
}

func (pc *PebbleConnector) Close() error {
	return pc.db.Close()
}

func pebblePath(cfg *config.PebbleConfig) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	return filepath.Join(config.DEFAULT_CACHE_DIR, "pebble")
}
