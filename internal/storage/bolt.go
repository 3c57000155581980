package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
	bolt "go.etcd.io/bbolt"
)

var blocksBucket = []byte("blocks")

type BoltConnector struct {
	db *bolt.DB
}

func NewBoltConnector(cfg *config.BoltConfig) (*BoltConnector, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(config.DEFAULT_CACHE_DIR, "blocks.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blocksBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create blocks bucket: %w", err)
	}

	return &BoltConnector{db: db}, nil
}

func (b *BoltConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	found := false
	err := b.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(blocksBucket).Get([]byte(common.BlockKey(blockNumber))) != nil
		return nil
	})
	return found, err
}

func (b *BoltConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(blocksBucket).Get([]byte(common.BlockKey(blockNumber)))
		if value == nil {
			return &NotFoundError{BlockNumber: blockNumber}
		}
		// value is only valid for the life of the transaction
		data = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return common.RawBlock(data), nil
}

func (b *BoltConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blocksBucket).Put([]byte(common.BlockKey(blockNumber)), payload)
	})
}

func (b *BoltConnector) Close() error {
	return b.db.Close()
}
