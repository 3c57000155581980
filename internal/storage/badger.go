package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

type BadgerConnector struct {
	db       *badger.DB
	gcTicker *time.Ticker
	stopGC   chan struct{}
}

func NewBadgerConnector(cfg *config.BadgerConfig) (*BadgerConnector, error) {
	path := badgerPath(cfg)
	opts := badger.DefaultOptions(path)

	opts.ValueLogFileSize = 256 * 1024 * 1024 // 256MB
	opts.NumCompactors = 2
	opts.CompactL0OnClose = true
	opts.ValueThreshold = 1024 // block payloads above 1KB live in the value log
	opts.Compression = options.Snappy
	opts.SyncWrites = true

	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	bc := &BadgerConnector{
		db:     db,
		stopGC: make(chan struct{}),
	}

	bc.gcTicker = time.NewTicker(time.Duration(60) * time.Second)
	go bc.runGC()

	return bc, nil
}

func (bc *BadgerConnector) runGC() {
	for {
		select {
		case <-bc.gcTicker.C:
			err := bc.db.RunValueLogGC(0.5)
			if err != nil && err != badger.ErrNoRewrite {
				log.Debug().Err(err).Msg("BadgerDB GC error")
			}
		case <-bc.stopGC:
			return
		}
	}
}

func (bc *BadgerConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	found := false
	err := bc.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(blockKey(blockNumber))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func (bc *BadgerConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	var data []byte
	err := bc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blockKey(blockNumber))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read block from badger: %w", err)
	}
	return common.RawBlock(data), nil
}

func (bc *BadgerConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	return bc.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blockKey(blockNumber), payload)
	})
}

func (bc *BadgerConnector) Close() error {
	if bc.gcTicker != nil {
		bc.gcTicker.Stop()
		close(bc.stopGC)
	}
	return bc.db.Close()
}

func badgerPath(cfg *config.BadgerConfig) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	return filepath.Join(config.DEFAULT_CACHE_DIR, "badger")
}
