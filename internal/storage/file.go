package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

// FileConnector stores one <blockNumber>.json file per block. The directory is
// created on the first write.
type FileConnector struct {
	dir string
}

func NewFileConnector(cfg *config.FileConfig) (*FileConnector, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = config.DEFAULT_CACHE_DIR
	}
	return &FileConnector{dir: dir}, nil
}

func (fc *FileConnector) path(blockNumber uint64) string {
	return filepath.Join(fc.dir, common.BlockKey(blockNumber)+".json")
}

func (fc *FileConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	_, err := os.Stat(fc.path(blockNumber))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (fc *FileConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	data, err := os.ReadFile(fc.path(blockNumber))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read block file: %w", err)
	}
	return common.RawBlock(data), nil
}

// Write goes through a temp file and a rename so readers never see a partial payload.
func (fc *FileConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	if err := os.MkdirAll(fc.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(fc.dir, ".block-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write block file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write block file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fc.path(blockNumber)); err != nil {
		return fmt.Errorf("failed to move block file into place: %w", err)
	}
	return nil
}

func (fc *FileConnector) Close() error {
	return nil
}
