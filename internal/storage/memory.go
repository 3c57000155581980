package storage

import (
	"context"
	"sync"

	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

type MemoryConnector struct {
	mu     sync.RWMutex
	blocks map[uint64][]byte
}

func NewMemoryConnector(cfg *config.MemoryConfig) (*MemoryConnector, error) {
	return &MemoryConnector{
		blocks: make(map[uint64][]byte),
	}, nil
}

func (m *MemoryConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blocks[blockNumber]
	return ok, nil
}

func (m *MemoryConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blocks[blockNumber]
	if !ok {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	return common.RawBlock(append([]byte(nil), data...)), nil
}

func (m *MemoryConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks[blockNumber] = append([]byte(nil), payload...)
	return nil
}

func (m *MemoryConnector) Close() error {
	return nil
}
