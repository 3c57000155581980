package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blocklinks/internal/common"
	"github.com/thirdweb-dev/blocklinks/internal/metrics"
	"github.com/thirdweb-dev/blocklinks/internal/rpc"
	"github.com/thirdweb-dev/blocklinks/internal/storage"
	"golang.org/x/sync/singleflight"
)

// sharedFetchTimeout bounds an in-flight RPC call once it no longer follows a request context.
const sharedFetchTimeout = time.Minute

type IBlockFetcher interface {
	GetBlock(ctx context.Context, blockNumber uint64) (common.RawBlock, error)
	GetBlockRange(ctx context.Context, startBlock uint64, endBlock uint64) ([]common.RawBlock, error)
}

// BlockFetcher serves blocks from the store and falls back to the RPC, writing
// every successful fetch through to the store. Stored entries are authoritative.
type BlockFetcher struct {
	store    storage.IBlockStore
	rpc      rpc.IRPCClient
	inflight singleflight.Group
}

func NewBlockFetcher(store storage.IBlockStore, rpc rpc.IRPCClient) *BlockFetcher {
	return &BlockFetcher{
		store: store,
		rpc:   rpc,
	}
}

func (f *BlockFetcher) GetBlock(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	block, found, err := f.readFromStore(ctx, blockNumber)
	if err != nil {
		return nil, err
	}
	if found {
		metrics.CacheHits.Inc()
		log.Debug().Uint64("block_number", blockNumber).Msg("Block served from store")
		return block, nil
	}

	metrics.CacheMisses.Inc()

	// concurrent misses for the same number share one RPC call, which outlives the
	// caller that started it
	resultCh := f.inflight.DoChan(common.BlockKey(blockNumber), func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return f.fetchAndStore(fetchCtx, blockNumber)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Uint64("block_number", blockNumber).Msg("Joined in-flight block fetch")
		}
		return res.Val.(common.RawBlock), nil
	}
}

// GetBlockRange fetches startBlock..endBlock inclusive, one block at a time in
// ascending order, and stops at the first failure.
func (f *BlockFetcher) GetBlockRange(ctx context.Context, startBlock uint64, endBlock uint64) ([]common.RawBlock, error) {
	if startBlock > endBlock {
		return nil, &common.InvalidRangeError{StartBlock: startBlock, EndBlock: endBlock}
	}

	blocks := make([]common.RawBlock, 0, min(endBlock-startBlock+1, 1024))
	for blockNumber := startBlock; ; blockNumber++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		block, err := f.GetBlock(ctx, blockNumber)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		if blockNumber == endBlock {
			break
		}
	}
	return blocks, nil
}

func (f *BlockFetcher) readFromStore(ctx context.Context, blockNumber uint64) (common.RawBlock, bool, error) {
	has, err := f.store.Has(ctx, blockNumber)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up block %d in store: %w", blockNumber, err)
	}
	if !has {
		return nil, false, nil
	}

	block, err := f.store.Read(ctx, blockNumber)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read block %d from store: %w", blockNumber, err)
	}
	return block, true, nil
}

// fetchAndStore returns RPC errors untouched. Only successful, non-null responses
// reach the store.
func (f *BlockFetcher) fetchAndStore(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	block, err := f.rpc.FetchBlock(ctx, blockNumber)
	if err != nil {
		log.Debug().Err(err).Uint64("block_number", blockNumber).Msg("Failed to fetch block from RPC")
		return nil, err
	}
	metrics.LastFetchedBlock.Set(float64(blockNumber))

	if err := f.store.Write(ctx, blockNumber, block); err != nil {
		metrics.CacheWriteFailures.Inc()
		log.Error().Err(err).Uint64("block_number", blockNumber).Msg("Failed to write block to store")
	}
	return block, nil
}
