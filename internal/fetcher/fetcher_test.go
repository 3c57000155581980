package fetcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
	"github.com/thirdweb-dev/blocklinks/internal/storage"
	"github.com/thirdweb-dev/blocklinks/test/mocks"
)

func rawBlock(blockNumber uint64) common.RawBlock {
	return common.RawBlock(`{"jsonrpc":"2.0","id":1,"result":{"number":"` + common.BlockKey(blockNumber) + `","transactions":[]}}`)
}

func TestGetBlock_CachedBlockSkipsRPC(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)

	mockStore.EXPECT().Has(mock.Anything, uint64(100)).Return(true, nil)
	mockStore.EXPECT().Read(mock.Anything, uint64(100)).Return(rawBlock(100), nil)

	f := NewBlockFetcher(mockStore, mockRPC)
	block, err := f.GetBlock(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, rawBlock(100), block)
	mockRPC.AssertNotCalled(t, "FetchBlock", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBlock_MissFetchesOnceAndWritesThrough(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)

	mockStore.EXPECT().Has(mock.Anything, uint64(100)).Return(false, nil).Once()
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(100)).Return(rawBlock(100), nil).Once()
	mockStore.EXPECT().Write(mock.Anything, uint64(100), rawBlock(100)).Return(nil).Once()

	f := NewBlockFetcher(mockStore, mockRPC)
	block, err := f.GetBlock(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, rawBlock(100), block)
}

func TestGetBlock_RoundTripThroughStore(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(7)).Return(rawBlock(7), nil).Once()

	f := NewBlockFetcher(store, mockRPC)

	first, err := f.GetBlock(context.Background(), 7)
	require.NoError(t, err)

	stored, err := store.Read(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	// second call is served from the store; Once() fails the test on a second RPC call
	second, err := f.GetBlock(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetBlock_RPCErrorsPropagateAndAreNotCached(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "block not found", err: &common.BlockNotFoundError{BlockNumber: 5}},
		{name: "rpc error", err: &common.RPCError{Code: -32000, Message: "x"}},
		{name: "network error", err: &common.NetworkError{Err: errors.New("connection refused")}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
			require.NoError(t, err)
			mockRPC := mocks.NewMockIRPCClient(t)
			mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(5)).Return(nil, tt.err).Times(2)

			f := NewBlockFetcher(store, mockRPC)

			_, err = f.GetBlock(context.Background(), 5)
			assert.Same(t, tt.err, err)

			has, err := store.Has(context.Background(), 5)
			require.NoError(t, err)
			assert.False(t, has)

			// nothing was cached so the next call asks the provider again
			_, err = f.GetBlock(context.Background(), 5)
			assert.Same(t, tt.err, err)
		})
	}
}

func TestGetBlock_StoreLookupError(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)
	mockStore.EXPECT().Has(mock.Anything, uint64(1)).Return(false, errors.New("disk on fire"))

	f := NewBlockFetcher(mockStore, mockRPC)
	_, err := f.GetBlock(context.Background(), 1)

	assert.ErrorContains(t, err, "disk on fire")
	mockRPC.AssertNotCalled(t, "FetchBlock", mock.Anything, mock.Anything)
}

func TestGetBlock_WriteFailureStillReturnsBlock(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)
	mockStore.EXPECT().Has(mock.Anything, uint64(1)).Return(false, nil)
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(1)).Return(rawBlock(1), nil)
	mockStore.EXPECT().Write(mock.Anything, uint64(1), rawBlock(1)).Return(errors.New("read-only filesystem"))

	f := NewBlockFetcher(mockStore, mockRPC)
	block, err := f.GetBlock(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, rawBlock(1), block)
}

func TestGetBlock_EntryVanishedBetweenHasAndRead(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)
	mockStore.EXPECT().Has(mock.Anything, uint64(3)).Return(true, nil)
	mockStore.EXPECT().Read(mock.Anything, uint64(3)).Return(nil, &storage.NotFoundError{BlockNumber: 3})
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(3)).Return(rawBlock(3), nil)
	mockStore.EXPECT().Write(mock.Anything, uint64(3), rawBlock(3)).Return(nil)

	f := NewBlockFetcher(mockStore, mockRPC)
	block, err := f.GetBlock(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, rawBlock(3), block)
}

func TestGetBlock_ConcurrentMissesShareOneRPCCall(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	mockRPC := mocks.NewMockIRPCClient(t)

	var calls atomic.Int32
	release := make(chan struct{})
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(42)).RunAndReturn(func(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
		calls.Add(1)
		<-release
		return rawBlock(42), nil
	}).Maybe()

	f := NewBlockFetcher(store, mockRPC)

	var wg sync.WaitGroup
	results := make([]common.RawBlock, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			block, err := f.GetBlock(context.Background(), 42)
			assert.NoError(t, err)
			results[i] = block
		}(i)
	}

	// let every goroutine reach the in-flight call before the provider answers
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, block := range results {
		assert.Equal(t, rawBlock(42), block)
	}
}

func TestGetBlock_CancelledCallerDoesNotFailJoinedCallers(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	mockRPC := mocks.NewMockIRPCClient(t)

	started := make(chan struct{})
	release := make(chan struct{})
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(8)).RunAndReturn(func(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return rawBlock(8), nil
	}).Once()

	f := NewBlockFetcher(store, mockRPC)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := f.GetBlock(firstCtx, 8)
		firstErr <- err
	}()
	<-started

	secondResult := make(chan common.RawBlock, 1)
	go func() {
		block, err := f.GetBlock(context.Background(), 8)
		assert.NoError(t, err)
		secondResult <- block
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, rawBlock(8), <-secondResult)

	stored, err := store.Read(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, rawBlock(8), stored)
}

func TestGetBlockRange_InvalidRangeFetchesNothing(t *testing.T) {
	mockStore := mocks.NewMockIBlockStore(t)
	mockRPC := mocks.NewMockIRPCClient(t)

	f := NewBlockFetcher(mockStore, mockRPC)
	_, err := f.GetBlockRange(context.Background(), 10, 5)

	var rangeErr *common.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint64(10), rangeErr.StartBlock)
	assert.Equal(t, uint64(5), rangeErr.EndBlock)
	mockStore.AssertNotCalled(t, "Has", mock.Anything, mock.Anything)
	mockRPC.AssertNotCalled(t, "FetchBlock", mock.Anything, mock.Anything)
}

func TestGetBlockRange_SequentialAscending(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), 11, rawBlock(11)))

	mockRPC := mocks.NewMockIRPCClient(t)
	var order []uint64
	mockRPC.EXPECT().FetchBlock(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
		order = append(order, blockNumber)
		return rawBlock(blockNumber), nil
	})

	f := NewBlockFetcher(store, mockRPC)
	blocks, err := f.GetBlockRange(context.Background(), 10, 13)

	require.NoError(t, err)
	assert.Equal(t, []common.RawBlock{rawBlock(10), rawBlock(11), rawBlock(12), rawBlock(13)}, blocks)
	assert.Equal(t, []uint64{10, 12, 13}, order)
}

func TestGetBlockRange_SingleBlock(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), 5, rawBlock(5)))

	f := NewBlockFetcher(store, mocks.NewMockIRPCClient(t))
	blocks, err := f.GetBlockRange(context.Background(), 5, 5)

	require.NoError(t, err)
	assert.Equal(t, []common.RawBlock{rawBlock(5)}, blocks)
}

func TestGetBlockRange_StopsAtFirstFailure(t *testing.T) {
	store, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	mockRPC := mocks.NewMockIRPCClient(t)

	notFound := &common.BlockNotFoundError{BlockNumber: 2}
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(1)).Return(rawBlock(1), nil).Once()
	mockRPC.EXPECT().FetchBlock(mock.Anything, uint64(2)).Return(nil, notFound).Once()

	f := NewBlockFetcher(store, mockRPC)
	blocks, err := f.GetBlockRange(context.Background(), 1, 3)

	assert.Nil(t, blocks)
	assert.Same(t, notFound, err)
	mockRPC.AssertNotCalled(t, "FetchBlock", mock.Anything, uint64(3))

	// blocks fetched before the failure stay cached
	has, err := store.Has(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGetBlockRange_CancelledContext(t *testing.T) {
	f := NewBlockFetcher(mocks.NewMockIBlockStore(t), mocks.NewMockIRPCClient(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.GetBlockRange(ctx, 1, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
