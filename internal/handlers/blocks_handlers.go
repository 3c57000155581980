package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blocklinks/api"
	"github.com/thirdweb-dev/blocklinks/internal/common"
	"github.com/thirdweb-dev/blocklinks/internal/fetcher"
	"github.com/thirdweb-dev/blocklinks/internal/links"
	"github.com/thirdweb-dev/blocklinks/internal/metrics"
)

type BlocksHandler struct {
	fetcher fetcher.IBlockFetcher
}

func NewBlocksHandler(fetcher fetcher.IBlockFetcher) *BlocksHandler {
	return &BlocksHandler{fetcher: fetcher}
}

// GetBlockLinks serves GET /block/:blockNumber
func (h *BlocksHandler) GetBlockLinks(c *gin.Context) {
	blockNumber, err := api.GetBlockNumber(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	block, err := h.fetcher.GetBlock(c.Request.Context(), blockNumber)
	if err != nil {
		handleFetchError(c, err)
		return
	}

	blockLinks, err := links.ExtractLinks(block)
	if err != nil {
		log.Error().Err(err).Uint64("block_number", blockNumber).Msg("Error extracting links")
		api.InternalErrorHandler(c)
		return
	}

	sendLinks(c, blockLinks)
}

// GetBlockRangeLinks serves POST /blocks with a {"start_block", "end_block"} body.
// The range is inclusive and fails as a whole on the first block that fails.
func (h *BlocksHandler) GetBlockRangeLinks(c *gin.Context) {
	startBlock, endBlock, err := api.ParseBlockRangeRequest(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if startBlock > endBlock {
		handleFetchError(c, &common.InvalidRangeError{StartBlock: startBlock, EndBlock: endBlock})
		return
	}

	blocks, err := h.fetcher.GetBlockRange(c.Request.Context(), startBlock, endBlock)
	if err != nil {
		handleFetchError(c, err)
		return
	}
	metrics.BlocksPerRangeRequest.Observe(float64(len(blocks)))

	rangeLinks, err := links.ExtractLinksFromRange(blocks)
	if err != nil {
		log.Error().Err(err).Uint64("start_block", startBlock).Uint64("end_block", endBlock).Msg("Error extracting links from range")
		api.InternalErrorHandler(c)
		return
	}

	sendLinks(c, rangeLinks)
}

func sendLinks(c *gin.Context, l []links.Link) {
	encoded, err := links.Encode(l)
	if err != nil {
		log.Error().Err(err).Msg("Error encoding links")
		api.InternalErrorHandler(c)
		return
	}
	metrics.LinksExtracted.Add(float64(len(l)))
	api.SendLinksResponse(c, encoded)
}

func handleFetchError(c *gin.Context, err error) {
	var (
		networkErr  *common.NetworkError
		rpcErr      *common.RPCError
		notFoundErr *common.BlockNotFoundError
		rangeErr    *common.InvalidRangeError
	)

	switch {
	case errors.As(err, &rangeErr):
		api.BadRequestErrorHandler(c, errors.New("start_block must be less than or equal to end_block"))
	case errors.As(err, &notFoundErr):
		api.NotFoundErrorHandler(c, fmt.Errorf("Block %d not found. Block may not exist yet or is invalid.", notFoundErr.BlockNumber))
	case errors.As(err, &rpcErr):
		api.BadRequestErrorHandler(c, fmt.Errorf("Ethereum API error: %s", rpcErr.Message))
	case errors.As(err, &networkErr):
		log.Warn().Err(err).Msg("Network error talking to RPC provider")
		api.InternalErrorWithDetailHandler(c, fmt.Sprintf("Network error: %v", networkErr.Err))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unexpected error serving links")
		api.InternalErrorHandler(c)
	}
}
