package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const StatusSuccess = "success"

// Error is the body of every non-2xx response. Detail carries the human readable
// reason the web UI displays.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// LinksResponse carries the links as serialized JSON text.
type LinksResponse struct {
	Status string `json:"status"`
	Links  string `json:"links"`
}

type BlockRangeRequest struct {
	StartBlock *uint64 `json:"start_block" binding:"required"`
	EndBlock   *uint64 `json:"end_block" binding:"required"`
}

func writeError(c *gin.Context, detail string, code int) {
	resp := Error{
		Code:    code,
		Message: http.StatusText(code),
		Detail:  detail,
	}
	c.AbortWithStatusJSON(code, resp)
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusNotFound)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
	InternalErrorWithDetailHandler = func(c *gin.Context, detail string) {
		writeError(c, detail, http.StatusInternalServerError)
	}
)

func SendLinksResponse(c *gin.Context, links string) {
	c.JSON(http.StatusOK, LinksResponse{
		Status: StatusSuccess,
		Links:  links,
	})
}

func GetBlockNumber(c *gin.Context) (uint64, error) {
	raw := c.Param("blockNumber")
	blockNumber, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Debug().Err(err).Str("block_number", raw).Msg("Error parsing block number")
		return 0, fmt.Errorf("invalid block number '%s': must be a non-negative integer", raw)
	}
	return blockNumber, nil
}

func ParseBlockRangeRequest(c *gin.Context) (startBlock uint64, endBlock uint64, err error) {
	var req BlockRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("Error parsing block range request")
		return 0, 0, errors.New("invalid request body: start_block and end_block must be non-negative integers")
	}
	return *req.StartBlock, *req.EndBlock, nil
}
