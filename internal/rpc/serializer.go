package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

type response struct {
	Error  *responseError  `json:"error"`
	Result json.RawMessage `json:"result"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SerializeBlock validates an eth_getBlockByNumber response body and returns it unmodified.
func SerializeBlock(blockNumber uint64, body []byte) (common.RawBlock, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &common.NetworkError{Err: fmt.Errorf("failed to decode RPC response: %w", err)}
	}

	if resp.Error != nil {
		message := resp.Error.Message
		if message == "" {
			message = "Unknown error"
		}
		log.Debug().Uint64("block_number", blockNumber).Int("code", resp.Error.Code).Msgf("RPC returned error: %s", message)
		return nil, &common.RPCError{Code: resp.Error.Code, Message: message}
	}

	if len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
		return nil, &common.BlockNotFoundError{BlockNumber: blockNumber}
	}

	return common.RawBlock(body), nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var rpcErr *common.RPCError
	var notFoundErr *common.BlockNotFoundError
	switch {
	case errors.As(err, &rpcErr):
		return "rpc_error"
	case errors.As(err, &notFoundErr):
		return "not_found"
	default:
		return "network_error"
	}
}

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}
