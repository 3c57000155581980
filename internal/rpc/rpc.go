package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
	"github.com/thirdweb-dev/blocklinks/internal/metrics"
)

type IRPCClient interface {
	FetchBlock(ctx context.Context, blockNumber uint64) (common.RawBlock, error)
	GetURL() string
	Close()
}

type Client struct {
	client *resty.Client
	url    string
}

func Initialize(cfg *config.RPCConfig) (IRPCClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("RPC API key is not set")
	}
	log.Debug().Msg("Initializing RPC")
	return NewClient(cfg.Endpoint(), time.Duration(cfg.Timeout)*time.Millisecond), nil
}

// NewClient builds a client posting to url. A zero timeout leaves resty's default.
func NewClient(url string, timeout time.Duration) *Client {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(restyLogger{})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		client: client,
		url:    url,
	}
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.client.GetClient().CloseIdleConnections()
}

func (rpc *Client) FetchBlock(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	start := time.Now()
	block, err := rpc.fetchBlock(ctx, blockNumber)
	metrics.RPCDuration.Observe(time.Since(start).Seconds())
	metrics.RPCRequests.WithLabelValues(outcome(err)).Inc()
	return block, err
}

func (rpc *Client) fetchBlock(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	request := NewRequest(GET_BLOCK_BY_NUMBER, GetBlockWithTransactionsParams(blockNumber))

	resp, err := rpc.client.R().
		SetContext(ctx).
		SetBody(request).
		Post(rpc.url)
	if err != nil {
		return nil, &common.NetworkError{Err: redactURL(err)}
	}
	if !resp.IsSuccess() {
		return nil, &common.NetworkError{Err: fmt.Errorf("unexpected HTTP status %s", resp.Status())}
	}

	log.Debug().Uint64("block_number", blockNumber).Int("bytes", len(resp.Body())).Msg("Received block from RPC")
	return SerializeBlock(blockNumber, resp.Body())
}

// redactURL drops the request URL from transport errors. The endpoint path carries
// the provider API key.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
