package common

import "fmt"

// NetworkError is a transport level failure talking to the RPC provider.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RPCError is an error object returned by the provider in the JSON-RPC body.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("ethereum API error: %s", e.Message)
}

// BlockNotFoundError means the provider answered with a null result.
type BlockNotFoundError struct {
	BlockNumber uint64
}

func (e *BlockNotFoundError) Error() string {
	return fmt.Sprintf("block %d not found", e.BlockNumber)
}

type InvalidRangeError struct {
	StartBlock uint64
	EndBlock   uint64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid block range %d-%d: start_block must be less than or equal to end_block", e.StartBlock, e.EndBlock)
}
