package rpc

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	JSONRPC_VERSION     = "2.0"
	GET_BLOCK_BY_NUMBER = "eth_getBlockByNumber"
	DEFAULT_REQUEST_ID  = 1
)

type Request struct {
	JsonRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	Id      int           `json:"id"`
}

func NewRequest(method string, params []interface{}) Request {
	return Request{
		JsonRPC: JSONRPC_VERSION,
		Method:  method,
		Params:  params,
		Id:      DEFAULT_REQUEST_ID,
	}
}

// the second parameter asks for full transaction objects instead of hashes
func GetBlockWithTransactionsParams(blockNum uint64) []interface{} {
	return []interface{}{hexutil.EncodeUint64(blockNum), true}
}
