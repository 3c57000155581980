package common

import (
	"encoding/json"
	"strconv"
)

// RawBlock is an eth_getBlockByNumber JSON-RPC response envelope, byte for byte
// as the provider returned it.
type RawBlock []byte

type BlockModel struct {
	JsonRPC string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  *BlockResult    `json:"result"`
}

type BlockResult struct {
	Transactions []Transaction `json:"transactions"`
}

// Decode parses the envelope down to the transaction list.
func (b RawBlock) Decode() (BlockModel, error) {
	var model BlockModel
	if len(b) == 0 {
		return model, nil
	}
	err := json.Unmarshal(b, &model)
	return model, err
}

// Transactions returns result.transactions, empty when result or the field is missing.
func (b RawBlock) Transactions() ([]Transaction, error) {
	model, err := b.Decode()
	if err != nil {
		return nil, err
	}
	if model.Result == nil {
		return nil, nil
	}
	return model.Result.Transactions, nil
}

func BlockKey(blockNumber uint64) string {
	return strconv.FormatUint(blockNumber, 10)
}
