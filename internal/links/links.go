// Package links turns raw blocks into sender to recipient pairs.
package links

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thirdweb-dev/blocklinks/internal/common"
)

// Link is one transaction's sender and recipient. On the wire it is a single-entry
// object keyed by the sender: {"0xfrom": "0xto"}. A missing recipient encodes as null,
// a missing sender as the key "null".
type Link struct {
	From *string
	To   *string
}

func (l Link) MarshalJSON() ([]byte, error) {
	from := "null"
	if l.From != nil {
		from = *l.From
	}
	key, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(l.To)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var entry map[string]*string
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	if len(entry) != 1 {
		return fmt.Errorf("link must have exactly one entry, got %d", len(entry))
	}
	for from, to := range entry {
		from := from
		l.From = &from
		l.To = to
	}
	return nil
}

// ExtractLinks emits one link per transaction, in block order. A block without a
// result or without transactions yields no links.
func ExtractLinks(block common.RawBlock) ([]Link, error) {
	txs, err := block.Transactions()
	if err != nil {
		return nil, fmt.Errorf("failed to decode block transactions: %w", err)
	}

	links := make([]Link, 0, len(txs))
	for _, tx := range txs {
		links = append(links, Link{From: tx.From, To: tx.To})
	}
	return links, nil
}

// ExtractLinksFromRange concatenates the links of each block in the given order.
func ExtractLinksFromRange(blocks []common.RawBlock) ([]Link, error) {
	links := []Link{}
	for _, block := range blocks {
		blockLinks, err := ExtractLinks(block)
		if err != nil {
			return nil, err
		}
		links = append(links, blockLinks...)
	}
	return links, nil
}

// Encode serializes links as a JSON array, always "[]" for no links.
func Encode(links []Link) (string, error) {
	if links == nil {
		links = []Link{}
	}
	data, err := json.Marshal(links)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
