package common

// Transaction keeps only the addresses of a full transaction object. Either may be
// absent: contract creations carry no recipient.
type Transaction struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}
