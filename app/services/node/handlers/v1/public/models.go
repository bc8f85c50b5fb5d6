package public

// newTran represents a transaction submitted for inclusion in a block. The
// amount carries no validation tag since negative transfers are accepted.
type newTran struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Amount    int64  `json:"amount"`
}

// submitResult is returned after a transaction is accepted into the pool.
// Block is the index of the block the transaction will be sealed into if
// the pool is mined as it stands.
type submitResult struct {
	Status string `json:"status"`
	Block  uint64 `json:"block"`
}
