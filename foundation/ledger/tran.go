package ledger

import "fmt"

// Tran is the transactional information between two parties. Once
// constructed, a transaction is never modified; it moves from the pending
// pool into a sealed block.
type Tran struct {
	Sender    string `json:"sender"`    // Party the amount is moving from.
	Recipient string `json:"recipient"` // Party the amount is moving to.
	Amount    int64  `json:"amount"`    // Amount being moved, may be negative.
}

// String implements the fmt.Stringer interface for logging.
func (tx Tran) String() string {
	return fmt.Sprintf("%s->%s:%d", tx.Sender, tx.Recipient, tx.Amount)
}
