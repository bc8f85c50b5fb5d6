// Package ledger provides the core types for the chain: transactions,
// blocks, and the fingerprint that links one block to the next.
package ledger

import (
	"encoding/json"
	"hash/fnv"
	"time"
)

// Block represents a group of transactions sealed together into the chain.
// Once appended, a block is never modified.
type Block struct {
	Index     uint64    `json:"index"`         // Position in the chain. The genesis block is index 1.
	TimeStamp time.Time `json:"timestamp"`     // Time the block was sealed.
	Trans     []Tran    `json:"transactions"`  // Transactions sealed into this block in submission order.
	Proof     uint64    `json:"proof"`         // Solution to the puzzle based on the previous block's proof.
	PrevHash  uint64    `json:"previous_hash"` // Fingerprint of the previous block in the chain.
}

// NewBlock constructs the next block in the chain from the set of drained
// transactions. The timestamp is captured at construction.
func NewBlock(index uint64, trans []Tran, proof uint64, prevHash uint64) Block {
	return Block{
		Index:     index,
		TimeStamp: time.Now().UTC(),
		Trans:     trans,
		Proof:     proof,
		PrevHash:  prevHash,
	}
}

// Hash returns the fingerprint for the block by marshaling the block into
// JSON and hashing the bytes with FNV-1a. The fingerprint is used for
// chain linkage only and is not cryptographic. The mining puzzle in the
// pow package uses SHA-256.
func (b Block) Hash() uint64 {
	data, err := json.Marshal(b)
	if err != nil {
		return 0
	}

	h := fnv.New64a()
	h.Write(data)

	return h.Sum64()
}
