package state

import (
	"github.com/solochain/solochain/foundation/ledger"
)

// RetrieveChain returns a copy of the full chain from the genesis block to
// the latest sealed block.
func (s *State) RetrieveChain() []ledger.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := make([]ledger.Block, len(s.chain))
	copy(chain, s.chain)

	return chain
}

// RetrieveLatestBlock returns the block at the head of the chain.
func (s *State) RetrieveLatestBlock() ledger.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastBlock()
}

// RetrievePendingTrans returns a copy of the transactions waiting in the
// pool to be sealed into the next block.
func (s *State) RetrievePendingTrans() []ledger.Tran {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pool.Copy()
}
