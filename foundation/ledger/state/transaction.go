package state

import (
	"github.com/solochain/solochain/foundation/ledger"
)

// SubmitTransaction accepts a transaction into the pending pool and returns
// the index of the block the transaction will be sealed into if the pool is
// mined as it stands.
func (s *State) SubmitTransaction(tran ledger.Tran) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.pool.Submit(tran)
	index := s.lastBlock().Index + 1

	s.evHandler("state: SubmitTransaction: tran[%s] pool[%d] landing[%d]", tran, count, index)

	return index
}
