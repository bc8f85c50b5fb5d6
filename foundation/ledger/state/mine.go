package state

import (
	"time"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/solochain/solochain/foundation/ledger/pow"
)

// MineNewBlock seals the pending transactions into a new block at the head
// of the chain. The proof search runs outside the lock so readers and
// submitters are never blocked while it runs. The search is seeded with the
// proof at the head of the chain when mining starts; if another miner seals
// a block first, this block is resealed against the fresh head, so
// concurrent miners each append exactly one block.
func (s *State) MineNewBlock() ledger.Block {
	s.evHandler("state: MineNewBlock: MINING: started")
	defer s.evHandler("state: MineNewBlock: MINING: completed")

	s.mu.RLock()
	lastProof := s.lastBlock().Proof
	s.mu.RUnlock()

	t := time.Now()
	proof := pow.Solve(lastProof, s.evHandler)
	s.evHandler("state: MineNewBlock: MINING: proof solved: duration[%v]", time.Since(t))

	s.mu.Lock()
	defer s.mu.Unlock()

	block := s.sealBlock(proof, s.lastBlock().Hash())
	s.evHandler("state: MineNewBlock: MINING: block sealed: index[%d] trans[%d]", block.Index, len(block.Trans))

	return block
}
