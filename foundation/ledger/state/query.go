package state

import (
	"github.com/solochain/solochain/foundation/ledger"
)

// QueryLatest represents to query the latest block in the chain.
const QueryLatest = ^uint64(0) >> 1

// QueryBlocksByIndex returns the set of blocks with an index in the range
// from to, inclusive on both ends. Blocks are indexed from 1, the genesis
// block. If from is QueryLatest, only the block at the head of the chain is
// returned.
func (s *State) QueryBlocksByIndex(from uint64, to uint64) []ledger.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if from == QueryLatest {
		from = s.lastBlock().Index
		to = from
	}

	var out []ledger.Block
	for _, block := range s.chain {
		if block.Index >= from && block.Index <= to {
			out = append(out, block)
		}
	}

	return out
}
