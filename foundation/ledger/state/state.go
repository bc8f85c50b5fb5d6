// Package state is the core API for the ledger and implements all the
// business rules and processing. All access to the chain and the pending
// transaction pool is coordinated through this package.
package state

import (
	"sync"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/solochain/solochain/foundation/ledger/pool"
)

// EventHandler defines a function that is called when events occur in the
// processing of mining and submitting transactions.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start the state.
type Config struct {
	EvHandler EventHandler
}

// State manages the ledger. A single reader writer lock coordinates all
// access so readers never observe a partially sealed block.
type State struct {
	mu sync.RWMutex

	chain     []ledger.Block
	pool      *pool.Pool
	evHandler EventHandler
}

// New constructs a new state for ledger management. The chain starts with
// the genesis block already sealed, so the chain is never empty.
func New(cfg Config) *State {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	s := State{
		pool:      pool.New(),
		evHandler: ev,
	}

	s.sealBlock(ledger.GenesisProof, ledger.GenesisPrevHash)

	return &s
}

// =============================================================================

// sealBlock drains the pending pool into a new block and appends it to the
// chain. Calls must hold the write lock, except during construction.
func (s *State) sealBlock(proof uint64, prevHash uint64) ledger.Block {
	block := ledger.NewBlock(uint64(len(s.chain))+1, s.pool.Drain(), proof, prevHash)
	s.chain = append(s.chain, block)

	return block
}

// lastBlock returns the block at the head of the chain. Calls must hold at
// least the read lock. The chain always carries the genesis block, so an
// empty chain is an invariant violation and panics.
func (s *State) lastBlock() ledger.Block {
	return s.chain[len(s.chain)-1]
}
