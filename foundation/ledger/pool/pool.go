// Package pool maintains the ordered set of transactions waiting to be
// sealed into a block.
package pool

import (
	"sync"

	"github.com/solochain/solochain/foundation/ledger"
)

// Pool represents the buffer of transactions that have been submitted but
// not yet sealed. Submission order is preserved since it determines each
// transaction's position inside the block that seals it.
type Pool struct {
	mu    sync.RWMutex
	trans []ledger.Tran
}

// New constructs a new pool for pending transactions.
func New() *Pool {
	return &Pool{}
}

// Submit appends a transaction to the end of the pool and returns the
// number of transactions currently pending.
func (p *Pool) Submit(tx ledger.Tran) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.trans = append(p.trans, tx)

	return len(p.trans)
}

// Drain removes all the transactions from the pool in submission order,
// leaving the pool empty. Ownership of the transactions moves to the
// caller, no copies are made.
func (p *Pool) Drain() []ledger.Tran {
	p.mu.Lock()
	defer p.mu.Unlock()

	trans := p.trans
	p.trans = nil

	return trans
}

// Copy returns a copy of the pending transactions in submission order.
func (p *Pool) Copy() []ledger.Tran {
	p.mu.RLock()
	defer p.mu.RUnlock()

	trans := make([]ledger.Tran, len(p.trans))
	copy(trans, p.trans)

	return trans
}

// Count returns the current number of transactions in the pool.
func (p *Pool) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.trans)
}
