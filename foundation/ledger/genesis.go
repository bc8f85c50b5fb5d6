package ledger

// Genesis values seed the first block in the chain. The genesis block has
// no real predecessor, so its previous hash is an assigned literal rather
// than a computed fingerprint. These are fixed values, not configuration.
const (
	GenesisProof    uint64 = 100
	GenesisPrevHash uint64 = 1
)
