// Package pow implements the proof of work puzzle that must be solved
// before the pending transactions can be sealed into a new block.
package pow

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// puzzlePrefix is the leading byte pair a digest must carry to solve the
// puzzle. The comparison is against the raw digest bytes, so the target
// is the two ASCII characters 0x30 0x30, not two zero bits.
var puzzlePrefix = []byte("00")

// Digest produces the puzzle digest for a pair of proofs. The two values
// are encoded big endian into a fixed 16 byte message and hashed with
// SHA-256.
func Digest(lastProof uint64, proof uint64) [32]byte {
	var data [16]byte
	binary.BigEndian.PutUint64(data[:8], lastProof)
	binary.BigEndian.PutUint64(data[8:], proof)

	return sha256.Sum256(data[:])
}

// IsValid determines if the specified proof solves the puzzle against the
// previous block's proof.
func IsValid(lastProof uint64, proof uint64) bool {
	digest := Digest(lastProof, proof)
	return bytes.Equal(digest[:2], puzzlePrefix)
}

// Solve performs the brute force search for the next proof. The search is
// fixed: it starts at zero and increments until the puzzle is solved, so
// the result is deterministic for any given lastProof. The search is
// unbounded and blocks the caller until a solution is found. Callers must
// not hold a lock over the ledger while this runs.
func Solve(lastProof uint64, ev func(v string, args ...any)) uint64 {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	ev("pow: Solve: POW: started: lastProof[%d]", lastProof)

	t := time.Now()

	var proof uint64
	for !IsValid(lastProof, proof) {
		proof++
		if proof%1_000_000 == 0 {
			ev("pow: Solve: POW: attempts[%d]", proof)
		}
	}

	digest := Digest(lastProof, proof)
	ev("pow: Solve: POW: SOLVED: proof[%d]: digest[%s]: duration[%v]", proof, hexutil.Encode(digest[:]), time.Since(t))

	return proof
}
