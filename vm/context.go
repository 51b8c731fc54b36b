package vm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// GetHashFunc returns the n'th ancestor block hash, backing the BLOCKHASH
// opcode.
type GetHashFunc func(n uint64) common.Hash

// BlockContext is the Block View: read-only access to the block header
// and ancestor headers the VM needs (BLOCKHASH, COINBASE, and friends).
// It carries no mutation methods; it is built once per block and shared
// across every creation and call within it.
type BlockContext struct {
	GetHash GetHashFunc

	Coinbase    common.Address
	GasLimit    uint64
	BlockNumber uint64
	Time        uint64
	Difficulty  *big.Int
	BaseFee     *uint256.Int
	PrevRanDao  *common.Hash
}
