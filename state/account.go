package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// EmptyCodeHash is the sentinel code_hash value denoting "no code": the
// keccak256 digest of the empty byte string.
var EmptyCodeHash = crypto.Keccak256Hash(nil)

// EmptyRootHash is the sentinel storage_root value denoting "no storage":
// the root hash of an empty Merkle Patricia trie.
var EmptyRootHash = common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// Account is the Ethereum consensus representation of an account: nonce,
// balance, and pointers to its code and storage.
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	CodeHash    common.Hash
	StorageRoot common.Hash
}

// emptyAccount returns the zero-valued account returned for addresses the
// world state has never written: zero nonce, zero balance, no code, no
// storage.
func emptyAccount() Account {
	return Account{
		Balance:     new(uint256.Int),
		CodeHash:    EmptyCodeHash,
		StorageRoot: EmptyRootHash,
	}
}

// IsSimpleAccount reports whether acc carries no deployed code.
func IsSimpleAccount(acc Account) bool {
	return acc.CodeHash == EmptyCodeHash
}

// IsEmptyAccount reports whether acc is a simple account with zero nonce
// and zero balance.
func IsEmptyAccount(acc Account) bool {
	return IsSimpleAccount(acc) && acc.Nonce == 0 && acc.Balance.IsZero()
}
