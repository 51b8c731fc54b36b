// Package address implements the Address Deriver: the pure function that
// computes a new contract's address from its creator. Both CREATE's
// nonce-based derivation and CREATE2's salt-based derivation live here;
// the creation orchestrator calls Derive by default and DeriveCreate2
// when its caller selects salt-based derivation.
package address

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Derive computes the address of a contract created via CREATE:
// keccak256(rlp([sender, nonce]))[12:]. nonce must be the sender's nonce
// from before it is incremented for this creation. Purely functional: it
// has no failure modes and depends only on its two inputs.
func Derive(sender common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(sender, nonce)
}

// DeriveCreate2 computes the address of a contract created via CREATE2:
// keccak256(0xff ++ sender ++ salt ++ keccak256(init_code))[12:].
func DeriveCreate2(sender common.Address, salt [32]byte, initCodeHash common.Hash) common.Address {
	return crypto.CreateAddress2(sender, salt, initCodeHash.Bytes())
}
