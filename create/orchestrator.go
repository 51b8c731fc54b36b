// Package create implements the Creation Orchestrator (C7): the spine of
// the contract-creation subsystem described by the Ethereum Yellow Paper,
// Section 7. Execute ties together address derivation, the account
// store, the era-configuration strategy, the execution-environment
// builder, and the VM facade to produce a new contract, a remaining gas
// amount, and an accrued sub-state — or to fail and revert cleanly.
package create

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/erigontech/erigon-lib/log/v3"
	"github.com/holiman/uint256"

	"github.com/coreexec/createvm/address"
	"github.com/coreexec/createvm/params"
	"github.com/coreexec/createvm/state"
	"github.com/coreexec/createvm/substate"
	"github.com/coreexec/createvm/vm"
)

// Kind selects how the new contract's address is derived. spec.md's
// orchestrator only ever uses KindNonce; KindSalt exists so a CREATE2
// opcode handler built on this package can reuse the same Execute without
// this package needing to know anything about opcodes.
type Kind int

const (
	// KindNonce derives the address from (sender, sender's nonce): CREATE.
	KindNonce Kind = iota
	// KindSalt derives the address from (sender, salt, keccak256(init
	// code)): CREATE2.
	KindSalt
)

// Params is the call frame for a single creation (the "Creation
// Parameters" record). It is transient: built by a caller — a
// transaction applier or a CREATE/CREATE2 opcode handler — and consumed
// by exactly one call to Execute.
type Params struct {
	State      *state.WorldState
	Sender     common.Address
	Originator common.Address

	AvailableGas uint64
	GasPrice     *uint256.Int
	Endowment    *uint256.Int
	InitCode     []byte

	// Depth is the stack depth of this creation: 0 at the top-level
	// creation transaction, >=1 when invoked via a CREATE/CREATE2 opcode
	// from within the VM.
	Depth int

	Block   vm.BlockContext
	Config  params.Rules
	Machine vm.Machine

	// Kind and Salt select CREATE2 address derivation; Salt is ignored
	// under KindNonce.
	Kind Kind
	Salt [32]byte

	// Logger receives the two trace-level notices this package emits
	// (collision detected, benign-empty-account nonce bump). A nil Logger
	// falls back to log.Root().
	Logger log.Logger
}

// Result is the outcome of a creation: the world state to adopt (on Ok,
// the state with every mutation applied, normally the same *WorldState
// the caller passed in, mutated in place; on an error, it is the exact
// state the caller passed in), the gas remaining, the sub-state accrued,
// and — when the init code ran and succeeded — the new contract's address
// and the runtime code the init code returned. The Ok results of the
// pre-existing-empty-account branch leave Address and Output unset; on
// Frontier's insufficient-deploy-gas path Output holds the returned code
// even though none is stored.
type Result struct {
	Ok       bool
	State    *state.WorldState
	GasLeft  uint64
	SubState substate.SubState
	Address  common.Address
	Output   []byte
}

func reverted(st *state.WorldState) Result {
	return Result{Ok: false, State: st, GasLeft: 0, SubState: substate.Empty()}
}

func noop(st *state.WorldState, gasLeft uint64) Result {
	return Result{Ok: true, State: st, GasLeft: gasLeft, SubState: substate.Empty()}
}

func logger(p Params) log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Root()
}

// Execute runs a single contract creation to completion. A non-nil error
// always pairs with Result.Ok == false; on any such error, Result.State
// is the caller's original params.State, untouched, and Result.SubState
// is empty (revert atomicity, spec.md §8 property 3) — except for the one
// literal Yellow Paper quirk spec.md calls out explicitly (a pre-existing
// empty account collided with at the top level returns ok, zero gas, and
// unchanged state with a nil error; see Step 2 below).
func Execute(p Params) (Result, error) {
	log := logger(p)

	// Step 1 — derive the new contract's address from the sender's
	// current (pre-increment) nonce.
	sender := p.State.Get(p.Sender)
	newAddr := deriveAddress(p, sender.Nonce)

	// Step 2 — pre-existence check.
	prior := p.State.Get(newAddr)
	if p.State.Exists(newAddr) {
		if prior.Nonce > 0 || !state.IsSimpleAccount(prior) {
			log.Trace("contract creation collision", "address", newAddr, "nonce", prior.Nonce, "simple", state.IsSimpleAccount(prior))
			return reverted(p.State), ErrContractAddressCollision
		}
		// prior.Nonce == 0 and prior is a simple account: a benign
		// pre-existing empty account.
		if p.Depth != 0 {
			// Inner creation (CREATE/CREATE2 from within the VM): report ok
			// with all available gas returned, without running the init
			// code, after bumping the existing account's nonce where the era
			// increments nonces on create.
			if p.Config.IncrementNonceOnCreate() {
				log.Trace("bumping nonce of pre-existing empty account before create", "address", newAddr)
				p.State.IncrementNonce(newAddr)
			}
			return noop(p.State, p.AvailableGas), nil
		}
		// Top-level creation transaction: the Yellow Paper treats this as
		// a failure, but — mirroring the source literally, per spec.md
		// §9's design note — reports it as ok with zero gas left rather
		// than as an error.
		return noop(p.State, 0), nil
	}

	// Step 3 — blank-account initialization.
	snapshot := p.State.Snapshot()
	p.State.Put(newAddr, state.Account{
		Nonce:       0,
		Balance:     new(uint256.Int),
		CodeHash:    state.EmptyCodeHash,
		StorageRoot: state.EmptyRootHash,
	})
	p.State.Transfer(p.Sender, newAddr, p.Endowment)
	if p.Config.IncrementNonceOnCreate() {
		p.State.IncrementNonce(newAddr)
	}

	// Step 4 — build the execution environment and invoke the VM.
	env := vm.BuildEnvironment(
		newAddr, p.Sender, p.Originator,
		p.GasPrice, p.Endowment, p.InitCode,
		p.Depth, p.Block, vm.NewAccountView(p.State), p.Config,
	)
	remGas, sub, envAfter, output := p.Machine.Run(p.AvailableGas, env)
	if p.Config.AccessListOnCreate() {
		sub = sub.AddAccessList(newAddr)
	}
	finalState := p.State
	if envAfter != nil && envAfter.Accounts != nil {
		finalState = envAfter.Accounts.State()
	}

	// Step 5 — post-execution disposition.
	switch output.Kind {
	case vm.OutputFailure:
		finalState.RevertToSnapshot(snapshot)
		return reverted(p.State), ErrExecutionFailed

	case vm.OutputRevert:
		finalState.RevertToSnapshot(snapshot)
		return Result{Ok: false, State: p.State, GasLeft: remGas, SubState: substate.Empty()}, ErrExecutionReverted

	default: // vm.OutputCode
		code := output.Data

		if p.Config.RejectEOFPrefixedCode() && len(code) >= 1 && code[0] == 0xEF {
			finalState.RevertToSnapshot(snapshot)
			return reverted(p.State), ErrInvalidCode
		}

		depositCost := uint64(len(code)) * params.CodeDepositGas
		insufficient := remGas < depositCost

		if insufficient && p.Config.FailOnInsufficientDeployGas() {
			finalState.RevertToSnapshot(snapshot)
			return reverted(p.State), ErrCodeStoreOutOfGas
		}

		if threshold, enforced := p.Config.CodeSizeLimit(); enforced && len(code) >= threshold {
			finalState.RevertToSnapshot(snapshot)
			return reverted(p.State), ErrMaxCodeSizeExceeded
		}

		gasOut := remGas
		stateOut := finalState
		if insufficient {
			// Frontier: deploy silently with empty code; no deposit is
			// charged and the VM's remaining gas is returned as is.
		} else {
			gasOut = remGas - depositCost
			stateOut = finalState.PutCode(newAddr, code)
		}

		return Result{
			Ok:       true,
			State:    stateOut,
			GasLeft:  gasOut,
			SubState: sub.AddTouched(newAddr),
			Address:  newAddr,
			Output:   code,
		}, nil
	}
}

func deriveAddress(p Params, senderNonce uint64) common.Address {
	if p.Kind == KindSalt {
		return address.DeriveCreate2(p.Sender, p.Salt, crypto.Keccak256Hash(p.InitCode))
	}
	return address.Derive(p.Sender, senderNonce)
}
