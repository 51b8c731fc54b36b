package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/coreexec/createvm/params"
	"github.com/coreexec/createvm/state"
)

// AccountView wraps the current world state as the VM sees it. It is
// intentionally a one-method interface: the orchestrator and the VM both
// need the same *state.WorldState, but expressing it as an interface
// keeps the vm package from committing to how a future real interpreter
// obtains it (directly, through a cache, through a tracer-wrapped
// decorator, ...).
type AccountView interface {
	State() *state.WorldState
}

type accountView struct {
	ws *state.WorldState
}

// NewAccountView wraps ws as an AccountView.
func NewAccountView(ws *state.WorldState) AccountView {
	return accountView{ws: ws}
}

func (a accountView) State() *state.WorldState { return a.ws }

// Environment is the Execution Environment (I in the Yellow Paper's
// notation): everything the VM facade needs to run a contract's code.
// For a creation, Data is always empty and Code is always the init code.
type Environment struct {
	Address    common.Address
	Originator common.Address
	GasPrice   *uint256.Int
	Data       []byte
	Sender     common.Address
	Value      *uint256.Int
	Code       []byte
	Depth      int
	Block      BlockContext
	Accounts   AccountView
	Config     params.Rules
}

// BuildEnvironment assembles the Execution Environment for a contract
// creation. It is a pure constructor with no failure modes; the caller is
// responsible for having already applied any state mutations (blank
// account init, value transfer, nonce bump) that must be visible to the
// init code before this is called.
func BuildEnvironment(
	address, sender, originator common.Address,
	gasPrice, value *uint256.Int,
	initCode []byte,
	depth int,
	block BlockContext,
	accounts AccountView,
	cfg params.Rules,
) *Environment {
	return &Environment{
		Address:    address,
		Originator: originator,
		GasPrice:   gasPrice,
		Data:       []byte{},
		Sender:     sender,
		Value:      value,
		Code:       initCode,
		Depth:      depth,
		Block:      block,
		Accounts:   accounts,
		Config:     cfg,
	}
}
