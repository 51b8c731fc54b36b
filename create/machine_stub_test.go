package create

import (
	"github.com/coreexec/createvm/substate"
	"github.com/coreexec/createvm/vm"
)

// stubMachine is a programmable double for vm.Machine, in the spirit of the
// teacher's own dummyStatedb/stubGrpcClient test doubles: it runs no bytecode
// at all and instead replays whatever response the test configured, while
// recording how it was called so tests can assert on the environment the
// orchestrator built.
type stubMachine struct {
	gasCharged uint64
	output     vm.Output
	subState   substate.SubState

	calls   int
	lastGas uint64
	lastEnv *vm.Environment
}

func (m *stubMachine) Run(gas uint64, env *vm.Environment) (uint64, substate.SubState, *vm.Environment, vm.Output) {
	m.calls++
	m.lastGas = gas
	m.lastEnv = env

	remaining := gas
	if m.gasCharged <= remaining {
		remaining -= m.gasCharged
	} else {
		remaining = 0
	}
	return remaining, m.subState, env, m.output
}
