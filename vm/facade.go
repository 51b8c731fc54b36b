package vm

import "github.com/coreexec/createvm/substate"

// OutputKind discriminates the three-way result of running init code.
type OutputKind int

const (
	// OutputCode means the init code returned successfully; Data holds
	// the runtime code to deploy.
	OutputCode OutputKind = iota
	// OutputRevert means the init code executed REVERT; Data holds the
	// bytes it returned.
	OutputRevert
	// OutputFailure means the init code hit an exceptional halt (out of
	// gas, stack under/overflow, invalid jump, invalid opcode, depth
	// overflow, ...). Data is always nil: a failure carries no bytes.
	OutputFailure
)

// Output is the VM's three-way result sum type. It is represented as a
// tagged struct rather than encoding failure as a sentinel byte string,
// per spec.md's design note: a zero-length Data on OutputCode (empty
// deployed code) must stay distinguishable from OutputFailure.
type Output struct {
	Kind OutputKind
	Data []byte
}

// CodeOutput builds a successful Output carrying the deployed runtime
// code.
func CodeOutput(code []byte) Output { return Output{Kind: OutputCode, Data: code} }

// RevertOutput builds an Output for an explicit REVERT, carrying its
// returned bytes.
func RevertOutput(data []byte) Output { return Output{Kind: OutputRevert, Data: data} }

// FailureOutput builds an Output for an exceptional halt.
func FailureOutput() Output { return Output{Kind: OutputFailure} }

// Machine is the VM facade (C6): the contract the bytecode interpreter
// exposes to the creation orchestrator. It is implemented outside this
// module; the interpreter itself is explicitly out of scope per spec.md
// §1.
type Machine interface {
	// Run executes env.Code starting with gas available, and returns the
	// gas remaining, the sub-state accrued during execution, the
	// environment reflecting every state mutation made along the way, and
	// the three-way output.
	Run(gas uint64, env *Environment) (remainingGas uint64, sub substate.SubState, envAfter *Environment, out Output)
}
