package create

import "errors"

// Sentinel errors returned by Execute. Every one of them means "all gas
// consumed, state reverted to the input" except ErrExecutionReverted,
// which preserves the VM's remaining gas (see spec.md §7).
var (
	// ErrContractAddressCollision is returned when the derived address is
	// already occupied by a non-simple account or one with a nonzero
	// nonce.
	ErrContractAddressCollision = errors.New("contract address collision")

	// ErrExecutionFailed is returned on a VM exceptional halt: exhausted
	// gas, stack under/overflow, invalid jump, invalid opcode, depth
	// overflow.
	ErrExecutionFailed = errors.New("vm exceptional halt")

	// ErrExecutionReverted is returned when the init code executed an
	// explicit REVERT.
	ErrExecutionReverted = errors.New("execution reverted")

	// ErrCodeStoreOutOfGas is returned (Homestead onward) when the gas
	// remaining after execution is less than the code-deposit cost.
	ErrCodeStoreOutOfGas = errors.New("contract creation code storage out of gas")

	// ErrMaxCodeSizeExceeded is returned (EIP-158 onward) when the
	// deployed code is at or above the era's code-size limit.
	ErrMaxCodeSizeExceeded = errors.New("max code size exceeded")

	// ErrInvalidCode is returned (London onward) when the deployed code
	// begins with the reserved 0xEF byte (EIP-3541).
	ErrInvalidCode = errors.New("invalid code: must not begin with 0xef")
)
