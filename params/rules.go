// Package params holds the consensus constants and the era-configuration
// strategy (the "Configuration Strategy" collaborator) that the creation
// orchestrator consults. Era knobs are modeled as a small chain of
// delegating types rather than a single flat struct: each era owns the
// knobs it introduces and falls back to its predecessor for everything
// else, mirroring how consensus-rule forks actually layer on mainnet.
package params

const (
	// CodeDepositGas is G_codedeposit: gas charged per byte of deployed
	// runtime code.
	CodeDepositGas uint64 = 200

	// MaxCodeSize is the EIP-170 maximum size, in bytes, of deployed
	// contract code.
	MaxCodeSize = 24576

	// codeSizeRejectThreshold is the size at or above which deployed code
	// is rejected once EIP-158's limit is active (MaxCodeSize + 1).
	codeSizeRejectThreshold = MaxCodeSize + 1

	// CallCreateDepth is the maximum recursion depth for CALL/CREATE
	// frames. The orchestrator does not enforce this itself (the VM does);
	// it is exposed for callers that need to pre-check depth.
	CallCreateDepth = 1024
)

// Rules is the set of era-specific predicates the creation orchestrator
// consults. It intentionally covers only the knobs the orchestrator needs;
// VM-level knobs (revert support, static calls, EIP-150 gas semantics,
// precompile availability) are out of scope here and flow through the
// execution environment unchanged.
type Rules interface {
	// Name identifies the era, for logging and test fixtures.
	Name() string

	// IncrementNonceOnCreate reports whether a newly created contract's
	// nonce is bumped from 0 to 1 before its init code runs (EIP-161).
	IncrementNonceOnCreate() bool

	// FailOnInsufficientDeployGas reports whether running out of gas while
	// charging the code-deposit cost fails the creation outright (true,
	// Homestead onward) rather than silently deploying empty code and
	// returning the remaining gas uncharged (false, Frontier).
	FailOnInsufficientDeployGas() bool

	// CodeSizeLimit returns the byte-size threshold at or above which
	// deployed code is rejected, and whether that limit is enforced at all
	// under this era (EIP-170, active EIP-158 onward).
	CodeSizeLimit() (threshold int, enforced bool)

	// RejectEOFPrefixedCode reports whether deployed code starting with
	// the 0xEF byte is rejected (EIP-3541, active London onward).
	RejectEOFPrefixedCode() bool

	// AccessListOnCreate reports whether the new contract address is added
	// to the access list of the sub-state the VM returns (EIP-2929, active
	// Berlin onward). The entry is added after the init code runs and
	// reaches the caller only on a successful creation; error results
	// carry an empty sub-state.
	AccessListOnCreate() bool
}

type frontier struct{}

// Frontier returns the original, pre-Homestead rule set: no nonce bump on
// create, insufficient deploy gas silently deploys empty code, and no
// code-size limit.
func Frontier() Rules { return frontier{} }

func (frontier) Name() string                          { return "Frontier" }
func (frontier) IncrementNonceOnCreate() bool           { return false }
func (frontier) FailOnInsufficientDeployGas() bool      { return false }
func (frontier) CodeSizeLimit() (int, bool)             { return 0, false }
func (frontier) RejectEOFPrefixedCode() bool            { return false }
func (frontier) AccessListOnCreate() bool               { return false }

type homestead struct{ fallback Rules }

// Homestead layers the Homestead hard fork over Frontier: insufficient
// deploy gas now fails the creation and reverts state.
func Homestead() Rules { return homestead{fallback: Frontier()} }

func (h homestead) Name() string                     { return "Homestead" }
func (h homestead) IncrementNonceOnCreate() bool      { return h.fallback.IncrementNonceOnCreate() }
func (h homestead) FailOnInsufficientDeployGas() bool { return true }
func (h homestead) CodeSizeLimit() (int, bool)        { return h.fallback.CodeSizeLimit() }
func (h homestead) RejectEOFPrefixedCode() bool       { return h.fallback.RejectEOFPrefixedCode() }
func (h homestead) AccessListOnCreate() bool          { return h.fallback.AccessListOnCreate() }

type eip150 struct{ fallback Rules }

// EIP150 layers the Tangerine Whistle gas repricing over Homestead. None of
// the orchestrator-facing knobs change at this fork; the repriced
// CALL/CALLCODE/DELEGATECALL/SELFDESTRUCT gas costs and the 63/64 gas rule
// are VM-level concerns outside this package.
func EIP150() Rules { return eip150{fallback: Homestead()} }

func (e eip150) Name() string                     { return "EIP150" }
func (e eip150) IncrementNonceOnCreate() bool      { return e.fallback.IncrementNonceOnCreate() }
func (e eip150) FailOnInsufficientDeployGas() bool { return e.fallback.FailOnInsufficientDeployGas() }
func (e eip150) CodeSizeLimit() (int, bool)        { return e.fallback.CodeSizeLimit() }
func (e eip150) RejectEOFPrefixedCode() bool       { return e.fallback.RejectEOFPrefixedCode() }
func (e eip150) AccessListOnCreate() bool          { return e.fallback.AccessListOnCreate() }

type eip158 struct{ fallback Rules }

// EIP158 layers the Spurious Dragon hard fork over EIP150: new contracts'
// nonces are bumped to 1 before init code runs, and deployed code at or
// above 24577 bytes is rejected.
func EIP158() Rules { return eip158{fallback: EIP150()} }

func (e eip158) Name() string                     { return "EIP158" }
func (e eip158) IncrementNonceOnCreate() bool      { return true }
func (e eip158) FailOnInsufficientDeployGas() bool { return e.fallback.FailOnInsufficientDeployGas() }
func (e eip158) CodeSizeLimit() (int, bool)        { return codeSizeRejectThreshold, true }
func (e eip158) RejectEOFPrefixedCode() bool       { return e.fallback.RejectEOFPrefixedCode() }
func (e eip158) AccessListOnCreate() bool          { return e.fallback.AccessListOnCreate() }

type byzantium struct{ fallback Rules }

// Byzantium layers the Byzantium hard fork over EIP158. REVERT support and
// static calls are VM-level additions that do not change any of the
// orchestrator-facing knobs.
func Byzantium() Rules { return byzantium{fallback: EIP158()} }

func (b byzantium) Name() string                     { return "Byzantium" }
func (b byzantium) IncrementNonceOnCreate() bool      { return b.fallback.IncrementNonceOnCreate() }
func (b byzantium) FailOnInsufficientDeployGas() bool { return b.fallback.FailOnInsufficientDeployGas() }
func (b byzantium) CodeSizeLimit() (int, bool)        { return b.fallback.CodeSizeLimit() }
func (b byzantium) RejectEOFPrefixedCode() bool       { return b.fallback.RejectEOFPrefixedCode() }
func (b byzantium) AccessListOnCreate() bool          { return b.fallback.AccessListOnCreate() }

type berlin struct{ fallback Rules }

// Berlin layers EIP-2929: the new contract address joins the access list
// of the sub-state returned by a successful creation. Failed and reverted
// creations return an empty sub-state, so they carry no such entry.
func Berlin() Rules { return berlin{fallback: Byzantium()} }

func (b berlin) Name() string                     { return "Berlin" }
func (b berlin) IncrementNonceOnCreate() bool      { return b.fallback.IncrementNonceOnCreate() }
func (b berlin) FailOnInsufficientDeployGas() bool { return b.fallback.FailOnInsufficientDeployGas() }
func (b berlin) CodeSizeLimit() (int, bool)        { return b.fallback.CodeSizeLimit() }
func (b berlin) RejectEOFPrefixedCode() bool       { return b.fallback.RejectEOFPrefixedCode() }
func (b berlin) AccessListOnCreate() bool          { return true }

type london struct{ fallback Rules }

// London layers EIP-3541: deployed code starting with the 0xEF byte is
// rejected, reserving that prefix for the EVM Object Format.
func London() Rules { return london{fallback: Berlin()} }

func (l london) Name() string                     { return "London" }
func (l london) IncrementNonceOnCreate() bool      { return l.fallback.IncrementNonceOnCreate() }
func (l london) FailOnInsufficientDeployGas() bool { return l.fallback.FailOnInsufficientDeployGas() }
func (l london) CodeSizeLimit() (int, bool)        { return l.fallback.CodeSizeLimit() }
func (l london) RejectEOFPrefixedCode() bool       { return true }
func (l london) AccessListOnCreate() bool          { return l.fallback.AccessListOnCreate() }

// ByName resolves one of the eras recognized by this package by its
// canonical name, for configuration surfaces that select an era by string
// (flags, genesis files). It reports false for unrecognized names rather
// than guessing a fallback era.
func ByName(name string) (Rules, bool) {
	switch name {
	case "Frontier":
		return Frontier(), true
	case "Homestead":
		return Homestead(), true
	case "EIP150":
		return EIP150(), true
	case "EIP158":
		return EIP158(), true
	case "Byzantium":
		return Byzantium(), true
	case "Berlin":
		return Berlin(), true
	case "London":
		return London(), true
	default:
		return nil, false
	}
}
