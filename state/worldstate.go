package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// WorldState is the account store (the "Account Store" collaborator). It
// presents the functional-looking, by-value API the orchestrator is
// written against (Get/Put/Transfer/... each conceptually produce a new
// handle) while internally following the teacher's own approach: mutate
// in place, and make reverts cheap via Snapshot/RevertToSnapshot rather
// than by threading a persistent structure through every call. A revert
// therefore restores the exact map contents captured at Snapshot, and the
// orchestrator hands back the same *WorldState pointer it was given,
// satisfying the "returned state equals the input state" revert-atomicity
// property. Each Snapshot copies both maps, and the orchestrator takes one
// before every VM run, whatever its outcome.
type WorldState struct {
	accounts map[common.Address]Account
	code     map[common.Address][]byte

	snapshots []snapshotRecord
}

type snapshotRecord struct {
	accounts map[common.Address]Account
	code     map[common.Address][]byte
}

// New returns an empty world state.
func New() *WorldState {
	return &WorldState{
		accounts: make(map[common.Address]Account),
		code:     make(map[common.Address][]byte),
	}
}

// Get returns the account at addr, or the zero-valued default account if
// addr has never been written.
func (w *WorldState) Get(addr common.Address) Account {
	if acc, ok := w.accounts[addr]; ok {
		return acc
	}
	return emptyAccount()
}

// Exists reports whether addr has ever been written to the state (as
// opposed to merely reading as the zero-valued default).
func (w *WorldState) Exists(addr common.Address) bool {
	_, ok := w.accounts[addr]
	return ok
}

// Put inserts or replaces the account at addr.
func (w *WorldState) Put(addr common.Address, acc Account) *WorldState {
	w.accounts[addr] = acc
	return w
}

// Transfer debits from.Balance by v and credits to.Balance by v. Callers
// must ensure from.Balance >= v and that to exists; Transfer does not
// itself check either precondition, matching the Account Store's
// no-blocking, no-validating contract in spec.
func (w *WorldState) Transfer(from, to common.Address, v *uint256.Int) *WorldState {
	fromAcc := w.Get(from)
	toAcc := w.Get(to)
	fromAcc.Balance = new(uint256.Int).Sub(fromAcc.Balance, v)
	toAcc.Balance = new(uint256.Int).Add(toAcc.Balance, v)
	w.accounts[from] = fromAcc
	w.accounts[to] = toAcc
	return w
}

// IncrementNonce bumps the nonce of the account at addr by one.
func (w *WorldState) IncrementNonce(addr common.Address) *WorldState {
	acc := w.Get(addr)
	acc.Nonce++
	w.accounts[addr] = acc
	return w
}

// PutCode stores code as the runtime code for addr and updates its
// code_hash accordingly.
func (w *WorldState) PutCode(addr common.Address, code []byte) *WorldState {
	acc := w.Get(addr)
	acc.CodeHash = codeHash(code)
	w.accounts[addr] = acc
	stored := make([]byte, len(code))
	copy(stored, code)
	w.code[addr] = stored
	return w
}

// Code returns the runtime code stored at addr, or nil if none.
func (w *WorldState) Code(addr common.Address) []byte {
	return w.code[addr]
}

// Snapshot records the current contents of the state and returns a token
// that RevertToSnapshot can later roll back to.
func (w *WorldState) Snapshot() int {
	accCopy := make(map[common.Address]Account, len(w.accounts))
	for k, v := range w.accounts {
		accCopy[k] = v
	}
	codeCopy := make(map[common.Address][]byte, len(w.code))
	for k, v := range w.code {
		codeCopy[k] = v
	}
	w.snapshots = append(w.snapshots, snapshotRecord{accounts: accCopy, code: codeCopy})
	return len(w.snapshots) - 1
}

// RevertToSnapshot discards every mutation made since the given snapshot
// token was taken.
func (w *WorldState) RevertToSnapshot(id int) {
	rec := w.snapshots[id]
	w.accounts = rec.accounts
	w.code = rec.code
	w.snapshots = w.snapshots[:id]
}

func codeHash(code []byte) common.Hash {
	if len(code) == 0 {
		return EmptyCodeHash
	}
	return crypto.Keccak256Hash(code)
}
