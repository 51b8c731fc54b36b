// Package substate implements the Sub-State Accumulator: the auxiliary
// record of touched accounts, self-destructs, access-list entries, and
// accrued refunds that a call/create frame builds up alongside the world
// state. An empty SubState is the identity element of Union.
package substate

import "github.com/ethereum/go-ethereum/common"

// SubState is a set of touched addresses, a set of self-destructed
// addresses, a set of addresses added to the access list, and a refund
// counter. It is a plain value type: growth happens by returning a new
// SubState rather than by mutating a shared one, which keeps the "empty
// sub-state is the identity, sub-state only grows by union" invariant
// trivially true.
type SubState struct {
	Touched      map[common.Address]struct{}
	SelfDestruct map[common.Address]struct{}
	AccessList   map[common.Address]struct{}
	Refund       uint64
}

// Empty returns the identity sub-state.
func Empty() SubState {
	return SubState{}
}

// IsTouched reports whether addr is in the touched set.
func (s SubState) IsTouched(addr common.Address) bool {
	_, ok := s.Touched[addr]
	return ok
}

// AddTouched returns a SubState with addr added to the touched set.
func (s SubState) AddTouched(addr common.Address) SubState {
	out := s.clone()
	out.Touched = addTo(out.Touched, addr)
	return out
}

// AddSelfDestruct returns a SubState with addr added to the
// self-destruct set.
func (s SubState) AddSelfDestruct(addr common.Address) SubState {
	out := s.clone()
	out.SelfDestruct = addTo(out.SelfDestruct, addr)
	return out
}

// AddAccessList returns a SubState with addr added to the access-list
// set (EIP-2929).
func (s SubState) AddAccessList(addr common.Address) SubState {
	out := s.clone()
	out.AccessList = addTo(out.AccessList, addr)
	return out
}

// AddRefund returns a SubState with its refund counter increased by n.
func (s SubState) AddRefund(n uint64) SubState {
	out := s.clone()
	out.Refund += n
	return out
}

// Union returns the set-union of two sub-states: the union of every set
// field and the sum of the refund counters.
func (s SubState) Union(other SubState) SubState {
	out := s.clone()
	for addr := range other.Touched {
		out.Touched = addTo(out.Touched, addr)
	}
	for addr := range other.SelfDestruct {
		out.SelfDestruct = addTo(out.SelfDestruct, addr)
	}
	for addr := range other.AccessList {
		out.AccessList = addTo(out.AccessList, addr)
	}
	out.Refund += other.Refund
	return out
}

func (s SubState) clone() SubState {
	out := SubState{Refund: s.Refund}
	out.Touched = cloneSet(s.Touched)
	out.SelfDestruct = cloneSet(s.SelfDestruct)
	out.AccessList = cloneSet(s.AccessList)
	return out
}

func cloneSet(m map[common.Address]struct{}) map[common.Address]struct{} {
	if len(m) == 0 {
		return nil
	}
	out := make(map[common.Address]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func addTo(m map[common.Address]struct{}, addr common.Address) map[common.Address]struct{} {
	if m == nil {
		m = make(map[common.Address]struct{}, 1)
	}
	m[addr] = struct{}{}
	return m
}
