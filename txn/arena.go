// Package txn implements the nestable, versioned transactional memory
// described in spec.md §4.2: a memory arena owning a LIFO stack of
// transactions, with four cell kinds (Cell, Set, Map, Vector) layered over
// it that can be rolled back exactly.
//
// A handle's identity is its Go pointer; overlays are keyed by
// *Transaction throughout this package, so no separate opaque identifier
// is needed (see DESIGN.md).
package txn

// Arena owns an ordered stack of transactions. The bottom transaction (the
// base) is pushed at construction and is never popped.
type Arena struct {
	stack   []*Transaction
	touched map[*Transaction][]mergeable
}

// Transaction is a single level of the arena's stack. Cell/Set/Map/Vector
// overlays are keyed by the *Transaction pointer, never by index, since
// indices shift as the stack grows and shrinks. The unused byte gives each
// Transaction its own address (pointers to zero-size values may be equal).
type Transaction struct{ _ byte }

// NewArena constructs an arena with only its base transaction open.
func NewArena() *Arena {
	a := &Arena{touched: make(map[*Transaction][]mergeable)}
	a.stack = []*Transaction{{}}
	return a
}

// Top returns the currently active transaction, onto which every Cell/Set/
// Map/Vector write lands.
func (a *Arena) Top() *Transaction {
	return a.stack[len(a.stack)-1]
}

// Depth reports how many transactions are currently open, including the
// base (so a freshly constructed arena has depth 1).
func (a *Arena) Depth() int {
	return len(a.stack)
}

// Begin pushes a fresh transaction on top of the stack and returns it.
func (a *Arena) Begin() *Transaction {
	t := &Transaction{}
	a.stack = append(a.stack, t)
	return t
}

// mergeable is implemented by every handle kind (Cell, Set, Map, Vector)
// that can carry an overlay for a transaction. Transactions track which
// handles they touched so Commit/Rollback only have to visit those.
type mergeable interface {
	commitInto(t, parent *Transaction)
	discard(t *Transaction)
}

// track registers that handle h now carries an overlay under transaction
// t, so that a later Commit/Rollback of t knows to visit it.
func (a *Arena) track(t *Transaction, h mergeable) {
	a.touched[t] = append(a.touched[t], h)
}

// Commit merges t — which must be the current top of the stack — into its
// parent and pops it. Commit and Rollback are mutually exclusive for a
// given transaction: calling either on a transaction already resolved is a
// programming error (internal invariant, not a user error).
func (a *Arena) Commit(t *Transaction) {
	idx := a.mustIndexOf(t)
	if idx == 0 {
		panic("txn: cannot commit the base transaction")
	}
	parent := a.stack[idx-1]
	for _, h := range a.touched[t] {
		h.commitInto(t, parent)
	}
	delete(a.touched, t)
	a.stack = append(a.stack[:idx], a.stack[idx+1:]...)
}

// Rollback truncates the stack at t's index, discarding t and everything
// above it.
func (a *Arena) Rollback(t *Transaction) {
	idx := a.mustIndexOf(t)
	for i := idx; i < len(a.stack); i++ {
		for _, h := range a.touched[a.stack[i]] {
			h.discard(a.stack[i])
		}
		delete(a.touched, a.stack[i])
	}
	a.stack = a.stack[:idx]
}

func (a *Arena) mustIndexOf(t *Transaction) int {
	for i := len(a.stack) - 1; i >= 0; i-- {
		if a.stack[i] == t {
			return i
		}
	}
	panic("txn: transaction is not open on this arena")
}

// indexOf returns t's position in the stack (0 is the base); it panics if
// t is not open on this arena.
func (a *Arena) indexOf(t *Transaction) int {
	return a.mustIndexOf(t)
}

func (a *Arena) stackBelow(idx int) []*Transaction {
	return a.stack[:idx]
}
