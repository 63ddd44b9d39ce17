package expr

import "github.com/proto-smt/solver/intern"

// Symbol is an operator label for an expression node. Every concrete
// symbol type is used behind a pointer, so Symbol values compare equal
// exactly when they are the same singleton instance (standard Go interface
// equality over a pointer-typed dynamic value), which is what lets
// Expr.Symbol participate directly in interning/total-order keys.
type Symbol interface {
	// Name is the symbol's surface name, used in printing and in error
	// messages.
	Name() string
	// ResultSort is the sort of an application of this symbol.
	ResultSort() Sort
	// Valency returns, for argument index i, the sort required there. If
	// present is false the caller is only asking "is an argument still
	// required at index i" (checkArgs uses this to reject argument lists
	// that are too short); the second return value is false when none is.
	Valency(i int, present bool) (Sort, bool)
	// order is this symbol's position in the total order on interned
	// objects (see intern.Order); every concrete symbol is itself a
	// singleton, so its order's serial is fixed at first construction.
	order() intern.Order
	// reduce attempts the symbol-specific algebraic simplification
	// described in spec.md §4.3. Returns nil if no reduction applies, in
	// which case the caller allocates a plain Node(self, args).
	reduce(args []*Expr) *Expr
}

// variadicValency is a convenience Valency implementation for symbols
// whose every argument has the same required sort and whose arity is
// unbounded (associative-commutative connectives, integer sum).
func variadicValency(argSort Sort) func(int, bool) (Sort, bool) {
	return func(i int, present bool) (Sort, bool) {
		if i < 0 || !present {
			return Unknown, false
		}
		return argSort, true
	}
}

// fixedValency is a convenience Valency implementation for a symbol with a
// fixed argument sort list (functions, binary operators).
func fixedValency(sorts ...Sort) func(int, bool) (Sort, bool) {
	return func(i int, present bool) (Sort, bool) {
		if i < 0 || i >= len(sorts) {
			return Unknown, false
		}
		return sorts[i], true
	}
}

// nullaryValency is the Valency of any constant or variable symbol: no
// argument is ever permitted.
func nullaryValency(int, bool) (Sort, bool) {
	return Unknown, false
}
