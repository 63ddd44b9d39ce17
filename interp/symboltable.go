package interp

import (
	"github.com/proto-smt/solver/expr"
	"github.com/proto-smt/solver/txn"
)

// entryKind distinguishes what a name in the symbol table resolves to.
type entryKind int

const (
	entryVariable entryKind = iota // a declared constant or bound variable
	entrySymbol                    // an uninterpreted function or a macro
	entryBuiltin                   // a pre-populated standard symbol
)

// builtinFunc implements a standard symbol's application. Builtins are
// not expr.Symbol values — and/or/+ are AC-variadic, => and not reduce
// immediately, and =/- are polymorphic — so each is backed by the
// relevant exported expr constructor rather than a single generic
// Apply call.
type builtinFunc func(args []*expr.Expr) (*expr.Expr, error)

// Entry is what SymbolTable's Map[name→symbol] maps a name to.
type Entry struct {
	Kind     entryKind
	Variable *expr.Expr   // entryVariable
	Symbol   expr.Symbol  // entrySymbol
	Builtin  builtinFunc  // entryBuiltin
}

// SymbolTable is a transactional Map[name→symbol] paired with a
// non-transactional Map[symbol→name], per spec.md §4.6. The reverse map
// only ever records persistent (declare-const/declare-fun/define-fun)
// names — transient let/define-fun-formal bindings go through bind,
// which never touches it, since those names are gone again (the
// transactional map's overlay is discarded on rollback) before anything
// would need to look them up in reverse.
type SymbolTable struct {
	arena   *txn.Arena
	byName  *txn.Map[string, Entry]
	byValue map[any]string
	order   []string // declaration order, for get-model's output order
}

// NewSymbolTable builds a symbol table pre-populated with spec.md §4.6's
// built-in standard symbols.
func NewSymbolTable(a *txn.Arena) *SymbolTable {
	st := &SymbolTable{
		arena:   a,
		byName:  txn.NewMap[string, Entry](a),
		byValue: make(map[any]string),
	}
	for name, fn := range builtins() {
		st.byName.Set(name, Entry{Kind: entryBuiltin, Builtin: fn})
	}
	return st
}

// Lookup resolves name, searching builtins and every currently-visible
// declaration (including open let/define-fun scopes).
func (st *SymbolTable) Lookup(name string) (Entry, bool) {
	return st.byName.Get(name)
}

// Declared reports whether name is already bound to anything, builtin or
// user-declared — the collision check declare-const/declare-fun/
// define-fun must perform first.
func (st *SymbolTable) Declared(name string) bool {
	_, ok := st.byName.Get(name)
	return ok
}

// Declare persistently binds name (declare-const, declare-fun,
// define-fun), recording it in the reverse map and declaration order.
func (st *SymbolTable) Declare(name string, e Entry) {
	st.byName.Set(name, e)
	st.order = append(st.order, name)
	switch e.Kind {
	case entryVariable:
		st.byValue[e.Variable] = name
	case entrySymbol:
		st.byValue[e.Symbol] = name
	}
}

// Bind transiently binds name within the arena's current transaction
// (let, define-fun's formal-evaluation scope); it is undone by the
// transaction's rollback and never touches the reverse map.
func (st *SymbolTable) Bind(name string, e Entry) {
	st.byName.Set(name, e)
}

// VarEntry pairs a declared name with its variable binding.
type VarEntry struct {
	Name  string
	Entry Entry
}

// Variables returns every persistently declared variable, in declaration
// order — used by get-model.
func (st *SymbolTable) Variables() []VarEntry {
	var out []VarEntry
	for _, name := range st.order {
		e, ok := st.byName.Get(name)
		if !ok || e.Kind != entryVariable {
			continue
		}
		out = append(out, VarEntry{name, e})
	}
	return out
}
