package expr

import "github.com/proto-smt/solver/intern"

// variableSymbol is nullary and uninterpreted; two variables are distinct
// unless they are literally the same Go pointer (distinguished by
// identity, never by name — the interpreter's symbol table is what maps
// surface names to a particular VariableSymbol).
type variableSymbol struct {
	name   string
	sort   Sort
	ord    intern.Order
}

func (s *variableSymbol) Name() string                         { return s.name }
func (s *variableSymbol) ResultSort() Sort                      { return s.sort }
func (s *variableSymbol) Valency(i int, present bool) (Sort, bool) { return nullaryValency(i, present) }
func (s *variableSymbol) order() intern.Order                   { return s.ord }
func (s *variableSymbol) reduce(args []*Expr) *Expr              { return nil }

// NewVariable mints a fresh, uninterpreted variable of the given sort and
// returns the (necessarily new) expression built from it.
func NewVariable(name string, sort Sort) *Expr {
	sym := &variableSymbol{
		name: name,
		sort: sort,
		ord:  intern.Order{Priority: 6, TypeName: "Variable", Key: name, Serial: intern.NextSerial()},
	}
	return allocNode(sym, nil)
}

// IsVariable reports whether e's top symbol is a (user or formal)
// variable.
func (e *Expr) IsVariable() bool {
	_, ok := e.Sym.(*variableSymbol)
	return ok
}
