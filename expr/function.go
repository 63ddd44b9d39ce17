package expr

import "github.com/proto-smt/solver/intern"

// functionSymbol is a fixed-arity uninterpreted operator.
type functionSymbol struct {
	name       string
	argSorts   []Sort
	resultSort Sort
	ord        intern.Order
}

func (s *functionSymbol) Name() string     { return s.name }
func (s *functionSymbol) ResultSort() Sort { return s.resultSort }
func (s *functionSymbol) Valency(i int, present bool) (Sort, bool) {
	return fixedValency(s.argSorts...)(i, present)
}
func (s *functionSymbol) order() intern.Order      { return s.ord }
func (s *functionSymbol) reduce(args []*Expr) *Expr { return nil }

// NewFunctionSymbol declares a fresh uninterpreted function of the given
// signature. Each call mints a distinct symbol; the interpreter's symbol
// table owns name uniqueness.
func NewFunctionSymbol(name string, argSorts []Sort, resultSort Sort) Symbol {
	return &functionSymbol{
		name:       name,
		argSorts:   append([]Sort(nil), argSorts...),
		resultSort: resultSort,
		ord:        intern.Order{Priority: 7, TypeName: "Function", Key: name, Serial: intern.NextSerial()},
	}
}

// CallFunction applies a declared uninterpreted function symbol.
func CallFunction(sym Symbol, args ...*Expr) *Expr {
	return Apply(sym, args...)
}
