package expr

import "github.com/proto-smt/solver/intern"

// macroSymbol is a function whose body is an expression over formal
// argument variables; it substitutes eagerly whenever applied.
type macroSymbol struct {
	name       string
	formals    []*Expr // variable expressions
	body       *Expr
	resultSort Sort
	ord        intern.Order
}

func (s *macroSymbol) Name() string     { return s.name }
func (s *macroSymbol) ResultSort() Sort { return s.resultSort }
func (s *macroSymbol) Valency(i int, present bool) (Sort, bool) {
	sorts := make([]Sort, len(s.formals))
	for i, f := range s.formals {
		sorts[i] = f.Sort()
	}
	return fixedValency(sorts...)(i, present)
}
func (s *macroSymbol) order() intern.Order { return s.ord }

func (s *macroSymbol) reduce(args []*Expr) *Expr {
	if s.body.Sort() != s.resultSort {
		return nil
	}
	table := make(map[*Expr]*Expr, len(s.formals))
	for i, f := range s.formals {
		table[f] = args[i]
	}
	return Substitute(s.body, table)
}

// NewMacroSymbol declares a macro: applying it always substitutes formals
// for actuals into body.
func NewMacroSymbol(name string, formals []*Expr, body *Expr) Symbol {
	return &macroSymbol{
		name:       name,
		formals:    append([]*Expr(nil), formals...),
		body:       body,
		resultSort: body.Sort(),
		ord:        intern.Order{Priority: 8, TypeName: "Macro", Key: name, Serial: intern.NextSerial()},
	}
}
