package expr

import "github.com/proto-smt/solver/intern"

// impliesSymbol is binary boolean implication; it always reduces to
// or(¬a, b) and so is never itself materialized as a node.
type impliesSymbol struct{ ord intern.Order }

var impliesSingleton = &impliesSymbol{ord: intern.Order{Priority: 3, TypeName: "Implies", Key: "=>", Serial: intern.NextSerial()}}

// Implies applies boolean implication, which reduces immediately to
// or(¬a, b).
func Implies(a, b *Expr) *Expr { return Apply(impliesSingleton, a, b) }

func (s *impliesSymbol) Name() string     { return "=>" }
func (s *impliesSymbol) ResultSort() Sort { return Bool }
func (s *impliesSymbol) Valency(i int, present bool) (Sort, bool) {
	return fixedValency(Bool, Bool)(i, present)
}
func (s *impliesSymbol) order() intern.Order { return s.ord }

func (s *impliesSymbol) reduce(args []*Expr) *Expr {
	return Or(args[0].Negated(), args[1])
}
