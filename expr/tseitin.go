package expr

import (
	"fmt"

	"github.com/proto-smt/solver/intern"
)

// tseitinVarSymbol is a variable introduced by the CNF translator; it
// carries the expression it stands for purely for identity/diagnostics —
// two Tseitin variables for the same subexpression are never reused across
// check-sat calls (spec.md §9 Open Questions).
type tseitinVarSymbol struct {
	stands *Expr
	serial uint64
	ord    intern.Order
}

func (s *tseitinVarSymbol) Name() string     { return fmt.Sprintf("$t%d", s.serial) }
func (s *tseitinVarSymbol) ResultSort() Sort { return Bool }
func (s *tseitinVarSymbol) Valency(i int, present bool) (Sort, bool) {
	return nullaryValency(i, present)
}
func (s *tseitinVarSymbol) order() intern.Order      { return s.ord }
func (s *tseitinVarSymbol) reduce(args []*Expr) *Expr { return nil }

// StandsFor returns the subexpression a Tseitin variable was introduced
// for, or nil if e is not a Tseitin variable.
func (e *Expr) StandsFor() *Expr {
	if s, ok := e.Sym.(*tseitinVarSymbol); ok {
		return s.stands
	}
	return nil
}

// NewTseitinVar mints a fresh boolean variable standing for stands.
func NewTseitinVar(stands *Expr) *Expr {
	serial := intern.NextSerial()
	sym := &tseitinVarSymbol{
		stands: stands,
		serial: serial,
		ord:    intern.Order{Priority: 9, TypeName: "TseitinVar", Key: fmt.Sprint(serial), Serial: serial},
	}
	return allocNode(sym, nil)
}
