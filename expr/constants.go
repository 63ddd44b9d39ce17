package expr

import (
	"fmt"
	"strconv"

	"github.com/proto-smt/solver/intern"
)

type boolConstSymbol struct {
	value bool
	ord   intern.Order
}

func (s *boolConstSymbol) Name() string {
	if s.value {
		return "true"
	}
	return "false"
}
func (s *boolConstSymbol) ResultSort() Sort                         { return Bool }
func (s *boolConstSymbol) Valency(i int, present bool) (Sort, bool) { return nullaryValency(i, present) }
func (s *boolConstSymbol) order() intern.Order                      { return s.ord }
func (s *boolConstSymbol) reduce(args []*Expr) *Expr                { return nil }

type intConstSymbol struct {
	value int64
	ord   intern.Order
}

func (s *intConstSymbol) Name() string                               { return strconv.FormatInt(s.value, 10) }
func (s *intConstSymbol) ResultSort() Sort                           { return Int }
func (s *intConstSymbol) Valency(i int, present bool) (Sort, bool)   { return nullaryValency(i, present) }
func (s *intConstSymbol) order() intern.Order                        { return s.ord }
func (s *intConstSymbol) reduce(args []*Expr) *Expr                  { return nil }

var boolConstTable = intern.NewTable[bool, Expr]()
var intConstTable = intern.NewTable[int64, Expr]()

// BoolConst returns the interned boolean literal expression for b.
func BoolConst(b bool) *Expr {
	return boolConstTable.Intern(b, func() *Expr {
		sym := &boolConstSymbol{value: b, ord: intern.Order{Priority: 1, TypeName: "BoolConst", Key: fmt.Sprint(b), Serial: intern.NextSerial()}}
		return allocNode(sym, nil)
	})
}

// IntConst returns the interned integer literal expression for n.
func IntConst(n int64) *Expr {
	return intConstTable.Intern(n, func() *Expr {
		sym := &intConstSymbol{value: n, ord: intern.Order{Priority: 1, TypeName: "IntConst", Key: fmt.Sprint(n), Serial: intern.NextSerial()}}
		e := allocNode(sym, nil)
		return e
	})
}

// AsBoolConst reports whether e is a boolean constant and its value.
func AsBoolConst(e *Expr) (bool, bool) {
	if s, ok := e.Sym.(*boolConstSymbol); ok {
		return s.value, true
	}
	return false, false
}

// AsIntConst reports whether e is an integer constant and its value.
func AsIntConst(e *Expr) (int64, bool) {
	if s, ok := e.Sym.(*intConstSymbol); ok {
		return s.value, true
	}
	return 0, false
}

func init() {
	// Pre-materialize the pair so BoolConst(true).Negated() is BoolConst(false)
	// without waiting for first access, matching spec.md's "every expression
	// has a pre-materialized negated" for the two constants most often built
	// before anything else exists to trigger it lazily.
	t, f := BoolConst(true), BoolConst(false)
	t.negated, f.negated = f, t
}
