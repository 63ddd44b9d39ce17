package expr

import "github.com/proto-smt/solver/intern"

// connectiveSymbol is and/or: associative-commutative, variadic. neutral
// is the identity value (true for and, false for or); its complement is
// the dominator.
type connectiveSymbol struct {
	neutral bool
	ord     intern.Order
}

var (
	andSymbol = &connectiveSymbol{neutral: true, ord: intern.Order{Priority: 3, TypeName: "Connective", Key: "and", Serial: intern.NextSerial()}}
	orSymbol  = &connectiveSymbol{neutral: false, ord: intern.Order{Priority: 3, TypeName: "Connective", Key: "or", Serial: intern.NextSerial()}}
)

// And applies the variadic and-connective, reducing eagerly.
func And(args ...*Expr) *Expr { return Apply(andSymbol, args...) }

// Or applies the variadic or-connective, reducing eagerly.
func Or(args ...*Expr) *Expr { return Apply(orSymbol, args...) }

func (s *connectiveSymbol) Name() string {
	if s.neutral {
		return "and"
	}
	return "or"
}
func (s *connectiveSymbol) ResultSort() Sort                         { return Bool }
func (s *connectiveSymbol) Valency(i int, present bool) (Sort, bool) { return variadicValency(Bool)(i, present) }
func (s *connectiveSymbol) order() intern.Order                      { return s.ord }

func (s *connectiveSymbol) opposite() *connectiveSymbol {
	if s == andSymbol {
		return orSymbol
	}
	return andSymbol
}

func (s *connectiveSymbol) reduce(args []*Expr) *Expr {
	return reduceConnective(s, args)
}

// IsAnd/IsOr report whether e's top symbol is the and/or connective.
func (e *Expr) IsAnd() bool { return e.Sym == andSymbol }
func (e *Expr) IsOr() bool  { return e.Sym == orSymbol }
