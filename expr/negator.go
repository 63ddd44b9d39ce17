package expr

import "github.com/proto-smt/solver/intern"

// negatorSymbol is unary: Negator(Bool) is logical negation, Negator(Int)
// is arithmetic negation.
type negatorSymbol struct {
	argSort Sort
	ord     intern.Order
}

var (
	negatorBool = &negatorSymbol{argSort: Bool, ord: intern.Order{Priority: 2, TypeName: "Negator", Key: "Bool", Serial: intern.NextSerial()}}
	negatorInt  = &negatorSymbol{argSort: Int, ord: intern.Order{Priority: 2, TypeName: "Negator", Key: "Int", Serial: intern.NextSerial()}}
)

func negatorFor(sort Sort) Symbol {
	switch sort {
	case Bool:
		return negatorBool
	case Int:
		return negatorInt
	default:
		return nil
	}
}

func (s *negatorSymbol) Name() string {
	if s.argSort == Bool {
		return "not"
	}
	return "-"
}
func (s *negatorSymbol) ResultSort() Sort { return s.argSort }
func (s *negatorSymbol) Valency(i int, present bool) (Sort, bool) {
	if i == 0 {
		return fixedValency(s.argSort)(i, present)
	}
	return Unknown, false
}
func (s *negatorSymbol) order() intern.Order { return s.ord }

func (s *negatorSymbol) reduce(args []*Expr) *Expr {
	a := args[0]

	if s.argSort == Bool {
		if b, ok := AsBoolConst(a); ok {
			return BoolConst(!b)
		}
		if a.Sym == negatorBool {
			// ¬¬a → a
			return a.Args[0]
		}
		if conn, ok := a.Sym.(*connectiveSymbol); ok {
			negArgs := make([]*Expr, len(a.Args))
			for i, x := range a.Args {
				negArgs[i] = x.Negated()
			}
			return Apply(conn.opposite(), negArgs...)
		}
		return nil
	}

	// Int
	if n, ok := AsIntConst(a); ok {
		return IntConst(-n)
	}
	if a.Sym == negatorInt {
		// −(−a) → a
		return a.Args[0]
	}
	if a.Sym == sumSymbolSingleton {
		negArgs := make([]*Expr, len(a.Args))
		for i, x := range a.Args {
			negArgs[i] = x.Negated()
		}
		return Apply(sumSymbolSingleton, negArgs...)
	}
	return nil
}
