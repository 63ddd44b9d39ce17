package expr

import "github.com/proto-smt/solver/intern"

// equalitySymbol is the variadic boolean/integer equality connective.
// Integer equality is uninterpreted here — this kernel recognizes it only
// as a relation, never runs a linear-arithmetic decision procedure over
// it (spec.md §1 Non-goals).
type equalitySymbol struct {
	argSort Sort
	ord     intern.Order
}

var (
	boolEqSymbol = &equalitySymbol{argSort: Bool, ord: intern.Order{Priority: 4, TypeName: "Equality", Key: "Bool", Serial: intern.NextSerial()}}
	intEqSymbol  = &equalitySymbol{argSort: Int, ord: intern.Order{Priority: 4, TypeName: "Equality", Key: "Int", Serial: intern.NextSerial()}}
)

// Eq applies variadic equality over same-sorted arguments (all Bool or
// all Int).
func Eq(args ...*Expr) *Expr {
	if len(args) == 0 {
		return BoolConst(true)
	}
	if args[0].Sort() == Int {
		return Apply(intEqSymbol, args...)
	}
	return Apply(boolEqSymbol, args...)
}

func (s *equalitySymbol) Name() string { return "=" }
func (s *equalitySymbol) ResultSort() Sort { return Bool }
func (s *equalitySymbol) Valency(i int, present bool) (Sort, bool) {
	return variadicValency(s.argSort)(i, present)
}
func (s *equalitySymbol) order() intern.Order { return s.ord }

func (s *equalitySymbol) reduce(args []*Expr) *Expr {
	if s.argSort == Int {
		return reduceIntEq(args)
	}
	return reduceBoolEq(args)
}

func reduceBoolEq(args []*Expr) *Expr {
	xs := dedupeExprs(args)
	switch len(xs) {
	case 1:
		return BoolConst(true)
	case 2:
		a, b := xs[0], xs[1]
		return And(Or(a, b.Negated()), Or(a.Negated(), b))
	default:
		sorted := sortExprs(xs)
		chain := make([]*Expr, 0, len(sorted)-1)
		for i := 0; i+1 < len(sorted); i++ {
			chain = append(chain, Apply(boolEqSymbol, sorted[i], sorted[i+1]))
		}
		return And(chain...)
	}
}

func reduceIntEq(args []*Expr) *Expr {
	xs := dedupeExprs(args)
	if len(xs) == 1 {
		return BoolConst(true)
	}

	common := sumAddends(xs[0])
	for _, x := range xs[1:] {
		common = intersectExprs(common, sumAddends(x))
		if len(common) == 0 {
			break
		}
	}

	if len(common) > 0 {
		reduced := make([]*Expr, len(xs))
		for i, x := range xs {
			rest := diffExprs(sumAddends(x), common)
			reduced[i] = Apply(sumSymbolSingleton, rest...)
		}
		reduced = dedupeExprs(reduced)
		if len(reduced) == 1 {
			return BoolConst(true)
		}
		sorted := sortExprs(reduced)
		if sameExprs(sorted, xs) {
			return nil
		}
		return Apply(intEqSymbol, sorted...)
	}

	sorted := sortExprs(xs)
	if sameExprs(sorted, args) {
		return nil
	}
	return Apply(intEqSymbol, sorted...)
}

// sumAddends returns x's summands if x is an IntSum node, or {x} otherwise
// — the same "atom set" idea used by the AC connective reduction.
func sumAddends(x *Expr) []*Expr {
	if x.Sym == sumSymbolSingleton {
		return x.Args
	}
	return []*Expr{x}
}

// IsEquality reports whether e's top symbol is boolean or integer equality.
func (e *Expr) IsEquality() bool {
	_, ok := e.Sym.(*equalitySymbol)
	return ok
}
