package expr

import "github.com/proto-smt/solver/intern"

// sumSymbol is integer sum: associative-commutative, variadic.
type sumSymbol struct{ ord intern.Order }

var sumSymbolSingleton = &sumSymbol{ord: intern.Order{Priority: 5, TypeName: "Sum", Key: "+", Serial: intern.NextSerial()}}

// Sum applies variadic integer addition, reducing eagerly.
func Sum(args ...*Expr) *Expr { return Apply(sumSymbolSingleton, args...) }

func (s *sumSymbol) Name() string                         { return "+" }
func (s *sumSymbol) ResultSort() Sort                      { return Int }
func (s *sumSymbol) Valency(i int, present bool) (Sort, bool) { return variadicValency(Int)(i, present) }
func (s *sumSymbol) order() intern.Order                  { return s.ord }

func (s *sumSymbol) reduce(args []*Expr) *Expr {
	flat := flattenAC(s, args)

	var total int64
	sawConst := false
	kept := make([]*Expr, 0, len(flat))
	for _, a := range flat {
		if n, ok := AsIntConst(a); ok {
			total += n
			sawConst = true
			continue
		}
		kept = append(kept, a)
	}

	// Cancel a + (-a) pairs.
	cur := kept
	for {
		cancelled := false
		for i := 0; i < len(cur) && !cancelled; i++ {
			for j := 0; j < len(cur) && !cancelled; j++ {
				if i == j {
					continue
				}
				if cur[j] == cur[i].Negated() {
					cur = dropIndices(cur, i, j)
					cancelled = true
				}
			}
		}
		if !cancelled {
			break
		}
	}

	if sawConst && total != 0 {
		cur = append(cur, IntConst(total))
	} else if sawConst && total == 0 && len(cur) == 0 {
		return IntConst(0)
	}

	sorted := sortExprs(cur)
	switch len(sorted) {
	case 0:
		return IntConst(0)
	case 1:
		return sorted[0]
	}
	if sameExprs(sorted, args) {
		return nil
	}
	return Apply(s, sorted...)
}

func dropIndices(es []*Expr, i, j int) []*Expr {
	out := make([]*Expr, 0, len(es)-2)
	for k, e := range es {
		if k == i || k == j {
			continue
		}
		out = append(out, e)
	}
	return out
}

// diffSymbol is binary integer subtraction; always reduces to sum(a,-b).
type diffSymbol struct{ ord intern.Order }

var diffSingleton = &diffSymbol{ord: intern.Order{Priority: 5, TypeName: "Diff", Key: "-2", Serial: intern.NextSerial()}}

// Diff applies binary integer subtraction, which reduces immediately to
// sum(a, -b).
func Diff(a, b *Expr) *Expr { return Apply(diffSingleton, a, b) }

func (s *diffSymbol) Name() string                         { return "-" }
func (s *diffSymbol) ResultSort() Sort                      { return Int }
func (s *diffSymbol) Valency(i int, present bool) (Sort, bool) { return fixedValency(Int, Int)(i, present) }
func (s *diffSymbol) order() intern.Order                   { return s.ord }

func (s *diffSymbol) reduce(args []*Expr) *Expr {
	return Sum(args[0], args[1].Negated())
}

// IsSum reports whether e's top symbol is integer sum.
func (e *Expr) IsSum() bool { return e.Sym == sumSymbolSingleton }
