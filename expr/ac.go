package expr

import "github.com/samber/lo"

// reduceConnective implements spec.md §4.3's AC-flatten / absorb-neutral /
// dominate / deduplicate / complementary-pair / absorption+consensus
// pipeline for and/or.
func reduceConnective(sym *connectiveSymbol, args []*Expr) *Expr {
	flat := flattenAC(sym, args)

	kept := make([]*Expr, 0, len(flat))
	for _, a := range flat {
		if b, ok := AsBoolConst(a); ok {
			if b == sym.neutral {
				continue // absorb neutral
			}
			return BoolConst(!sym.neutral) // dominator
		}
		kept = append(kept, a)
	}

	kept = dedupeExprs(kept)
	if hasComplementaryPair(kept) {
		return BoolConst(!sym.neutral)
	}

	cur := kept
	for {
		reducedPair := false
		for i := 0; i < len(cur) && !reducedPair; i++ {
			for j := 0; j < len(cur) && !reducedPair; j++ {
				if i == j {
					continue
				}
				if r, ok := binaryReduceConnective(sym, cur[i], cur[j]); ok {
					cur = replacePair(cur, i, j, r)
					reducedPair = true
				}
			}
		}
		if !reducedPair {
			break
		}
		cur = dedupeExprs(cur)
		if hasComplementaryPair(cur) {
			return BoolConst(!sym.neutral)
		}
	}

	sorted := sortExprs(cur)
	switch len(sorted) {
	case 0:
		return BoolConst(sym.neutral)
	case 1:
		return sorted[0]
	}
	if sameExprs(sorted, args) {
		return nil
	}
	return Apply(sym, sorted...)
}

// binaryReduceConnective implements absorption and consensus cancellation
// for a pair (a, b) under connective self, per spec.md §4.3's "Consensus
// cancellation" paragraph. Returns the single expression that replaces
// both a and b, and true, or (nil, false) if no rule applies.
func binaryReduceConnective(self *connectiveSymbol, a, b *Expr) (*Expr, bool) {
	opp := self.opposite()
	if b.Sym != opp {
		return nil, false
	}

	aSet := atomSet(a, opp)
	bArgs := b.Args

	negA := a.Negated()
	if containsExpr(bArgs, negA) {
		rest := removeExpr(bArgs, negA)
		newB := Apply(opp, rest...)
		return Apply(self, a, newB), true
	}

	if isSubsetExprs(aSet, bArgs) {
		return a, true
	}

	common := intersectExprs(aSet, bArgs)
	if len(common) == 0 {
		return nil, false
	}
	aRest := diffExprs(aSet, common)
	bRest := diffExprs(bArgs, common)
	oppARest := Apply(opp, aRest...)
	oppBRest := Apply(opp, bRest...)
	if oppARest == oppBRest.Negated() {
		return Apply(opp, common...), true
	}
	return nil, false
}

// atomSet returns the "arguments" of a as seen by the opposite connective:
// a.Args if a is itself an opp-node, else the singleton {a}.
func atomSet(a *Expr, opp *connectiveSymbol) []*Expr {
	if a.Sym == opp {
		return a.Args
	}
	return []*Expr{a}
}

func flattenAC(sym Symbol, args []*Expr) []*Expr {
	out := make([]*Expr, 0, len(args))
	for _, a := range args {
		if a.Sym == sym {
			out = append(out, a.Args...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

// dedupeExprs drops duplicate pointers, keeping interning's pointer
// identity as the equality test lo.Uniq needs.
func dedupeExprs(es []*Expr) []*Expr {
	return lo.Uniq(es)
}

func hasComplementaryPair(es []*Expr) bool {
	for _, a := range es {
		if containsExpr(es, a.Negated()) {
			return true
		}
	}
	return false
}

func containsExpr(es []*Expr, target *Expr) bool {
	return lo.Contains(es, target)
}

func removeExpr(es []*Expr, target *Expr) []*Expr {
	return lo.Without(es, target)
}

func isSubsetExprs(sub, super []*Expr) bool {
	for _, e := range sub {
		if !containsExpr(super, e) {
			return false
		}
	}
	return true
}

func intersectExprs(a, b []*Expr) []*Expr {
	return lo.Intersect(a, b)
}

func diffExprs(a, b []*Expr) []*Expr {
	return lo.Without(a, b...)
}

func replacePair(es []*Expr, i, j int, replacement *Expr) []*Expr {
	out := make([]*Expr, 0, len(es)-1)
	for k, e := range es {
		if k == i || k == j {
			continue
		}
		out = append(out, e)
	}
	out = append(out, replacement)
	return out
}

func sameExprs(a, b []*Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
