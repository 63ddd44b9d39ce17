// Package cnf implements the Tseitin transformation: rewriting an
// arbitrary boolean formula into a conjunction of the formula's top node
// (with non-top and/or subexpressions replaced by fresh variables) and
// the clauses defining those variables.
package cnf

import "github.com/proto-smt/solver/expr"

// Translate runs the Tseitin transformation on phi (spec.md §4.4). It
// returns an expression of the form and(phi', defs...), semantically
// equivalent to phi, in which every connective argument reachable below
// the top node is a literal.
func Translate(phi *expr.Expr) *expr.Expr {
	top, defs := translate(phi)
	return expr.And(append([]*expr.Expr{top}, defs...)...)
}

// translate performs the bottom-up rewrite and returns the transformed
// top node together with the accumulated definitional clauses, in
// introduction order (the caller's And(...) re-sorts them into canonical
// order, so this order only matters for reading/debugging).
func translate(phi *expr.Expr) (*expr.Expr, []*expr.Expr) {
	var defs []*expr.Expr
	memo := make(map[*expr.Expr]*expr.Expr)

	var walk func(e *expr.Expr, isTop bool) *expr.Expr
	walk = func(e *expr.Expr, isTop bool) *expr.Expr {
		if v, ok := memo[e]; ok {
			return v
		}

		children := make([]*expr.Expr, len(e.Args))
		changed := false
		for i, a := range e.Args {
			children[i] = walk(a, false)
			if children[i] != a {
				changed = true
			}
		}

		var rebuilt *expr.Expr
		switch {
		case !changed:
			rebuilt = e
		case e.IsWrapper():
			rebuilt = e
		default:
			rebuilt = expr.Apply(e.Sym, children...)
		}

		if isTop || !(rebuilt.IsAnd() || rebuilt.IsOr()) {
			memo[e] = rebuilt
			return rebuilt
		}

		w := expr.NewTseitinVar(rebuilt)
		defs = append(defs, definitionalClauses(rebuilt, w)...)
		memo[e] = w
		return w
	}

	top := walk(phi, true)
	return top, defs
}

// definitionalClauses builds the clauses that pin w to e's meaning, per
// spec.md §4.4: for and, "w → argᵢ" for each argument plus
// "and(args) → w"; for or, "argᵢ → w" for each argument plus
// "w → or(args)".
func definitionalClauses(e, w *expr.Expr) []*expr.Expr {
	args := e.Args
	clauses := make([]*expr.Expr, 0, len(args)+1)

	if e.IsAnd() {
		for _, a := range args {
			clauses = append(clauses, expr.Or(w.Negated(), a))
		}
		combinator := make([]*expr.Expr, 0, len(args)+1)
		for _, a := range args {
			combinator = append(combinator, a.Negated())
		}
		combinator = append(combinator, w)
		clauses = append(clauses, expr.Or(combinator...))
		return clauses
	}

	for _, a := range args {
		clauses = append(clauses, expr.Or(a.Negated(), w))
	}
	combinator := make([]*expr.Expr, 0, len(args)+1)
	combinator = append(combinator, w.Negated())
	combinator = append(combinator, args...)
	clauses = append(clauses, expr.Or(combinator...))
	return clauses
}
