// Package sat implements the CDCL SAT engine: two-watched-literal
// propagation, a suspicious-clause iterator, and first-UIP conflict
// analysis over interned boolean expressions.
package sat

import (
	"github.com/proto-smt/solver/expr"
	"github.com/proto-smt/solver/intern"
)

// Literal is a boolean-sorted expression used as a propositional literal.
// Its dual is lit.Negated() — no separate polarity bit is needed, since
// the expression kernel already pre-materializes negation (spec.md §9's
// "model a literal as a value containing just an expression and a
// polarity bit; lit.negated is a trivial constructor flip").
type Literal = *expr.Expr

// sentinel is a solver-private boolean variable used as the trail's
// index-0 placeholder and as the root of the decision-level link chain.
// A source comment worried about colliding with BoolConst(false); using a
// fresh uninterpreted variable sidesteps that entirely.
var sentinel = expr.NewVariable("$sentinel", expr.Bool)

// canonical returns whichever of lit, lit.Negated() sorts first in the
// module's total order — the stable key under which the pair's shared
// position record is stored.
func canonical(lit Literal) Literal {
	neg := lit.Negated()
	if intern.Less(lit.Order(), neg.Order()) {
		return lit
	}
	return neg
}
