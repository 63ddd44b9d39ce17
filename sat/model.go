package sat

import (
	"sort"

	"github.com/proto-smt/solver/cnf"
	"github.com/proto-smt/solver/expr"
)

// Model is the result of solving a boolean expression, per spec.md
// §4.5's "Model construction" paragraph.
type Model struct {
	engine *Engine
	Status Status
}

// NewModel CNF-translates the given expression, builds its clause
// database, and runs CDCL to completion.
func NewModel(formula *expr.Expr) *Model {
	// A formula that already collapsed to a boolean constant at
	// construction time (e.g. and(x, not x)) needs no CNF/CDCL machinery —
	// BoolConst isn't a genuine variable, so feeding it through the trail
	// as a unit-clause literal would be meaningless.
	if b, ok := expr.AsBoolConst(formula); ok {
		status := StatusUnsat
		if b {
			status = StatusSat
		}
		return &Model{engine: NewEngine(nil), Status: status}
	}

	top := cnf.Translate(formula)

	var clauseExprs []*expr.Expr
	if top.IsAnd() {
		clauseExprs = top.Args
	} else {
		clauseExprs = []*expr.Expr{top}
	}

	occ := make(map[Literal]int)
	clauseLits := make([][]Literal, len(clauseExprs))
	for i, ce := range clauseExprs {
		var lits []Literal
		if ce.IsOr() {
			lits = ce.Args
		} else {
			lits = []Literal{ce}
		}
		clauseLits[i] = lits
		for _, l := range lits {
			occ[l]++
		}
	}

	order := decisionOrder(occ)
	eng := NewEngine(order)
	for _, lits := range clauseLits {
		eng.RegisterClause(NewClause(lits...))
	}

	status := StatusUnsat
	if eng.SeedUnitClauses() {
		status = eng.Solve()
	}
	return &Model{engine: eng, Status: status}
}

// decisionOrder derives the static decision order from per-literal
// occurrence counts: one representative literal per variable (whichever
// polarity occurs more often), variables ordered by combined occurrence
// count descending (spec.md's "first-seen static variable-ordering
// heuristic").
func decisionOrder(occ map[Literal]int) []Literal {
	combined := make(map[Literal]int)
	preferred := make(map[Literal]Literal)
	for l, n := range occ {
		c := canonical(l)
		combined[c] += n
		if cur, ok := preferred[c]; !ok || n > occ[cur] {
			preferred[c] = l
		}
	}

	vars := make([]Literal, 0, len(combined))
	for c := range combined {
		vars = append(vars, c)
	}
	sort.SliceStable(vars, func(i, j int) bool {
		return combined[vars[i]] > combined[vars[j]]
	})

	order := make([]Literal, len(vars))
	for i, c := range vars {
		order[i] = preferred[c]
	}
	return order
}

// Stats reports the solve's decision/propagation/conflict counts.
func (m *Model) Stats() (decisions, propagations, conflicts int) {
	return m.engine.Stats()
}

// Eval returns the boolean constant assigned to v in the model, or nil
// if v never appeared in the solved formula or has no assignment.
func (m *Model) Eval(v *expr.Expr) *expr.Expr {
	if !v.IsVariable() {
		return nil
	}
	switch m.engine.value(v) {
	case trueVal:
		return expr.BoolConst(true)
	case falseVal:
		return expr.BoolConst(false)
	default:
		return nil
	}
}
