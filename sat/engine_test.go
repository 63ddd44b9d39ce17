package sat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto-smt/solver/expr"
)

func TestUnsatContradictingUnitClauses(t *testing.T) {
	x := expr.NewVariable("x", expr.Bool)
	eng := NewEngine([]Literal{x})
	eng.RegisterClause(NewClause(x))
	eng.RegisterClause(NewClause(x.Negated()))
	require.False(t, eng.SeedUnitClauses())
}

func TestModelUnsatOnConstantFalseFormula(t *testing.T) {
	x := expr.NewVariable("x", expr.Bool)
	formula := expr.And(x, x.Negated()) // kernel reduces this to BoolConst(false) directly
	m := NewModel(formula)
	require.Equal(t, StatusUnsat, m.Status)
}

func TestModelSatAssignmentSatisfiesEveryClause(t *testing.T) {
	a := expr.NewVariable("a", expr.Bool)
	b := expr.NewVariable("b", expr.Bool)
	c := expr.NewVariable("c", expr.Bool)

	formula := expr.And(
		expr.Or(a, b),
		expr.Or(a.Negated(), c),
		expr.Or(b.Negated(), c.Negated()),
	)
	m := NewModel(formula)
	require.Equal(t, StatusSat, m.Status)

	av, ok := expr.AsBoolConst(m.Eval(a))
	require.True(t, ok)
	bv, ok := expr.AsBoolConst(m.Eval(b))
	require.True(t, ok)
	cv, ok := expr.AsBoolConst(m.Eval(c))
	require.True(t, ok)

	require.True(t, av || bv)
	require.True(t, !av || cv)
	require.True(t, !bv || !cv)
}

func TestModelUnsatOnThreeMutuallyExclusiveUnits(t *testing.T) {
	x := expr.NewVariable("x", expr.Bool)
	y := expr.NewVariable("y", expr.Bool)

	// x, y, and (¬x ∨ ¬y) together with forcing both true is unsatisfiable
	// only once we also force them both positive via unit clauses.
	formula := expr.And(x, y, expr.Or(x.Negated(), y.Negated()))
	m := NewModel(formula)
	require.Equal(t, StatusUnsat, m.Status)
}

// conflictAnalyzer.analyze is exercised directly (rather than through a full
// Solve run) against a small, hand-verified two-decision-level scenario
// that carries the same first-UIP shape as spec.md's worked example:
// a decision, an implication from it, a second decision, an implication
// that depends on both, and a conflict clause spanning both levels.
func TestAnalyzeConflictFindsFirstUIP(t *testing.T) {
	a := expr.NewVariable("a", expr.Bool)
	d := expr.NewVariable("d", expr.Bool)
	b := expr.NewVariable("b", expr.Bool)
	eVar := expr.NewVariable("e", expr.Bool)

	eng := NewEngine([]Literal{a, d, b, eVar})

	c1 := NewClause(a.Negated(), d)                  // ¬a ∨ d
	c2 := NewClause(b.Negated(), d.Negated(), eVar)   // ¬b ∨ ¬d ∨ e
	conflict := NewClause(eVar.Negated(), a.Negated()) // ¬e ∨ ¬a

	eng.makeDecision(a.Negated()) // stored=¬a, decision asserts a=true
	eng.makeImplication(d, c1)    // d forced true (¬a false, d unassigned -> true)
	eng.makeDecision(b.Negated()) // decision asserts b=true, new level
	eng.makeImplication(eVar, c2) // e forced true

	require.True(t, conflict.isConflict(eng))

	learned := eng.analyzer.analyze(conflict)
	require.Len(t, learned, 2)
	require.Same(t, eVar.Negated(), learned[0])
	require.Equal(t, b, eng.pos(learned[0]).link)
	require.Same(t, a.Negated(), learned[1])
}
