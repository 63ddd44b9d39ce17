package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto-smt/solver/expr"
)

func TestPrintLeafIsJustItsName(t *testing.T) {
	a := expr.NewVariable("A", expr.Bool)
	require.Equal(t, "A", Print(a))
}

func TestPrintSimpleAndIsIndented(t *testing.T) {
	a := expr.NewVariable("A", expr.Bool)
	b := expr.NewVariable("B", expr.Bool)
	out := Print(expr.And(a, b))
	require.Equal(t, "(and\n  A\n  B)", out)
}

func TestPrintSharedSubexpressionGetsWhereLabel(t *testing.T) {
	a := expr.NewVariable("A", expr.Bool)
	b := expr.NewVariable("B", expr.Bool)

	shared := expr.Or(a, b)
	f := expr.NewFunctionSymbol("f", []expr.Sort{expr.Bool}, expr.Bool)
	g := expr.NewFunctionSymbol("g", []expr.Sort{expr.Bool}, expr.Bool)
	// and(f(shared), g(shared)) — `shared` reachable through two distinct
	// uninterpreted parents, so AC-flattening never merges it away.
	top := expr.And(expr.CallFunction(f, shared), expr.CallFunction(g, shared))

	out := Print(top)
	require.Contains(t, out, "where")
	require.Contains(t, out, "[1] =")
	require.True(t, strings.Count(out, "[1]") >= 2, "shared subexpression should be referenced by label more than once: %s", out)
}
