package sat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto-smt/solver/expr"
)

func TestBenchmarkRunsEachCaseAndRecordsStatus(t *testing.T) {
	x := expr.NewVariable("x", expr.Bool)
	y := expr.NewVariable("y", expr.Bool)

	b := NewBenchmark()
	b.Add("satisfiable", expr.Or(x, y))
	b.Add("unsatisfiable", expr.And(x, x.Negated()))
	b.Run()

	require.Len(t, b.Results, 2)
	require.Equal(t, "satisfiable", b.Results[0].Name)
	require.Equal(t, StatusSat, b.Results[0].Status)
	require.Equal(t, "unsatisfiable", b.Results[1].Name)
	require.Equal(t, StatusUnsat, b.Results[1].Status)
}
