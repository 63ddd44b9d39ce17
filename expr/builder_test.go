package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderChainMatchesDirectCalls(t *testing.T) {
	x := NewVariable("x", Bool)
	y := NewVariable("y", Bool)

	got := From(x).And(y.Negated()).Or(y).Build()
	want := Or(And(x, y.Negated()), y)

	require.Same(t, want, got)
}

func TestBuilderNot(t *testing.T) {
	x := NewVariable("x", Bool)
	got := From(x).Not().Build()
	require.Same(t, x.Negated(), got)
}
