package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestACMultisetIdentityAnd(t *testing.T) {
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	c := NewVariable("c", Bool)

	xs := And(a, b, c)
	ys := And(c, a, b)
	require.Same(t, xs, ys)
}

func TestACMultisetIdentityOr(t *testing.T) {
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	c := NewVariable("c", Bool)

	xs := Or(a, b, c)
	ys := Or(b, c, a)
	require.Same(t, xs, ys)
}

func TestDoubleNegationIsIdentity(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, a, a.Negated().Negated())

	n := NewVariable("n", Int)
	require.Same(t, n, n.Negated().Negated())
}

func TestIntConstNegation(t *testing.T) {
	require.Same(t, IntConst(-5), IntConst(5).Negated())
	require.Same(t, IntConst(5), IntConst(-5).Negated())
}

func TestBoolConstNegation(t *testing.T) {
	require.Same(t, BoolConst(false), BoolConst(true).Negated())
	require.Same(t, BoolConst(true), BoolConst(false).Negated())
}

func TestAndComplementaryPairIsFalse(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, BoolConst(false), And(a, a.Negated()))
}

func TestOrComplementaryPairIsTrue(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, BoolConst(true), Or(a, a.Negated()))
}

func TestAndDedupesRepeatedArg(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, a, And(a, a))
}

func TestOrDedupesRepeatedArg(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, a, Or(a, a))
}

func TestAndAbsorbsNeutral(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, a, And(a, BoolConst(true)))
}

func TestAndDominator(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, BoolConst(false), And(a, BoolConst(false)))
}

func TestOrAbsorbsNeutral(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, a, Or(a, BoolConst(false)))
}

func TestOrDominator(t *testing.T) {
	a := NewVariable("a", Bool)
	require.Same(t, BoolConst(true), Or(a, BoolConst(true)))
}

func TestAndAbsorption(t *testing.T) {
	// and(a, or(a,b)) is a
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	require.Same(t, a, And(a, Or(a, b)))
}

func TestOrAbsorption(t *testing.T) {
	// or(a, and(a,b)) is a
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	require.Same(t, a, Or(a, And(a, b)))
}

func TestOrConsensusCancellation(t *testing.T) {
	// or(and(a,b), and(¬a,b)) is b
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	require.Same(t, b, Or(And(a, b), And(a.Negated(), b)))
}

func TestAndConsensusCancellation(t *testing.T) {
	// and(or(a,b), or(¬a,b)) is b
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	require.Same(t, b, And(Or(a, b), Or(a.Negated(), b)))
}

func TestBooleanEqIsBiconditionalOfImplications(t *testing.T) {
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	require.Same(t, And(Implies(a, b), Implies(b, a)), Eq(a, b))
}

func TestSubstituteHomomorphism(t *testing.T) {
	a := NewVariable("a", Bool)
	b := NewVariable("b", Bool)
	c := NewVariable("c", Bool)

	body := And(a, Or(a, b))
	substituted := Substitute(body, map[*Expr]*Expr{a: c})
	require.Same(t, And(c, Or(c, b)), substituted)
}

func TestSumOf1To20NegatedIsMinus210(t *testing.T) {
	args := make([]*Expr, 0, 20)
	for i := int64(1); i <= 20; i++ {
		args = append(args, IntConst(i))
	}
	total := Sum(args...)
	require.Same(t, IntConst(-210), total.Negated())
}

func TestDiffReducesToSumOfNegation(t *testing.T) {
	x := NewVariable("x", Int)
	y := NewVariable("y", Int)
	require.Same(t, Sum(x, y.Negated()), Diff(x, y))
}

func TestIntEqCancelsCommonAddends(t *testing.T) {
	x := NewVariable("x", Int)
	y := NewVariable("y", Int)
	z := NewVariable("z", Int)

	lhs := Eq(Sum(x, z), Sum(y, z))
	rhs := Eq(x, y)
	require.Same(t, rhs, lhs)
}

func TestWrapperCarriesSortMismatch(t *testing.T) {
	a := NewVariable("a", Bool)
	n := NewVariable("n", Int)
	// And requires Bool arguments; feeding an Int yields a Wrapper node
	// rather than panicking.
	w := And(a, n)
	require.True(t, w.HasWrappers())
}
