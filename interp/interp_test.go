package interp

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/proto-smt/solver/parser"
	"github.com/proto-smt/solver/sat"
	"github.com/proto-smt/solver/smterr"
)

func run(t *testing.T, source string) (string, *smterr.Set) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	i := New(&out, log)
	errs := smterr.NewSet()
	cmds := parser.ParseScript("t.smt", source, errs)
	i.Execute("t.smt", cmds, errs)
	return out.String(), errs
}

func TestCheckSatUnsatDirectContradiction(t *testing.T) {
	out, errs := run(t, `
(declare-const x Bool)
(assert x)
(assert (not x))
(check-sat)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "UNSAT\n", out)
}

func TestCheckSatSatisfiable(t *testing.T) {
	out, errs := run(t, `
(declare-const x Bool)
(assert x)
(check-sat)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "SAT\n", out)
}

func TestGetModelReportsBooleanAssignment(t *testing.T) {
	out, errs := run(t, `
(declare-const x Bool)
(assert x)
(check-sat)
(get-model)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "SAT\nx: true\n", out)
}

func TestGetModelBeforeCheckSatIsAnError(t *testing.T) {
	_, errs := run(t, "(declare-const x Bool)\n(get-model)")
	require.False(t, errs.Empty())
}

func TestDeclareConstCollisionIsAnError(t *testing.T) {
	_, errs := run(t, "(declare-const x Bool)\n(declare-const x Bool)")
	require.False(t, errs.Empty())
}

func TestDeclareConstCollidesWithBuiltin(t *testing.T) {
	_, errs := run(t, "(declare-const and Bool)")
	require.False(t, errs.Empty())
}

func TestAssertNonBooleanIsAnError(t *testing.T) {
	_, errs := run(t, `
(declare-const n Int)
(assert n)
`)
	require.False(t, errs.Empty())
}

func TestAssertUndeclaredIdentifierIsAnError(t *testing.T) {
	_, errs := run(t, "(assert q)")
	require.False(t, errs.Empty())
}

func TestDefineFunSubstitutesFormals(t *testing.T) {
	out, errs := run(t, `
(declare-const A Bool)
(declare-const B Bool)
(define-fun F ((x Bool) (y Bool)) Bool (and x y))
(assert (F A B))
(assert (not (and A B)))
(check-sat)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "UNSAT\n", out)
}

func TestDeclareFunArityMismatchIsAnError(t *testing.T) {
	_, errs := run(t, `
(declare-fun f (Bool Bool) Bool)
(declare-const A Bool)
(assert (f A))
`)
	require.False(t, errs.Empty())
}

func TestLetBindsAndSubstitutes(t *testing.T) {
	out, errs := run(t, `
(declare-const A Bool)
(declare-const B Bool)
(assert (let ((x A) (y B)) (and x y)))
(assert (not (and A B)))
(check-sat)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "UNSAT\n", out)
}

func TestSimplifyPrintsCNF(t *testing.T) {
	out, errs := run(t, `
(declare-const A Bool)
(simplify A)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "A\n", out)
}

func TestIntEqualityIsUninterpretedNotArithmetic(t *testing.T) {
	// spec.md §9: the engine does not detect direct contradictions among
	// integer-equality atoms, since integer arithmetic is treated
	// syntactically — x=y and y=z do not force x=z to be asserted true.
	out, errs := run(t, `
(declare-const x Int)
(declare-const y Int)
(declare-const z Int)
(assert (= x y))
(assert (= y z))
(assert (not (= x z)))
(check-sat)
`)
	require.True(t, errs.Empty())
	require.Equal(t, "SAT\n", out)
}

func TestErrorInOneAssertDoesNotAbortTheScript(t *testing.T) {
	out, errs := run(t, `
(declare-const x Bool)
(assert q)
(assert x)
(check-sat)
`)
	require.False(t, errs.Empty())
	require.Equal(t, "SAT\n", out)
}

func TestCheckSatBuildsFreshModelEachTime(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	i := New(&out, log)
	errs := smterr.NewSet()

	cmds := parser.ParseScript("t.smt", "(declare-const x Bool)\n(assert x)\n(check-sat)", errs)
	i.Execute("t.smt", cmds, errs)
	require.True(t, errs.Empty())
	require.Equal(t, sat.StatusSat, i.model.Status)
}
