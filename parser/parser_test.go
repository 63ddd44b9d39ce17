package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto-smt/solver/ast"
	"github.com/proto-smt/solver/smterr"
)

func parseOne(t *testing.T, source string) *ast.Command {
	t.Helper()
	errs := smterr.NewSet()
	cmds := ParseScript("t.smt", source, errs)
	require.True(t, errs.Empty(), "unexpected parse errors: %v", errs.Messages())
	require.Len(t, cmds, 1)
	return cmds[0]
}

func TestParseDeclareConst(t *testing.T) {
	cmd := parseOne(t, "(declare-const x Bool)")
	require.Equal(t, ast.DeclareConst, cmd.Kind)
	require.Equal(t, "x", cmd.Name)
	require.Equal(t, "Bool", cmd.Sort)
}

func TestParseDeclareFun(t *testing.T) {
	cmd := parseOne(t, "(declare-fun f (Bool Int) Bool)")
	require.Equal(t, ast.DeclareFun, cmd.Kind)
	require.Equal(t, "f", cmd.Name)
	require.Equal(t, []string{"Bool", "Int"}, cmd.ArgSorts)
	require.Equal(t, "Bool", cmd.Sort)
}

func TestParseAssertApp(t *testing.T) {
	cmd := parseOne(t, "(assert (and A B))")
	require.Equal(t, ast.Assert, cmd.Kind)
	require.Equal(t, ast.App, cmd.Term.Kind)
	require.Equal(t, "and", cmd.Term.Head)
	require.Len(t, cmd.Term.Args, 2)
	require.Equal(t, "A", cmd.Term.Args[0].Ident)
	require.Equal(t, "B", cmd.Term.Args[1].Ident)
}

func TestParseAssertNumber(t *testing.T) {
	cmd := parseOne(t, "(assert (= x 42))")
	require.Equal(t, "=", cmd.Term.Head)
	require.Equal(t, ast.Number, cmd.Term.Args[1].Kind)
	require.Equal(t, int64(42), cmd.Term.Args[1].Number)
}

func TestParseLet(t *testing.T) {
	cmd := parseOne(t, "(assert (let ((x A) (y B)) (and x y)))")
	letTerm := cmd.Term
	require.Equal(t, ast.Let, letTerm.Kind)
	require.Len(t, letTerm.Bindings, 2)
	require.Equal(t, "x", letTerm.Bindings[0].Name)
	require.Equal(t, "A", letTerm.Bindings[0].Term.Ident)
	require.Equal(t, "y", letTerm.Bindings[1].Name)
	require.Equal(t, "and", letTerm.Body.Head)
}

func TestParseDefineFun(t *testing.T) {
	cmd := parseOne(t, "(define-fun F ((x Bool) (y Bool)) Bool (and x y))")
	require.Equal(t, ast.DefineFun, cmd.Kind)
	require.Equal(t, "F", cmd.Name)
	require.Len(t, cmd.Formals, 2)
	require.Equal(t, "x", cmd.Formals[0].Name)
	require.Equal(t, "Bool", cmd.Formals[0].Sort)
	require.Equal(t, "and", cmd.Body.Head)
}

func TestParseCheckSatAndGetModelAndSimplify(t *testing.T) {
	errs := smterr.NewSet()
	cmds := ParseScript("t.smt", "(check-sat) (get-model) (simplify A)", errs)
	require.True(t, errs.Empty())
	require.Len(t, cmds, 3)
	require.Equal(t, ast.CheckSat, cmds[0].Kind)
	require.Equal(t, ast.GetModel, cmds[1].Kind)
	require.Equal(t, ast.Simplify, cmds[2].Kind)
}

func TestParseCommentsAndWhitespaceAreIgnored(t *testing.T) {
	src := `
; a leading comment
(declare-const x Bool) ; trailing comment
(assert x) ; another
`
	errs := smterr.NewSet()
	cmds := ParseScript("t.smt", src, errs)
	require.True(t, errs.Empty())
	require.Len(t, cmds, 2)
}

func TestParseErrorRecoversAtNextCommand(t *testing.T) {
	src := "(declare-const) (assert A)"
	errs := smterr.NewSet()
	cmds := ParseScript("t.smt", src, errs)
	require.False(t, errs.Empty())
	require.Len(t, cmds, 1)
	require.Equal(t, ast.Assert, cmds[0].Kind)
}

func TestParseUnknownCommandIsReportedAndSkipped(t *testing.T) {
	src := "(frobnicate A) (check-sat)"
	errs := smterr.NewSet()
	cmds := ParseScript("t.smt", src, errs)
	require.False(t, errs.Empty())
	require.Len(t, cmds, 1)
	require.Equal(t, ast.CheckSat, cmds[0].Kind)
}

func TestParseErrorPositionIsReported(t *testing.T) {
	src := "(declare-const)"
	errs := smterr.NewSet()
	ParseScript("t.smt", src, errs)
	msgs := errs.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, 1, msgs[0].Line)
}

func TestLexIdentifierSymbolCharacters(t *testing.T) {
	toks := NewLexer("<= >= *foo? !bar").Lex()
	require.Equal(t, TokenIdent, toks[0].Type)
	require.Equal(t, "<=", toks[0].Value)
	require.Equal(t, TokenIdent, toks[1].Type)
	require.Equal(t, ">=", toks[1].Value)
	require.Equal(t, TokenIdent, toks[2].Type)
	require.Equal(t, "*foo?", toks[2].Value)
	require.Equal(t, TokenIdent, toks[3].Type)
	require.Equal(t, "!bar", toks[3].Value)
}

func TestLexNumberAndParens(t *testing.T) {
	toks := NewLexer("(f 12)").Lex()
	types := make([]TokenType, 0, len(toks))
	for _, tk := range toks {
		types = append(types, tk.Type)
	}
	require.Equal(t, []TokenType{
		TokenLeftParen, TokenIdent, TokenNumber, TokenRightParen, TokenEOF,
	}, types)
}
