package parser

import (
	"strconv"

	"github.com/proto-smt/solver/ast"
	"github.com/proto-smt/solver/smterr"
)

// Parser is a recursive-descent reader over a token stream, in the same
// hand-written style as the teacher's classical.Parser (match/check/
// advance/peek/previous), generalized to the SMT-LIB grammar of spec.md
// §6: every command and term is parenthesized prefix notation rather than
// the teacher's fixed infix connective grammar.
type Parser struct {
	file    string
	tokens  []Token
	current int
	errs    *smterr.Set
}

// ParseScript tokenizes and parses an entire SMT-LIB script, recording
// every parse error it encounters into errs and resynchronizing at the
// next top-level command so one malformed command doesn't suppress
// diagnostics for the rest of the file. Returns the commands that parsed
// successfully, in order.
func ParseScript(file, source string, errs *smterr.Set) []*ast.Command {
	lexer := NewLexer(source)
	toks := lexer.Lex()
	p := &Parser{file: file, tokens: toks, errs: errs}

	var cmds []*ast.Command
	for !p.isAtEnd() {
		if p.peek().Type == TokenError {
			t := p.peek()
			errs.Add(file, t.Line, t.Col, "invalid character %q", t.Value)
			return cmds
		}
		cmd, ok := p.parseCommand()
		if ok {
			cmds = append(cmds, cmd)
		} else {
			p.resync()
		}
	}
	return cmds
}

// resync skips tokens until it has consumed one balanced parenthesized
// form (or run out of input), so parsing can continue at the next
// top-level command after an error.
func (p *Parser) resync() {
	depth := 0
	for !p.isAtEnd() {
		t := p.advance()
		switch t.Type {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

func (p *Parser) errorf(format string, args ...any) {
	t := p.peek()
	p.errs.Add(p.file, t.Line, t.Col, format, args...)
}

// parseCommand parses one `(command-body)` form.
func (p *Parser) parseCommand() (*ast.Command, bool) {
	open := p.peek()
	if !p.match(TokenLeftParen) {
		p.errorf("expected '(' to start a command, found %q", p.peek().Value)
		return nil, false
	}

	kw, ok := p.expectIdent("a command keyword")
	if !ok {
		return nil, false
	}

	var cmd *ast.Command
	switch kw.Value {
	case "assert":
		term, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		cmd = &ast.Command{Kind: ast.Assert, Term: term}
	case "check-sat":
		cmd = &ast.Command{Kind: ast.CheckSat}
	case "declare-const":
		name, ok := p.expectIdent("a constant name")
		if !ok {
			return nil, false
		}
		sort, ok := p.expectIdent("a sort")
		if !ok {
			return nil, false
		}
		cmd = &ast.Command{Kind: ast.DeclareConst, Name: name.Value, Sort: sort.Value}
	case "declare-fun":
		name, ok := p.expectIdent("a function name")
		if !ok {
			return nil, false
		}
		if !p.match(TokenLeftParen) {
			p.errorf("expected '(' to open declare-fun's argument sort list")
			return nil, false
		}
		var argSorts []string
		for !p.check(TokenRightParen) {
			s, ok := p.expectIdent("a sort")
			if !ok {
				return nil, false
			}
			argSorts = append(argSorts, s.Value)
		}
		p.advance() // ')'
		sort, ok := p.expectIdent("a result sort")
		if !ok {
			return nil, false
		}
		cmd = &ast.Command{Kind: ast.DeclareFun, Name: name.Value, ArgSorts: argSorts, Sort: sort.Value}
	case "define-fun":
		name, ok := p.expectIdent("a function name")
		if !ok {
			return nil, false
		}
		if !p.match(TokenLeftParen) {
			p.errorf("expected '(' to open define-fun's formal parameter list")
			return nil, false
		}
		var formals []ast.FormalParam
		for !p.check(TokenRightParen) {
			if !p.match(TokenLeftParen) {
				p.errorf("expected '(' to open a formal parameter")
				return nil, false
			}
			fname, ok := p.expectIdent("a parameter name")
			if !ok {
				return nil, false
			}
			fsort, ok := p.expectIdent("a parameter sort")
			if !ok {
				return nil, false
			}
			if !p.match(TokenRightParen) {
				p.errorf("expected ')' to close a formal parameter")
				return nil, false
			}
			formals = append(formals, ast.FormalParam{Name: fname.Value, Sort: fsort.Value})
		}
		p.advance() // ')'
		sort, ok := p.expectIdent("a result sort")
		if !ok {
			return nil, false
		}
		body, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		cmd = &ast.Command{Kind: ast.DefineFun, Name: name.Value, Formals: formals, Sort: sort.Value, Body: body}
	case "get-model":
		cmd = &ast.Command{Kind: ast.GetModel}
	case "simplify":
		term, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		cmd = &ast.Command{Kind: ast.Simplify, Term: term}
	default:
		p.errorf("unknown command %q", kw.Value)
		return nil, false
	}

	if !p.match(TokenRightParen) {
		p.errorf("expected ')' to close %q, found %q", kw.Value, p.peek().Value)
		return nil, false
	}
	cmd.Line, cmd.Col = open.Line, open.Col
	return cmd, true
}

// parseTerm parses `term = IDENT | NUMBER | '(' expr ')'`.
func (p *Parser) parseTerm() (*ast.Term, bool) {
	t := p.peek()
	switch t.Type {
	case TokenIdent:
		p.advance()
		return &ast.Term{Kind: ast.Ident, Ident: t.Value, Line: t.Line, Col: t.Col}, true
	case TokenNumber:
		p.advance()
		n, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			p.errorf("malformed integer literal %q", t.Value)
			return nil, false
		}
		return &ast.Term{Kind: ast.Number, Number: n, Line: t.Line, Col: t.Col}, true
	case TokenLeftParen:
		return p.parseParenTerm()
	default:
		p.errorf("expected a term, found %q", t.Value)
		return nil, false
	}
}

// parseParenTerm parses `'(' expr ')'`, where
// expr = IDENT term { term } | 'let' '(' { '(' IDENT term ')' } ')' term.
func (p *Parser) parseParenTerm() (*ast.Term, bool) {
	open := p.peek()
	p.advance() // '('

	head, ok := p.expectIdent("an applied identifier or 'let'")
	if !ok {
		return nil, false
	}

	if head.Value == "let" {
		if !p.match(TokenLeftParen) {
			p.errorf("expected '(' to open let's binding list")
			return nil, false
		}
		var bindings []ast.Binding
		for !p.check(TokenRightParen) {
			if !p.match(TokenLeftParen) {
				p.errorf("expected '(' to open a let binding")
				return nil, false
			}
			name, ok := p.expectIdent("a bound name")
			if !ok {
				return nil, false
			}
			value, ok := p.parseTerm()
			if !ok {
				return nil, false
			}
			if !p.match(TokenRightParen) {
				p.errorf("expected ')' to close a let binding")
				return nil, false
			}
			bindings = append(bindings, ast.Binding{Name: name.Value, Term: value})
		}
		p.advance() // ')'
		body, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		if !p.match(TokenRightParen) {
			p.errorf("expected ')' to close let")
			return nil, false
		}
		return &ast.Term{Kind: ast.Let, Bindings: bindings, Body: body, Line: open.Line, Col: open.Col}, true
	}

	var args []*ast.Term
	for !p.check(TokenRightParen) {
		arg, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	p.advance() // ')'
	return &ast.Term{Kind: ast.App, Head: head.Value, Args: args, Line: open.Line, Col: open.Col}, true
}

func (p *Parser) expectIdent(what string) (Token, bool) {
	if !p.check(TokenIdent) {
		p.errorf("expected %s, found %q", what, p.peek().Value)
		return Token{}, false
	}
	return p.advance(), true
}

func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(t TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

func (p *Parser) advance() Token {
	t := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return t
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}
