package interp

import (
	"fmt"

	"github.com/proto-smt/solver/ast"
	"github.com/proto-smt/solver/expr"
)

// evalTerm walks term, pushing its computed value onto the interpreter's
// expression-value stack (spec.md §4.6) rather than returning it
// directly — an App node evaluates its children first (each pushes its
// own result), then pops exactly that many values back off to assemble
// its argument list, mirroring a stack-machine AST visitor.
func (i *Interp) evalTerm(term *ast.Term) error {
	switch term.Kind {
	case ast.Ident:
		entry, ok := i.symbols.Lookup(term.Ident)
		if !ok {
			return fmt.Errorf("undeclared identifier %q", term.Ident)
		}
		v, err := i.applyEntry(entry, nil)
		if err != nil {
			return fmt.Errorf("%q: %w", term.Ident, err)
		}
		i.push(v)
		return nil

	case ast.Number:
		i.push(expr.IntConst(term.Number))
		return nil

	case ast.App:
		entry, ok := i.symbols.Lookup(term.Head)
		if !ok {
			return fmt.Errorf("undeclared identifier %q", term.Head)
		}
		for _, a := range term.Args {
			if err := i.evalTerm(a); err != nil {
				return err
			}
		}
		args := i.popN(len(term.Args))
		v, err := i.applyEntry(entry, args)
		if err != nil {
			return fmt.Errorf("%q: %w", term.Head, err)
		}
		i.push(v)
		return nil

	case ast.Let:
		return i.evalLet(term)

	default:
		return fmt.Errorf("internal: unknown term kind")
	}
}

// Eval runs evalTerm and returns its single resulting value, checking
// that exactly one value landed on the stack.
func (i *Interp) Eval(term *ast.Term) (*expr.Expr, error) {
	depth := len(i.stack)
	if err := i.evalTerm(term); err != nil {
		i.stack = i.stack[:depth]
		return nil, err
	}
	return i.pop(), nil
}

func (i *Interp) push(v *expr.Expr) {
	i.stack = append(i.stack, v)
}

func (i *Interp) pop() *expr.Expr {
	n := len(i.stack)
	v := i.stack[n-1]
	i.stack = i.stack[:n-1]
	return v
}

// popN pops the top n values off the stack, returning them in the order
// they were pushed (left to right).
func (i *Interp) popN(n int) []*expr.Expr {
	if n == 0 {
		return nil
	}
	start := len(i.stack) - n
	out := append([]*expr.Expr(nil), i.stack[start:]...)
	i.stack = i.stack[:start]
	return out
}

// applyEntry dispatches a resolved symbol-table entry against args.
func (i *Interp) applyEntry(entry Entry, args []*expr.Expr) (*expr.Expr, error) {
	switch entry.Kind {
	case entryVariable:
		if len(args) != 0 {
			return nil, fmt.Errorf("is a constant, takes no arguments")
		}
		return entry.Variable, nil

	case entrySymbol:
		v := expr.Apply(entry.Symbol, args...)
		if v.IsWrapper() {
			return nil, fmt.Errorf("wrong arity or sort for %q", entry.Symbol.Name())
		}
		return v, nil

	case entryBuiltin:
		return entry.Builtin(args)

	default:
		return nil, fmt.Errorf("internal: unknown symbol table entry kind")
	}
}

// evalLet implements spec.md §4.6's let: open a transaction, declare each
// bound name as a fresh variable, evaluate body against those fresh
// variables, substitute the real values back in, then roll the
// transaction back before pushing the substituted result.
func (i *Interp) evalLet(term *ast.Term) error {
	tx := i.arena.Begin()

	values := make([]*expr.Expr, len(term.Bindings))
	freshVars := make([]*expr.Expr, len(term.Bindings))
	for idx, b := range term.Bindings {
		if err := i.evalTerm(b.Term); err != nil {
			i.arena.Rollback(tx)
			return err
		}
		values[idx] = i.pop()
		fresh := expr.NewVariable(b.Name, values[idx].Sort())
		freshVars[idx] = fresh
		i.symbols.Bind(b.Name, Entry{Kind: entryVariable, Variable: fresh})
	}

	if err := i.evalTerm(term.Body); err != nil {
		i.arena.Rollback(tx)
		return err
	}
	bodyVal := i.pop()

	table := make(map[*expr.Expr]*expr.Expr, len(freshVars))
	for idx, fv := range freshVars {
		table[fv] = values[idx]
	}
	result := expr.Substitute(bodyVal, table)

	i.arena.Rollback(tx)
	i.push(result)
	return nil
}
