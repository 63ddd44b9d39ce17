package interp

import (
	"fmt"

	"github.com/proto-smt/solver/expr"
)

// builtins returns the pre-populated standard symbols of spec.md §4.6:
// true, false, not, and, or, =>, +, plus the polymorphic = and -.
func builtins() map[string]builtinFunc {
	return map[string]builtinFunc{
		"true":  nullary(expr.BoolConst(true)),
		"false": nullary(expr.BoolConst(false)),
		"not":   unaryNegation,
		"and":   variadicBool(expr.And),
		"or":    variadicBool(expr.Or),
		"=>":    implies,
		"+":     variadicInt(expr.Sum),
		"=":     equality,
		"-":     minus,
	}
}

func nullary(v *expr.Expr) builtinFunc {
	return func(args []*expr.Expr) (*expr.Expr, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%q takes no arguments", v.Symbol().Name())
		}
		return v, nil
	}
}

func unaryNegation(args []*expr.Expr) (*expr.Expr, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("not takes exactly one argument")
	}
	if args[0].Sort() != expr.Bool {
		return nil, fmt.Errorf("not requires a Bool argument, got %s", args[0].Sort())
	}
	return args[0].Negated(), nil
}

func variadicBool(ctor func(...*expr.Expr) *expr.Expr) builtinFunc {
	return func(args []*expr.Expr) (*expr.Expr, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("requires at least one argument")
		}
		for i, a := range args {
			if a.Sort() != expr.Bool {
				return nil, fmt.Errorf("argument %d has sort %s, want Bool", i+1, a.Sort())
			}
		}
		return ctor(args...), nil
	}
}

func variadicInt(ctor func(...*expr.Expr) *expr.Expr) builtinFunc {
	return func(args []*expr.Expr) (*expr.Expr, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("requires at least one argument")
		}
		for i, a := range args {
			if a.Sort() != expr.Int {
				return nil, fmt.Errorf("argument %d has sort %s, want Int", i+1, a.Sort())
			}
		}
		return ctor(args...), nil
	}
}

func implies(args []*expr.Expr) (*expr.Expr, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("=> takes exactly two arguments")
	}
	if args[0].Sort() != expr.Bool || args[1].Sort() != expr.Bool {
		return nil, fmt.Errorf("=> requires Bool arguments")
	}
	return expr.Implies(args[0], args[1]), nil
}

// equality is polymorphic over Bool and Int, dispatched by the sort of
// its first argument at call time (spec.md §4.6); every argument must
// share that sort.
func equality(args []*expr.Expr) (*expr.Expr, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("= requires at least one argument")
	}
	want := args[0].Sort()
	for i, a := range args {
		if a.Sort() != want {
			return nil, fmt.Errorf("argument %d to = has sort %s, want %s", i+1, a.Sort(), want)
		}
	}
	return expr.Eq(args...), nil
}

// minus is polymorphic by arity, matching SMT-LIB's own overload of "-":
// one Int argument is unary negation, two are binary subtraction.
func minus(args []*expr.Expr) (*expr.Expr, error) {
	switch len(args) {
	case 1:
		if args[0].Sort() != expr.Int {
			return nil, fmt.Errorf("unary - requires an Int argument, got %s", args[0].Sort())
		}
		return args[0].Negated(), nil
	case 2:
		if args[0].Sort() != expr.Int || args[1].Sort() != expr.Int {
			return nil, fmt.Errorf("- requires Int arguments")
		}
		return expr.Diff(args[0], args[1]), nil
	default:
		return nil, fmt.Errorf("- takes one or two arguments")
	}
}
