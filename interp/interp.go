// Package interp is the interpreter façade of spec.md §4.6: it owns an
// arena, a symbol table, the set of current assertions, and the most
// recent Model, and dispatches each parsed SMT-LIB command against them.
package interp

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/proto-smt/solver/ast"
	"github.com/proto-smt/solver/cnf"
	"github.com/proto-smt/solver/expr"
	"github.com/proto-smt/solver/intern"
	"github.com/proto-smt/solver/printer"
	"github.com/proto-smt/solver/sat"
	"github.com/proto-smt/solver/smterr"
	"github.com/proto-smt/solver/txn"
)

// Interp is one interpreter session. Persisted state, per spec.md §6, is
// none across process invocations — but within a single run it is shared
// across every file the CLI executes, matching "later files see
// declarations from earlier ones".
type Interp struct {
	arena      *txn.Arena
	symbols    *SymbolTable
	assertions *txn.Set[*expr.Expr]
	stack      []*expr.Expr
	model      *sat.Model
	out        io.Writer
	log        *logrus.Logger
}

// New builds an interpreter that writes command output to out and logs
// solve statistics to log.
func New(out io.Writer, log *logrus.Logger) *Interp {
	a := txn.NewArena()
	return &Interp{
		arena:      a,
		symbols:    NewSymbolTable(a),
		assertions: txn.NewSet[*expr.Expr](a),
		out:        out,
		log:        log,
	}
}

// Execute dispatches every command from one file in order, accumulating
// diagnostics into errs rather than stopping at the first one (spec.md
// §6: errors are printed per-file, not per-command).
func (i *Interp) Execute(file string, cmds []*ast.Command, errs *smterr.Set) {
	for _, cmd := range cmds {
		if err := i.dispatch(cmd); err != nil {
			errs.Add(file, cmd.Line, cmd.Col, "%s", err)
		}
	}
}

func (i *Interp) dispatch(cmd *ast.Command) error {
	switch cmd.Kind {
	case ast.Assert:
		return i.cmdAssert(cmd)
	case ast.CheckSat:
		return i.cmdCheckSat(cmd)
	case ast.DeclareConst:
		return i.cmdDeclareConst(cmd)
	case ast.DeclareFun:
		return i.cmdDeclareFun(cmd)
	case ast.DefineFun:
		return i.cmdDefineFun(cmd)
	case ast.GetModel:
		return i.cmdGetModel(cmd)
	case ast.Simplify:
		return i.cmdSimplify(cmd)
	default:
		return fmt.Errorf("unhandled command")
	}
}

func (i *Interp) cmdAssert(cmd *ast.Command) error {
	if err := i.evalTerm(cmd.Term); err != nil {
		return err
	}
	v := i.pop()
	if v.HasWrappers() {
		return fmt.Errorf("assert: ill-sorted formula")
	}
	if v.Sort() != expr.Bool {
		return fmt.Errorf("assert requires a Bool formula, got %s", v.Sort())
	}
	i.assertions.Add(v)
	return nil
}

func (i *Interp) cmdCheckSat(cmd *ast.Command) error {
	solveID := uuid.New().String()
	conjunction := expr.And(i.sortedAssertions()...)
	i.model = sat.NewModel(conjunction)
	decisions, propagations, conflicts := i.model.Stats()
	i.log.WithFields(logrus.Fields{
		"solve_id":     solveID,
		"decisions":    decisions,
		"propagations": propagations,
		"conflicts":    conflicts,
	}).Debug("check-sat completed")

	switch i.model.Status {
	case sat.StatusSat:
		fmt.Fprintln(i.out, "SAT")
	case sat.StatusUnsat:
		fmt.Fprintln(i.out, "UNSAT")
	}
	return nil
}

func (i *Interp) cmdDeclareConst(cmd *ast.Command) error {
	if i.symbols.Declared(cmd.Name) {
		return fmt.Errorf("%q is already declared", cmd.Name)
	}
	sort, err := resolveSort(cmd.Sort)
	if err != nil {
		return err
	}
	v := expr.NewVariable(cmd.Name, sort)
	i.symbols.Declare(cmd.Name, Entry{Kind: entryVariable, Variable: v})
	return nil
}

func (i *Interp) cmdDeclareFun(cmd *ast.Command) error {
	if i.symbols.Declared(cmd.Name) {
		return fmt.Errorf("%q is already declared", cmd.Name)
	}
	resultSort, err := resolveSort(cmd.Sort)
	if err != nil {
		return err
	}
	if len(cmd.ArgSorts) == 0 {
		v := expr.NewVariable(cmd.Name, resultSort)
		i.symbols.Declare(cmd.Name, Entry{Kind: entryVariable, Variable: v})
		return nil
	}
	argSorts := make([]expr.Sort, len(cmd.ArgSorts))
	for idx, s := range cmd.ArgSorts {
		sort, err := resolveSort(s)
		if err != nil {
			return err
		}
		argSorts[idx] = sort
	}
	sym := expr.NewFunctionSymbol(cmd.Name, argSorts, resultSort)
	i.symbols.Declare(cmd.Name, Entry{Kind: entrySymbol, Symbol: sym})
	return nil
}

func (i *Interp) cmdDefineFun(cmd *ast.Command) error {
	if i.symbols.Declared(cmd.Name) {
		return fmt.Errorf("%q is already declared", cmd.Name)
	}
	resultSort, err := resolveSort(cmd.Sort)
	if err != nil {
		return err
	}

	tx := i.arena.Begin()
	formals := make([]*expr.Expr, len(cmd.Formals))
	for idx, f := range cmd.Formals {
		fsort, err := resolveSort(f.Sort)
		if err != nil {
			i.arena.Rollback(tx)
			return err
		}
		v := expr.NewVariable(f.Name, fsort)
		formals[idx] = v
		i.symbols.Bind(f.Name, Entry{Kind: entryVariable, Variable: v})
	}
	if err := i.evalTerm(cmd.Body); err != nil {
		i.arena.Rollback(tx)
		return err
	}
	body := i.pop()
	i.arena.Rollback(tx)

	if body.Sort() != resultSort {
		return fmt.Errorf("define-fun %q body has sort %s, declared %s", cmd.Name, body.Sort(), resultSort)
	}
	sym := expr.NewMacroSymbol(cmd.Name, formals, body)
	i.symbols.Declare(cmd.Name, Entry{Kind: entrySymbol, Symbol: sym})
	return nil
}

func (i *Interp) cmdGetModel(cmd *ast.Command) error {
	if i.model == nil {
		return fmt.Errorf("get-model: no check-sat has been run yet")
	}
	for _, v := range i.symbols.Variables() {
		if v.Entry.Variable.Sort() != expr.Bool {
			continue
		}
		val := i.model.Eval(v.Entry.Variable)
		if val == nil {
			continue
		}
		b, _ := expr.AsBoolConst(val)
		fmt.Fprintf(i.out, "%s: %t\n", v.Name, b)
	}
	return nil
}

func (i *Interp) cmdSimplify(cmd *ast.Command) error {
	if err := i.evalTerm(cmd.Term); err != nil {
		return err
	}
	v := i.pop()
	if v.HasWrappers() {
		return fmt.Errorf("simplify: ill-sorted formula")
	}
	translated := cnf.Translate(v)
	fmt.Fprintln(i.out, printer.Print(translated))
	return nil
}

// sortedAssertions returns the current assertion set in the module's
// total construction order, so check-sat's conjunction (and therefore its
// decision order and any learned clauses) is deterministic run to run.
func (i *Interp) sortedAssertions() []*expr.Expr {
	items := i.assertions.Items()
	sort.Slice(items, func(a, b int) bool {
		return intern.Less(items[a].Order(), items[b].Order())
	})
	return items
}

func resolveSort(name string) (expr.Sort, error) {
	switch name {
	case "Bool":
		return expr.Bool, nil
	case "Int":
		return expr.Int, nil
	default:
		return expr.Unknown, fmt.Errorf("unknown sort %q", name)
	}
}
