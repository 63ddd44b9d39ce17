package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/proto-smt/solver/intern"
)

// Expr is a DAG node: a symbol applied to a (possibly empty) argument
// list. Expressions are interned: two expressions with an equal symbol
// and a structurally equal argument sequence are the same *Expr.
type Expr struct {
	Sym         Symbol
	Args        []*Expr
	sort        Sort
	hasWrappers bool
	negated     *Expr
	ord         intern.Order
}

// Symbol-facing accessor (kept as a method in addition to the exported
// field so call sites read naturally either way).
func (e *Expr) Symbol() Symbol { return e.Sym }

// Sort returns the expression's result sort.
func (e *Expr) Sort() Sort { return e.sort }

// HasWrappers reports whether e or any subterm is a Wrapper (tainted).
func (e *Expr) HasWrappers() bool { return e.hasWrappers }

// Negated returns the interned negation of e, computing and memoizing it
// (both directions) on first access. Only Bool and Int sorted expressions
// can be negated.
func (e *Expr) Negated() *Expr {
	if e.negated != nil {
		return e.negated
	}
	sym := negatorFor(e.sort)
	if sym == nil {
		panic(fmt.Sprintf("expr: sort %s has no negation", e.sort))
	}
	r := Apply(sym, e)
	e.negated = r
	if r.negated == nil {
		r.negated = e
	}
	return r
}

// Order returns e's position in the module-wide total order on interned
// objects.
func (e *Expr) Order() intern.Order { return e.ord }

// String renders e as a prefix S-expression.
func (e *Expr) String() string {
	if len(e.Args) == 0 {
		return e.Sym.Name()
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "(" + e.Sym.Name() + " " + strings.Join(parts, " ") + ")"
}

var nodeTable = intern.NewTable[string, Expr]()

// Apply is the single construction entry point for every interpreted (and
// wrapper) symbol, implementing the contract of spec.md §4.3:
//  1. sort check — failing that, build a Wrapper node instead;
//  2. consult the memoized cache for (sym, args);
//  3. otherwise run the symbol's algebraic reduction, falling back to a
//     plain interned Node(sym, args).
func Apply(sym Symbol, args ...*Expr) *Expr {
	if !checkArgs(sym, args) {
		return applyWrapper(sym, args)
	}

	key := nodeKey(sym, args)
	return nodeTable.Intern(key, func() *Expr {
		if reduced := sym.reduce(args); reduced != nil {
			return reduced
		}
		return allocNode(sym, args)
	})
}

// allocNode builds a brand-new node without consulting reduce again; used
// both by Apply's fallback path and by reduce implementations that have
// already normalized their argument list and want a leaf allocation.
func allocNode(sym Symbol, args []*Expr) *Expr {
	tainted := false
	for _, a := range args {
		if a.hasWrappers {
			tainted = true
			break
		}
	}
	_, isWrapper := sym.(*wrapperSymbol)
	if isWrapper {
		tainted = true
	}
	return &Expr{
		Sym:         sym,
		Args:        append([]*Expr(nil), args...),
		sort:        sym.ResultSort(),
		hasWrappers: tainted,
		// Every Expr shares the same priority and type name, so the content
		// key never discriminates between them; leave it empty and let the
		// monotonic serial — construction order — be the sole tiebreak.
		ord: intern.Order{Priority: exprPriority, TypeName: "Expr", Serial: intern.NextSerial()},
	}
}

const exprPriority = 10

func checkArgs(sym Symbol, args []*Expr) bool {
	for i, a := range args {
		want, ok := sym.Valency(i, true)
		if !ok || a.Sort() != want {
			return false
		}
	}
	_, moreRequired := sym.Valency(len(args), false)
	return !moreRequired
}

func nodeKey(sym Symbol, args []*Expr) string {
	return key(sym, args)
}

func key(sym Symbol, args []*Expr) string {
	// Serials, unlike addresses, are never reused after an object is
	// collected, so a cached reduction cannot be returned for new arguments.
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", sym.order().Serial)
	for _, a := range args {
		fmt.Fprintf(&sb, "|%d", a.ord.Serial)
	}
	return sb.String()
}

// byOrder sorts expressions by the module's total order — used to
// normalize associative-commutative argument lists.
type byOrder []*Expr

func (b byOrder) Len() int      { return len(b) }
func (b byOrder) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byOrder) Less(i, j int) bool {
	return intern.Less(b[i].ord, b[j].ord)
}

func sortExprs(es []*Expr) []*Expr {
	out := append([]*Expr(nil), es...)
	sort.Stable(byOrder(out))
	return out
}
