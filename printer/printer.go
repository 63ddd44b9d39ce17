// Package printer renders a CNF-translated expression as the indented
// prefix S-expression spec.md §6 requires for `simplify`, factoring any
// subexpression reachable from more than one parent into a numbered
// "where" entry instead of printing it twice. Hash-consing means such
// sharing is a plain pointer equality check — the expression kernel
// already interns (symbol, args) to one node, so no separate
// subexpression-hashing pass is needed here, unlike the teacher's
// ASTNode, which had no sharing to detect.
package printer

import (
	"fmt"
	"strings"

	"github.com/proto-smt/solver/expr"
)

// Print renders e, which the caller has already run through cnf.Translate.
func Print(e *expr.Expr) string {
	labels, order := shareLabels(e)

	var sb strings.Builder
	sb.WriteString(printTerm(e, labels, 0, true))

	if len(order) > 0 {
		sb.WriteString("\nwhere\n")
		for _, node := range order {
			sb.WriteString(fmt.Sprintf("  [%d] = %s\n", labels[node], printTerm(node, labels, 1, true)))
		}
	}
	return sb.String()
}

// printTerm renders e. expandSelf suppresses the label lookup for e
// itself — used for the root call and for a where-entry's own defining
// occurrence, both of which must print their real structure rather than
// immediately referencing their own label.
func printTerm(e *expr.Expr, labels map[*expr.Expr]int, depth int, expandSelf bool) string {
	if !expandSelf {
		if n, ok := labels[e]; ok {
			return fmt.Sprintf("[%d]", n)
		}
	}
	if len(e.Args) == 0 {
		return e.Sym.Name()
	}
	indent := strings.Repeat("  ", depth+1)
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = indent + printTerm(a, labels, depth+1, false)
	}
	return "(" + e.Sym.Name() + "\n" + strings.Join(parts, "\n") + ")"
}

// shareLabels finds every non-leaf node reachable from root by more than
// one parent edge and assigns it a stable label number in first-visited
// (pre-order) sequence.
func shareLabels(root *expr.Expr) (map[*expr.Expr]int, []*expr.Expr) {
	refcount := make(map[*expr.Expr]int)
	visited := make(map[*expr.Expr]bool)
	var firstSeen []*expr.Expr

	var walk func(e *expr.Expr)
	walk = func(e *expr.Expr) {
		refcount[e]++
		if visited[e] {
			return
		}
		visited[e] = true
		firstSeen = append(firstSeen, e)
		for _, a := range e.Args {
			walk(a)
		}
	}
	walk(root)

	labels := make(map[*expr.Expr]int)
	var order []*expr.Expr
	next := 1
	for _, e := range firstSeen {
		if e == root || len(e.Args) == 0 || refcount[e] <= 1 {
			continue
		}
		labels[e] = next
		next++
		order = append(order, e)
	}
	return labels, order
}
