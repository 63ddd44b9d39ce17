package expr

// BottomUp performs an iterative post-order DFS, visiting each node
// exactly once.
func BottomUp(root *Expr, visit func(*Expr)) {
	visited := make(map[*Expr]bool)
	var walk func(*Expr)
	walk = func(e *Expr) {
		if visited[e] {
			return
		}
		visited[e] = true
		for _, a := range e.Args {
			walk(a)
		}
		visit(e)
	}
	walk(root)
}

// BottomUpEval folds bottom-up: f receives a node and its children's
// already-computed values.
func BottomUpEval[T any](root *Expr, f func(e *Expr, childValues []T) T) T {
	memo := make(map[*Expr]T)
	var walk func(*Expr) T
	walk = func(e *Expr) T {
		if v, ok := memo[e]; ok {
			return v
		}
		children := make([]T, len(e.Args))
		for i, a := range e.Args {
			children[i] = walk(a)
		}
		v := f(e, children)
		memo[e] = v
		return v
	}
	return walk(root)
}

// BottomUpTransform rebuilds e via f, which receives the node and its
// already-transformed children; f is responsible for re-applying the
// node's symbol (or returning a replacement outright).
func BottomUpTransform(root *Expr, f func(e *Expr, children []*Expr) *Expr) *Expr {
	return BottomUpEval(root, func(e *Expr, children []*Expr) *Expr {
		return f(e, children)
	})
}

// Substitute replaces every occurrence of a key in table with its mapped
// value, stopping recursion at substituted nodes (a substituted node's own
// children are never visited — table substitution takes precedence over
// structural descent).
func Substitute(root *Expr, table map[*Expr]*Expr) *Expr {
	memo := make(map[*Expr]*Expr)
	var walk func(*Expr) *Expr
	walk = func(e *Expr) *Expr {
		if v, ok := memo[e]; ok {
			return v
		}
		if v, ok := table[e]; ok {
			memo[e] = v
			return v
		}
		if len(e.Args) == 0 {
			memo[e] = e
			return e
		}
		children := make([]*Expr, len(e.Args))
		changed := false
		for i, a := range e.Args {
			children[i] = walk(a)
			if children[i] != a {
				changed = true
			}
		}
		var out *Expr
		if !changed {
			out = e
		} else if e.IsWrapper() {
			out = allocNode(e.Sym, children)
		} else {
			out = Apply(e.Sym, children...)
		}
		memo[e] = out
		return out
	}
	return walk(root)
}
