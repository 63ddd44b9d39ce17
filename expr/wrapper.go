package expr

import "github.com/proto-smt/solver/intern"

// wrapperSymbol is an error carrier: an opaque node that tolerates any
// arguments and marks its result tainted. It may carry an inner symbol
// purely for diagnostics (the symbol whose application actually failed).
type wrapperSymbol struct {
	inner  Symbol
	reason string
	ord    intern.Order
}

var wrapperSingleton = &wrapperSymbol{reason: "", ord: intern.Order{Priority: 0, TypeName: "Wrapper", Key: "wrapper", Serial: intern.NextSerial()}}

func (w *wrapperSymbol) Name() string {
	if w.inner != nil {
		return "#wrapper[" + w.inner.Name() + "]"
	}
	return "#wrapper"
}
func (w *wrapperSymbol) ResultSort() Sort { return Unknown }
func (w *wrapperSymbol) Valency(i int, present bool) (Sort, bool) {
	if present {
		return Unknown, true
	}
	return Unknown, false
}
func (w *wrapperSymbol) order() intern.Order       { return w.ord }
func (w *wrapperSymbol) reduce(args []*Expr) *Expr { return nil }

// applyWrapper builds (or reuses, within this call) a tainted node that
// carries sym for diagnostics and accepts the offending args verbatim.
func applyWrapper(sym Symbol, args []*Expr) *Expr {
	w := &wrapperSymbol{inner: sym, ord: intern.Order{Priority: 0, TypeName: "Wrapper", Key: "wrapper:" + sym.Name(), Serial: intern.NextSerial()}}
	key := nodeKey(w, args)
	return nodeTable.Intern(key, func() *Expr {
		return allocNode(w, args)
	})
}

// IsWrapper reports whether e's symbol is a Wrapper.
func (e *Expr) IsWrapper() bool {
	_, ok := e.Sym.(*wrapperSymbol)
	return ok
}
