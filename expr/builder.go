package expr

// Builder offers the same fluent, method-chaining construction style the
// teacher's logic.Evaluator gave two-valued booleans, adapted to this
// kernel's interned, many-sorted expressions: each call reduces
// algebraically exactly as the bare And/Or/Implies/Negated calls would,
// since Builder is only a thin chain over them.
//
// Example:
//
//	x, y := NewVariable("x", Bool), NewVariable("y", Bool)
//	phi := From(x).And(y.Negated()).Or(y).Build()
type Builder struct {
	e *Expr
}

// From starts a builder chain at e.
func From(e *Expr) *Builder { return &Builder{e: e} }

// And conjoins other onto the chain's current value.
func (b *Builder) And(other *Expr) *Builder {
	b.e = And(b.e, other)
	return b
}

// Or disjoins other onto the chain's current value.
func (b *Builder) Or(other *Expr) *Builder {
	b.e = Or(b.e, other)
	return b
}

// Implies builds b's current value implying other.
func (b *Builder) Implies(other *Expr) *Builder {
	b.e = Implies(b.e, other)
	return b
}

// Not negates the chain's current value.
func (b *Builder) Not() *Builder {
	b.e = b.e.Negated()
	return b
}

// Build returns the chain's final expression.
func (b *Builder) Build() *Expr { return b.e }
