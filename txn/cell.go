package txn

// Cell stores a single value. Reading returns the topmost transaction that
// has written to the cell (walking down to the base if none has); writing
// always targets the arena's current top transaction.
type Cell[V any] struct {
	arena   *Arena
	base    V
	hasBase bool
	byTx    map[*Transaction]V
}

// NewCell constructs a cell with no base value (reads panic until the
// first write, mirroring an uninitialized named cell).
func NewCell[V any](a *Arena) *Cell[V] {
	return &Cell[V]{arena: a, byTx: make(map[*Transaction]V)}
}

// NewCellWithBase constructs a cell pre-seeded with a base value.
func NewCellWithBase[V any](a *Arena, base V) *Cell[V] {
	c := NewCell[V](a)
	c.base = base
	c.hasBase = true
	return c
}

// Get returns the visible value and whether one has ever been set.
func (c *Cell[V]) Get() (V, bool) {
	for _, t := range reverse(c.arena.stack) {
		if v, ok := c.byTx[t]; ok {
			return v, true
		}
	}
	var zero V
	if c.hasBase {
		return c.base, true
	}
	return zero, false
}

// Set writes v into the arena's current top transaction's overlay.
func (c *Cell[V]) Set(v V) {
	top := c.arena.Top()
	if _, already := c.byTx[top]; !already {
		c.arena.track(top, c)
	}
	c.byTx[top] = v
}

func (c *Cell[V]) commitInto(t, parent *Transaction) {
	if v, ok := c.byTx[t]; ok {
		if _, already := c.byTx[parent]; !already {
			c.arena.track(parent, c)
		}
		c.byTx[parent] = v
	}
	delete(c.byTx, t)
}

func (c *Cell[V]) discard(t *Transaction) {
	delete(c.byTx, t)
}

func reverse(ts []*Transaction) []*Transaction {
	out := make([]*Transaction, len(ts))
	for i, t := range ts {
		out[len(ts)-1-i] = t
	}
	return out
}
