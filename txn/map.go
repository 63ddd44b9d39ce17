package txn

type mapOverlay[K comparable, V any] struct {
	removed    map[K]struct{}
	unique     map[K]V // keys freshly introduced at this level
	overriding map[K]V // keys that already existed below this level
}

func newMapOverlay[K comparable, V any]() *mapOverlay[K, V] {
	return &mapOverlay[K, V]{
		removed:    make(map[K]struct{}),
		unique:     make(map[K]V),
		overriding: make(map[K]V),
	}
}

// Map is a transactional map. Reads walk top-down, stopping at the first
// removed/unique/overriding hit; writes classify each key as unique (never
// seen below) or overriding (shadowing an ancestor), per spec.md §4.2.
type Map[K comparable, V any] struct {
	arena   *Arena
	base    map[K]V
	overlay map[*Transaction]*mapOverlay[K, V]
}

// NewMap constructs an empty transactional map.
func NewMap[K comparable, V any](a *Arena) *Map[K, V] {
	return &Map[K, V]{arena: a, base: make(map[K]V), overlay: make(map[*Transaction]*mapOverlay[K, V])}
}

// Get walks the overlay stack top-down.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.getFrom(len(m.arena.stack)-1, k)
}

// getFrom walks overlays at indices [0, idx] from idx down to 0, then base.
func (m *Map[K, V]) getFrom(idx int, k K) (V, bool) {
	for i := idx; i >= 0; i-- {
		ov, ok := m.overlay[m.arena.stack[i]]
		if !ok {
			continue
		}
		if _, removed := ov.removed[k]; removed {
			var zero V
			return zero, false
		}
		if v, ok := ov.unique[k]; ok {
			return v, true
		}
		if v, ok := ov.overriding[k]; ok {
			return v, true
		}
	}
	v, ok := m.base[k]
	return v, ok
}

// existsBelow reports whether k is visible strictly below stack index idx.
func (m *Map[K, V]) existsBelow(idx int, k K) bool {
	_, ok := m.getFrom(idx-1, k)
	return ok
}

// Set inserts or overwrites k, classifying it as unique or overriding
// depending on whether it existed in an ancestor transaction.
func (m *Map[K, V]) Set(k K, v V) {
	idx := len(m.arena.stack) - 1
	top := m.arena.stack[idx]
	ov := m.overlayFor(top)
	delete(ov.removed, k)
	switch {
	case isUniqueHere(ov, k):
		ov.unique[k] = v
	case isOverridingHere(ov, k):
		ov.overriding[k] = v
	case m.existsBelow(idx, k):
		ov.overriding[k] = v
	default:
		ov.unique[k] = v
	}
}

// Delete removes k via the arena's current top transaction's overlay.
func (m *Map[K, V]) Delete(k K) {
	top := m.arena.Top()
	ov := m.overlayFor(top)
	delete(ov.unique, k)
	delete(ov.overriding, k)
	ov.removed[k] = struct{}{}
}

func isUniqueHere[K comparable, V any](ov *mapOverlay[K, V], k K) bool {
	_, ok := ov.unique[k]
	return ok
}

func isOverridingHere[K comparable, V any](ov *mapOverlay[K, V], k K) bool {
	_, ok := ov.overriding[k]
	return ok
}

func (m *Map[K, V]) overlayFor(t *Transaction) *mapOverlay[K, V] {
	ov, ok := m.overlay[t]
	if !ok {
		ov = newMapOverlay[K, V]()
		m.overlay[t] = ov
		m.arena.track(t, m)
	}
	return ov
}

func (m *Map[K, V]) commitInto(t, parent *Transaction) {
	ov, ok := m.overlay[t]
	if !ok {
		return
	}
	parentIdx := m.arena.mustIndexOf(parent)
	pov := m.overlayFor(parent)

	assign := func(k K, v V) {
		delete(pov.removed, k)
		delete(pov.unique, k)
		delete(pov.overriding, k)
		if m.existsBelow(parentIdx, k) {
			pov.overriding[k] = v
		} else {
			pov.unique[k] = v
		}
	}
	for k, v := range ov.unique {
		assign(k, v)
	}
	for k, v := range ov.overriding {
		assign(k, v)
	}
	for k := range ov.removed {
		delete(pov.unique, k)
		delete(pov.overriding, k)
		if m.existsBelow(parentIdx, k) {
			pov.removed[k] = struct{}{}
		} else {
			delete(pov.removed, k)
		}
	}
	delete(m.overlay, t)
}

func (m *Map[K, V]) discard(t *Transaction) {
	delete(m.overlay, t)
}
