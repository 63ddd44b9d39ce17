// Package intern provides global, weak, key-indexed hash-consing tables.
//
// Every interned class in this module (symbols, expressions, literals,
// clauses, watch cells) goes through a Table: equality becomes pointer
// equality, hashing is whatever the caller's key type provides, and
// instances are reclaimed once nothing else references them. Replaces the
// language-level metaclass interception the original implementation used
// to enforce uniqueness (see DESIGN.md).
package intern

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"
)

var serial atomic.Uint64

// NextSerial returns a fresh, process-wide monotonically increasing serial
// number, used as the last tie-breaker in the total order on interned
// objects (see Order).
func NextSerial() uint64 {
	return serial.Add(1)
}

// Table is a weak, key-indexed cache mapping a canonical key to the unique
// live instance of V constructed for it. Safe for concurrent use, though
// the module as a whole only ever touches it from a single goroutine.
type Table[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]weak.Pointer[V]
}

// NewTable constructs an empty interning table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]weak.Pointer[V])}
}

// Intern returns the existing instance registered under key, or calls
// construct to build one, registers it weakly, and returns that. construct
// is only invoked when no live instance exists for key.
func (t *Table[K, V]) Intern(key K, construct func() *V) *V {
	t.mu.Lock()
	if wp, ok := t.m[key]; ok {
		if v := wp.Value(); v != nil {
			t.mu.Unlock()
			return v
		}
	}
	t.mu.Unlock()

	v := construct()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have raced us; prefer whatever is already live.
	if wp, ok := t.m[key]; ok {
		if existing := wp.Value(); existing != nil {
			return existing
		}
	}
	t.m[key] = weak.Make(v)
	runtime.AddCleanup(v, t.evict, key)

	return v
}

// Len reports the number of entries currently believed live. Stale entries
// whose cleanup has not yet run may be briefly overcounted.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}

func (t *Table[K, V]) evict(key K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Only remove if nothing re-interned this key since the cleanup fired.
	if wp, ok := t.m[key]; ok && wp.Value() == nil {
		delete(t.m, key)
	}
}
