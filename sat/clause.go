package sat

import (
	"sort"

	"github.com/proto-smt/solver/intern"
)

// Clause is a sorted, deduplicated tuple of literals with two watched
// positions (spec.md §3, §4.5).
type Clause struct {
	Literals       []Literal
	watchA, watchB int
	Learned        bool
}

// NewClause builds a clause from lits, sorting and deduplicating them and
// seeding the two initial watches at the first two distinct literals.
func NewClause(lits ...Literal) *Clause {
	uniq := make([]Literal, 0, len(lits))
	seen := make(map[Literal]bool, len(lits))
	for _, l := range lits {
		if !seen[l] {
			seen[l] = true
			uniq = append(uniq, l)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return intern.Less(uniq[i].Order(), uniq[j].Order()) })

	c := &Clause{Literals: uniq, watchA: 0, watchB: 0}
	if len(uniq) > 1 {
		c.watchB = 1
	}
	return c
}

// isConflict reports whether both of c's watched literals are assigned
// false under e.
func (c *Clause) isConflict(e *Engine) bool {
	return e.value(c.Literals[c.watchA]) == falseVal &&
		e.value(c.Literals[c.watchB]) == falseVal
}

// derive returns the literal c forces by unit propagation, if c is unit
// under e (exactly one watch unassigned, the other false).
func (c *Clause) derive(e *Engine) (Literal, bool) {
	va := e.value(c.Literals[c.watchA])
	vb := e.value(c.Literals[c.watchB])
	if c.watchA == c.watchB {
		if va == unknownVal {
			return c.Literals[c.watchA], true
		}
		return nil, false
	}
	if va == falseVal && vb == unknownVal {
		return c.Literals[c.watchB], true
	}
	if vb == falseVal && va == unknownVal {
		return c.Literals[c.watchA], true
	}
	return nil, false
}

// otherWatch returns the watch index paired with watchIdx.
func (c *Clause) otherWatch(watchIdx int) int {
	if watchIdx == c.watchA {
		return c.watchB
	}
	return c.watchA
}

// update attempts to move the watch currently resting on falseLit to some
// other literal in c that is not false and not the paired watch. Returns
// the newly-watched literal and true on success.
func (c *Clause) update(e *Engine, falseLit Literal) (Literal, bool) {
	var watchIdx int
	switch {
	case c.Literals[c.watchA] == falseLit:
		watchIdx = c.watchA
	case c.Literals[c.watchB] == falseLit:
		watchIdx = c.watchB
	default:
		return nil, false
	}
	other := c.otherWatch(watchIdx)
	for i, lit := range c.Literals {
		if i == watchIdx || i == other {
			continue
		}
		if e.value(lit) != falseVal {
			if watchIdx == c.watchA {
				c.watchA = i
			} else {
				c.watchB = i
			}
			return lit, true
		}
	}
	return nil, false
}
