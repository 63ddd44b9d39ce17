package sat

import (
	"github.com/proto-smt/solver/txn"
)

type triState int8

const (
	falseVal   triState = -1
	unknownVal triState = 0
	trueVal    triState = 1
)

// Status is the result of a solve.
type Status int

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

// position is the mutable trail metadata shared by a literal and its
// negation (spec.md §4.5, §9 "cyclic ownership").
type position struct {
	index      int     // trail slot, 0 = unassigned
	link       Literal // decision literal at this position's level, or itself if it is one
	antecedent *Clause // clause that forced this literal, nil for decisions
}

// Engine is one CDCL solve: its own arena, trail, watch lists, and clause
// database (spec.md §5 "solve-local arena").
type Engine struct {
	arena       *txn.Arena
	positions   map[Literal]*position
	watches     map[Literal]*txn.Vector[*Clause]
	trail       []Literal // trail[0] is the sentinel placeholder
	topDecision Literal
	clauses     []*Clause
	order       []Literal // static decision order, descending occurrence
	iterI, iterJ int
	analyzer    *conflictAnalyzer

	decisions, propagations, conflicts int
}

// Stats reports running counts of decisions made, literals propagated,
// and conflicts resolved — the figures the interpreter façade logs at
// check-sat completion (SPEC_FULL.md §2's logging requirement).
func (e *Engine) Stats() (decisions, propagations, conflicts int) {
	return e.decisions, e.propagations, e.conflicts
}

// NewEngine builds an empty solve with decisionOrder as the static
// variable-decision order (spec.md's "first-seen static variable-ordering
// heuristic" — one representative literal per variable).
func NewEngine(decisionOrder []Literal) *Engine {
	e := &Engine{
		arena:     txn.NewArena(),
		positions: make(map[Literal]*position),
		watches:   make(map[Literal]*txn.Vector[*Clause]),
		trail:     []Literal{sentinel},
		order:     append([]Literal(nil), decisionOrder...),
	}
	e.topDecision = sentinel
	e.pos(sentinel).link = sentinel
	e.analyzer = newConflictAnalyzer(e)
	return e
}

func (e *Engine) pos(lit Literal) *position {
	c := canonical(lit)
	p, ok := e.positions[c]
	if !ok {
		p = &position{link: sentinel}
		e.positions[c] = p
	}
	return p
}

func (e *Engine) value(lit Literal) triState {
	p := e.pos(lit)
	if p.index == 0 {
		return unknownVal
	}
	if e.trail[p.index] == lit {
		return trueVal
	}
	return falseVal
}

func (e *Engine) watchList(lit Literal) *txn.Vector[*Clause] {
	v, ok := e.watches[lit]
	if !ok {
		v = txn.NewVector[*Clause](e.arena)
		e.watches[lit] = v
	}
	return v
}

func (e *Engine) addWatch(lit Literal, c *Clause) {
	e.watchList(lit).Push(c)
}

// removeWatchAt swap-pops the entry at index j from lit's watch list.
func (e *Engine) removeWatchAt(lit Literal, j int) {
	v := e.watchList(lit)
	last, _ := v.Get(v.Len() - 1)
	v.Set(j, last)
	v.Pop()
}

// assignTrue appends lit to the trail and records its position metadata.
func (e *Engine) assignTrue(lit, link Literal, antecedent *Clause) {
	idx := len(e.trail)
	e.trail = append(e.trail, lit)
	p := e.pos(lit)
	p.index = idx
	p.link = link
	p.antecedent = antecedent
}

func (e *Engine) makeDecision(stored Literal) {
	dec := stored.Negated()
	e.topDecision = dec
	e.assignTrue(dec, dec, nil)
	e.decisions++
}

func (e *Engine) makeImplication(lit Literal, antecedent *Clause) {
	e.assignTrue(lit, e.topDecision, antecedent)
	e.propagations++
}

// backtrackTo undoes every assignment from d (inclusive) onward and
// restores the preceding decision level, per spec.md §9's design note.
func (e *Engine) backtrackTo(d Literal) {
	cut := e.pos(d).index
	for i := cut; i < len(e.trail); i++ {
		p := e.pos(e.trail[i])
		p.index = 0
		p.link = sentinel
		p.antecedent = nil
	}
	e.trail = e.trail[:cut]

	e.topDecision = sentinel
	for i := len(e.trail) - 1; i >= 1; i-- {
		lit := e.trail[i]
		if e.pos(lit).link == lit {
			e.topDecision = lit
			break
		}
	}
	e.iterI, e.iterJ = 1, 0
}

// registerClause adds c to the database and hooks up its initial
// watches. It never assigns anything itself — callers that need a unit
// clause's literal propagated (initial setup) use seedUnitClauses; a
// learned clause's first literal is asserted explicitly by Solve's main
// loop once the backjump has left it unassigned (see Solve).
func (e *Engine) registerClause(c *Clause) {
	e.clauses = append(e.clauses, c)
	e.addWatch(c.Literals[c.watchA], c)
	if c.watchB != c.watchA {
		e.addWatch(c.Literals[c.watchB], c)
	}
}

// seedUnitClauses assigns the literal of every already-registered unit
// clause, for the initial clause set (before any decision has been
// made). Returns false if two unit clauses directly conflict (e.g. {x}
// and {¬x}).
func (e *Engine) seedUnitClauses() bool {
	for _, c := range e.clauses {
		if len(c.Literals) != 1 {
			continue
		}
		lit := c.Literals[0]
		switch e.value(lit) {
		case falseVal:
			return false
		case unknownVal:
			e.makeImplication(lit, c)
		}
	}
	return true
}

// nextSuspiciousClause implements the resumable (i,j) iterator of
// spec.md §4.5: i walks trail positions of literals whose negation just
// became false, j walks that negation's watch list.
func (e *Engine) nextSuspiciousClause() *Clause {
	if e.iterI == 0 {
		e.iterI = 1
	}
	for e.iterI < len(e.trail) {
		falseLit := e.trail[e.iterI].Negated()
		list := e.watchList(falseLit)
		if e.iterJ >= list.Len() {
			e.iterI++
			e.iterJ = 0
			continue
		}
		cl, _ := list.Get(e.iterJ)
		if newLit, moved := cl.update(e, falseLit); moved {
			e.removeWatchAt(falseLit, e.iterJ)
			e.addWatch(newLit, cl)
			continue
		}
		e.iterJ++
		return cl
	}
	return nil
}

// SeedUnitClauses exposes seedUnitClauses to callers assembling the
// initial clause set (e.g. model.go), before the first Solve call.
func (e *Engine) SeedUnitClauses() bool { return e.seedUnitClauses() }

// RegisterClause exposes registerClause to callers assembling the
// initial clause set.
func (e *Engine) RegisterClause(c *Clause) { e.registerClause(c) }

func (e *Engine) pickUnassigned() (Literal, bool) {
	for _, lit := range e.order {
		if e.value(lit) == unknownVal {
			return lit, true
		}
	}
	return nil, false
}

// Solve runs the CDCL main loop of spec.md §4.5 to completion.
func (e *Engine) Solve() Status {
	for {
		for {
			c := e.nextSuspiciousClause()
			if c == nil {
				break
			}
			if c.isConflict(e) {
				e.conflicts++
				learned := e.analyzer.analyze(c)
				x := learned[0]
				lc := NewClause(learned...)
				lc.Learned = true

				if len(learned) == 1 {
					if e.pos(x).link == sentinel {
						return StatusUnsat
					}
				}
				// Backjump by undoing the first decision made after
				// learned[1] (after level 0 for a unit clause), which leaves
				// x as the learned clause's only unassigned literal.
				keep := 0
				if len(learned) > 1 {
					keep = e.pos(learned[1]).index
				}
				for i := keep + 1; i < len(e.trail); i++ {
					if lit := e.trail[i]; e.pos(lit).link == lit {
						e.backtrackTo(lit)
						break
					}
				}

				e.registerClause(lc)
				e.makeImplication(x, lc)
			} else if z, ok := c.derive(e); ok {
				e.makeImplication(z, c)
			}
		}

		lit, ok := e.pickUnassigned()
		if !ok {
			return StatusSat
		}
		e.makeDecision(lit)
	}
}
