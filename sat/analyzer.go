package sat

import "container/heap"

// conflictAnalyzer performs first-UIP resolution in its own type, split
// out of Engine the way the reference CDCL implementation this package
// is adapted from keeps its FirstUIPAnalyzer distinct from its
// CDCLSolver. The split here is structural, not behavioral: that
// teacher analyzer walks an explicit integer decision-level trail
// keyed by variable name, which doesn't fit spec.md §4.5's link-chain
// encoding — so resolution here reads a literal's level off
// Engine.pos(lit).link instead of a separate level map, and recency
// comes straight from trail position rather than a level counter.
type conflictAnalyzer struct {
	eng *Engine
}

func newConflictAnalyzer(e *Engine) *conflictAnalyzer {
	return &conflictAnalyzer{eng: e}
}

// analyze performs first-UIP resolution over conflict's literals, per
// spec.md §4.5's max-heap-by-recency procedure.
func (a *conflictAnalyzer) analyze(conflict *Clause) []Literal {
	e := a.eng
	h := &recencyHeap{eng: e}
	heap.Init(h)
	visited := make(map[Literal]bool)
	count := 0
	var result []Literal

	push := func(lit Literal) {
		if visited[lit] {
			return
		}
		visited[lit] = true
		heap.Push(h, lit)
		p := e.pos(lit)
		if p.link == e.topDecision || lit == e.topDecision {
			count++
		}
	}
	for _, lit := range conflict.Literals {
		push(lit)
	}

	for h.Len() > 0 {
		lit := heap.Pop(h).(Literal)
		p := e.pos(lit)
		if p.link != e.topDecision || count == 1 {
			result = append(result, lit)
			continue
		}
		count--
		pivot := lit.Negated()
		for _, l := range p.antecedent.Literals {
			if l == pivot {
				continue
			}
			push(l)
		}
	}
	return result
}

// recencyHeap is a max-heap over literals keyed by their trail index —
// "most recently assigned first" (spec.md §4.5).
type recencyHeap struct {
	items []Literal
	eng   *Engine
}

func (h *recencyHeap) Len() int { return len(h.items) }
func (h *recencyHeap) Less(i, j int) bool {
	return h.eng.pos(h.items[i]).index > h.eng.pos(h.items[j]).index
}
func (h *recencyHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *recencyHeap) Push(x any)    { h.items = append(h.items, x.(Literal)) }
func (h *recencyHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}
