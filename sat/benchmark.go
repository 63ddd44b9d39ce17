package sat

import (
	"time"

	"github.com/proto-smt/solver/expr"
)

// Case names one formula to time, adapted from the teacher's
// logic.Operation — there it paired a name with a func() bool; here a
// solve produces a Status instead of a bare bool, and formulas need CNF
// translation and solving rather than direct evaluation.
type Case struct {
	Name    string
	Formula *expr.Expr
}

// Result records one Case's solve outcome and wall-clock duration.
type Result struct {
	Name     string
	Status   Status
	Decisions, Propagations, Conflicts int
	Duration time.Duration
}

// Benchmark runs NewModel over a list of cases, timing each — adapted
// from the teacher's logic.Benchmark, which did the analogous thing for
// plain boolean operations.
type Benchmark struct {
	cases   []Case
	Results []Result
}

// NewBenchmark returns an empty benchmark.
func NewBenchmark() *Benchmark { return &Benchmark{} }

// Add registers one named formula to be solved when Run is called.
func (b *Benchmark) Add(name string, formula *expr.Expr) {
	b.cases = append(b.cases, Case{Name: name, Formula: formula})
}

// Run solves every registered case in order, recording its outcome.
func (b *Benchmark) Run() {
	b.Results = make([]Result, len(b.cases))
	for i, c := range b.cases {
		start := time.Now()
		m := NewModel(c.Formula)
		d, p, conf := m.Stats()
		b.Results[i] = Result{
			Name:          c.Name,
			Status:        m.Status,
			Decisions:     d,
			Propagations:  p,
			Conflicts:     conf,
			Duration:      time.Since(start),
		}
	}
}
