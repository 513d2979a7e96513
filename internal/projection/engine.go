package projection

import "sync"

// Result bundles everything derived from one input tuple.
type Result struct {
	Input     Input
	Snapshots []Snapshot
	Summary   Summary
	Scenarios []Scenario
	Validity  Validity
}

// Engine memoizes the most recent projection against its input tuple.
// Recomputation happens from scratch on any input change; an unchanged input
// returns the cached result. Safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	cached *Result
}

// NewEngine creates an empty memoizing engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run normalizes the input and returns the full projection result, reusing
// the previous result when the normalized input tuple is unchanged.
func (e *Engine) Run(in Input) Result {
	in = Normalize(in)
	if e == nil {
		return compute(in)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cached != nil && e.cached.Input == in {
		return *e.cached
	}
	result := compute(in)
	e.cached = &result
	return result
}

func compute(in Input) Result {
	snapshots := Project(in)
	return Result{
		Input:     in,
		Snapshots: snapshots,
		Summary:   Summarize(snapshots),
		Scenarios: Compare(in),
		Validity:  Validate(in),
	}
}
