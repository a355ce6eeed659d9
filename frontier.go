package frontier

import (
	"github.com/hupe1980/frontier/queue"
)

// Frontier is the open set of a best-first search: generated-but-not-yet-
// expanded states, ordered by the strategy's f-value against the active goal
// context.
//
// A Frontier is reusable across searches — call Prepare once per search
// before Add or Pop. It is not safe for concurrent use; searches running in
// parallel each use their own instance and share nothing.
type Frontier[S comparable, G any] struct {
	strategy Strategy[S, G]
	queue    *queue.PriorityQueue[S]
	goal     G
	prepared bool
	metrics  MetricsCollector
	logger   *Logger
}

// New creates a Frontier ordered by the given cost strategy.
func New[S comparable, G any](strategy Strategy[S, G], optFns ...Option) *Frontier[S, G] {
	o := applyOptions(optFns)

	return &Frontier[S, G]{
		strategy: strategy,
		queue:    queue.NewWithCapacity[S](o.initialCapacity),
		metrics:  o.metricsCollector,
		logger:   o.logger,
	}
}

// Prepare binds the goal context for the next search and resets the
// underlying queue, discarding any state left over from a previous search.
// Must be called once per search, before any Add or Pop.
func (f *Frontier[S, G]) Prepare(goal G) {
	f.goal = goal
	f.prepared = true
	f.queue.Reset()

	f.metrics.RecordPrepare()
	f.logger.LogPrepare()
}

// Add queues a state at its computed f-value. If the state is already in the
// frontier it is reprioritized only when the newly computed value is strictly
// lower — a cheaper path to a queued state supersedes a costlier one, and a
// queued state is never worsened. Equal or higher values are no-ops.
func (f *Frontier[S, G]) Add(state S) error {
	if !f.prepared {
		return ErrNotPrepared
	}

	priority := f.strategy.f(state, f.goal)

	outcome := AddIgnored
	current, tracked := f.queue.Priority(state)
	switch {
	case !tracked:
		if err := f.queue.Push(state, priority); err != nil {
			return translateError(err)
		}
		outcome = AddInserted
	case priority < current:
		if err := f.queue.Update(state, priority); err != nil {
			return translateError(err)
		}
		outcome = AddReprioritized
	}

	f.metrics.RecordAdd(outcome)
	f.logger.LogAdd(outcome, priority, f.queue.Len())

	return nil
}

// Pop removes and returns the state with the lowest f-value. Equal f-values
// pop most-recently-added first. Returns ErrEmptyFrontier when no states
// remain; callers are expected to check IsEmpty first.
func (f *Frontier[S, G]) Pop() (S, error) {
	if !f.prepared {
		var zero S
		return zero, ErrNotPrepared
	}

	state, err := f.queue.Pop()
	err = translateError(err)

	f.metrics.RecordPop(err)
	f.logger.LogPop(f.queue.Len(), err)

	return state, err
}

// Contains reports whether the state is currently queued.
func (f *Frontier[S, G]) Contains(state S) bool {
	return f.queue.Contains(state)
}

// Priority returns the f-value the state is currently queued at. The second
// return value is false if the state is not in the frontier.
func (f *Frontier[S, G]) Priority(state S) (int, bool) {
	return f.queue.Priority(state)
}

// IsEmpty reports whether no states remain to expand.
func (f *Frontier[S, G]) IsEmpty() bool {
	return f.queue.Len() == 0
}

// Size returns the number of states currently queued.
func (f *Frontier[S, G]) Size() int {
	return f.queue.Len()
}
