// Package queue implements a mutable-priority binary min-heap suitable for
// use as the open set of a best-first search.
//
// Changing the priority of an element already inside a binary heap would
// require an O(n) scan to locate it. Instead the queue uses lazy deletion:
// the live entry is tombstoned in place and a fresh entry is pushed with the
// new priority, leaving ghost entries in the heap storage that Pop discards
// when they surface. An element index keeps membership and priority lookups
// at O(1) and is the authoritative count of live entries; the raw heap length
// may be larger by the number of tombstones still buried in it.
package queue

import "errors"

var (
	// ErrEmptyQueue is returned by Pop when no live entries remain.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrNotTracked is returned by Update when the element is not in the queue.
	ErrNotTracked = errors.New("element not tracked by queue")

	// ErrAlreadyTracked is returned by Push when the element is already in the
	// queue. Use Update to change the priority of a tracked element.
	ErrAlreadyTracked = errors.New("element already tracked by queue")
)

// entry is a node in the heap storage. Entries are immutable once pushed
// except for tombstoning: Update marks the entry dead and zeroes the payload
// slot so the element is not retained until the ghost is popped.
type entry[E comparable] struct {
	priority int
	seq      uint64
	elem     E
	dead     bool
}

// PriorityQueue is a min-heap of elements ordered by (priority, insertion
// sequence). Lower priorities pop first; equal priorities pop in LIFO order,
// most recently inserted first. The LIFO tie-break is deliberate: in a
// best-first search it keeps expansion on the newest path among equals, and
// because sequence numbers are unique the heap never has to compare the
// elements themselves.
//
// A PriorityQueue is not safe for concurrent use. Each search owns its own
// instance; nothing is shared.
type PriorityQueue[E comparable] struct {
	items []*entry[E]
	index map[E]*entry[E]
	seq   uint64
}

// New creates an empty priority queue.
func New[E comparable]() *PriorityQueue[E] {
	return NewWithCapacity[E](16)
}

// NewWithCapacity creates an empty priority queue with pre-sized storage.
func NewWithCapacity[E comparable](capacity int) *PriorityQueue[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &PriorityQueue[E]{
		items: make([]*entry[E], 0, capacity),
		index: make(map[E]*entry[E], capacity),
	}
}

// Len returns the number of live entries. Tombstones buried in the heap
// storage are not counted.
func (pq *PriorityQueue[E]) Len() int {
	return len(pq.index)
}

// Contains reports whether elem is tracked by the queue.
func (pq *PriorityQueue[E]) Contains(elem E) bool {
	_, ok := pq.index[elem]
	return ok
}

// Priority returns the current priority of elem. The second return value is
// false if elem is not tracked.
func (pq *PriorityQueue[E]) Priority(elem E) (int, bool) {
	e, ok := pq.index[elem]
	if !ok {
		return 0, false
	}
	return e.priority, true
}

// Push inserts elem with the given priority. The element must not already be
// tracked; callers change the priority of a tracked element with Update.
func (pq *PriorityQueue[E]) Push(elem E, priority int) error {
	if _, ok := pq.index[elem]; ok {
		return ErrAlreadyTracked
	}

	e := &entry[E]{
		priority: priority,
		seq:      pq.seq,
		elem:     elem,
	}
	pq.seq++

	pq.items = append(pq.items, e)
	pq.siftUp(len(pq.items) - 1)
	pq.index[elem] = e

	return nil
}

// Update changes the priority of a tracked element. The live entry is
// tombstoned and a fresh entry is pushed, so the element also receives a new
// sequence number and moves to the front of its priority class. Amortized
// O(log n); the ghost stays in the heap until Pop or Peek discards it.
func (pq *PriorityQueue[E]) Update(elem E, priority int) error {
	e, ok := pq.index[elem]
	if !ok {
		return ErrNotTracked
	}

	delete(pq.index, elem)
	var zero E
	e.elem = zero
	e.dead = true

	return pq.Push(elem, priority)
}

// Pop removes and returns the live element with the lexicographically
// smallest (priority, sequence) key, discarding any tombstones that surface
// first. Returns ErrEmptyQueue when no live entries remain.
func (pq *PriorityQueue[E]) Pop() (E, error) {
	for len(pq.items) > 0 {
		e := pq.popRoot()
		if e.dead {
			continue
		}
		delete(pq.index, e.elem)
		return e.elem, nil
	}

	var zero E
	return zero, ErrEmptyQueue
}

// Peek returns the next element Pop would return, without removing it.
// Tombstones encountered at the root are discarded on the way.
func (pq *PriorityQueue[E]) Peek() (E, int, bool) {
	for len(pq.items) > 0 {
		if pq.items[0].dead {
			pq.popRoot()
			continue
		}
		return pq.items[0].elem, pq.items[0].priority, true
	}

	var zero E
	return zero, 0, false
}

// Reset discards all entries, live and dead, and restarts the sequence
// counter. Must be called between searches that reuse the queue so that no
// stale entries or sequence values leak into the next run.
func (pq *PriorityQueue[E]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
	clear(pq.index)
	pq.seq = 0
}

// popRoot removes and returns the heap minimum, dead or alive.
func (pq *PriorityQueue[E]) popRoot() *entry[E] {
	n := len(pq.items)
	e := pq.items[0]
	pq.items[0] = pq.items[n-1]
	pq.items[n-1] = nil // avoid memory leak
	pq.items = pq.items[:n-1]

	if len(pq.items) > 0 {
		pq.siftDown(0)
	}

	return e
}

// less orders entries by ascending priority, then by descending sequence so
// that later insertions win ties.
func (pq *PriorityQueue[E]) less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq > b.seq
}

func (pq *PriorityQueue[E]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// siftUp moves the element at index i up the heap until the heap invariant is restored.
func (pq *PriorityQueue[E]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i down the heap until the heap invariant is restored.
func (pq *PriorityQueue[E]) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && pq.less(right, left) {
			child = right
		}
		if !pq.less(child, i) {
			break
		}
		pq.swap(i, child)
		i = child
	}
}
