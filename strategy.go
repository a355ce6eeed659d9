package frontier

// CostFunc computes one component of a state's priority against the active
// goal context. Implementations must be deterministic and return non-negative
// values; the frontier only sums what they return.
type CostFunc[S comparable, G any] func(state S, goal G) int

// Strategy is the cost model of a best-first search: the frontier orders
// states by f(state) = G(state) + H(state). A nil component is treated as
// zero, so the zero Strategy value is plain best-first ordering by insertion.
//
// The classic strategies are one Strategy value each rather than frontier
// subtypes; the queue machinery is shared.
type Strategy[S comparable, G any] struct {
	// G returns the cost accumulated so far to reach the state.
	G CostFunc[S, G]

	// H returns the heuristic estimate of the remaining cost to a goal.
	// Admissibility and consistency are the supplier's contract.
	H CostFunc[S, G]
}

// f returns the total priority of a state: lower pops first.
func (s Strategy[S, G]) f(state S, goal G) int {
	var f int
	if s.G != nil {
		f += s.G(state, goal)
	}
	if s.H != nil {
		f += s.H(state, goal)
	}
	return f
}

// BestFirst returns the generic best-first strategy: g = 0 and h = 0, so all
// states share priority zero and pop in LIFO order.
func BestFirst[S comparable, G any]() Strategy[S, G] {
	return Strategy[S, G]{}
}

// AStar returns an A*-style strategy: g is the accumulated path cost of the
// state and h a problem-specific heuristic, both supplied by the planning
// layer. With an admissible h the first goal state popped is optimal.
func AStar[S comparable, G any](pathCost, heuristic CostFunc[S, G]) Strategy[S, G] {
	return Strategy[S, G]{
		G: pathCost,
		H: heuristic,
	}
}

// Greedy returns a greedy best-first strategy: states are ordered purely by
// the heuristic estimate, ignoring accumulated path cost.
func Greedy[S comparable, G any](heuristic CostFunc[S, G]) Strategy[S, G] {
	return Strategy[S, G]{
		H: heuristic,
	}
}
