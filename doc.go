// Package frontier provides the priority-ordered open set for best-first
// state-space search.
//
// A Frontier wraps a mutable-priority queue and a pluggable cost model
// f(state) = g(state) + h(state). The same frontier machinery realizes
// uniform-cost/A*, greedy best-first, and generic best-first search; only the
// injected g/h functions differ.
//
// # Quick Start
//
//	// A* over opaque states; path cost and heuristic come from the planning layer.
//	f := frontier.New(frontier.AStar[State, Goal](pathCost, heuristic))
//
//	f.Prepare(goal)
//	f.Add(initial)
//
//	for !f.IsEmpty() {
//	    state, _ := f.Pop()
//	    if goalTest(state, goal) {
//	        break
//	    }
//	    for _, succ := range expand(state) {
//	        f.Add(succ) // cheaper paths to queued states supersede automatically
//	    }
//	}
//
// # Cost Strategies
//
//	frontier.BestFirst[S, G]()        // g = 0, h = 0
//	frontier.AStar[S, G](g, h)        // g = accumulated path cost, h = heuristic
//	frontier.Greedy[S, G](h)          // g = 0, h = heuristic
//
// # Ordering
//
// States pop in ascending f-value order. Equal f-values pop most-recently-
// added first; the tie-break is deterministic and scoped to one search.
// Re-adding a state already in the frontier only lowers its priority, never
// raises it — a cheaper path to a queued state always supersedes a costlier
// one.
//
// # Key Properties
//
//   - Amortized O(log n) insert and priority decrease (lazy deletion)
//   - O(1) membership and priority lookup
//   - Deterministic LIFO tie-break, reset per search
//   - Reusable across searches via Prepare
//   - No goroutines, no locks: each search owns its frontier
package frontier
