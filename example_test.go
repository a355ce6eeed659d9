package frontier_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/frontier"
)

// Example_greedy orders states purely by a heuristic estimate.
func Example_greedy() {
	distance := map[string]int{"kitchen": 4, "hallway": 2, "ward": 1}

	f := frontier.New(frontier.Greedy[string, string](func(state, _ string) int {
		return distance[state]
	}))

	f.Prepare("ward")

	for _, room := range []string{"kitchen", "hallway", "ward"} {
		if err := f.Add(room); err != nil {
			log.Fatal(err)
		}
	}

	for !f.IsEmpty() {
		state, err := f.Pop()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(state)
	}

	// Output:
	// ward
	// hallway
	// kitchen
}

// Example_aStar sums accumulated path cost and a heuristic estimate.
func Example_aStar() {
	type node struct {
		name string
		cost int
	}

	estimate := map[string]int{"detour": 1, "direct": 4}

	f := frontier.New(frontier.AStar[node, string](
		func(state node, _ string) int { return state.cost },
		func(state node, _ string) int { return estimate[state.name] },
	))

	f.Prepare("exit")

	_ = f.Add(node{name: "direct", cost: 3}) // f = 3 + 4 = 7
	_ = f.Add(node{name: "detour", cost: 5}) // f = 5 + 1 = 6

	state, err := f.Pop()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(state.name)

	// Output:
	// detour
}

// Example_cheaperPath shows a cheaper path superseding a queued state.
func Example_cheaperPath() {
	cost := map[string]int{"A": 5, "B": 3}

	f := frontier.New(frontier.Greedy[string, struct{}](func(state string, _ struct{}) int {
		return cost[state]
	}))

	f.Prepare(struct{}{})

	_ = f.Add("A")
	_ = f.Add("B")

	// A cheaper path to A is discovered; re-adding lowers its priority.
	cost["A"] = 2
	_ = f.Add("A")

	for !f.IsEmpty() {
		state, err := f.Pop()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(state, cost[state])
	}

	// Output:
	// A 2
	// B 3
}
