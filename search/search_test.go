// Package search_test exercises the eight strategies against small fixed
// scenario graphs: an unweighted five-node chain, a weighted diamond, a
// dead-end spur, and a graph with an unreachable goal.
package search_test

import (
	"testing"

	"github.com/kavindamihiran/ai-search/graph"
	"github.com/kavindamihiran/ai-search/search"
)

// chainGraph builds the 0–1–2–3–4 chain with unit weights in both
// directions, nodes laid out left to right.
func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	names := []string{"0", "1", "2", "3", "4"}
	for i, name := range names {
		if _, err := g.AddNode(name, float64(i*100), 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i+1 < len(names); i++ {
		mustEdge(t, g, names[i], names[i+1], 1)
		mustEdge(t, g, names[i+1], names[i], 1)
	}

	return g
}

// diamondGraph builds the weighted diamond
//
//	0→1 (2), 0→2 (5), 1→3 (2), 2→3 (1)
//
// with node 2 left of node 1 so depth-first expansion reaches the goal
// through the expensive branch. Heuristics are consistent when enabled.
func diamondGraph(t *testing.T, withHeuristic bool) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	h := map[string]float64{"0": 0, "1": 0, "2": 0, "3": 0}
	if withHeuristic {
		h = map[string]float64{"0": 3, "1": 2, "2": 1, "3": 0}
	}
	pos := map[string][2]float64{
		"0": {0, 100}, "2": {50, 200}, "1": {100, 0}, "3": {200, 100},
	}
	for _, name := range []string{"0", "1", "2", "3"} {
		if _, err := g.AddNode(name, pos[name][0], pos[name][1], h[name]); err != nil {
			t.Fatal(err)
		}
	}
	mustEdge(t, g, "0", "1", 2)
	mustEdge(t, g, "0", "2", 5)
	mustEdge(t, g, "1", "3", 2)
	mustEdge(t, g, "2", "3", 1)

	return g
}

// isolatedGoalGraph builds a 0–1–2 chain plus a goal node with no incoming
// path whatsoever.
func isolatedGoalGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for i, name := range []string{"0", "1", "2"} {
		if _, err := g.AddNode(name, float64(i*100), 0, 1); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.AddNode("9", 500, 0, 0); err != nil {
		t.Fatal(err)
	}
	mustEdge(t, g, "0", "1", 1)
	mustEdge(t, g, "1", "0", 1)
	mustEdge(t, g, "1", "2", 1)
	mustEdge(t, g, "2", "1", 1)

	return g
}

// deadEndGraph fans out from the source into two leaves; the goal hangs
// unreachable to the side.
func deadEndGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	if _, err := g.AddNode("0", 0, 0, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("1", 100, 0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("2", 100, 100, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("9", 300, 0, 0); err != nil {
		t.Fatal(err)
	}
	mustEdge(t, g, "0", "1", 1)
	mustEdge(t, g, "0", "2", 1)

	return g
}

func mustEdge(t *testing.T, g *graph.Graph, from, to string, w float64) {
	t.Helper()
	if err := g.AddEdge(from, to, w); err != nil {
		t.Fatal(err)
	}
}

// newAgent fails the test on construction errors.
func newAgent(t *testing.T, g *graph.Graph, source string, goals ...string) *search.Agent {
	t.Helper()
	a, err := search.NewAgent(g, source, goals...)
	if err != nil {
		t.Fatal(err)
	}

	return a
}

// drain pulls a run to exhaustion and returns every observation point.
func drain(t *testing.T, r *search.Run) []search.Snapshot {
	t.Helper()
	var snaps []search.Snapshot
	for {
		snap, ok := r.Next()
		if !ok {
			return snaps
		}
		snaps = append(snaps, snap)
	}
}

// runToEnd starts a run, drains it, and returns snapshots plus outcome.
func runToEnd(t *testing.T, a *search.Agent, algo search.Algorithm, opts ...search.Option) ([]search.Snapshot, search.Outcome) {
	t.Helper()
	run, err := a.Run(algo, opts...)
	if err != nil {
		t.Fatal(err)
	}
	snaps := drain(t, run)

	return snaps, run.Outcome()
}

// pathWeight sums actual edge weights along a reported path.
func pathWeight(g *graph.Graph, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += g.Weight(path[i], path[i+1])
	}

	return total
}
