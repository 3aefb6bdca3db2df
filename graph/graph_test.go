package graph_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/kavindamihiran/ai-search/graph"
)

// TestAddNode_Validation verifies construction-time rejection of bad nodes.
func TestAddNode_Validation(t *testing.T) {
	g := graph.NewGraph()
	if _, err := g.AddNode("", 0, 0, 0); !errors.Is(err, graph.ErrEmptyNodeName) {
		t.Errorf("empty name: want ErrEmptyNodeName, got %v", err)
	}
	if _, err := g.AddNode("a", 0, 0, -1); !errors.Is(err, graph.ErrNegativeHeuristic) {
		t.Errorf("negative heuristic: want ErrNegativeHeuristic, got %v", err)
	}
	if _, err := g.AddNode("a", 0, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddNode("a", 1, 1, 0); !errors.Is(err, graph.ErrDuplicateNode) {
		t.Errorf("duplicate: want ErrDuplicateNode, got %v", err)
	}
}

// TestAddEdge_Validation verifies that dangling endpoints and negative
// weights fail fast instead of being silently dropped or coerced.
func TestAddEdge_Validation(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", 0, 0, 0)
	_, _ = g.AddNode("b", 1, 0, 0)

	if err := g.AddEdge("a", "missing", 1); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("dangling target: want ErrNodeNotFound, got %v", err)
	}
	if err := g.AddEdge("missing", "b", 1); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("dangling source: want ErrNodeNotFound, got %v", err)
	}
	if err := g.AddEdge("a", "b", -3); !errors.Is(err, graph.ErrNegativeWeight) {
		t.Errorf("negative weight: want ErrNegativeWeight, got %v", err)
	}
	if err := g.AddEdge("a", "b", 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestWeight_AbsentEdgeIsInfinite checks the missing-edge convention and
// that edges are strictly directed.
func TestWeight_AbsentEdgeIsInfinite(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", 0, 0, 0)
	_, _ = g.AddNode("b", 1, 0, 0)
	_ = g.AddEdge("a", "b", 7)

	if w := g.Weight("a", "b"); w != 7 {
		t.Errorf("Weight(a,b) = %v; want 7", w)
	}
	// reverse direction was never inserted
	if w := g.Weight("b", "a"); !math.IsInf(w, 1) {
		t.Errorf("Weight(b,a) = %v; want +Inf", w)
	}
	if g.HasEdge("b", "a") {
		t.Error("HasEdge(b,a) = true; edges must not be symmetric")
	}
}

// TestConnect_DefaultWeight checks the default-weight shortcut.
func TestConnect_DefaultWeight(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", 0, 0, 0)
	_, _ = g.AddNode("b", 1, 0, 0)
	if err := g.Connect("a", "b"); err != nil {
		t.Fatal(err)
	}
	if w := g.Weight("a", "b"); w != graph.DefaultEdgeWeight {
		t.Errorf("Weight = %v; want %v", w, graph.DefaultEdgeWeight)
	}
}

// TestSortedNeighbors_Order verifies the (x, y, name) tie-break rule.
func TestSortedNeighbors_Order(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("c", 0, 0, 0)
	_, _ = g.AddNode("right", 10, 0, 0)
	_, _ = g.AddNode("low", 5, 9, 0)
	_, _ = g.AddNode("high", 5, 1, 0)
	for _, to := range []string{"right", "low", "high"} {
		_ = g.Connect("c", to)
	}

	got := g.SortedNeighbors("c")
	want := []string{"high", "low", "right"} // x asc, then y asc
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedNeighbors = %v; want %v", got, want)
	}
}

// TestSortedNeighbors_CoincidentPositions: name breaks exact position ties.
func TestSortedNeighbors_CoincidentPositions(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("c", 0, 0, 0)
	_, _ = g.AddNode("b", 3, 3, 0)
	_, _ = g.AddNode("a", 3, 3, 0)
	_ = g.Connect("c", "b")
	_ = g.Connect("c", "a")

	if got := g.SortedNeighbors("c"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("SortedNeighbors = %v; want [a b]", got)
	}
}

// TestNodesByPosition covers the whole-graph ordering used by the
// bidirectional backward scan.
func TestNodesByPosition(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("far", 9, 0, 0)
	_, _ = g.AddNode("near", 1, 0, 0)
	_, _ = g.AddNode("mid", 5, 0, 0)

	if got := g.NodesByPosition(); !reflect.DeepEqual(got, []string{"near", "mid", "far"}) {
		t.Errorf("NodesByPosition = %v; want [near mid far]", got)
	}
}

// TestRemoveEdge verifies removal is directed and idempotent.
func TestRemoveEdge(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddNode("a", 0, 0, 0)
	_, _ = g.AddNode("b", 1, 0, 0)
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "a", 1)

	g.RemoveEdge("a", "b")
	if g.HasEdge("a", "b") {
		t.Error("edge a→b survived removal")
	}
	if !g.HasEdge("b", "a") {
		t.Error("edge b→a removed as a side effect")
	}
	g.RemoveEdge("a", "b") // no-op
	g.RemoveEdge("ghost", "b")
}

// TestNode_DisplayNameAndDistance covers the label alias and Euclidean
// distance helpers.
func TestNode_DisplayNameAndDistance(t *testing.T) {
	g := graph.NewGraph()
	a, _ := g.AddNode("1", 0, 0, 0)
	b, _ := g.AddNode("2", 3, 4, 0)

	if a.DisplayName() != "1" {
		t.Errorf("DisplayName = %q; want \"1\"", a.DisplayName())
	}
	a.Label = "Start"
	if a.DisplayName() != "Start" {
		t.Errorf("DisplayName = %q; want \"Start\"", a.DisplayName())
	}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v; want 5", d)
	}
}

// TestState_StringParse round-trips every display state name.
func TestState_StringParse(t *testing.T) {
	states := []graph.State{
		graph.StateEmpty, graph.StateSource, graph.StateGoal,
		graph.StateVisited, graph.StatePath,
	}
	for _, s := range states {
		if got := graph.ParseState(s.String()); got != s {
			t.Errorf("ParseState(%q) = %v; want %v", s.String(), got, s)
		}
	}
	if got := graph.ParseState("nonsense"); got != graph.StateEmpty {
		t.Errorf("ParseState(nonsense) = %v; want StateEmpty", got)
	}
}
