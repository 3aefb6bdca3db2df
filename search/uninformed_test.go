package search_test

import (
	"reflect"
	"testing"

	"github.com/kavindamihiran/ai-search/search"
)

func TestBreadthFirst_Chain(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	snaps, outcome := runToEnd(t, a, search.BreadthFirst)
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	wantPath := []string{"0", "1", "2", "3", "4"}
	if !reflect.DeepEqual(outcome.Path, wantPath) {
		t.Errorf("path = %v, want %v", outcome.Path, wantPath)
	}
	if outcome.Cost != 4 {
		t.Errorf("cost = %v, want 4", outcome.Cost)
	}
	if outcome.NodesExplored != 5 {
		t.Errorf("nodes explored = %d, want 5", outcome.NodesExplored)
	}
	if outcome.Cost != pathWeight(g, outcome.Path) {
		t.Errorf("cost %v does not match summed edge weights %v", outcome.Cost, pathWeight(g, outcome.Path))
	}

	// seed + two points per intermediate node + color change and terminal
	// for the goal
	if len(snaps) != 11 {
		t.Errorf("observation points = %d, want 11", len(snaps))
	}
	final := snaps[len(snaps)-1]
	if !final.Done || !final.Success {
		t.Errorf("terminal snapshot Done=%v Success=%v", final.Done, final.Success)
	}
	if !reflect.DeepEqual(final.Path, wantPath) {
		t.Errorf("terminal path = %v, want %v", final.Path, wantPath)
	}
}

// Two routes join at the goal; breadth-first admits the first discovered
// and Contains blocks the second, so the (x, y)-earlier branch wins.
func TestBreadthFirst_DiamondTieBreak(t *testing.T) {
	g := diamondGraph(t, false)
	a := newAgent(t, g, "0", "3")

	snaps, outcome := runToEnd(t, a, search.BreadthFirst)
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if want := []string{"0", "2", "3"}; !reflect.DeepEqual(outcome.Path, want) {
		t.Errorf("path = %v, want %v", outcome.Path, want)
	}
	if outcome.Cost != 6 {
		t.Errorf("cost = %v, want 6", outcome.Cost)
	}
	if outcome.NodesExplored != 4 {
		t.Errorf("nodes explored = %d, want 4", outcome.NodesExplored)
	}

	// after expanding the source the frontier holds 2 before 1
	if want := []string{"2", "1"}; !reflect.DeepEqual(snaps[2].Fringe, want) {
		t.Errorf("fringe after source expansion = %v, want %v", snaps[2].Fringe, want)
	}
}

func TestBreadthFirst_UnreachableGoal(t *testing.T) {
	a := newAgent(t, isolatedGoalGraph(t), "0", "9")

	snaps, outcome := runToEnd(t, a, search.BreadthFirst)
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Reason != search.ReasonExhausted {
		t.Errorf("reason = %q, want %q", outcome.Reason, search.ReasonExhausted)
	}
	if outcome.NodesExplored != 3 {
		t.Errorf("nodes explored = %d, want 3", outcome.NodesExplored)
	}
	if len(outcome.Path) != 0 {
		t.Errorf("path = %v, want empty", outcome.Path)
	}
	final := snaps[len(snaps)-1]
	if !final.Done || final.Success {
		t.Errorf("terminal snapshot Done=%v Success=%v", final.Done, final.Success)
	}
}

func TestDepthFirst_Chain(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	_, outcome := runToEnd(t, a, search.DepthFirst)
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if want := []string{"0", "1", "2", "3", "4"}; !reflect.DeepEqual(outcome.Path, want) {
		t.Errorf("path = %v, want %v", outcome.Path, want)
	}
	if outcome.Cost != 4 || outcome.NodesExplored != 5 {
		t.Errorf("cost = %v explored = %d, want 4 and 5", outcome.Cost, outcome.NodesExplored)
	}
}

// Depth-first dives down the (x, y)-first branch and never touches the
// cheaper route.
func TestDepthFirst_DiamondDivesLeft(t *testing.T) {
	g := diamondGraph(t, false)
	a := newAgent(t, g, "0", "3")

	_, outcome := runToEnd(t, a, search.DepthFirst)
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if want := []string{"0", "2", "3"}; !reflect.DeepEqual(outcome.Path, want) {
		t.Errorf("path = %v, want %v", outcome.Path, want)
	}
	if outcome.Cost != 6 {
		t.Errorf("cost = %v, want 6", outcome.Cost)
	}
	if outcome.NodesExplored != 3 {
		t.Errorf("nodes explored = %d, want 3", outcome.NodesExplored)
	}
}

func TestDepthLimited_SucceedsWithinLimit(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	_, outcome := runToEnd(t, a, search.DepthLimited, search.WithDepthLimit(4))
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if want := []string{"0", "1", "2", "3", "4"}; !reflect.DeepEqual(outcome.Path, want) {
		t.Errorf("path = %v, want %v", outcome.Path, want)
	}
	if outcome.NodesExplored != 5 {
		t.Errorf("nodes explored = %d, want 5", outcome.NodesExplored)
	}
}

// A limit that stops short of the goal reports depth_limit_reached, not
// exhaustion: the bound actually blocked an expansion.
func TestDepthLimited_LimitBlocksGoal(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	_, outcome := runToEnd(t, a, search.DepthLimited, search.WithDepthLimit(2))
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Reason != search.ReasonDepthLimit {
		t.Errorf("reason = %q, want %q", outcome.Reason, search.ReasonDepthLimit)
	}
	if outcome.NodesExplored != 3 {
		t.Errorf("nodes explored = %d, want 3", outcome.NodesExplored)
	}
}

// A generous limit over a graph with an unreachable goal exhausts the
// reachable component without the bound ever biting.
func TestDepthLimited_UnreachableGoalIsExhaustion(t *testing.T) {
	a := newAgent(t, isolatedGoalGraph(t), "0", "9")

	_, outcome := runToEnd(t, a, search.DepthLimited, search.WithDepthLimit(8))
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Reason != search.ReasonExhausted {
		t.Errorf("reason = %q, want %q", outcome.Reason, search.ReasonExhausted)
	}
}

func TestIterativeDeepening_Chain(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	_, outcome := runToEnd(t, a, search.IterativeDeepening)
	if !outcome.Success {
		t.Fatalf("expected success, got reason %q", outcome.Reason)
	}
	if want := []string{"0", "1", "2", "3", "4"}; !reflect.DeepEqual(outcome.Path, want) {
		t.Errorf("path = %v, want %v", outcome.Path, want)
	}
	if outcome.Cost != 4 {
		t.Errorf("cost = %v, want 4", outcome.Cost)
	}
	// passes at limits 0..4 re-expand 1+2+3+4+5 nodes
	if outcome.NodesExplored != 15 {
		t.Errorf("nodes explored = %d, want 15", outcome.NodesExplored)
	}
}

// Capping the escalation below the goal depth classifies the failure by
// the final pass, which the bound cut short.
func TestIterativeDeepening_MaxDepthTooSmall(t *testing.T) {
	g := chainGraph(t)
	a := newAgent(t, g, "0", "4")

	_, outcome := runToEnd(t, a, search.IterativeDeepening, search.WithMaxDepth(2))
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Reason != search.ReasonDepthLimit {
		t.Errorf("reason = %q, want %q", outcome.Reason, search.ReasonDepthLimit)
	}
	if outcome.NodesExplored != 6 {
		t.Errorf("nodes explored = %d, want 6", outcome.NodesExplored)
	}
}

// Once the limit exceeds the reachable component's depth the final pass
// is a clean exhaustion even though earlier passes were pruned.
func TestIterativeDeepening_UnreachableGoal(t *testing.T) {
	a := newAgent(t, isolatedGoalGraph(t), "0", "9")

	_, outcome := runToEnd(t, a, search.IterativeDeepening, search.WithMaxDepth(10))
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Reason != search.ReasonExhausted {
		t.Errorf("reason = %q, want %q", outcome.Reason, search.ReasonExhausted)
	}
	// limits 0 and 1 expand 1 and 2 nodes, limits 2..10 expand all 3
	if outcome.NodesExplored != 30 {
		t.Errorf("nodes explored = %d, want 30", outcome.NodesExplored)
	}
}
