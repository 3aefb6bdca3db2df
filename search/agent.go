package search

import (
	"fmt"
	"iter"

	"github.com/kavindamihiran/ai-search/graph"
)

// Agent drives one of the eight search strategies over a shared graph.
//
// The agent owns all run-local bookkeeping: the parent tree and cost map of
// the active run live in maps keyed by node name, never on the shared node
// records, so a stale renderer can never observe partial mutation. Only the
// display State field of each node is written in place.
type Agent struct {
	g       *graph.Graph
	source  string
	goals   []string
	goalSet map[string]struct{}

	// run-local accumulators; valid for the single live run
	fringe        []string
	visited       []string
	traversal     []string
	path          []string
	parent        map[string]string
	cost          map[string]float64
	current       string
	info          nodeInfo
	nodesExplored int
	pathCost      float64
	success       bool
	reason        FailureReason
	done          bool

	algorithm Algorithm
	active    bool
}

// NewAgent constructs an agent over g with the given source and goal set.
// The source node is marked StateSource and each goal StateGoal. An empty
// goal set is legal at construction; a run started without goals reports
// ReasonNoGoal without performing any steps.
//
// Malformed graphs cannot be expressed through the graph package (dangling
// endpoints and negative weights are rejected by AddEdge), so validation
// here is limited to node existence.
func NewAgent(g *graph.Graph, source string, goals ...string) (*Agent, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	goalSet := make(map[string]struct{}, len(goals))
	for _, goal := range goals {
		if !g.HasNode(goal) {
			return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
		}
		goalSet[goal] = struct{}{}
	}

	// demote stale designations first: a graph rebuilt from a serialized
	// document (or handed over from an earlier agent) may still carry
	// source/goal states, which resetState deliberately never touches
	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		if n.State == graph.StateSource || n.State == graph.StateGoal {
			n.State = graph.StateEmpty
		}
	}
	g.Node(source).State = graph.StateSource
	for _, goal := range goals {
		g.Node(goal).State = graph.StateGoal
	}

	return &Agent{g: g, source: source, goals: goals, goalSet: goalSet}, nil
}

// Run starts a step sequence for the chosen algorithm. The returned Run is
// finite and not restartable: pull snapshots with Next until it reports
// false, or abandon it with Close. Only one run per agent may be live.
func (a *Agent) Run(algo Algorithm, opts ...Option) (*Run, error) {
	if a.active {
		return nil, ErrRunActive
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var seq iter.Seq[Snapshot]
	switch algo {
	case BreadthFirst:
		seq = a.breadthFirst
	case DepthFirst:
		seq = a.depthFirst
	case DepthLimited:
		seq = func(yield func(Snapshot) bool) { a.depthLimited(o.DepthLimit, yield) }
	case IterativeDeepening:
		seq = func(yield func(Snapshot) bool) { a.iterativeDeepening(o.MaxDepth, yield) }
	case UniformCost:
		seq = a.uniformCost
	case GreedyBestFirst:
		seq = a.greedyBestFirst
	case AStar:
		seq = a.aStar
	case Bidirectional:
		seq = a.bidirectional
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	a.algorithm = algo
	a.active = true
	next, stop := iter.Pull(seq)

	return &Run{agent: a, algorithm: algo, next: next, stop: stop}, nil
}

// Source returns the source node name.
func (a *Agent) Source() string { return a.source }

// Goals returns the configured goal names in their original order.
func (a *Agent) Goals() []string {
	out := make([]string, len(a.goals))
	copy(out, a.goals)

	return out
}

// resetState clears every transient field before a run: run accumulators,
// metrics, failure reason, and the display state of every node except the
// designated source and goals.
func (a *Agent) resetState() {
	a.fringe = nil
	a.visited = nil
	a.traversal = nil
	a.path = nil
	a.parent = make(map[string]string)
	a.cost = make(map[string]float64)
	a.current = ""
	a.info = nodeInfo{}
	a.nodesExplored = 0
	a.pathCost = 0
	a.success = false
	a.reason = ReasonNone
	a.done = false

	for _, id := range a.g.NodeIDs() {
		n := a.g.Node(id)
		if n.State != graph.StateSource && n.State != graph.StateGoal {
			n.State = graph.StateEmpty
		}
	}
}

// isGoal reports whether id is one of the designated goals.
func (a *Agent) isGoal(id string) bool {
	_, ok := a.goalSet[id]

	return ok
}

// markVisited flips a popped node's display state to visited, preserving
// the source and goal designations.
func (a *Agent) markVisited(id string) {
	n := a.g.Node(id)
	if n.State != graph.StateSource && n.State != graph.StateGoal {
		n.State = graph.StateVisited
	}
}

// recordVisit appends the current node to the visited and traversal lists
// and bumps the expansion counter. Called after the color-change snapshot,
// never before.
func (a *Agent) recordVisit(id string) {
	a.visited = append(a.visited, id)
	a.traversal = append(a.traversal, id)
	a.nodesExplored++
}

// setInfo records the g/h/f display values of an uninformed strategy,
// which orders by neither cost nor heuristic: g is still populated for
// reporting, h is not consulted.
func (a *Agent) setInfo(id string) {
	g := a.cost[id]
	a.info = nodeInfo{g: g, h: 0, f: g}
}

// markPath flips the display state of every node on the final path,
// preserving the source and goal designations.
func (a *Agent) markPath() {
	for _, id := range a.path {
		n := a.g.Node(id)
		if n.State != graph.StateSource && n.State != graph.StateGoal {
			n.State = graph.StatePath
		}
	}
}

// snapshot builds an independent copy of the current engine state. The
// engine keeps mutating its live structures afterwards; the copy stays
// consistent for the caller.
func (a *Agent) snapshot() Snapshot {
	return Snapshot{
		Algorithm:     a.algorithm,
		Current:       a.current,
		Fringe:        append([]string(nil), a.fringe...),
		Visited:       append([]string(nil), a.visited...),
		Traversal:     append([]string(nil), a.traversal...),
		Path:          append([]string(nil), a.path...),
		G:             a.info.g,
		H:             a.info.h,
		F:             a.info.f,
		NodesExplored: a.nodesExplored,
		Success:       a.success,
		Reason:        a.reason,
		Done:          a.done,
	}
}

// observe emits one observation point. It reports false when the caller
// stopped pulling, in which case the algorithm must unwind immediately.
func (a *Agent) observe(yield func(Snapshot) bool) bool {
	return yield(a.snapshot())
}

// finishSuccess reconstructs the path to goalID, marks path nodes, and
// emits the terminal observation point.
func (a *Agent) finishSuccess(goalID string, yield func(Snapshot) bool) {
	a.success = true
	a.path = a.reconstructPath(goalID)
	a.markPath()
	a.done = true
	a.observe(yield)
}

// finishFailure records reason (keeping an earlier one if already set) and
// emits the terminal observation point.
func (a *Agent) finishFailure(reason FailureReason, yield func(Snapshot) bool) {
	if a.reason == ReasonNone {
		a.reason = reason
	}
	a.done = true
	a.observe(yield)
}

// outcome reports the final result of the last run.
func (a *Agent) outcome() Outcome {
	return Outcome{
		Success:       a.success,
		Path:          append([]string(nil), a.path...),
		Cost:          a.pathCost,
		Reason:        a.reason,
		NodesExplored: a.nodesExplored,
	}
}
