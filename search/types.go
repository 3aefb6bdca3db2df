package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for agent construction and run startup.
var (
	// ErrNilGraph is returned if a nil *graph.Graph is passed to NewAgent.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSourceNotFound indicates the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("search: source node not found")

	// ErrGoalNotFound indicates a goal node does not exist in the graph.
	ErrGoalNotFound = errors.New("search: goal node not found")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm identifier.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrRunActive is returned when a run is started while a previous run
	// on the same agent has neither finished nor been closed.
	ErrRunActive = errors.New("search: a run is already active")
)

// Algorithm identifies one of the eight search strategies.
type Algorithm string

// Algorithm identifiers accepted by Agent.Run.
const (
	BreadthFirst       Algorithm = "bfs"
	DepthFirst         Algorithm = "dfs"
	DepthLimited       Algorithm = "dls"
	IterativeDeepening Algorithm = "ids"
	UniformCost        Algorithm = "ucs"
	GreedyBestFirst    Algorithm = "greedy"
	AStar              Algorithm = "astar"
	Bidirectional      Algorithm = "bidirectional"
)

// Algorithms lists every supported identifier in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{
		BreadthFirst, DepthFirst, DepthLimited, IterativeDeepening,
		UniformCost, GreedyBestFirst, AStar, Bidirectional,
	}
}

// ParseAlgorithm validates an algorithm identifier string.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// FailureReason classifies why a run ended without reaching a goal.
// The empty value means no failure (run succeeded or is still going).
type FailureReason string

const (
	// ReasonNone: no failure recorded.
	ReasonNone FailureReason = ""

	// ReasonNoGoal: the run was requested with no goal configured; the
	// engine performs no steps and reports immediately.
	ReasonNoGoal FailureReason = "no_goal_configured"

	// ReasonExhausted: the frontier emptied without reaching any goal.
	ReasonExhausted FailureReason = "exhausted"

	// ReasonDeadEnd: greedy best-first admitted zero neighbors while the
	// frontier was simultaneously empty.
	ReasonDeadEnd FailureReason = "stuck_dead_end"

	// ReasonDepthLimit: the depth limit blocked an expansion in the
	// deciding depth-limited or iterative-deepening pass.
	ReasonDepthLimit FailureReason = "depth_limit_reached"
)

// Option configures run behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Agent.Run is invoked.
type Option func(*Options)

// Options holds the per-run parameters.
type Options struct {
	// DepthLimit bounds depth-limited search. Nodes at this depth are not
	// expanded further. Default 5.
	DepthLimit int

	// MaxDepth bounds iterative deepening: limits 0..MaxDepth are tried in
	// order. Default 10.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DepthLimit 5 and MaxDepth 10.
func DefaultOptions() Options {
	return Options{DepthLimit: 5, MaxDepth: 10}
}

// WithDepthLimit sets the depth bound for depth-limited search.
// Negative values are an option violation.
func WithDepthLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, limit)

			return
		}
		o.DepthLimit = limit
	}
}

// WithMaxDepth sets the largest limit iterative deepening escalates to.
// Negative values are an option violation.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, depth)

			return
		}
		o.MaxDepth = depth
	}
}

// Snapshot is the read-only view of engine state handed to the caller at
// each observation point. Slices are independent copies and stay valid
// across further advancement of the run.
type Snapshot struct {
	// Algorithm that produced this snapshot.
	Algorithm Algorithm `json:"algorithm"`

	// Current is the node most recently popped for expansion; empty on the
	// seed snapshot.
	Current string `json:"current,omitempty"`

	// Fringe lists the frontier contents in pop order. For bidirectional
	// search it is the forward frontier followed by the backward one.
	Fringe []string `json:"fringe"`

	// Visited lists expanded nodes in discovery order.
	Visited []string `json:"visited"`

	// Traversal equals Visited for playback purposes.
	Traversal []string `json:"traversal"`

	// Path is the reconstructed source→goal node sequence; empty until the
	// run succeeds.
	Path []string `json:"path"`

	// G, H and F describe the current node: accumulated cost, heuristic
	// estimate, and the ordering value of the running algorithm.
	G float64 `json:"g"`
	H float64 `json:"h"`
	F float64 `json:"f"`

	// NodesExplored counts expansions so far.
	NodesExplored int `json:"nodes_explored"`

	// Success is true once a goal has been reached.
	Success bool `json:"success"`

	// Reason is the failure classification, ReasonNone while none applies.
	Reason FailureReason `json:"failure_reason,omitempty"`

	// Done marks the final observation point of the run.
	Done bool `json:"done"`
}

// Outcome is the final result of a run, available once the step sequence
// is exhausted or closed.
type Outcome struct {
	Success       bool          `json:"success"`
	Path          []string      `json:"path"`
	Cost          float64       `json:"cost"`
	Reason        FailureReason `json:"failure_reason,omitempty"`
	NodesExplored int           `json:"nodes_explored"`
}

// nodeInfo carries the g/h/f display values of the current node.
type nodeInfo struct {
	g, h, f float64
}
