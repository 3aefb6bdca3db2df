package graph

import (
	"errors"
	"math"
)

// DefaultEdgeWeight is the weight assigned by Connect when no explicit
// weight is supplied.
const DefaultEdgeWeight = 99

// Sentinel errors for graph model operations.
var (
	// ErrEmptyNodeName indicates that the provided node name is empty.
	ErrEmptyNodeName = errors.New("graph: node name is empty")

	// ErrDuplicateNode indicates a node with the same name already exists.
	ErrDuplicateNode = errors.New("graph: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNegativeHeuristic indicates a negative heuristic value was supplied.
	ErrNegativeHeuristic = errors.New("graph: negative heuristic")
)

// State is the display state of a node. It exists purely for rendering;
// no algorithm decision depends on it.
type State int

const (
	// StateEmpty is the default state of an undesignated node.
	StateEmpty State = iota

	// StateSource marks the single starting node of the active search.
	StateSource

	// StateGoal marks a designated goal node.
	StateGoal

	// StateVisited marks a node the running search has expanded.
	StateVisited

	// StatePath marks a node on the reconstructed final path.
	StatePath
)

var stateNames = [...]string{"empty", "source", "goal", "visited", "path"}

// String returns the canonical lowercase name of the state.
func (s State) String() string {
	if s < StateEmpty || s > StatePath {
		return "empty"
	}

	return stateNames[s]
}

// ParseState maps a canonical state name back to its State value.
// Unknown names resolve to StateEmpty.
func ParseState(name string) State {
	for i, n := range stateNames {
		if n == name {
			return State(i)
		}
	}

	return StateEmpty
}

// Node represents a single vertex of the search graph.
//
// Name uniquely identifies the node; equality and every membership test in
// the engine are keyed on Name alone. Label, when non-empty, is a
// human-readable alias used by display and serialization layers — it never
// participates in identity.
type Node struct {
	// Name is the stable, caller-assigned identity of this node.
	Name string

	// Label is an optional display alias. Identity stays with Name.
	Label string

	// X, Y position the node on the canvas. Used only for deterministic
	// neighbor ordering and distance, never for correctness.
	X, Y float64

	// Heuristic is the estimated cost from this node to a goal (h-value).
	// Always >= 0; defaults to 0.
	Heuristic float64

	// State is the current display state, mutated in place by a running
	// search and reset at the start of the next run.
	State State
}

// DistanceTo returns the Euclidean distance to other, e.g. for callers
// deriving straight-line heuristics from node positions.
func (n *Node) DistanceTo(other *Node) float64 {
	dx, dy := n.X-other.X, n.Y-other.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// DisplayName returns Label when set, otherwise Name.
func (n *Node) DisplayName() string {
	if n.Label != "" {
		return n.Label
	}

	return n.Name
}

// Graph is the in-memory graph model: a node registry plus forward-only
// weighted adjacency. Edges are directed; representing an undirected
// connection means inserting both directions explicitly.
type Graph struct {
	nodes map[string]*Node

	// adjacency[from][to] = weight; absence of an entry means +Inf.
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]float64),
	}
}
