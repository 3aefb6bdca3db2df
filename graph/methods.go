package graph

import (
	"fmt"
	"math"
	"sort"
)

// AddNode registers a new node with the given name, position and heuristic.
// Returns ErrEmptyNodeName, ErrDuplicateNode or ErrNegativeHeuristic on
// invalid input.
// Complexity: O(1)
func (g *Graph) AddNode(name string, x, y, heuristic float64) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	if heuristic < 0 {
		return nil, fmt.Errorf("%w: node %q h=%v", ErrNegativeHeuristic, name, heuristic)
	}

	n := &Node{Name: name, X: x, Y: y, Heuristic: heuristic}
	g.nodes[name] = n
	g.adjacency[name] = make(map[string]float64)

	return n, nil
}

// Node returns the node registered under name, or nil if absent.
// Complexity: O(1)
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1)
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// AddEdge inserts (or overwrites) the directed edge from → to with the
// given weight. Both endpoints must already exist; the weight must be
// non-negative. The reverse edge is never implied.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: edge source %q", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: edge target %q", ErrNodeNotFound, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	g.adjacency[from][to] = weight

	return nil
}

// Connect inserts the directed edge from → to with DefaultEdgeWeight.
func (g *Graph) Connect(from, to string) error {
	return g.AddEdge(from, to, DefaultEdgeWeight)
}

// RemoveEdge deletes the directed edge from → to if present. Removing an
// absent edge is a no-op; nodes themselves are never deleted by the engine.
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to string) {
	if adj, ok := g.adjacency[from]; ok {
		delete(adj, to)
	}
}

// HasEdge reports whether the directed edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the directed edge from → to, or +Inf when
// the edge does not exist. Absence of an edge is an infinite-cost
// connection, so path arithmetic needs no missing-edge special case.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) float64 {
	if w, ok := g.adjacency[from][to]; ok {
		return w
	}

	return math.Inf(1)
}

// Neighbors returns the forward-neighbor weight map of name. The returned
// map is a copy; mutating it does not touch the graph.
// Complexity: O(deg)
func (g *Graph) Neighbors(name string) map[string]float64 {
	adj, ok := g.adjacency[name]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(adj))
	for to, w := range adj {
		out[to] = w
	}

	return out
}

// NodeIDs returns every node name sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// byPosition orders node names ascending by (x, y), with name as the final
// key so coincident positions still order deterministically.
func (g *Graph) byPosition(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := g.nodes[ids[i]], g.nodes[ids[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}

		return a.Name < b.Name
	})
}

// SortedNeighbors returns the forward neighbors of name ordered by
// (x, y, name). This ordering is the sole tie-break rule shared by every
// search algorithm.
// Complexity: O(deg log deg)
func (g *Graph) SortedNeighbors(name string) []string {
	adj, ok := g.adjacency[name]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	g.byPosition(ids)

	return ids
}

// NodesByPosition returns every node name ordered by (x, y, name). The
// bidirectional search scans this sequence to discover reverse edges.
// Complexity: O(V log V)
func (g *Graph) NodesByPosition() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.byPosition(ids)

	return ids
}
