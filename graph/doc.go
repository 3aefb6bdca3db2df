// Package graph provides the shared mutable graph model consumed by the
// search engine: positioned, heuristic-carrying nodes keyed by a stable
// name, with directed weighted adjacency owned by the graph.
//
// What
//
//   - Node: identity (Name), canvas position (X, Y), heuristic estimate,
//     optional human-readable Label, and a display State
//     (Empty, Source, Goal, Visited, Path).
//   - Graph: name → Node registry plus a forward adjacency map
//     name → name → weight. Edges are strictly directed; an undirected
//     connection is two explicit edges.
//   - Deterministic accessors: NodeIDs (sorted by name), SortedNeighbors and
//     NodesByPosition (ascending x, then y, then name) — the single
//     tie-break rule every search algorithm relies on.
//
// Why
//
//   - Node identity and all membership tests are governed solely by Name;
//     position, weight and state may mutate freely without invalidating
//     visited/frontier bookkeeping.
//   - Absent edges read as +Inf weight (Weight), so path-cost arithmetic
//     needs no special cases.
//
// Determinism
//
//	SortedNeighbors and NodesByPosition order by (x, y, name). Two graphs
//	with identical geometry therefore expand neighbors identically,
//	regardless of insertion order.
//
// Concurrency
//
//	The model is owned by a single goroutine at a time. The engine mutates
//	node display states in place during a run; callers that share a graph
//	across goroutines must serialize access externally.
//
// Errors
//
//   - ErrEmptyNodeName      if a node is added with an empty name.
//   - ErrDuplicateNode      if a node name is already registered.
//   - ErrNodeNotFound       if an operation references an unknown node.
//   - ErrNegativeWeight     if an edge weight is negative.
//   - ErrNegativeHeuristic  if a node heuristic is negative.
package graph
