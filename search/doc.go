// Package search implements eight classical graph-search strategies as
// deterministic, suspendable step sequences over a graph.Graph, suitable
// for external step-by-step playback.
//
// What
//
//   - Agent: constructed from a graph, a source node and a set of goal
//     nodes; owns the per-run bookkeeping (fringe, visited, traversal,
//     path, metrics, failure reason).
//   - Run: a pull-based, finite, non-restartable step sequence obtained
//     from Agent.Run. Each Next call advances the search to its next
//     observation point and returns an independent Snapshot copy; Close
//     cancels; Outcome reports the final result.
//   - Algorithms: breadth-first, depth-first, depth-limited,
//     iterative-deepening, uniform-cost, greedy best-first, A*, and
//     bidirectional search, all sharing one expansion discipline and a
//     single tie-break rule (neighbors ascending by x, then y).
//
// Observation points
//
//	Every algorithm emits a snapshot at the same places: after seeding the
//	frontier, after a popped node changes display state but before it is
//	recorded as processed, after each expansion refreshes the fringe, and
//	once more on termination. A renderer can therefore show a node change
//	color before it appears in the visited list.
//
// Failure taxonomy
//
//	Negative outcomes are typed FailureReason values, never errors:
//	ReasonNoGoal (run requested with no goal set; zero steps),
//	ReasonExhausted (frontier emptied), ReasonDeadEnd (greedy best-first
//	expanded into nothing with an empty frontier), and ReasonDepthLimit
//	(the depth limit blocked an expansion in the deciding depth-limited or
//	iterative-deepening pass).
//
// Determinism
//
//	Two runs of the same algorithm on the same graph visit nodes in the
//	identical order and produce the identical path. Candidate neighbors
//	are sorted before frontier insertion, so frontiers only need stable
//	insertion order.
//
// Concurrency
//
//	At most one run per agent is live at a time (Run returns ErrRunActive
//	otherwise); graph node states are mutated in place during a run, so
//	runs over a shared graph must be serialized by the caller. There is no
//	background execution: a run advances only inside Next.
//
// Errors
//
//   - ErrNilGraph         if the agent is constructed over a nil graph.
//   - ErrSourceNotFound   if the source node is not in the graph.
//   - ErrGoalNotFound     if a goal node is not in the graph.
//   - ErrUnknownAlgorithm if Run is asked for an unknown algorithm.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrRunActive        if a run is started while another is live.
package search
