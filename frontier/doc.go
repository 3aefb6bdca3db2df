// Package frontier provides the three frontier families the search engine
// plugs into its shared expansion loop: FIFO queues, LIFO stacks, and a
// minimum-priority queue over node identities.
//
// What
//
//   - Queue[T]: first-in first-out; Pop returns the oldest Push.
//   - Stack[T]: last-in first-out; Pop returns the most recent Push.
//   - PriorityQueue: Pop returns the entry with the lowest priority.
//     Pushing an identity that is already present re-prioritizes it — the
//     latest pushed priority is authoritative (decrease-key by re-push).
//
// All three expose Len, Contains, and a non-mutating ordered Snapshot of
// their present contents, listed in pop order, so a renderer can display
// the fringe without disturbing it.
//
// Determinism
//
//	Ties between equal priorities resolve by insertion order (a monotonic
//	sequence number). The engine sorts candidates before insertion, so
//	stable insertion order is all the priority structure has to guarantee.
//
// Implementation
//
//	PriorityQueue uses container/heap with lazy invalidation: a re-push
//	leaves the superseded heap entry in place and Pop discards entries
//	that are no longer authoritative. Contains and Priority are O(1) via
//	a side map.
package frontier
