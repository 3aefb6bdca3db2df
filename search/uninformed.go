package search

import (
	"github.com/kavindamihiran/ai-search/frontier"
	"github.com/kavindamihiran/ai-search/graph"
)

// breadthFirst explores level by level through a FIFO frontier. Admission
// filters duplicates up front, so popped nodes are never skipped.
func (a *Agent) breadthFirst(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	queue := frontier.NewQueue[string]()
	queue.Push(a.source)
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})

	if !a.observe(yield) {
		return
	}

	for queue.Len() > 0 {
		current, _ := queue.Pop()
		a.current = current
		a.fringe = queue.Snapshot()

		a.markVisited(current)
		a.setInfo(current)
		// color change is shown before the node is recorded as processed
		if !a.observe(yield) {
			return
		}

		a.recordVisit(current)
		visited[current] = struct{}{}

		if a.isGoal(current) {
			a.finishSuccess(current, yield)

			return
		}

		for _, nb := range a.g.SortedNeighbors(current) {
			if _, seen := visited[nb]; seen || queue.Contains(nb) {
				continue
			}
			a.parent[nb] = current
			a.cost[nb] = a.cost[current] + a.g.Weight(current, nb)
			queue.Push(nb)
		}

		a.fringe = queue.Snapshot()
		if !a.observe(yield) {
			return
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}

// depthFirst dives through a LIFO frontier. Duplicates are admitted and
// filtered on pop; the skip emits no observation point.
func (a *Agent) depthFirst(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	stack := frontier.NewStack[string]()
	stack.Push(a.source)
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})

	if !a.observe(yield) {
		return
	}

	for stack.Len() > 0 {
		current, _ := stack.Pop()
		a.current = current
		a.fringe = stack.Snapshot()

		if _, seen := visited[current]; seen {
			continue
		}

		a.markVisited(current)
		a.setInfo(current)
		if !a.observe(yield) {
			return
		}

		a.recordVisit(current)
		visited[current] = struct{}{}

		if a.isGoal(current) {
			a.finishSuccess(current, yield)

			return
		}

		// pushed in reverse sorted order so pop order is ascending (x, y)
		neighbors := a.g.SortedNeighbors(current)
		for i := len(neighbors) - 1; i >= 0; i-- {
			nb := neighbors[i]
			if _, seen := visited[nb]; seen {
				continue
			}
			a.parent[nb] = current
			a.cost[nb] = a.cost[current] + a.g.Weight(current, nb)
			stack.Push(nb)
		}

		a.fringe = stack.Snapshot()
		if !a.observe(yield) {
			return
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}

// depthEntry pairs a frontier node with the depth it was admitted at.
type depthEntry struct {
	id    string
	depth int
}

// passOutcome reports how a single depth-bounded pass ended.
type passOutcome int

const (
	passAborted   passOutcome = iota // caller stopped pulling
	passFound                        // goal reached; terminal point emitted
	passExhausted                    // frontier emptied, limit never blocked anything
	passPruned                       // frontier emptied, limit blocked at least one expansion
)

// depthBoundedPass runs one depth-limited sweep to completion: seed, loop,
// and — on success — the terminal observation point. Failure reporting is
// left to the caller, which knows whether another pass follows.
func (a *Agent) depthBoundedPass(limit int, yield func(Snapshot) bool) passOutcome {
	stack := frontier.NewStack[depthEntry]()
	stack.Push(depthEntry{id: a.source, depth: 0})
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})
	pruned := false

	if !a.observe(yield) {
		return passAborted
	}

	for stack.Len() > 0 {
		entry, _ := stack.Pop()
		current, depth := entry.id, entry.depth
		a.current = current
		a.fringe = entryNames(stack.Snapshot())

		if _, seen := visited[current]; seen {
			continue
		}

		a.markVisited(current)
		a.setInfo(current)
		if !a.observe(yield) {
			return passAborted
		}

		a.recordVisit(current)
		visited[current] = struct{}{}

		if a.isGoal(current) {
			a.finishSuccess(current, yield)

			return passFound
		}

		neighbors := a.g.SortedNeighbors(current)
		if depth < limit {
			for i := len(neighbors) - 1; i >= 0; i-- {
				nb := neighbors[i]
				if _, seen := visited[nb]; seen {
					continue
				}
				a.parent[nb] = current
				a.cost[nb] = a.cost[current] + a.g.Weight(current, nb)
				stack.Push(depthEntry{id: nb, depth: depth + 1})
			}
		} else {
			for _, nb := range neighbors {
				if _, seen := visited[nb]; !seen {
					pruned = true

					break
				}
			}
		}

		a.fringe = entryNames(stack.Snapshot())
		if !a.observe(yield) {
			return passAborted
		}
	}

	if pruned {
		return passPruned
	}

	return passExhausted
}

// depthLimited is a single depth-bounded sweep. Failure reads
// ReasonDepthLimit only when the limit actually blocked an expansion;
// otherwise the graph was genuinely exhausted.
func (a *Agent) depthLimited(limit int, yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	switch a.depthBoundedPass(limit, yield) {
	case passAborted, passFound:
		return
	case passPruned:
		a.finishFailure(ReasonDepthLimit, yield)
	case passExhausted:
		a.finishFailure(ReasonExhausted, yield)
	}
}

// iterativeDeepening escalates the depth limit from 0 to maxDepth, running
// a full depth-bounded pass at each limit. Visited/traversal accumulators
// and the expansion counter carry across passes; node display states and
// the parent tree are rebuilt per pass. Failure is reported only after the
// final limit, classified by how that last pass ended.
func (a *Agent) iterativeDeepening(maxDepth int, yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	last := passExhausted
	for limit := 0; limit <= maxDepth; limit++ {
		for _, id := range a.g.NodeIDs() {
			n := a.g.Node(id)
			if n.State != graph.StateSource && n.State != graph.StateGoal {
				n.State = graph.StateEmpty
			}
		}
		a.parent = make(map[string]string)
		a.cost = make(map[string]float64)

		last = a.depthBoundedPass(limit, yield)
		if last == passAborted || last == passFound {
			return
		}
	}

	if last == passPruned {
		a.finishFailure(ReasonDepthLimit, yield)

		return
	}
	a.finishFailure(ReasonExhausted, yield)
}

// entryNames projects a depth-carrying frontier snapshot onto node names.
func entryNames(entries []depthEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.id
	}

	return names
}
