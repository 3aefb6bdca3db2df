package search

import (
	"github.com/kavindamihiran/ai-search/frontier"
)

// bidirectional runs two FIFO searches at once: forward from the source
// and backward from the first goal. Each outer iteration advances one
// forward step, then one backward step; a side whose frontier is empty is
// simply skipped while the other continues.
//
// Edges are directed forward only, so the backward side cannot walk
// adjacency directly. It instead scans the whole graph in (x, y) order and
// admits every node that lists the popped backward node among its forward
// neighbors. This asymmetry is the defined behavior on directed graphs,
// not an optimization target.
//
// The run terminates the instant a popped node from either direction
// already appears in the other direction's visited-parent map. The final
// path splices the two chains and recomputes cost from real edge weights,
// because backward discovery order never tracked weights.
func (a *Agent) bidirectional(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}
	goal := a.goals[0]

	fwd := frontier.NewQueue[string]()
	bwd := frontier.NewQueue[string]()
	fwd.Push(a.source)
	bwd.Push(goal)

	// per-direction visited-parent maps; roots map to ""
	fwdParent := map[string]string{a.source: ""}
	bwdParent := map[string]string{goal: ""}

	a.fringe = []string{a.source, goal}

	if !a.observe(yield) {
		return
	}

	for fwd.Len() > 0 || bwd.Len() > 0 {
		if fwd.Len() > 0 {
			current, _ := fwd.Pop()
			a.current = current
			a.markVisited(current)
			a.setInfo(current)
			if !a.observe(yield) {
				return
			}

			a.recordVisit(current)

			if _, met := bwdParent[current]; met {
				a.finishMeeting(current, fwdParent, bwdParent, yield)

				return
			}

			for _, nb := range a.g.SortedNeighbors(current) {
				if _, known := fwdParent[nb]; known {
					continue
				}
				fwdParent[nb] = current
				a.cost[nb] = a.cost[current] + a.g.Weight(current, nb)
				fwd.Push(nb)
			}

			a.fringe = append(fwd.Snapshot(), bwd.Snapshot()...)
			if !a.observe(yield) {
				return
			}
		}

		if bwd.Len() > 0 {
			current, _ := bwd.Pop()
			a.current = current
			a.markVisited(current)
			a.info = nodeInfo{}
			if !a.observe(yield) {
				return
			}

			a.recordVisit(current)

			if _, met := fwdParent[current]; met {
				a.finishMeeting(current, fwdParent, bwdParent, yield)

				return
			}

			// reverse-edge discovery: full scan in (x, y) order
			for _, candidate := range a.g.NodesByPosition() {
				if !a.g.HasEdge(candidate, current) {
					continue
				}
				if _, known := bwdParent[candidate]; known {
					continue
				}
				bwdParent[candidate] = current
				bwd.Push(candidate)
			}

			a.fringe = append(fwd.Snapshot(), bwd.Snapshot()...)
			if !a.observe(yield) {
				return
			}
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}

// finishMeeting splices the forward and backward chains at meet, marks the
// path, and emits the terminal observation point.
func (a *Agent) finishMeeting(meet string, fwdParent, bwdParent map[string]string, yield func(Snapshot) bool) {
	a.success = true
	a.path = a.splicePaths(meet, fwdParent, bwdParent)
	a.markPath()
	a.done = true
	a.observe(yield)
}
