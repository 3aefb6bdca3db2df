package search

import (
	"github.com/kavindamihiran/ai-search/frontier"
)

// uniformCost expands the cheapest accumulated path first. A neighbor is
// re-pushed whenever a strictly cheaper path to it is found; the priority
// frontier treats the latest push as authoritative, so stale entries are
// skipped on pop via the visited check.
func (a *Agent) uniformCost(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	pq := frontier.NewPriorityQueue()
	a.cost[a.source] = 0
	pq.Push(a.source, 0)
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})

	if !a.observe(yield) {
		return
	}

	for pq.Len() > 0 {
		current, _, _ := pq.Pop()
		a.current = current
		a.fringe = pq.Snapshot()

		if _, seen := visited[current]; seen {
			continue
		}

		a.markVisited(current)
		g := a.cost[current]
		a.info = nodeInfo{g: g, h: 0, f: g}
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
			if _, seen := visited[nb]; seen {
				continue
			}
			newCost := a.cost[current] + a.g.Weight(current, nb)
			if !pq.Contains(nb) || newCost < a.cost[nb] {
				a.cost[nb] = newCost
				a.parent[nb] = current
				pq.Push(nb, newCost)
			}
		}

		a.fringe = pq.Snapshot()
		if !a.observe(yield) {
			return
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}

// greedyBestFirst expands the node whose static heuristic looks closest to
// a goal. An expansion that admits nothing while the frontier is empty
// terminates immediately as a dead-end, distinct from ordinary exhaustion.
func (a *Agent) greedyBestFirst(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	pq := frontier.NewPriorityQueue()
	pq.Push(a.source, a.g.Node(a.source).Heuristic)
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})

	if !a.observe(yield) {
		return
	}

	for pq.Len() > 0 {
		current, _, _ := pq.Pop()
		a.current = current
		a.fringe = pq.Snapshot()

		if _, seen := visited[current]; seen {
			continue
		}

		a.markVisited(current)
		h := a.g.Node(current).Heuristic
		a.info = nodeInfo{g: a.cost[current], h: h, f: h}
		if !a.observe(yield) {
			return
		}

		a.recordVisit(current)
		visited[current] = struct{}{}

		if a.isGoal(current) {
			a.finishSuccess(current, yield)

			return
		}

		admitted := 0
		for _, nb := range a.g.SortedNeighbors(current) {
			if _, seen := visited[nb]; seen {
				continue
			}
			if pq.Contains(nb) {
				continue
			}
			a.cost[nb] = a.cost[current] + a.g.Weight(current, nb)
			a.parent[nb] = current
			pq.Push(nb, a.g.Node(nb).Heuristic)
			admitted++
		}

		if admitted == 0 && pq.Len() == 0 {
			a.finishFailure(ReasonDeadEnd, yield)

			return
		}

		a.fringe = pq.Snapshot()
		if !a.observe(yield) {
			return
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}

// aStar orders expansion by f = g + h. Admission mirrors uniform-cost; the
// priority adds the neighbor's static heuristic on top of the improved g.
func (a *Agent) aStar(yield func(Snapshot) bool) {
	a.resetState()
	if len(a.goals) == 0 {
		a.reason = ReasonNoGoal

		return
	}

	pq := frontier.NewPriorityQueue()
	a.cost[a.source] = 0
	src := a.g.Node(a.source)
	pq.Push(a.source, src.Heuristic) // f = 0 + h(source)
	a.fringe = []string{a.source}
	visited := make(map[string]struct{})

	if !a.observe(yield) {
		return
	}

	for pq.Len() > 0 {
		current, _, _ := pq.Pop()
		a.current = current
		a.fringe = pq.Snapshot()

		if _, seen := visited[current]; seen {
			continue
		}

		a.markVisited(current)
		g := a.cost[current]
		h := a.g.Node(current).Heuristic
		a.info = nodeInfo{g: g, h: h, f: g + h}
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
			if _, seen := visited[nb]; seen {
				continue
			}
			newCost := a.cost[current] + a.g.Weight(current, nb)
			if !pq.Contains(nb) || newCost < a.cost[nb] {
				a.cost[nb] = newCost
				a.parent[nb] = current
				pq.Push(nb, newCost+a.g.Node(nb).Heuristic)
			}
		}

		a.fringe = pq.Snapshot()
		if !a.observe(yield) {
			return
		}
	}

	a.finishFailure(ReasonExhausted, yield)
}
