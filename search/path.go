package search

// reconstructPath walks parent links from terminal back to the source,
// reverses the chain into source→goal order, and records the total cost as
// the sum of actual edge weights along it.
func (a *Agent) reconstructPath(terminal string) []string {
	path := []string{terminal}
	cost := 0.0
	for cur := terminal; ; {
		prev, ok := a.parent[cur]
		if !ok {
			break
		}
		cost += a.g.Weight(prev, cur)
		path = append(path, prev)
		cur = prev
	}
	reverse(path)
	a.pathCost = cost

	return path
}

// splicePaths merges the two half-chains of a bidirectional run at the
// meeting node: the forward chain (source → meet) walked via fwdParent and
// reversed, then the backward chain (after meet → goal) walked via
// bwdParent. The total cost is recomputed by summing real edge weights
// along the merged path, because the backward chain was never tied to
// weights. Roots map to "" in both parent maps.
func (a *Agent) splicePaths(meet string, fwdParent, bwdParent map[string]string) []string {
	forward := []string{}
	for cur := meet; cur != ""; cur = fwdParent[cur] {
		forward = append(forward, cur)
	}
	reverse(forward)

	for cur := bwdParent[meet]; cur != ""; cur = bwdParent[cur] {
		forward = append(forward, cur)
	}

	cost := 0.0
	for i := 0; i+1 < len(forward); i++ {
		cost += a.g.Weight(forward[i], forward[i+1])
	}
	a.pathCost = cost

	return forward
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
