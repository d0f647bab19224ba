package sandhi

// keyPath is a START→END walk expressed as a sequence of internal node
// keys (including the START/END sentinels), with its accumulated cost.
type keyPath struct {
	nodes []string
	cost  float64
}

// topoOrder returns every node key (sentinels included) in a topological
// order consistent with g.out, via Kahn's algorithm. The graph is
// guaranteed acyclic once locked (spec §3 invariant), so this always
// succeeds for a correctly built SandhiGraph.
func (g *Graph) topoOrder() []string {
	indeg := make(map[string]int)
	all := make(map[string]bool)
	all[startKey] = true
	all[endKey] = true
	for from, tos := range g.out {
		all[from] = true
		for to := range tos {
			all[to] = true
			indeg[to]++
		}
	}
	queue := make([]string, 0, len(all))
	for n := range all {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}
	order := make([]string, 0, len(all))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for to := range g.out[n] {
			indeg[to]--
			if indeg[to] == 0 {
				queue = append(queue, to)
			}
		}
	}
	return order
}

// shortestPath finds the minimum-cost walk from `from` to endKey using a
// single relaxation pass over topo (a precomputed topological order of the
// whole graph), skipping removedNodes and removedEdges. Because the graph
// is acyclic, one pass in topological order suffices regardless of edge
// sign (spec §9: weights may be negative log-likelihoods).
func (g *Graph) shortestPath(topo []string, w func(from, to string) float64, from string, removedNodes map[string]bool, removedEdges map[[2]string]bool) (keyPath, bool) {
	const inf = 1e18
	dist := make(map[string]float64, len(topo))
	prev := make(map[string]string, len(topo))
	started := false
	for _, n := range topo {
		if n == from {
			dist[n] = 0
			started = true
		}
		if !started {
			continue
		}
		if removedNodes[n] && n != from {
			continue
		}
		d, ok := dist[n]
		if !ok {
			continue
		}
		for to := range g.out[n] {
			if removedNodes[to] {
				continue
			}
			if removedEdges[[2]string{n, to}] {
				continue
			}
			nd := d + w(n, to)
			if cur, ok := dist[to]; !ok || nd < cur {
				dist[to] = nd
				prev[to] = n
			}
		}
	}
	if _, ok := dist[endKey]; !ok {
		return keyPath{}, false
	}
	// Reconstruct path from -> ... -> endKey.
	var rev []string
	cur := endKey
	for cur != from {
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok {
			return keyPath{}, false
		}
		cur = p
	}
	rev = append(rev, from)
	nodes := make([]string, len(rev))
	for i, n := range rev {
		nodes[len(rev)-1-i] = n
	}
	return keyPath{nodes: nodes, cost: dist[endKey]}, true
}

func pathCostPrefix(nodes []string, end int, w func(from, to string) float64) float64 {
	var total float64
	for i := 0; i < end; i++ {
		total += w(nodes[i], nodes[i+1])
	}
	return total
}

func samePrefix(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalKeyPath(a, b []string) bool {
	return samePrefix(a, b)
}

func containsKeyPath(set []keyPath, p []string) bool {
	for _, kp := range set {
		if equalKeyPath(kp.nodes, p) {
			return true
		}
	}
	return false
}

// yenKShortest returns up to k loopless shortest START→END walks (by key),
// ranked ascending by cost, via Yen's algorithm. Ties break on discovery
// order, which is deterministic for a fixed graph and weight function
// (spec §4.D tie-breaking: implementation-defined but stable within a run).
func (g *Graph) yenKShortest(k int, w func(from, to string) float64) []keyPath {
	if k <= 0 {
		return nil
	}
	topo := g.topoOrder()
	first, ok := g.shortestPath(topo, w, startKey, nil, nil)
	if !ok {
		return nil
	}
	A := []keyPath{first}
	var B []keyPath

	for len(A) < k {
		prevPath := A[len(A)-1].nodes
		for i := 0; i < len(prevPath)-1; i++ {
			spurNode := prevPath[i]
			rootPath := prevPath[:i+1]

			removedEdges := make(map[[2]string]bool)
			for _, p := range A {
				if len(p.nodes) > i && samePrefix(p.nodes[:i+1], rootPath) {
					removedEdges[[2]string{p.nodes[i], p.nodes[i+1]}] = true
				}
			}
			removedNodes := make(map[string]bool)
			for _, n := range rootPath[:len(rootPath)-1] {
				removedNodes[n] = true
			}

			spur, ok := g.shortestPath(topo, w, spurNode, removedNodes, removedEdges)
			if !ok {
				continue
			}
			total := make([]string, 0, i+len(spur.nodes))
			total = append(total, rootPath[:len(rootPath)-1]...)
			total = append(total, spur.nodes...)
			cost := pathCostPrefix(rootPath, len(rootPath)-1, w) + spur.cost

			if containsKeyPath(A, total) || containsKeyPath(B, total) {
				continue
			}
			B = append(B, keyPath{nodes: total, cost: cost})
		}
		if len(B) == 0 {
			break
		}
		bestIdx := 0
		for i := 1; i < len(B); i++ {
			if B[i].cost < B[bestIdx].cost {
				bestIdx = i
			}
		}
		A = append(A, B[bestIdx])
		B = append(B[:bestIdx], B[bestIdx+1:]...)
	}
	return A
}
