package parse

import "github.com/hareeshbabu82ns/sanskrit-parser/vakya"

// Validate filters parses down to those satisfying every global
// constraint a complete spanning forest must meet but a partial one
// cannot yet be checked against (spec §4.H, §9): no karaka assigned twice
// from the same verb, no non-projective crossing among sannidhi-sensitive
// edges, no node receiving two karaka edges, no node both modifying and
// modified by viśeṣaṇa, at most one sambaddha edge per node, conjunction
// sannidhi, and every registered conjunction node having exactly one
// inbound and one outbound edge.
func Validate(g *vakya.Graph, parses []*PartialParse) []*PartialParse {
	out := make([]*PartialParse, 0, len(parses))
	for _, p := range parses {
		if checkParse(g, p) {
			out = append(out, p)
		}
	}
	return out
}

type conjCount struct{ From, To int }

func checkParse(g *vakya.Graph, p *PartialParse) bool {
	edges := p.Edges()

	count := make(map[vakya.NodeID]map[vakya.Label]int)
	toedge := make(map[vakya.NodeID]int)
	fromv := make(map[vakya.NodeID]int)
	tov := make(map[vakya.NodeID]int)
	sk := make(map[vakya.NodeID]int)
	vsmbd := make(map[int]int)
	conj := make(map[vakya.NodeID]*conjCount)
	projEdges := make(map[[2]int]bool)

	conjEntry := func(id vakya.NodeID) *conjCount {
		c, ok := conj[id]
		if !ok {
			c = &conjCount{}
			conj[id] = c
		}
		return c
	}

	for _, e := range edges {
		u, v, l := e.Pred, e.Node, e.Label
		un, vn := g.Node(u), g.Node(v)

		if vakya.IsKaraka(l) {
			if count[u] == nil {
				count[u] = make(map[vakya.Label]int)
			}
			count[u][l]++
			toedge[v]++
		}
		if l == vakya.LabelVisheshanam {
			fromv[u]++
			tov[v]++
		}
		if vakya.IsProjective(l) {
			projEdges[[2]int{un.Index, vn.Index}] = true
		}
		if vakya.IsSambaddha(l) || l == vakya.LabelSambaddhaKriya {
			sk[u]++
		}
		if l == vakya.LabelVakyasambandhah {
			vsmbd[un.Index] = vn.Index
			vsmbd[vn.Index] = un.Index
		}
		if vakya.IsConjunctionBase(un.Base()) {
			conjEntry(u).From++
		}
		if vakya.IsConjunctionBase(vn.Base()) {
			conjEntry(v).To++
		}
	}

	for _, byLabel := range count {
		for _, c := range byLabel {
			if c > 1 {
				return false
			}
		}
	}
	for a := range projEdges {
		for b := range projEdges {
			if nonProjective(a[0], a[1], b[0], b[1]) {
				return false
			}
		}
	}
	for _, c := range toedge {
		if c > 1 {
			return false
		}
	}
	for _, c := range sk {
		if c > 1 {
			return false
		}
	}
	for v := range tov {
		if _, ok := fromv[v]; ok {
			return false
		}
	}
	for _, e := range edges {
		un, vn := g.Node(e.Pred), g.Node(e.Node)
		if partner, ok := vsmbd[un.Index]; ok {
			if (partner > un.Index && vn.Index > partner) || (partner < un.Index && vn.Index < partner) {
				return false
			}
		}
		if partner, ok := vsmbd[vn.Index]; ok {
			if (partner > vn.Index && un.Index > partner) || (partner < vn.Index && un.Index < partner) {
				return false
			}
		}
	}
	for _, c := range conj {
		if c.From != 1 || c.To != 1 {
			return false
		}
	}
	return true
}

// nonProjective reports whether the index-pair edges (u,v) and (w,x)
// cross without nesting or disjointness — a sannidhi (proximity)
// violation (spec §9).
func nonProjective(u, v, w, x int) bool {
	mnu, mxu := minmax(u, v)
	mnw, mxw := minmax(w, x)
	switch {
	case mnu < mnw:
		return mxu < mxw && mxu > mnw
	case mxu > mxw:
		return mnu > mnw && mnu < mxw
	default:
		return false
	}
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
