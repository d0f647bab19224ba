package parse

import (
	"math"
	"sort"

	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
)

// Ranked pairs a parse with its cost, ascending: lower cost is preferred
// (spec §4.H).
type Ranked struct {
	Parse *PartialParse
	Cost  float64
}

// Rank orders parses ascending by cost, stable on ties (spec §4.H).
// Cost sums, over every edge, the absolute sentence-position distance it
// spans times the label's edge cost (vakya.EdgeCost), discounted 10% when
// the governing node is a finite verb (lakāra): a ti~Nanta-headed
// relation is preferred over an equivalent krt-headed one.
func Rank(parses []*PartialParse) []Ranked {
	out := make([]Ranked, len(parses))
	for i, p := range parses {
		out[i] = Ranked{Parse: p, Cost: parseCost(p)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

func parseCost(p *PartialParse) float64 {
	var w float64
	for _, e := range p.Edges() {
		un, vn := p.graph.Node(e.Pred), p.graph.Node(e.Node)
		dist := math.Abs(float64(un.Index - vn.Index))
		ew := dist * vakya.EdgeCost(e.Label)
		if un.IsA(tagset.LakaraSet) {
			ew *= 0.9
		}
		w += ew
	}
	return w
}
