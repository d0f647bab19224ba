// Package parse enumerates, validates, and ranks spanning forests over a
// vakya.Graph: each spanning forest picks at most one incoming edge per
// surviving node while keeping exactly one node active per sentence
// position, yielding one candidate grammatical parse of the sentence
// (spec §4.G, §4.H).
package parse

import (
	"sort"

	"github.com/hareeshbabu82ns/sanskrit-parser/dsu"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
)

// edgeKey identifies a directed vakya.Graph edge within a PartialParse.
type edgeKey struct {
	Pred, Node vakya.NodeID
}

// Edge is a materialized (pred, node, label) triple read back out of a
// PartialParse for validation and ranking.
type Edge struct {
	Pred, Node vakya.NodeID
	Label      vakya.Label
}

// PartialParse is a partial spanning forest over a vakya.Graph's nodes: a
// set of edges such that at most one node per sentence position is
// "active" (chosen), with cycle-freedom tracked by a disjoint-set over
// active nodes (spec §4.G, grounded on the original's modified-Kruskal
// approach to building a generalized spanning tree of a k-partite graph).
type PartialParse struct {
	graph        *vakya.Graph
	edges        map[edgeKey]bool
	activeNodes  map[vakya.NodeID]bool
	extinguished map[int]bool
	uf           *dsu.DisjointSet[vakya.NodeID]
}

func newEmptyParse(g *vakya.Graph, base *dsu.DisjointSet[vakya.NodeID]) *PartialParse {
	return &PartialParse{
		graph:        g,
		edges:        make(map[edgeKey]bool),
		activeNodes:  make(map[vakya.NodeID]bool),
		extinguished: make(map[int]bool),
		uf:           base.Copy(),
	}
}

func (p *PartialParse) activateAndExtinguish(n vakya.NodeID) {
	p.activeNodes[n] = true
	p.extinguished[p.graph.Node(n).Index] = true
}

// isExtinguished reports whether n's sentence position already has an
// active node chosen that isn't n itself.
func (p *PartialParse) isExtinguished(n vakya.NodeID) bool {
	return p.extinguished[p.graph.Node(n).Index] && !p.activeNodes[n]
}

// isSafe reports whether the pred->node edge can extend p without
// extinguishing an already-active node or closing a cycle.
func (p *PartialParse) isSafe(pred, node vakya.NodeID) bool {
	if p.isExtinguished(pred) || p.isExtinguished(node) {
		return false
	}
	if p.activeNodes[pred] && p.activeNodes[node] {
		return !p.uf.Connected(pred, node)
	}
	return true
}

func (p *PartialParse) populate(pred, node vakya.NodeID) {
	p.edges[edgeKey{pred, node}] = true
	p.activateAndExtinguish(pred)
	p.activateAndExtinguish(node)
	p.uf.Union(pred, node)
}

// extend adds the pred->node edge to p, assumed already checked safe.
func (p *PartialParse) extend(pred, node vakya.NodeID) {
	if len(p.activeNodes) == 0 {
		p.populate(pred, node)
		return
	}
	if !p.activeNodes[pred] {
		p.activateAndExtinguish(pred)
	}
	if !p.activeNodes[node] {
		p.activateAndExtinguish(node)
	}
	p.edges[edgeKey{pred, node}] = true
	p.uf.Union(pred, node)
}

// Len returns the number of edges accumulated so far.
func (p *PartialParse) Len() int { return len(p.edges) }

// Copy returns an independent one-level-deep copy: the edge/active/
// extinguished sets and the disjoint-set are all duplicated so mutating
// the copy never affects p.
func (p *PartialParse) Copy() *PartialParse {
	t := &PartialParse{
		graph:        p.graph,
		edges:        make(map[edgeKey]bool, len(p.edges)),
		activeNodes:  make(map[vakya.NodeID]bool, len(p.activeNodes)),
		extinguished: make(map[int]bool, len(p.extinguished)),
		uf:           p.uf.Copy(),
	}
	for k := range p.edges {
		t.edges[k] = true
	}
	for k := range p.activeNodes {
		t.activeNodes[k] = true
	}
	for k := range p.extinguished {
		t.extinguished[k] = true
	}
	return t
}

// canMerge reports whether p and other can be merged into a single
// spanning forest of at least l total edges without a cycle or a
// re-extinguished node (spec §4.G "fast" feasibility pre-check).
func (p *PartialParse) canMerge(other *PartialParse, l int) bool {
	if len(other.edges)+len(p.edges) < l {
		return false
	}
	for x := range other.activeNodes {
		if p.isExtinguished(x) {
			return false
		}
	}
	conn := p.uf.Copy()
	for e := range other.edges {
		if conn.Connected(e.Pred, e.Node) {
			return false
		}
		conn.Union(e.Pred, e.Node)
	}
	return true
}

// mergeFast merges p and other, assumed already passed canMerge.
func (p *PartialParse) mergeFast(other *PartialParse) *PartialParse {
	t := p.Copy()
	for k := range other.extinguished {
		t.extinguished[k] = true
	}
	for k := range other.activeNodes {
		t.activeNodes[k] = true
	}
	for k := range other.edges {
		t.edges[k] = true
	}
	for e := range other.edges {
		t.uf.Union(e.Pred, e.Node)
	}
	return t
}

// mergeSlow merges p and other edge-by-edge, re-validating each of
// other's edges against p's growing state instead of trusting canMerge's
// cheaper approximation. Returns ok=false the moment an edge is unsafe.
func (p *PartialParse) mergeSlow(other *PartialParse, l int) (*PartialParse, bool) {
	if len(other.edges)+len(p.edges) < l {
		return nil, false
	}
	t := p.Copy()
	for e := range other.edges {
		if t.isSafe(e.Pred, e.Node) {
			t.extend(e.Pred, e.Node)
		} else {
			return nil, false
		}
	}
	return t, true
}

// ActiveNodes returns every node this parse has activated, in ascending
// NodeID order.
func (p *PartialParse) ActiveNodes() []vakya.NodeID {
	out := make([]vakya.NodeID, 0, len(p.activeNodes))
	for n := range p.activeNodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges materializes p's edge set as (pred, node, label) triples.
func (p *PartialParse) Edges() []Edge {
	out := make([]Edge, 0, len(p.edges))
	for e := range p.edges {
		label, _ := p.graph.EdgeLabel(e.Pred, e.Node)
		out = append(out, Edge{Pred: e.Pred, Node: e.Node, Label: label})
	}
	return out
}
