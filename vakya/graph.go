// Package vakya builds the sentence-level analysis graph: for each surface
// form in a SandhiGraph path, one node per candidate morphological
// analysis, with edges drawn between nodes from different positions
// whenever Pāṇinian grammar permits one to govern the other (spec §4.E,
// §4.F). The graph is directed but not acyclic: viśeṣaṇa and some
// conjunction edges run both ways between a pair of nodes. The graph
// itself never chooses among competing edges — that is the parse
// package's job, enumerating spanning forests over this graph.
package vakya

import (
	"sort"
	"strings"

	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// Logger is the minimal structured-logging surface vakya needs; it is
// satisfied by *log.Logger and by the analyzer package's own Logger.
type Logger interface {
	Printf(format string, args ...any)
}

// Option configures NewGraph.
type Option func(*options)

type options struct {
	Logger Logger
}

// WithLogger supplies a logger for non-fatal build-time diagnostics (an
// isolated partition, for instance).
func WithLogger(l Logger) Option { return func(o *options) { o.Logger = l } }

// Graph is the k-partite directed graph of candidate-analysis nodes and grammatical
// relation edges built from a single SandhiGraph path.
type Graph struct {
	nodes      []Node
	partitions [][]NodeID
	out        map[NodeID]map[NodeID]Label
	pred       map[NodeID]map[NodeID]bool
}

// NewGraph builds a Graph over path: one node per (position, candidate
// analysis), wired by every grammatical-relation edge family the builder
// recognizes, with isolated nodes (no surviving edge at all) pruned from
// the returned partitions.
func NewGraph(path []tagset.SurfaceForm, oracle morph.Oracle, trans morph.TransitivityOracle, opts ...Option) (*Graph, error) {
	cfg := options{}
	for _, o := range opts {
		o(&cfg)
	}

	g := &Graph{
		out:  make(map[NodeID]map[NodeID]Label),
		pred: make(map[NodeID]map[NodeID]bool),
	}
	for i, form := range path {
		tags, err := oracle.CandidateTags(form.Text)
		if err != nil {
			return nil, err
		}
		ids := make([]NodeID, 0, len(tags))
		for _, tag := range tags {
			id := NodeID(len(g.nodes))
			g.nodes = append(g.nodes, Node{Form: form, Tag: tag, Index: i})
			ids = append(ids, id)
		}
		g.partitions = append(g.partitions, ids)
	}

	if err := g.addEdges(trans); err != nil {
		return nil, err
	}
	g.removeIsolates(cfg.Logger)
	return g, nil
}

// NodeCount returns how many (position, analysis) nodes the graph holds,
// including any later pruned from Partitions as isolates.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node stored at id.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// Partitions returns the surviving (non-isolated) nodes grouped by
// sentence position, in position order.
func (g *Graph) Partitions() [][]NodeID { return g.partitions }

// Predecessors returns every node with an edge into v, in a stable
// (ascending NodeID) order.
func (g *Graph) Predecessors(v NodeID) []NodeID {
	out := make([]NodeID, 0, len(g.pred[v]))
	for u := range g.pred[v] {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EdgeLabel returns the label of the u->v edge, if one exists.
func (g *Graph) EdgeLabel(u, v NodeID) (Label, bool) {
	l, ok := g.out[u][v]
	return l, ok
}

func (g *Graph) addEdge(u, v NodeID, l Label) {
	if g.out[u] == nil {
		g.out[u] = make(map[NodeID]Label)
	}
	g.out[u][v] = l
	if g.pred[v] == nil {
		g.pred[v] = make(map[NodeID]bool)
	}
	g.pred[v][u] = true
}

func (g *Graph) removeEdge(u, v NodeID) {
	delete(g.out[u], v)
	delete(g.pred[v], u)
}

func (g *Graph) isVipsa(v NodeID) bool {
	for u := range g.pred[v] {
		if g.out[u][v] == LabelVipsa {
			return true
		}
	}
	return false
}

func (g *Graph) allNodeIDs() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = NodeID(i)
	}
	return ids
}

func isSamePartition(a, b Node) bool { return a.Index == b.Index }

func containsID(ids []NodeID, id NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func (g *Graph) removeIsolates(logger Logger) {
	for i, s := range g.partitions {
		kept := make([]NodeID, 0, len(s))
		for _, id := range s {
			if len(g.out[id])+len(g.pred[id]) > 0 {
				kept = append(kept, id)
			}
		}
		g.partitions[i] = kept
		if len(kept) == 0 && len(s) > 0 && logger != nil {
			logger.Printf("vakya: position %d (%q) lost every candidate analysis to isolate pruning", i, g.nodes[s[0]].Form.Text)
		}
	}
}

// addEdges runs every edge-family builder in the order the grammar
// requires (later families rely on earlier ones: samasta/viśeṣaṇa rely on
// vibhakti edges already being absent/present as appropriate, and sentence
// conjunctions must run last since it rewrites other families' edges).
func (g *Graph) addEdges(trans morph.TransitivityOracle) error {
	laks := g.findLakaras()
	krts := g.findKrtVerbs()
	bases := append(append([]NodeID{}, laks...), krts...)

	if err := g.addKarakas(bases, trans); err != nil {
		return err
	}
	g.addSamastas()
	g.addShashthi()
	g.addKriyavisheshana(bases)
	g.addVisheshana()
	g.addKriyaKriya(laks, krts)
	g.addAvyayas(bases)
	g.addBhavalakshana(krts, laks)
	g.addVipsaEdges()
	g.addSentenceConjunctions(laks, krts)
	return nil
}

func (g *Graph) findLakaras() []NodeID {
	var out []NodeID
	for _, id := range g.allNodeIDs() {
		if g.nodes[id].isA(tagset.LakaraSet) {
			out = append(out, id)
		}
	}
	return out
}

func (g *Graph) findKrtVerbs() []NodeID {
	var out []NodeID
	for _, id := range g.allNodeIDs() {
		if g.nodes[id].isA(tagset.KrtVerbSet) {
			out = append(out, id)
		}
	}
	return out
}

// addKarakas wires the semantic-role edges a finite verb or krt-participle
// base assigns to its arguments (spec §4.F.1).
func (g *Graph) addKarakas(bases []NodeID, trans morph.TransitivityOracle) error {
	for _, dID := range bases {
		d := g.nodes[dID]
		dh := d.base()
		if hpos := strings.IndexByte(dh, '#'); hpos != -1 {
			dh = dh[:hpos]
		}
		var isSak bool
		if d.isA(tagset.LakaraSet) {
			var err error
			isSak, err = trans.IsSakarmaka(dh)
			if err != nil {
				return err
			}
		} else {
			isSak = true
		}

		var karta, karma tagset.FeatureSet
		if d.isA(tagset.KarmaniSet) {
			karta = tagset.NewFeatureSet(tagset.TftIyAviBaktiH)
			karma = tagset.NewFeatureSet(tagset.PraTamAviBaktiH)
		} else {
			if d.isA(tagset.NijantaSet) {
				karta = tagset.NewFeatureSet(tagset.TftIyAviBaktiH)
			} else {
				karta = tagset.NewFeatureSet(tagset.PraTamAviBaktiH)
			}
			karma = tagset.NewFeatureSet(tagset.DvitIyAviBaktiH)
		}

		for _, nID := range g.allNodeIDs() {
			n := g.nodes[nID]
			if isSamePartition(d, n) {
				continue
			}
			switch {
			case n.isA(karta):
				if d.isA(tagset.LakaraSet) {
					if matchPurushaVacana(d, n) {
						g.addEdge(dID, nID, LabelKarta)
					} else if predicativeVerbs[dh] {
						g.addEdge(dID, nID, LabelKartaSamanadhikarana)
					}
				} else if d.isA(tagset.KarmaniSet) && matchLingaVacana(d, n) {
					g.addEdge(dID, nID, LabelKarta)
				}
			case n.isA(karma) && (d.isA(tagset.LakaraSet) || !d.isA(tagset.KarmaniSet)) && isSak:
				g.addEdge(dID, nID, LabelKarma)
			case n.isA(tagset.NewFeatureSet(tagset.TftIyAviBaktiH)):
				g.addEdge(dID, nID, LabelKaranam)
			case n.isA(tagset.NewFeatureSet(tagset.CaturTIviBaktiH)):
				g.addEdge(dID, nID, LabelSampradanam)
			case n.isA(tagset.NewFeatureSet(tagset.PaYcamIviBaktiH)):
				g.addEdge(dID, nID, LabelApadanam)
			case n.isA(tagset.NewFeatureSet(tagset.SaptamIviBaktiH)):
				g.addEdge(dID, nID, LabelAdhikaranam)
			case n.isA(tagset.NewFeatureSet(tagset.SaMboDanaviBaktiH)) && checkSambodhya(d, n):
				g.addEdge(dID, nID, LabelSambodhyam)
			case n.isA(tagset.NewFeatureSet(tagset.PraTamAviBaktiH)) && d.isA(tagset.NijantaSet):
				g.addEdge(dID, nID, LabelHetuKarta)
			}
		}
	}
	return nil
}

// addSamastas wires a compound's non-final member to the vibhakti/samāsa
// node immediately following it (spec §4.F.2).
func (g *Graph) addSamastas() {
	for i, s := range g.partitions {
		if i >= len(g.partitions)-1 {
			continue
		}
		for _, nID := range s {
			n := g.nodes[nID]
			if !n.isA(tagset.SamastaSet) {
				continue
			}
			for _, nnID := range g.partitions[i+1] {
				nn := g.nodes[nnID]
				if nn.isA(tagset.VibhaktiSet) || nn.isA(tagset.SamastaSet) {
					g.addEdge(nnID, nID, LabelSamasta)
				}
			}
		}
	}
}

// addShashthi wires ṣaṣṭhī-sambandha (genitive possession) to the
// following vibhakti/samāsa node (spec §4.F.3).
func (g *Graph) addShashthi() {
	shashthi := tagset.NewFeatureSet(tagset.ZazWIviBaktiH)
	for i, s := range g.partitions {
		if i >= len(g.partitions)-1 {
			continue
		}
		for _, nID := range s {
			n := g.nodes[nID]
			if !n.isA(shashthi) {
				continue
			}
			for _, nnID := range g.partitions[i+1] {
				nn := g.nodes[nnID]
				if nn.isA(tagset.VibhaktiSet) || nn.isA(tagset.SamastaSet) {
					g.addEdge(nnID, nID, LabelShashthiSambandha)
				}
			}
		}
	}
}

// addKriyavisheshana wires adverbial modification of bases from avyaya
// nodes tagged kriyāviśeṣaṇa, or from the fixed avyayaKriyav lexicon
// (spec §4.F.5).
func (g *Graph) addKriyavisheshana(bases []NodeID) {
	avyayam := tagset.NewFeatureSet(tagset.Avyayam)
	kriyav := tagset.NewFeatureSet(tagset.KriyAviSezaRam)
	for _, dID := range bases {
		d := g.nodes[dID]
		for _, nID := range g.allNodeIDs() {
			n := g.nodes[nID]
			if isSamePartition(d, n) {
				continue
			}
			if n.isA(avyayam) && (n.isA(kriyav) || avyayaKriyav[n.base()]) {
				g.addEdge(dID, nID, LabelKriyavisheshanam)
			}
		}
	}
}

// addVisheshana wires adjectival modification between any two
// fully-agreeing (case, number, gender) vibhakti nodes with different
// lemmas, across partitions (spec §4.F.4).
func (g *Graph) addVisheshana() {
	for _, nID := range g.allNodeIDs() {
		n := g.nodes[nID]
		if !n.isA(tagset.VibhaktiSet) {
			continue
		}
		for _, noID := range g.allNodeIDs() {
			no := g.nodes[noID]
			if isSamePartition(n, no) {
				continue
			}
			if matchLingaVacanaVibhakti(n, no) && n.base() != no.base() {
				g.addEdge(nID, noID, LabelVisheshanam)
			}
		}
	}
}

// addKriyaKriya wires secondary-verb relations (absolutive, purpose
// infinitive, simultaneity) from finite verbs to krt participles
// (spec §4.F.6).
func (g *Graph) addKriyaKriya(laks, krts []NodeID) {
	prathama := tagset.NewFeatureSet(tagset.PraTamAviBaktiH)
	tumun := tagset.NewFeatureSet(tagset.Tumun)
	for _, dID := range laks {
		d := g.nodes[dID]
		for _, nID := range krts {
			n := g.nodes[nID]
			if isSamePartition(d, n) {
				continue
			}
			switch {
			case n.isA(tagset.PurvakalaSet):
				g.addEdge(dID, nID, LabelPurvakalah)
			case n.isA(tumun):
				g.addEdge(dID, nID, LabelPrayojanam)
			case n.isA(tagset.SamanakalaSet) && n.isA(prathama):
				g.addEdge(dID, nID, LabelSamanakalah)
			}
		}
	}
}

// addAvyayas wires upasarga (preverb) chains, negation, and
// karmapravacanīya (quasi-postposition) edges (spec §4.F.7).
func (g *Graph) addAvyayas(bases []NodeID) {
	upasargaH := tagset.NewFeatureSet(tagset.UpasargaH)
	ktvA := tagset.NewFeatureSet(tagset.KtvA)
	avyayam := tagset.NewFeatureSet(tagset.Avyayam)
	karmapravacaniyaH := tagset.NewFeatureSet(tagset.KarmapravacanIyaH)
	dvitiya := tagset.NewFeatureSet(tagset.DvitIyAviBaktiH)
	pancami := tagset.NewFeatureSet(tagset.PaYcamIviBaktiH)

	for i, s := range g.partitions {
		for _, nID := range s {
			n := g.nodes[nID]
			switch {
			case n.isA(upasargaH):
				if i >= len(g.partitions)-1 {
					continue
				}
				for _, nnID := range g.partitions[i+1] {
					nn := g.nodes[nnID]
					if (containsID(bases, nnID) && !nn.isA(ktvA)) || nn.isA(upasargaH) {
						g.addEdge(nnID, nID, LabelUpasarga)
					}
				}
			case n.isA(avyayam) && nishedha[n.base()]:
				for _, bID := range bases {
					if !isSamePartition(n, g.nodes[bID]) {
						g.addEdge(bID, nID, LabelNishedha)
					}
				}
			case n.isA(karmapravacaniyaH) && !avyayaKriyav[n.base()] && !karmapNull[n.base()]:
				for _, bID := range bases {
					if !isSamePartition(n, g.nodes[bID]) {
						g.addEdge(bID, nID, LabelKarma)
					}
				}
				// Boundary positions contribute no upapada set: the
				// original's Python negative-index wraparound at i==0 and
				// its IndexError at the last position are both treated
				// here as "no neighbor on that side" (see DESIGN.md).
				var neighbors []NodeID
				if i+1 < len(g.partitions) {
					neighbors = append(neighbors, g.partitions[i+1]...)
				}
				if i-1 >= 0 {
					neighbors = append(neighbors, g.partitions[i-1]...)
				}
				for _, nnID := range neighbors {
					nn := g.nodes[nnID]
					switch {
					case nn.isA(dvitiya) && karmap2[n.base()]:
						g.addEdge(nID, nnID, LabelUpapadaDvitiya)
					case nn.isA(pancami) && karmap5[n.base()]:
						g.addEdge(nID, nnID, LabelUpapadaPancami)
					}
				}
			}
		}
	}
}

// addBhavalakshana wires a bhāvalakṣaṇa (absolute-construction) saptamī
// krt to every finite verb elsewhere in the sentence (spec §4.F.8).
func (g *Graph) addBhavalakshana(krts, laks []NodeID) {
	saptami := tagset.NewFeatureSet(tagset.SaptamIviBaktiH)
	for _, kID := range krts {
		k := g.nodes[kID]
		if !k.isA(saptami) {
			continue
		}
		for _, lID := range laks {
			if !isSamePartition(k, g.nodes[lID]) {
				g.addEdge(lID, kID, LabelBhavalakshanam)
			}
		}
	}
}

// addVipsaEdges wires vīpsā (repetition/distributive) edges between
// adjacent identical surface forms (spec §4.F.9).
func (g *Graph) addVipsaEdges() {
	for _, nID := range g.allNodeIDs() {
		n := g.nodes[nID]
		for _, noID := range g.allNodeIDs() {
			no := g.nodes[noID]
			if n.Index == no.Index-1 && n.Form.Text == no.Form.Text {
				g.addEdge(nID, noID, LabelVipsa)
			}
		}
	}
}

// addSentenceConjunctions wires vākyasambandha (inter-clause) links for
// yad-series/tad-series conjunction pairs and saṃyojaka (coordinating)
// conjunctions (spec §4.F.10). This family runs last because it reverses
// edges other families already added.
func (g *Graph) addSentenceConjunctions(laks, krts []NodeID) {
	prathama := tagset.NewFeatureSet(tagset.PraTamAviBaktiH)
	samyojakaH := tagset.NewFeatureSet(tagset.SaMyojakaH)

	bases := append([]NodeID{}, laks...)
	for _, kID := range krts {
		if g.nodes[kID].isA(prathama) {
			bases = append(bases, kID)
		}
	}

	for _, nID := range g.allNodeIDs() {
		n := g.nodes[nID]
		nb := n.base()
		partner, isConj := sentenceConjunctions[nb]
		if !isConj || g.isVipsa(nID) {
			continue
		}

		for u, l := range predecessorsSnapshot(g, nID) {
			g.removeEdge(u, nID)
			g.addEdge(nID, u, Label(sambaddhaPrefix+string(l)))
		}

		for _, nnID := range g.allNodeIDs() {
			nn := g.nodes[nnID]
			if g.isVipsa(nnID) {
				continue
			}
			if partner != "" && nn.base() == partner && matchLingaVacana(n, nn) {
				g.addEdge(nnID, nID, LabelVakyasambandhah)
			}
			if n.isA(samyojakaH) && containsID(bases, nnID) {
				g.addEdge(nID, nnID, LabelSambaddhaKriya)
				if partner == "" {
					g.addEdge(nnID, nID, LabelVakyasambandhah)
				}
			}
		}
	}
}

func predecessorsSnapshot(g *Graph, v NodeID) map[NodeID]Label {
	out := make(map[NodeID]Label, len(g.pred[v]))
	for u := range g.pred[v] {
		out[u] = g.out[u][v]
	}
	return out
}
