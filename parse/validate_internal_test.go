package parse

import (
	"testing"

	"github.com/hareeshbabu82ns/sanskrit-parser/dsu"
	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
	"github.com/stretchr/testify/require"
)

// allNodeIDs flattens every partition into a single universe for dsu.New,
// matching how Enumerate itself seeds a PartialParse.
func allNodeIDs(g *vakya.Graph) []vakya.NodeID {
	var ids []vakya.NodeID
	for _, part := range g.Partitions() {
		ids = append(ids, part...)
	}
	return ids
}

// buildViseshanaTriangle builds three mutually agreeing nominative nouns,
// so addVisheshana wires all six directed viSezaRam edges between them.
// checkParse's own tov/fromv bookkeeping then decides, edge by edge,
// whether a particular PartialParse reads as a modifier chain (rejected)
// or a modifier star (accepted) — the graph itself admits either.
func buildViseshanaTriangle(t *testing.T) *vakya.Graph {
	t.Helper()
	o := morph.NewStaticOracle()
	o.Tags["ekaH"] = []tagset.TagSet{
		tagset.NewTagSet("eka", tagset.PraTamAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Tags["dvitIyaH"] = []tagset.TagSet{
		tagset.NewTagSet("dvitIya", tagset.PraTamAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Tags["tftIyaH"] = []tagset.TagSet{
		tagset.NewTagSet("tftIya", tagset.PraTamAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("ekaH"),
		tagset.NewSurfaceForm("dvitIyaH"),
		tagset.NewSurfaceForm("tftIyaH"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)
	return g
}

func TestCheckParse_RejectsViseshanaChain(t *testing.T) {
	g := buildViseshanaTriangle(t)
	parts := g.Partitions()
	a, b, c := parts[0][0], parts[1][0], parts[2][0]

	label, ok := g.EdgeLabel(b, a)
	require.True(t, ok)
	require.Equal(t, vakya.LabelVisheshanam, label)
	label, ok = g.EdgeLabel(c, b)
	require.True(t, ok)
	require.Equal(t, vakya.LabelVisheshanam, label)

	p := newEmptyParse(g, dsu.New(allNodeIDs(g)))
	p.populate(b, a) // b modifies a
	p.extend(c, b)   // c modifies b -- b is now both modifier and modified

	require.False(t, checkParse(g, p), "a node cannot be both a viSezaRam target and source")
}

func TestCheckParse_AcceptsViseshanaStar(t *testing.T) {
	g := buildViseshanaTriangle(t)
	parts := g.Partitions()
	a, b, c := parts[0][0], parts[1][0], parts[2][0]

	label, ok := g.EdgeLabel(a, b)
	require.True(t, ok)
	require.Equal(t, vakya.LabelVisheshanam, label)
	label, ok = g.EdgeLabel(a, c)
	require.True(t, ok)
	require.Equal(t, vakya.LabelVisheshanam, label)

	p := newEmptyParse(g, dsu.New(allNodeIDs(g)))
	p.populate(a, b) // a modifies b
	p.extend(a, c)   // a also modifies c -- a is a source twice, never a target

	require.True(t, checkParse(g, p), "a single modifier of two distinct targets is a valid star, not a chain")
}

// buildConjunctionGraph wires a bare "ca" conjunction against two verbs
// with no partner word, so addSentenceConjunctions reciprocates every
// saMbadDakriyA edge with a vAkyasambandhaH edge back.
func buildConjunctionGraph(t *testing.T) *vakya.Graph {
	t.Helper()
	o := morph.NewStaticOracle()
	o.Tags["ca"] = []tagset.TagSet{
		tagset.NewTagSet("ca", tagset.SaMyojakaH),
	}
	o.Tags["carati"] = []tagset.TagSet{
		tagset.NewTagSet("car", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	o.Tags["patati"] = []tagset.TagSet{
		tagset.NewTagSet("pat", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("ca"),
		tagset.NewSurfaceForm("carati"),
		tagset.NewSurfaceForm("patati"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)
	return g
}

func TestCheckParse_RejectsConjunctionImbalance(t *testing.T) {
	g := buildConjunctionGraph(t)
	parts := g.Partitions()
	ca, v1, v2 := parts[0][0], parts[1][0], parts[2][0]

	label, ok := g.EdgeLabel(ca, v1)
	require.True(t, ok)
	require.Equal(t, vakya.LabelSambaddhaKriya, label)
	label, ok = g.EdgeLabel(ca, v2)
	require.True(t, ok)
	require.Equal(t, vakya.LabelSambaddhaKriya, label)

	p := newEmptyParse(g, dsu.New(allNodeIDs(g)))
	p.populate(ca, v1)
	p.extend(ca, v2)

	require.False(t, checkParse(g, p), "ca conjoining two verbs with no reciprocal edge is unbalanced")
}

func TestCheckParse_AcceptsConjunctionBalance(t *testing.T) {
	g := buildConjunctionGraph(t)
	parts := g.Partitions()
	ca, v1 := parts[0][0], parts[1][0]

	label, ok := g.EdgeLabel(ca, v1)
	require.True(t, ok)
	require.Equal(t, vakya.LabelSambaddhaKriya, label)
	label, ok = g.EdgeLabel(v1, ca)
	require.True(t, ok)
	require.Equal(t, vakya.LabelVakyasambandhah, label)

	p := newEmptyParse(g, dsu.New(allNodeIDs(g)))
	p.populate(ca, v1)
	p.extend(v1, ca)

	require.True(t, checkParse(g, p), "one saMbadDakriyA edge reciprocated by one vAkyasambandhaH edge is balanced")
}
