package vakya_test

import (
	"testing"

	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_KartaEdgeOnAgreement(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Tags["rAmaH"] = []tagset.TagSet{
		tagset.NewTagSet("rAma", tagset.PraTamAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Tags["gacCati"] = []tagset.TagSet{
		tagset.NewTagSet("gam", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	o.Sakarmaka["gam"] = false

	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("rAmaH"),
		tagset.NewSurfaceForm("gacCati"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())

	parts := g.Partitions()
	require.Len(t, parts, 2)
	require.Len(t, parts[0], 1)
	require.Len(t, parts[1], 1)
	subject, verb := parts[0][0], parts[1][0]

	// Edges point from the governing verb to its kartā, so the noun's
	// predecessor is the verb, not the other way round.
	preds := g.Predecessors(subject)
	require.Contains(t, preds, verb)
	label, ok := g.EdgeLabel(verb, subject)
	require.True(t, ok)
	assert.Equal(t, vakya.LabelKarta, label)
}

func TestNewGraph_NoAgreementYieldsIsolatedPartitions(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Tags["rAmO"] = []tagset.TagSet{
		tagset.NewTagSet("rAma", tagset.PraTamAviBaktiH, tagset.Dvivacanam, tagset.PuMlliNgam),
	}
	o.Tags["gacCati"] = []tagset.TagSet{
		tagset.NewTagSet("gam", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	o.Sakarmaka["gam"] = false

	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("rAmO"),
		tagset.NewSurfaceForm("gacCati"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)

	parts := g.Partitions()
	require.Len(t, parts, 2)
	assert.Empty(t, parts[0], "vacana mismatch should leave the subject isolated and pruned")
	assert.Empty(t, parts[1], "the verb's only possible kartA edge is gone, so it too is isolated")
}

func TestNewGraph_UntaggedFormYieldsNoNodes(t *testing.T) {
	o := morph.NewStaticOracle()
	path := []tagset.SurfaceForm{tagset.NewSurfaceForm("x")}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

// TestNewGraph_KarmaViseshanaSambodhyamCoexist drives spec §8 seed #4
// (mAmakAH pANDavAH ... kim akurvata saMjaya) through NewGraph and checks
// that the karma, viSezaRam, and samboDyam edge families all fire at once
// in the same multi-position graph.
func TestNewGraph_KarmaViseshanaSambodhyamCoexist(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Tags["mAmakAH"] = []tagset.TagSet{
		tagset.NewTagSet("mAmaka", tagset.PraTamAviBaktiH, tagset.Bahuvacanam, tagset.PuMlliNgam),
	}
	o.Tags["pANDavAH"] = []tagset.TagSet{
		tagset.NewTagSet("pANDava", tagset.PraTamAviBaktiH, tagset.Bahuvacanam, tagset.PuMlliNgam),
	}
	o.Tags["kim"] = []tagset.TagSet{
		tagset.NewTagSet("kim", tagset.DvitIyAviBaktiH, tagset.Ekavacanam, tagset.NapuMsakaliNgam),
	}
	o.Tags["akurvata"] = []tagset.TagSet{
		tagset.NewTagSet("BU", tagset.Law, tagset.MaDyamapuruzaH, tagset.Ekavacanam),
	}
	o.Tags["saMjaya"] = []tagset.TagSet{
		tagset.NewTagSet("saMjaya", tagset.SaMboDanaviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Sakarmaka["BU"] = true // predicative "BU" is always treated as taking a karma here

	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("mAmakAH"),
		tagset.NewSurfaceForm("pANDavAH"),
		tagset.NewSurfaceForm("kim"),
		tagset.NewSurfaceForm("akurvata"),
		tagset.NewSurfaceForm("saMjaya"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)

	parts := g.Partitions()
	require.Len(t, parts, 5)
	for _, p := range parts {
		require.Len(t, p, 1)
	}
	mamakah, pandavah, kim, verb, sanjaya := parts[0][0], parts[1][0], parts[2][0], parts[3][0], parts[4][0]

	label, ok := g.EdgeLabel(verb, kim)
	require.True(t, ok, "verb must govern kim as karma")
	assert.Equal(t, vakya.LabelKarma, label)

	label, ok = g.EdgeLabel(pandavah, mamakah)
	require.True(t, ok, "agreeing nominative neighbors must carry a viSezaRam edge")
	assert.Equal(t, vakya.LabelVisheshanam, label)

	label, ok = g.EdgeLabel(verb, sanjaya)
	require.True(t, ok, "verb addressing a vocative must carry a samboDyam edge")
	assert.Equal(t, vakya.LabelSambodhyam, label)
}

// TestNewGraph_YadiTarhiVakyasambandhaRelabeling drives spec §8 seed #5: a
// yadi/tarhi conditional pair. The karma edge a verb would otherwise hold
// into yadi is reversed and relabeled with the sambadDa- prefix, and a
// fresh vAkyasambandhaH edge links the two conjunction words.
func TestNewGraph_YadiTarhiVakyasambandhaRelabeling(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Tags["yadi"] = []tagset.TagSet{
		tagset.NewTagSet("yadi", tagset.DvitIyAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Tags["tarhi"] = []tagset.TagSet{
		tagset.NewTagSet("tarhi", tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	o.Tags["karoti"] = []tagset.TagSet{
		tagset.NewTagSet("kf", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	o.Sakarmaka["kf"] = true

	path := []tagset.SurfaceForm{
		tagset.NewSurfaceForm("karoti"),
		tagset.NewSurfaceForm("yadi"),
		tagset.NewSurfaceForm("tarhi"),
	}
	g, err := vakya.NewGraph(path, o, o)
	require.NoError(t, err)

	parts := g.Partitions()
	require.Len(t, parts, 3)
	verb, yadi, tarhi := parts[0][0], parts[1][0], parts[2][0]

	_, ok := g.EdgeLabel(verb, yadi)
	assert.False(t, ok, "the original verb->yadi karma edge must have been reversed away")

	label, ok := g.EdgeLabel(yadi, verb)
	require.True(t, ok, "the reversed edge must now run from yadi back to the verb")
	assert.Equal(t, vakya.Label("sambadDa-karma"), label)

	label, ok = g.EdgeLabel(tarhi, yadi)
	require.True(t, ok, "tarhi must be wired to its yadi partner")
	assert.Equal(t, vakya.LabelVakyasambandhah, label)
}
