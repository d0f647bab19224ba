package morph_test

import (
	"testing"

	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/sandhi"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticOracle_CandidateSplits_UnknownSentenceIsNilNil(t *testing.T) {
	o := morph.NewStaticOracle()
	g, err := o.CandidateSplits("devo na jAnAti")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestStaticOracle_CandidateSplits_BuildsLockableGraph(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Splits["rAmagacCati"] = [][]string{
		{"rAma", "gacCati"},
		{"rAmas", "gacCati"},
	}
	g, err := o.CandidateSplits("rAmagacCati")
	require.NoError(t, err)
	require.NotNil(t, g)

	paths, err := g.FindAllPaths(sandhi.WithScore(false))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestStaticOracle_CandidateTags(t *testing.T) {
	o := morph.NewStaticOracle()
	want := []tagset.TagSet{tagset.NewTagSet("rAma", tagset.PraTamAviBaktiH)}
	o.Tags["rAmas"] = want
	got, err := o.CandidateTags("rAmas")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = o.CandidateTags("unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticOracle_IsSakarmaka(t *testing.T) {
	o := morph.NewStaticOracle()
	o.Sakarmaka["kf"] = true
	ok, err := o.IsSakarmaka("kf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.IsSakarmaka("gam")
	require.NoError(t, err)
	assert.False(t, ok)
}
