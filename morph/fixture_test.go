package morph_test

import (
	"strings"
	"testing"

	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
	"splits": {"rAmogacCati": [["rAmaH", "gacCati"]]},
	"tags": {
		"rAmaH": [{"base": "rAma", "features": ["praTamAviBaktiH", "ekavacanam", "puMlliNgam"]}],
		"gacCati": [{"base": "gam", "features": ["law", "praTamapuruzaH", "ekavacanam"]}]
	},
	"sakarmaka": {"gam": false}
}`

func TestDecodeStaticOracle_PopulatesAllMaps(t *testing.T) {
	o := morph.NewStaticOracle()
	err := morph.DecodeStaticOracle(strings.NewReader(fixtureJSON), o)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"rAmaH", "gacCati"}}, o.Splits["rAmogacCati"])
	require.Len(t, o.Tags["rAmaH"], 1)
	assert.Equal(t, "rAma", o.Tags["rAmaH"][0].Base)
	ok, err := o.IsSakarmaka("gam")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeStaticOracle_UnknownFeatureErrors(t *testing.T) {
	o := morph.NewStaticOracle()
	err := morph.DecodeStaticOracle(strings.NewReader(`{"tags": {"x": [{"base": "x", "features": ["notAFeature"]}]}}`), o)
	assert.Error(t, err)
}
