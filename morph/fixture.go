package morph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// fixtureTag is StaticOracle's Tags entry in wire form: a base form plus its
// feature names (tagset.Feature.String spellings), since Feature itself has
// no JSON encoding of its own.
type fixtureTag struct {
	Base     string   `json:"base"`
	Features []string `json:"features"`
}

// fixture is the on-disk shape DecodeStaticOracle expects: a plain mirror of
// StaticOracle's three maps, substituting fixtureTag for tagset.TagSet.
type fixture struct {
	Splits    map[string][][]string   `json:"splits"`
	Tags      map[string][]fixtureTag `json:"tags"`
	Sakarmaka map[string]bool         `json:"sakarmaka"`
}

// DecodeStaticOracle reads a JSON-encoded lexicon fixture from r and
// populates dst's Splits, Tags, and Sakarmaka maps (cmd/sparsecli's input
// format, since no real dictionary-backed oracle is in scope).
func DecodeStaticOracle(r io.Reader, dst *StaticOracle) error {
	var fx fixture
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return fmt.Errorf("morph: decode fixture: %w", err)
	}

	for sentence, splits := range fx.Splits {
		dst.Splits[sentence] = splits
	}
	for form, tags := range fx.Tags {
		converted := make([]tagset.TagSet, 0, len(tags))
		for _, t := range tags {
			var fs []tagset.Feature
			for _, name := range t.Features {
				f, ok := tagset.ParseFeature(name)
				if !ok {
					return fmt.Errorf("morph: fixture: unknown feature %q for %q", name, form)
				}
				fs = append(fs, f)
			}
			converted = append(converted, tagset.NewTagSet(t.Base, fs...))
		}
		dst.Tags[form] = converted
	}
	for dhatu, sakarmaka := range fx.Sakarmaka {
		dst.Sakarmaka[dhatu] = sakarmaka
	}
	return nil
}
