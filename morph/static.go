package morph

import (
	"github.com/hareeshbabu82ns/sanskrit-parser/sandhi"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// StaticOracle is a map-backed Oracle + TransitivityOracle reference
// implementation, grounded on the teacher's table/map-driven builder
// constructors. It exists for tests and as the CLI's zero-config default;
// a production deployment would back Oracle with the SQLite dictionary
// that spec §1 places out of scope.
type StaticOracle struct {
	// Splits maps a sentence to its candidate splits, each split given as
	// a slice of surface-form texts. A sentence absent from Splits yields
	// (nil, nil) from CandidateSplits: spec §7 NoSplitAnalysis.
	Splits map[string][][]string
	// Tags maps a surface-form text to its candidate (base, features)
	// analyses.
	Tags map[string][]tagset.TagSet
	// Sakarmaka maps a dhātu to its transitivity; absent entries default
	// to false.
	Sakarmaka map[string]bool
}

// NewStaticOracle builds an empty StaticOracle ready for its maps to be
// populated.
func NewStaticOracle() *StaticOracle {
	return &StaticOracle{
		Splits:    make(map[string][][]string),
		Tags:      make(map[string][]tagset.TagSet),
		Sakarmaka: make(map[string]bool),
	}
}

// CandidateSplits implements Oracle by building a SandhiGraph whose roots
// and paths are exactly the splits registered under sentence. Identical
// surface text shares a single node wherever it occurs, within a split or
// across splits, since sandhi.Graph identifies nodes by Key() (the text
// alone); the reference oracle relies on that to build a compact lattice
// straight from a flat list of candidate splits.
func (o *StaticOracle) CandidateSplits(sentence string) (*sandhi.Graph, error) {
	splits, ok := o.Splits[sentence]
	if !ok || len(splits) == 0 {
		return nil, nil
	}
	g := sandhi.New()
	for _, split := range splits {
		if len(split) == 0 {
			continue
		}
		forms := make([]tagset.SurfaceForm, len(split))
		for i, text := range split {
			forms[i] = tagset.NewSurfaceForm(text)
		}
		for _, f := range forms {
			if !g.HasNode(f) {
				_ = g.AddNode(f)
			}
		}
		if err := g.AddRoots(forms[:1]); err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(forms); i++ {
			if err := g.AppendToNode(forms[i], forms[i+1:i+2]); err != nil {
				return nil, err
			}
		}
		if err := g.AddEndEdge(forms[len(forms)-1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// CandidateTags implements Oracle.
func (o *StaticOracle) CandidateTags(form string) ([]tagset.TagSet, error) {
	return o.Tags[form], nil
}

// IsSakarmaka implements TransitivityOracle.
func (o *StaticOracle) IsSakarmaka(dhatu string) (bool, error) {
	return o.Sakarmaka[dhatu], nil
}
