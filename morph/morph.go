// Package morph defines the MorphOracle and TransitivityOracle collaborator
// interfaces (spec §4.C, §6) the core treats as opaque, I/O-backed oracles,
// plus a StaticOracle reference implementation for tests and CLI defaults.
package morph

import (
	"github.com/hareeshbabu82ns/sanskrit-parser/sandhi"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// Oracle is the dictionary/lexicon collaborator the parser consults for
// candidate splits of a sentence and candidate morphological analyses of a
// surface form (spec §6). The underlying dictionary implementation is out
// of scope (spec §1); Oracle is the boundary the core is coded against.
type Oracle interface {
	// CandidateSplits returns the lattice of lexically plausible splits of
	// sentence, or (nil, nil) if no analysis exists at all (spec §7
	// NoSplitAnalysis). Analyze reports a nil graph as ErrNoSplitAnalysis
	// with no parses.
	CandidateSplits(sentence string) (*sandhi.Graph, error)

	// CandidateTags returns every candidate (base, tag-set) analysis of
	// form. An empty, nil-error result means "no analysis" (spec §4.C) and
	// is not itself an error.
	CandidateTags(form string) ([]tagset.TagSet, error)
}

// TransitivityOracle answers whether a dhātu (verb root) is sakarmaka
// (transitive), consulted when assigning karma edges (spec §4.F.1, §6).
type TransitivityOracle interface {
	IsSakarmaka(dhatu string) (bool, error)
}
