package analyzer

import "errors"

// Sentinel errors distinguishing the ways Analyze can come up empty
// (spec §7): each corresponds to a different pipeline stage finding
// nothing to work with.
var (
	// ErrNoSplitAnalysis means the oracle has no lexical split at all for
	// the sentence, or the SandhiGraph it returned has no START->END path.
	ErrNoSplitAnalysis = errors.New("analyzer: no lexical split analysis for this sentence")

	// ErrNoTagAnalysis means every candidate split produced a vakya.Graph
	// with zero nodes: none of its surface forms has any morphological
	// analysis the oracle recognizes.
	ErrNoTagAnalysis = errors.New("analyzer: no morphological tag analysis for any candidate split")

	// ErrEmptyParseSet means candidate splits did produce tagged nodes,
	// but no spanning forest over any of them survived validation.
	ErrEmptyParseSet = errors.New("analyzer: no grammatically valid parse survived validation")
)
