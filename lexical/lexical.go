// Package lexical defines the Scorer collaborator consumed by sandhi.Graph
// (spec §4.B, §6) and ships a reference FrequencyScorer implementation so
// the rest of the module is testable without a real dictionary backing it.
package lexical

import (
	"errors"

	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// ErrBatchMismatch is returned by a Scorer implementation that cannot honor
// the contract "input length equals output length" (spec §6).
var ErrBatchMismatch = errors.New("lexical: scorer returned a different number of scores than splits requested")

// Scorer returns a log-likelihood for each candidate split/sequence in
// batch; higher is better (spec §4.B, §6). Implementations may be
// I/O-backed; the core treats every call as synchronous (spec §5).
type Scorer interface {
	ScoreSplits(batch [][]tagset.SurfaceForm) ([]float64, error)
}

// FrequencyScorer is a reference Scorer backed by an in-memory bigram
// frequency table. It scores a split as the sum of its adjacent-pair
// log-frequencies (falling back to Unseen for pairs absent from the table),
// the same additive-log-likelihood shape spec §6 requires, built the way
// the teacher's dtw package accumulates a cost over a sequence of steps
// (see dtw.DTW's running-sum accumulation of a pairwise cost function).
type FrequencyScorer struct {
	// Bigram maps "lhsKey\x00rhsKey" to a log-frequency. A single-element
	// split is scored as Bigram["\x00"+text] (i.e. treated as a bigram
	// against the empty left context), letting unigram frequencies share
	// the same table.
	Bigram map[string]float64
	// Unseen is returned for any pair absent from Bigram.
	Unseen float64
}

// NewFrequencyScorer builds a FrequencyScorer with the given table and an
// Unseen fallback of -10 (a conventional "rare but not impossible" penalty).
func NewFrequencyScorer(bigram map[string]float64) *FrequencyScorer {
	return &FrequencyScorer{Bigram: bigram, Unseen: -10}
}

func bigramKey(lhs, rhs string) string {
	return lhs + "\x00" + rhs
}

func (s *FrequencyScorer) lookup(lhs, rhs string) float64 {
	if v, ok := s.Bigram[bigramKey(lhs, rhs)]; ok {
		return v
	}
	return s.Unseen
}

// ScoreSplits implements Scorer. Each entry of batch is scored independently:
// the empty split scores 0; a one-element split scores lookup("", text); a
// longer split sums lookup(prev, next) across consecutive pairs.
func (s *FrequencyScorer) ScoreSplits(batch [][]tagset.SurfaceForm) ([]float64, error) {
	scores := make([]float64, len(batch))
	for i, split := range batch {
		var total float64
		switch len(split) {
		case 0:
		case 1:
			total = s.lookup("", split[0].Text)
		default:
			for j := 1; j < len(split); j++ {
				total += s.lookup(split[j-1].Text, split[j].Text)
			}
		}
		scores[i] = total
	}
	return scores, nil
}
