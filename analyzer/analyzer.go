// Package analyzer is the parser's single entry point: split a sentence
// into candidate lexical items, tag and relate them, and return ranked
// grammatical parses (spec §6). Every collaborator (dictionary, scorer,
// transliterator) is injected, so Analyze itself holds no I/O.
package analyzer

import (
	"context"
	"fmt"
	"sort"

	"github.com/hareeshbabu82ns/sanskrit-parser/lexical"
	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/parse"
	"github.com/hareeshbabu82ns/sanskrit-parser/sandhi"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
)

// Parse is one ranked, serializable grammatical analysis of a sentence
// (spec §6). Rank is 1-based ascending by Cost.
type Parse struct {
	Edges []ParseEdge
	Rank  int
	Cost  float64
}

// ParseEdge is one row of a Parse's serialization: either a governed node
// (Label/Pred set to the edge that governs it) or a forest root (Label
// and Pred both empty), mirroring the original source's jnode/jedge
// helpers.
type ParseEdge struct {
	Surface string
	Base    string
	Tags    []string
	Label   string
	Pred    string
}

// Analyze splits sentence via oracle, builds a VakyaGraph per candidate
// split, enumerates and validates every spanning parse, and returns them
// ranked ascending by cost (spec §6). ctx is checked between candidate
// splits so a caller can cancel an expensive multi-path analysis.
func Analyze(ctx context.Context, sentence string, oracle morph.Oracle, scorer lexical.Scorer, opts ...Option) ([]Parse, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sg, err := oracle.CandidateSplits(sentence)
	if err != nil {
		return nil, fmt.Errorf("analyzer: candidate splits: %w", err)
	}
	if sg == nil {
		return nil, ErrNoSplitAnalysis
	}

	paths, err := sg.FindAllPaths(sandhi.WithMaxPaths(cfg.MaxPaths), sandhi.WithScorer(scorer))
	if err != nil {
		return nil, fmt.Errorf("analyzer: find splits: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoSplitAnalysis
	}

	var all []Parse
	sawTaggedSplit := false
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var vopts []vakya.Option
		if cfg.Logger != nil {
			vopts = append(vopts, vakya.WithLogger(cfg.Logger))
		}
		vg, err := vakya.NewGraph(path, oracle, cfg.TransOracle, vopts...)
		if err != nil {
			return nil, fmt.Errorf("analyzer: build relation graph: %w", err)
		}
		if vg.NodeCount() == 0 {
			continue
		}
		sawTaggedSplit = true

		partials := parse.Enumerate(vg, parse.WithMaxParseDC(cfg.MaxParseDC), parse.WithFastMerge(cfg.FastMerge))
		partials = parse.Validate(vg, partials)
		for _, r := range parse.Rank(partials) {
			all = append(all, Parse{Edges: serialize(vg, r.Parse, cfg), Cost: r.Cost})
		}
	}

	if !sawTaggedSplit {
		return nil, ErrNoTagAnalysis
	}
	if len(all) == 0 {
		return nil, ErrEmptyParseSet
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Cost < all[j].Cost })
	if len(all) > cfg.MaxParses {
		all = all[:cfg.MaxParses]
	}
	for i := range all {
		all[i].Rank = i + 1
	}
	return all, nil
}

// serialize flattens a validated PartialParse into ParseEdge rows: one per
// edge, plus one per active node with no incoming edge in this parse
// (a forest root).
func serialize(vg *vakya.Graph, p *parse.PartialParse, cfg Options) []ParseEdge {
	hasIncoming := make(map[vakya.NodeID]bool)
	rows := make([]ParseEdge, 0, len(p.ActiveNodes()))

	for _, e := range p.Edges() {
		pred, node := vg.Node(e.Pred), vg.Node(e.Node)
		rows = append(rows, ParseEdge{
			Surface: transliterate(cfg, node.Form.Text),
			Base:    transliterate(cfg, node.Tag.Base),
			Tags:    node.Tag.FeatureNames(),
			Label:   string(e.Label),
			Pred:    transliterate(cfg, pred.Form.Text),
		})
		hasIncoming[e.Node] = true
	}
	for _, id := range p.ActiveNodes() {
		if hasIncoming[id] {
			continue
		}
		n := vg.Node(id)
		rows = append(rows, ParseEdge{
			Surface: transliterate(cfg, n.Form.Text),
			Base:    transliterate(cfg, n.Tag.Base),
			Tags:    n.Tag.FeatureNames(),
		})
	}
	return rows
}

func transliterate(cfg Options, slp1 string) string {
	if !cfg.Devanagari {
		return slp1
	}
	return cfg.Transliterator.ToDevanagari(slp1)
}
