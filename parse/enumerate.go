package parse

import (
	"github.com/hareeshbabu82ns/sanskrit-parser/dsu"
	"github.com/hareeshbabu82ns/sanskrit-parser/vakya"
)

// Option configures Enumerate.
type Option func(*Options)

// Options controls the divide-and-conquer enumeration (spec §4.G).
type Options struct {
	// MaxParseDC is the largest span of sentence positions solved by the
	// direct (non-recursive) base case before splitting in two.
	MaxParseDC int
	// FastMerge selects the cheap merge-feasibility pre-check (canMerge)
	// over the edge-by-edge re-validation (mergeSlow). Both are correct;
	// FastMerge trades a small amount of extra (ultimately rejected, see
	// Validate) over-generation for speed.
	FastMerge bool
}

// DefaultOptions mirrors the original module's constructor defaults.
func DefaultOptions() Options { return Options{MaxParseDC: 4, FastMerge: true} }

// WithMaxParseDC overrides the base-case span size.
func WithMaxParseDC(n int) Option { return func(o *Options) { o.MaxParseDC = n } }

// WithFastMerge toggles the fast/slow merge strategy.
func WithFastMerge(b bool) Option { return func(o *Options) { o.FastMerge = b } }

// Enumerate returns every partial spanning forest spanning the whole of
// g's sentence positions, via the divide-and-conquer algorithm: solve each
// half independently, then merge compatible halves (spec §4.G). The
// result is not yet filtered for the global constraints only a complete
// parse can violate — call Validate next.
func Enumerate(g *vakya.Graph, opts ...Option) []*PartialParse {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	partitions := g.Partitions()
	universe := make([]vakya.NodeID, 0, g.NodeCount())
	for _, s := range partitions {
		universe = append(universe, s...)
	}
	base := dsu.New(universe)

	return dc(g, base, 0, len(partitions), cfg)
}

func dc(g *vakya.Graph, base *dsu.DisjointSet[vakya.NodeID], mn, mx int, cfg Options) []*PartialParse {
	if mx-mn > cfg.MaxParseDC {
		md := (mx + mn) / 2
		left := dc(g, base, mn, md, cfg)
		right := dc(g, base, md, mx, cfg)
		return mergePartials(left, right, mn, mx, cfg.FastMerge)
	}
	return parseSubrange(g, base, mn, mx)
}

// parseSubrange is the base case: a direct left-to-right sweep across
// positions [mn, mx) building every feasible partial forest incrementally
// (spec §4.G _get_parse_sub).
func parseSubrange(g *vakya.Graph, base *dsu.DisjointSet[vakya.NodeID], mn, mx int) []*PartialParse {
	partitions := g.Partitions()
	var partialParses []*PartialParse

	for relI, pos := 0, mn; pos < mx; relI, pos = relI+1, pos+1 {
		ns := partitions[pos]
		if relI == 0 {
			partialParses = []*PartialParse{newEmptyParse(g, base)}
			for _, n := range ns {
				for _, pred := range g.Predecessors(n) {
					pp := newEmptyParse(g, base)
					pp.populate(pred, n)
					partialParses = append(partialParses, pp)
				}
			}
			continue
		}

		var kept, store []*PartialParse
		for _, ps := range partialParses {
			if ps.Len() >= relI {
				kept = append(kept, ps)
			}
			for _, n := range ns {
				for _, pred := range g.Predecessors(n) {
					if ps.isSafe(pred, n) {
						psc := ps.Copy()
						psc.extend(pred, n)
						store = append(store, psc)
					}
				}
			}
		}
		partialParses = append(kept, store...)
	}
	return partialParses
}

// mergePartials combines every pair of compatible partial forests from two
// disjoint position ranges (spec §4.G _merge_partials). l is the number
// of edges a complete spanning forest over [mn, mx) needs: one fewer than
// the number of positions, since each merge can only ever close one gap
// between the two halves.
func mergePartials(pp1, pp2 []*PartialParse, mn, mx int, fastMerge bool) []*PartialParse {
	l := mx - mn - 1
	var out []*PartialParse
	for _, a := range pp1 {
		for _, b := range pp2 {
			if fastMerge {
				if a.canMerge(b, l) {
					out = append(out, a.mergeFast(b))
				}
				continue
			}
			if merged, ok := a.mergeSlow(b, l); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}
