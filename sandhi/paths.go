package sandhi

import (
	"sort"

	"github.com/hareeshbabu82ns/sanskrit-parser/lexical"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

// Option configures FindAllPaths, following the functional-option shape
// the teacher uses for dfs.Option/dijkstra.Option.
type Option func(*FindOptions)

// FindOptions controls FindAllPaths (spec §4.D).
type FindOptions struct {
	// MaxPaths bounds how many paths are returned. If greater than 1000,
	// FindAllPaths falls back to enumerating every simple path unscored
	// (K-shortest-simple-paths search is too slow at that scale).
	MaxPaths int
	// Sort, when MaxPaths > 1000, requests ascending-by-length ordering of
	// the unscored enumeration. Ignored in the K-shortest branch, which is
	// always explicitly ordered.
	Sort bool
	// Score requests per-edge weighting and a final rescoring+descending
	// sort of the returned paths by full-sequence score. When false, paths
	// are ranked purely by hop count.
	Score bool
	// Scorer supplies the lexical model. Required when Score is true.
	Scorer lexical.Scorer
}

// DefaultFindOptions mirrors the original module's defaults: 10 paths,
// sorted, scored.
func DefaultFindOptions() FindOptions {
	return FindOptions{MaxPaths: 10, Sort: true, Score: true}
}

// WithMaxPaths sets the maximum number of paths to return.
func WithMaxPaths(n int) Option { return func(o *FindOptions) { o.MaxPaths = n } }

// WithSort toggles length-ascending sort in the unscored-enumeration branch.
func WithSort(b bool) Option { return func(o *FindOptions) { o.Sort = b } }

// WithScore toggles scoring; WithScorer must also be supplied when true.
func WithScore(b bool) Option { return func(o *FindOptions) { o.Score = b } }

// WithScorer supplies the lexical model used when Score is true.
func WithScorer(s lexical.Scorer) Option { return func(o *FindOptions) { o.Scorer = s } }

// FindAllPaths returns up to MaxPaths interior node sequences from START to
// END (spec §4.D). If the SandhiGraph still has unlocked roots, LockStart
// runs first. Returns the empty slice, not an error, if no START→END path
// exists (spec §7 NoSplitAnalysis is the caller's concern, not this
// method's).
func (g *Graph) FindAllPaths(opts ...Option) ([][]tagset.SurfaceForm, error) {
	cfg := DefaultFindOptions()
	for _, o := range opts {
		o(&cfg)
	}

	g.mu.Lock()
	if len(g.roots) > 0 {
		// Re-acquire via the exported LockStart to keep one code path
		// responsible for the invariant check.
		g.mu.Unlock()
		if err := g.LockStart(); err != nil {
			return nil, err
		}
		g.mu.Lock()
	}
	g.mu.Unlock()

	if cfg.Score {
		if err := g.ScoreGraph(cfg.Scorer); err != nil {
			return nil, err
		}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if cfg.MaxPaths <= 1000 {
		return g.findKShortest(cfg)
	}
	paths, err := g.findAllSimple(cfg.Sort)
	if err != nil {
		return nil, err
	}
	if len(paths) > cfg.MaxPaths {
		paths = paths[:cfg.MaxPaths]
	}
	return paths, nil
}

// weightFn returns a per-edge weight function: real weight if scored,
// uniform hop-count otherwise.
func (g *Graph) weightFn(scored bool) func(from, to string) float64 {
	if scored {
		return func(from, to string) float64 { return g.out[from][to].weight }
	}
	return func(from, to string) float64 { return 1 }
}

// findKShortest runs Yen's algorithm for loopless K-shortest paths, then
// (if scoring was requested) rescales by the full-sequence scorer and sorts
// descending by score, per spec §4.D.
func (g *Graph) findKShortest(cfg FindOptions) ([][]tagset.SurfaceForm, error) {
	wfn := g.weightFn(cfg.Score)
	keyPaths := g.yenKShortest(cfg.MaxPaths, wfn)

	paths := make([][]tagset.SurfaceForm, 0, len(keyPaths))
	for _, kp := range keyPaths {
		paths = append(paths, g.toSurfaceForms(kp.nodes))
	}
	if !cfg.Score || len(paths) == 0 {
		return paths, nil
	}

	scores, err := cfg.Scorer.ScoreSplits(paths)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(paths) {
		return nil, lexical.ErrBatchMismatch
	}
	type scored struct {
		path  []tagset.SurfaceForm
		score float64
	}
	ranked := make([]scored, len(paths))
	for i := range paths {
		ranked[i] = scored{paths[i], scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	out := make([][]tagset.SurfaceForm, len(ranked))
	for i, r := range ranked {
		out[i] = r.path
	}
	return out, nil
}

// toSurfaceForms strips the START/END sentinels and resolves node keys
// back to their SurfaceForm values.
func (g *Graph) toSurfaceForms(keys []string) []tagset.SurfaceForm {
	interior := keys[1 : len(keys)-1]
	out := make([]tagset.SurfaceForm, len(interior))
	for i, k := range interior {
		out[i] = g.nodes[k]
	}
	return out
}

// findAllSimple enumerates every simple START→END path via DFS, used for
// MaxPaths > 1000 (spec §4.D). Unscored; optionally sorted by ascending
// length.
func (g *Graph) findAllSimple(sortByLen bool) ([][]tagset.SurfaceForm, error) {
	var results [][]string
	visited := map[string]bool{startKey: true}
	path := []string{startKey}

	var dfs func(cur string)
	dfs = func(cur string) {
		if cur == endKey {
			cp := make([]string, len(path))
			copy(cp, path)
			results = append(results, cp)
			return
		}
		for next := range g.out[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			dfs(next)
			path = path[:len(path)-1]
			visited[next] = false
		}
	}
	dfs(startKey)

	if sortByLen {
		sort.SliceStable(results, func(i, j int) bool { return len(results[i]) < len(results[j]) })
	}

	out := make([][]tagset.SurfaceForm, len(results))
	for i, r := range results {
		out[i] = g.toSurfaceForms(r)
	}
	return out, nil
}
