package analyzer

import "github.com/hareeshbabu82ns/sanskrit-parser/morph"

// Logger is the minimal structured-logging surface Analyze accepts;
// satisfied trivially by *log.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

// Transliterator converts an SLP1 string to Devanāgarī at serialization
// time (spec §6). Actual script conversion is out of scope (spec §1);
// DefaultOptions wires an identity stub, so WithDevanagari(true) without a
// custom Transliterator just passes SLP1 through unchanged.
type Transliterator interface {
	ToDevanagari(slp1 string) string
}

type identityTransliterator struct{}

func (identityTransliterator) ToDevanagari(slp1 string) string { return slp1 }

// optimisticTransitivityOracle answers every dhātu as sakarmaka, matching
// the original builder's own fallback for cases it has no other way to
// decide (spec §4.F.1: "No way of knowing, set True").
type optimisticTransitivityOracle struct{}

func (optimisticTransitivityOracle) IsSakarmaka(string) (bool, error) { return true, nil }

// Option configures Analyze, following the teacher's functional-options
// pattern (dfs.Option, dijkstra.Option).
type Option func(*Options)

// Options controls Analyze's behavior end to end.
type Options struct {
	Logger         Logger
	Devanagari     bool
	Transliterator Transliterator
	TransOracle    morph.TransitivityOracle
	MaxPaths       int
	MaxParses      int
	MaxParseDC     int
	FastMerge      bool
}

// DefaultOptions mirrors the original module's defaults: 10 candidate
// splits, 10 returned parses, a divide-and-conquer base case of 4
// positions, fast merge, identity transliteration.
func DefaultOptions() Options {
	return Options{
		Transliterator: identityTransliterator{},
		TransOracle:    optimisticTransitivityOracle{},
		MaxPaths:       10,
		MaxParses:      10,
		MaxParseDC:     4,
		FastMerge:      true,
	}
}

// WithLogger supplies a logger for non-fatal diagnostics.
func WithLogger(l Logger) Option { return func(o *Options) { o.Logger = l } }

// WithDevanagari toggles Devanāgarī serialization of Surface/Base fields.
func WithDevanagari(b bool) Option { return func(o *Options) { o.Devanagari = b } }

// WithTransliterator supplies the SLP1->Devanāgarī collaborator used when
// WithDevanagari(true) is set.
func WithTransliterator(t Transliterator) Option { return func(o *Options) { o.Transliterator = t } }

// WithTransitivityOracle supplies the dhātu-transitivity collaborator the
// vakya builder consults for karma edges.
func WithTransitivityOracle(t morph.TransitivityOracle) Option {
	return func(o *Options) { o.TransOracle = t }
}

// WithMaxPaths bounds how many candidate lexical splits are considered.
func WithMaxPaths(n int) Option { return func(o *Options) { o.MaxPaths = n } }

// WithMaxParses bounds how many ranked parses Analyze returns.
func WithMaxParses(n int) Option { return func(o *Options) { o.MaxParses = n } }

// WithMaxParseDC overrides the divide-and-conquer base-case span.
func WithMaxParseDC(n int) Option { return func(o *Options) { o.MaxParseDC = n } }

// WithFastMerge toggles the parse package's fast/slow merge strategy.
func WithFastMerge(b bool) Option { return func(o *Options) { o.FastMerge = b } }
