package tagset

// TagSet pairs a dhātu/prātipadika base form with the set of morphological
// features a particular analysis assigns to it (spec §3).
type TagSet struct {
	Base     string
	Features FeatureSet
}

// NewTagSet builds a TagSet from a base form and its features.
func NewTagSet(base string, fs ...Feature) TagSet {
	return TagSet{Base: base, Features: NewFeatureSet(fs...)}
}

// Is reports whether the TagSet carries feature f.
func (t TagSet) Is(f Feature) bool {
	return t.Features.Has(f)
}

// IsAny reports whether the TagSet carries any feature in fs (spec §4.E
// node_is_a over a set-of-tags).
func (t TagSet) IsAny(fs FeatureSet) bool {
	return t.Features.Intersects(fs)
}

// Vibhakti returns the nominal case features present on t (normally at most
// one; zero if t is not a nominal form).
func (t TagSet) Vibhakti() FeatureSet {
	return t.Features.Intersection(VibhaktiSet)
}

// Vacana returns the grammatical-number features present on t.
func (t TagSet) Vacana() FeatureSet {
	return t.Features.Intersection(VacanaSet)
}

// Linga returns the gender features present on t.
func (t TagSet) Linga() FeatureSet {
	return t.Features.Intersection(LingaSet)
}

// Purusha returns the verbal-person features present on t.
func (t TagSet) Purusha() FeatureSet {
	return t.Features.Intersection(PurushaSet)
}

// FeatureNames returns the canonical SLP1 spelling of every feature set on
// t, in ascending bit order, for serialization (spec §6).
func (t TagSet) FeatureNames() []string {
	var names []string
	for f := Feature(0); f < 64; f++ {
		if t.Features.Has(f) {
			names = append(names, f.String())
		}
	}
	return names
}

// SurfaceForm is an immutable transliterated string plus an optional
// morphological analysis (spec §3). Equality and hashing are by Text alone:
// two SurfaceForm values with the same Text but different Tag are
// considered the same lexical item for lattice purposes.
type SurfaceForm struct {
	Text string
	Tag  *TagSet
}

// NewSurfaceForm builds an untagged SurfaceForm (used by SandhiGraph, which
// has not yet consulted the MorphOracle for tags).
func NewSurfaceForm(text string) SurfaceForm {
	return SurfaceForm{Text: text}
}

// WithTag returns a copy of f carrying the given TagSet.
func (f SurfaceForm) WithTag(t TagSet) SurfaceForm {
	f.Tag = &t
	return f
}

// Key returns the canonical identity of f for map/set use: its Text.
func (f SurfaceForm) Key() string {
	return f.Text
}
