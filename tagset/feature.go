// Package tagset defines the closed morphological feature vocabulary used
// throughout the parser: vibhakti (case), vacana (number), puruṣa (person),
// liṅga (gender), lakāra (finite-verb paradigm), kṛt (participial suffix
// class), and the auxiliary flags a surface form may carry.
//
// Every feature is a single bit in a uint64 FeatureSet, so membership,
// union, and intersection tests are O(1) instead of Python-style set
// operations over strings.
package tagset

import "fmt"

// Feature identifies a single morphological tag. The numeric value is the
// bit position within a FeatureSet; it is never persisted across builds, so
// reordering this block is safe.
type Feature uint8

// Vibhakti (nominal case). Eight in total, spec §3.
const (
	PraTamAviBaktiH Feature = iota
	DvitIyAviBaktiH
	TftIyAviBaktiH
	CaturTIviBaktiH
	PaYcamIviBaktiH
	ZazWIviBaktiH
	SaptamIviBaktiH
	SaMboDanaviBaktiH
)

// Vacana (grammatical number).
const (
	Ekavacanam Feature = iota + 8
	Dvivacanam
	Bahuvacanam
)

// Puruṣa (verbal person).
const (
	PraTamapuruzaH Feature = iota + 11
	MaDyamapuruzaH
	UttamapuruzaH
)

// Liṅga (gender).
const (
	PuMlliNgam Feature = iota + 14
	NapuMsakaliNgam
	StrIliNgam
	TriliNgam
)

// Lakāra (finite-verb paradigms). The original source's `lakaras` set
// carries eleven members; spec.md's "ten in total" is a rounding the
// original source does not support, so all eleven are kept (see DESIGN.md).
const (
	Law Feature = iota + 18
	Liw
	Luw
	Lrw
	Low
	LaN
	LiN
	LuN
	LfN
	ViDiliN
	ASIrliN
)

// Kṛt (deverbal participial suffix class). Seven categories, spec §3.
const (
	KtvA Feature = iota + 29
	Satf
	Sanac
	Tumun
	Kta
	Ktavatu
	Lyap
)

// Auxiliary flags, spec §3.
const (
	UpasargaH Feature = iota + 36
	KarmapravacanIyaH
	Avyayam
	KriyAviSezaRam
	RijantaH
	KarmaRi
	SamAsapUrvapadanAmapadam
	SaMyojakaH
)

// featureNames maps each Feature back to its canonical SLP1 spelling, used
// for diagnostics and serialization.
var featureNames = map[Feature]string{
	PraTamAviBaktiH:   "praTamAviBaktiH",
	DvitIyAviBaktiH:   "dvitIyAviBaktiH",
	TftIyAviBaktiH:    "tftIyAviBaktiH",
	CaturTIviBaktiH:   "caturTIviBaktiH",
	PaYcamIviBaktiH:   "paYcamIviBaktiH",
	ZazWIviBaktiH:     "zazWIviBaktiH",
	SaptamIviBaktiH:   "saptamIviBaktiH",
	SaMboDanaviBaktiH: "saMboDanaviBaktiH",

	Ekavacanam: "ekavacanam",
	Dvivacanam: "dvivacanam",
	Bahuvacanam: "bahuvacanam",

	PraTamapuruzaH: "praTamapuruzaH",
	MaDyamapuruzaH: "maDyamapuruzaH",
	UttamapuruzaH:  "uttamapuruzaH",

	PuMlliNgam:      "puMlliNgam",
	NapuMsakaliNgam: "napuMsakaliNgam",
	StrIliNgam:      "strIliNgam",
	TriliNgam:       "triliNgam",

	Law: "law", Liw: "liw", Luw: "luw", Lrw: "lrw", Low: "low",
	LaN: "laN", LiN: "liN", LuN: "luN", LfN: "lfN",
	ViDiliN: "viDiliN", ASIrliN: "ASIrliN",

	KtvA: "ktvA", Satf: "Satf", Sanac: "Sanac", Tumun: "tumun",
	Kta: "kta", Ktavatu: "ktavatu", Lyap: "lyap",

	UpasargaH:                "upasargaH",
	KarmapravacanIyaH:        "karmapravacanIyaH",
	Avyayam:                  "avyayam",
	KriyAviSezaRam:           "kriyAviSezaRam",
	RijantaH:                 "RijantaH",
	KarmaRi:                  "karmaRi",
	SamAsapUrvapadanAmapadam: "samAsapUrvapadanAmapadam",
	SaMyojakaH:               "saMyojakaH",
}

// String returns the canonical SLP1 spelling of f, or a placeholder for an
// out-of-range value (which indicates a programming error upstream).
func (f Feature) String() string {
	if s, ok := featureNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

var namesToFeature = func() map[string]Feature {
	m := make(map[string]Feature, len(featureNames))
	for f, s := range featureNames {
		m[s] = f
	}
	return m
}()

// ParseFeature looks up a Feature by its canonical SLP1 spelling, the
// inverse of Feature.String. Used to decode serialized tag sets (fixture
// files, CLI input) back into the closed enum.
func ParseFeature(name string) (Feature, bool) {
	f, ok := namesToFeature[name]
	return f, ok
}

// FeatureSet is a bitset over Feature, used both as a TagSet's tag payload
// and as a closed "tag family" predicate (e.g. LakaraSet, KrtVerbSet).
type FeatureSet uint64

// NewFeatureSet builds a FeatureSet from individual features.
func NewFeatureSet(fs ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range fs {
		s = s.With(f)
	}
	return s
}

// With returns a FeatureSet with f added.
func (s FeatureSet) With(f Feature) FeatureSet {
	return s | (1 << uint(f))
}

// Has reports whether f is present in s.
func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<uint(f)) != 0
}

// Intersects reports whether s and other share at least one feature.
func (s FeatureSet) Intersects(other FeatureSet) bool {
	return s&other != 0
}

// Intersection returns the bitwise-AND of s and other.
func (s FeatureSet) Intersection(other FeatureSet) FeatureSet {
	return s & other
}

// Union returns the bitwise-OR of s and other.
func (s FeatureSet) Union(other FeatureSet) FeatureSet {
	return s | other
}

// Equal reports whether s and other carry exactly the same features.
func (s FeatureSet) Equal(other FeatureSet) bool {
	return s == other
}

// Closed tag families referenced throughout §4.F of the specification.
var (
	// LakaraSet is every finite-verb paradigm (ti~Nanta).
	LakaraSet = NewFeatureSet(Law, Liw, Luw, Lrw, Low, LaN, LiN, LuN, LfN, ViDiliN, ASIrliN)

	// KrtVerbSet is every non-finite participial verb form.
	KrtVerbSet = NewFeatureSet(KtvA, Satf, Sanac, Tumun, Kta, Ktavatu, Lyap)

	// PurvakalaSet marks ktvA/lyap absolutives ("having done X").
	PurvakalaSet = NewFeatureSet(KtvA, Lyap)

	// SamanakalaSet marks Satf/Sanac present participles ("while doing X").
	SamanakalaSet = NewFeatureSet(Satf, Sanac)

	// NishtaSet marks kta/ktavatu past participles.
	NishtaSet = NewFeatureSet(Kta, Ktavatu)

	// KarmaniSet marks passive voice.
	KarmaniSet = NewFeatureSet(KarmaRi)

	// SamastaSet marks a compound's non-final member.
	SamastaSet = NewFeatureSet(SamAsapUrvapadanAmapadam)

	// NijantaSet marks causative (RijantaH) formations.
	NijantaSet = NewFeatureSet(RijantaH)

	// VibhaktiSet is all eight nominal cases.
	VibhaktiSet = NewFeatureSet(PraTamAviBaktiH, DvitIyAviBaktiH, TftIyAviBaktiH,
		CaturTIviBaktiH, PaYcamIviBaktiH, ZazWIviBaktiH, SaptamIviBaktiH, SaMboDanaviBaktiH)

	// VacanaSet is all three grammatical numbers.
	VacanaSet = NewFeatureSet(Ekavacanam, Dvivacanam, Bahuvacanam)

	// LingaSet is all four genders.
	LingaSet = NewFeatureSet(PuMlliNgam, NapuMsakaliNgam, StrIliNgam, TriliNgam)

	// PurushaSet is all three verbal persons.
	PurushaSet = NewFeatureSet(PraTamapuruzaH, MaDyamapuruzaH, UttamapuruzaH)
)
