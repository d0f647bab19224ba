package vakya

// Lexical base-form sets and edge-cost table used by the builder and the
// ranker. These are closed, small vocabularies of indeclinables
// (avyaya) that carry no morphological tag distinguishing their role, so
// matching proceeds on the base form itself rather than on a Feature
// (spec §4.F, original_source/datastructures.py).
var (
	// predicativeVerbs are dhātus that take a kartṛsamānādhikaraṇa
	// (predicative-kartā) noun instead of an ordinary kartā when their
	// agreement edge doesn't match (copulas/semi-copulas): as, BU, vft.
	predicativeVerbs = map[string]bool{"as": true, "BU": true, "vft": true}

	// avyayaKriyav are indeclinables that function as kriyāviśeṣaṇa
	// without carrying the kriyAviSezaRam tag themselves.
	avyayaKriyav = map[string]bool{
		"kila": true, "bata": true, "aho": true, "nanu": true,
		"hanta": true, "eva": true, "tu": true,
	}

	// nishedha is the negation particle set.
	nishedha = map[string]bool{"na": true}

	// karmap2 are karmapravacanīya bases governing a dvitīyā upapada.
	karmap2 = map[string]bool{"anu": true, "upa": true, "prati": true, "aBi": true, "aDi": true, "ati": true}

	// karmap5 are karmapravacanīya bases governing a pañcamī upapada.
	karmap5 = map[string]bool{"apa": true, "pari": true, "A": true, "prati": true}

	// karmapNull are karmapravacanīya bases excluded from the karma edge
	// pending a proper disambiguation (original source's own FIXME: "api"
	// and "su" in the pUjAyAm sense).
	karmapNull = map[string]bool{"su": true, "api": true}

	// sentenceConjunctions maps a "yad-series" conjunction base to its
	// "tad-series" partner base, or "" when the conjunction has no fixed
	// partner (its vAkyasambanDaH link is resolved purely via saMyojakaH).
	sentenceConjunctions = map[string]string{
		"yad": "tad", "yadi": "tarhi", "yatra": "tatra", "yaTA": "taTA",
		"api": "", "cet": "", "yat": "", "natu": "", "ca": "",
	}
)

// isConjunction reports whether base is a registered sentence-conjunction
// key (the "yad-series" side only).
func isConjunction(base string) bool {
	_, ok := sentenceConjunctions[base]
	return ok
}

// IsConjunctionBase reports whether base is a registered sentence
// conjunction ("yad-series" keys only; tad-series partners such as
// "tarhi" are not included), exported for the parse package's
// conjunction-balance validity check.
func IsConjunctionBase(base string) bool { return isConjunction(base) }

// edgeCost weighs a label for Rank's parse-cost computation (spec §4.H).
// Every karaka defaults to 0.9, with kartA and karma further discounted;
// every other label defaults to 1. The "apAdAnam"/"apAdanam" spelling
// mismatch described in label.go means apadāna edges fall through to the
// 1.0 default here too, exactly as in the source this is grounded on.
func EdgeCost(l Label) float64 { return edgeCost(l) }

func edgeCost(l Label) float64 {
	switch l {
	case LabelKarta:
		return 0.8
	case LabelKarma:
		return 0.85
	}
	if karakas[l] {
		return 0.9
	}
	return 1.0
}
