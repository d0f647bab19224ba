package vakya

// Label names the grammatical relation a VakyaGraph edge represents
// (spec §4.F). Every constant spells the Pāṇinian term the edge stands for,
// matching the terminology the oracle and scorer already use for tags.
type Label string

const (
	LabelKarta                Label = "kartA"
	LabelKartaSamanadhikarana Label = "kartfsamAnADikaraRa"
	LabelKarma                Label = "karma"
	LabelKaranam              Label = "karaRam"
	LabelSampradanam          Label = "sampradAnam"
	LabelApadanam             Label = "apAdanam"
	LabelAdhikaranam          Label = "aDikaraRam"
	LabelSambodhyam           Label = "samboDyam"
	LabelHetuKarta            Label = "hetu-kartA"

	LabelSamasta         Label = "samasta"
	LabelShashthiSambandha Label = "zazWI-sambanDa"

	LabelKriyavisheshanam Label = "kriyAviSezaRam"
	LabelVisheshanam      Label = "viSezaRam"

	LabelPurvakalah  Label = "pUrvakAlaH"
	LabelPrayojanam  Label = "prayojanam"
	LabelSamanakalah Label = "samAnakAlaH"

	LabelUpasarga Label = "upasargaH"
	LabelNishedha Label = "nizeDa"

	LabelUpapadaDvitiya Label = "upapadadvitIya"
	LabelUpapadaPancami Label = "upapadapancami"

	LabelBhavalakshanam Label = "BAvalakzaRam"
	LabelVipsa          Label = "vIpsA"

	LabelVakyasambandhah Label = "vAkyasambanDaH"
	LabelSambaddhaKriya  Label = "saMbadDakriyA"
)

// sambaddhaPrefix is prepended to a label when add_sentence_conjunctions
// reverses a conjunction node's predecessor edges (spec §4.F.12).
const sambaddhaPrefix = "sambadDa-"

// karakas is the closed set of semantic-role labels a verb may assign at
// most once each (spec §4.F.1, §9 global constraint). It intentionally
// spells "apAdAnam" (long A after the D), which never matches the "apAdanam" label
// actually produced by addKarakas — a discrepancy inherited unchanged from
// the original source's own karakas set vs. its edge label string, and
// preserved here rather than silently fixed (see DESIGN.md).
var karakas = map[Label]bool{
	LabelKarta:       true,
	LabelKarma:       true,
	LabelKaranam:     true,
	"apAdAnam":       true,
	LabelSampradanam: true,
	LabelAdhikaranam: true,
	LabelHetuKarta:   true,
}

// isProjLabel reports whether l is subject to the non-projectivity
// (sannidhi) constraint: karakas plus kriyAviSezaRam, plus their sambaddha-
// reversed forms and saMbadDakriyA (spec §9).
func isProjLabel(l Label) bool {
	if karakas[l] || l == LabelKriyavisheshanam || l == LabelSambaddhaKriya {
		return true
	}
	s := string(l)
	if len(s) > len(sambaddhaPrefix) && s[:len(sambaddhaPrefix)] == sambaddhaPrefix {
		base := Label(s[len(sambaddhaPrefix):])
		return karakas[base] || base == LabelKriyavisheshanam
	}
	return false
}

// isSambaddhaLabel reports whether l is a sambadDa-<projLabel> reversed
// label, used by the single-sambaddha-edge-per-node global constraint.
func isSambaddhaLabel(l Label) bool {
	s := string(l)
	if len(s) <= len(sambaddhaPrefix) || s[:len(sambaddhaPrefix)] != sambaddhaPrefix {
		return false
	}
	base := Label(s[len(sambaddhaPrefix):])
	return karakas[base] || base == LabelKriyavisheshanam
}

// IsKaraka reports whether l is one of the semantic-role labels a verb may
// assign at most once each (spec §9 global constraint). Exported so the
// parse package's validator can apply the constraint without duplicating
// the (deliberately preserved, see above) "apAdAnam" spelling quirk.
func IsKaraka(l Label) bool { return karakas[l] }

// IsProjective reports whether l is subject to the non-projectivity
// (sannidhi) constraint.
func IsProjective(l Label) bool { return isProjLabel(l) }

// IsSambaddha reports whether l is a sambadDa-<label> reversed edge.
func IsSambaddha(l Label) bool { return isSambaddhaLabel(l) }
