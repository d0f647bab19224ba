package vakya

import "github.com/hareeshbabu82ns/sanskrit-parser/tagset"

// matchLingaVacana reports gender/number agreement between two nodes
// (spec §4.F.4 viśeṣaṇa, §4.F.12 sentence conjunctions).
func matchLingaVacana(a, b Node) bool {
	return a.Tag.Vacana() == b.Tag.Vacana() && a.Tag.Linga() == b.Tag.Linga()
}

// matchLingaVacanaVibhakti additionally requires matching case, the full
// agreement test for ordinary viśeṣaṇa (spec §4.F.4).
func matchLingaVacanaVibhakti(a, b Node) bool {
	return matchLingaVacana(a, b) &&
		a.Tag.Vibhakti() == b.Tag.Vibhakti()
}

// matchPurushaVacana checks verb/kartā agreement for a finite-verb node d
// and a prathamā-case node n. The expected person is read off of n's base
// form: asmad -> uttama (first person), yuzmad -> madhyama (second
// person), anything else -> prathama (third person) (spec §4.F.1).
func matchPurushaVacana(d, n Node) bool {
	var want tagset.FeatureSet
	switch n.base() {
	case "asmad":
		want = tagset.NewFeatureSet(tagset.UttamapuruzaH)
	case "yuzmad":
		want = tagset.NewFeatureSet(tagset.MaDyamapuruzaH)
	default:
		want = tagset.NewFeatureSet(tagset.PraTamapuruzaH)
	}
	return d.Tag.Vacana() == n.Tag.Vacana() && d.Tag.Purusha() == want
}

// checkSambodhya checks vocative-address agreement for a finite verb d and
// a sambodhana-case node n: matching number, and n addressed in madhyama
// puruṣa (spec §4.F.1).
func checkSambodhya(d, n Node) bool {
	return d.Tag.Vacana() == n.Tag.Vacana() &&
		d.Tag.Purusha() == tagset.NewFeatureSet(tagset.MaDyamapuruzaH)
}
