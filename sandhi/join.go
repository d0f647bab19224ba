package sandhi

// vowelSandhi is a deliberately partial table of SLP1 vowel-sandhi
// combinations (simple/guṇa/vṛddhi rules for a/A meeting another vowel).
// Consonant and visarga sandhi are not modeled: SandhiGraph.Join exists so
// the lattice builder can propose candidate joined surface forms for the
// MorphOracle to validate, not to be a complete phonological engine (the
// dictionary/oracle is the authority on what is actually a word, spec §1).
var vowelSandhi = map[string]string{
	"aa": "A", "aA": "A", "Aa": "A", "AA": "A",
	"ai": "e", "aI": "e", "Ai": "e", "AI": "e",
	"au": "o", "aU": "o", "Au": "o", "AU": "o",
	"ae": "E", "Ae": "E",
	"ao": "O", "Ao": "O",
}

// Join returns every candidate surface form produced by combining a and b
// at their shared boundary: the unmodified concatenation, plus a
// vowel-sandhi candidate when the table above covers the boundary pair.
// Callers (typically a MorphOracle-backed lattice builder) are expected to
// keep only the candidates the dictionary actually recognizes.
func Join(a, b string) []string {
	candidates := []string{a + b}
	if a == "" || b == "" {
		return candidates
	}
	key := a[len(a)-1:] + b[:1]
	if combined, ok := vowelSandhi[key]; ok {
		candidates = append(candidates, a[:len(a)-1]+combined+b[1:])
	}
	return candidates
}
