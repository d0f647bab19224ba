// Package sanskritparser analyzes a sandhi-joined Sanskrit sentence into
// ranked grammatical parses.
//
// Analysis runs in three stages, one subpackage per stage:
//
//	sandhi/  — split the sentence into a SandhiGraph lattice of candidate
//	           word boundaries (a DAG) and enumerate the K lowest-cost
//	           paths through it
//	vakya/   — for one such path, tag each surface form (morph.Oracle) and
//	           build a VakyaGraph of candidate Pāṇinian grammatical
//	           relations (kartā, karma, sambandha, …) between word pairs
//	parse/   — enumerate every spanning forest of the VakyaGraph that
//	           activates exactly one node per sentence position, drop the
//	           ones that violate a global grammatical constraint, and rank
//	           what survives by total edge cost
//
// analyzer ties the three together behind a single Analyze(ctx, sentence,
// oracle, scorer, ...) entry point; tagset, dsu, and lexical hold the
// shared vocabulary, union-find, and scoring types each stage depends on.
//
// See cmd/sparsecli for a runnable CLI and analyzer's ExampleAnalyze for a
// programmatic usage sample.
//
//	go get github.com/hareeshbabu82ns/sanskrit-parser
package sanskritparser
