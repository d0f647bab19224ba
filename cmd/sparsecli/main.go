// Command sparsecli is a thin wrapper over analyzer.Analyze: it reads one
// sentence, analyzes it against a StaticOracle fixture, and prints the
// ranked parses as plain text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hareeshbabu82ns/sanskrit-parser/analyzer"
	"github.com/hareeshbabu82ns/sanskrit-parser/lexical"
	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
)

func main() {
	var (
		maxParses  = flag.Int("max-parses", 10, "maximum number of ranked parses to print")
		maxPaths   = flag.Int("max-paths", 10, "maximum number of candidate sandhi splits to consider")
		devanagari = flag.Bool("devanagari", false, "render surface/base forms in Devanāgarī")
		fixture    = flag.String("fixture", "", "path to a JSON lexicon fixture (see morph.StaticOracle); required")
	)
	flag.Parse()

	sentence := flag.Arg(0)
	if sentence == "" || *fixture == "" {
		fmt.Fprintln(os.Stderr, "usage: sparsecli -fixture lexicon.json <sentence>")
		os.Exit(2)
	}

	oracle, err := loadFixture(*fixture)
	if err != nil {
		log.Fatalf("sparsecli: %v", err)
	}

	opts := []analyzer.Option{
		analyzer.WithMaxParses(*maxParses),
		analyzer.WithMaxPaths(*maxPaths),
	}
	if *devanagari {
		opts = append(opts, analyzer.WithDevanagari(true))
	}

	parses, err := analyzer.Analyze(context.Background(), sentence, oracle, lexical.NewFrequencyScorer(nil), opts...)
	if err != nil {
		log.Fatalf("sparsecli: %v", err)
	}

	for _, p := range parses {
		fmt.Printf("#%d (cost %.2f)\n", p.Rank, p.Cost)
		for _, e := range p.Edges {
			if e.Pred == "" {
				fmt.Printf("  %s (%s) [root]\n", e.Surface, e.Base)
				continue
			}
			fmt.Printf("  %s (%s) --%s--> %s\n", e.Surface, e.Base, e.Label, e.Pred)
		}
	}
}

// loadFixture reads a JSON-encoded morph.StaticOracle from path. The
// fixture format mirrors StaticOracle's own fields directly, since no
// real dictionary-backed oracle is in scope.
func loadFixture(path string) (*morph.StaticOracle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	o := morph.NewStaticOracle()
	if err := morph.DecodeStaticOracle(f, o); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return o, nil
}
