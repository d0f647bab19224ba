package analyzer_test

import (
	"context"
	"fmt"

	"github.com/hareeshbabu82ns/sanskrit-parser/analyzer"
	"github.com/hareeshbabu82ns/sanskrit-parser/lexical"
	"github.com/hareeshbabu82ns/sanskrit-parser/morph"
	"github.com/hareeshbabu82ns/sanskrit-parser/tagset"
)

func ExampleAnalyze() {
	// Wire a minimal two-word oracle: "rAmaH gacCati" ("Rāma goes").
	oracle := morph.NewStaticOracle()
	oracle.Splits["rAmogacCati"] = [][]string{{"rAmaH", "gacCati"}}
	oracle.Tags["rAmaH"] = []tagset.TagSet{
		tagset.NewTagSet("rAma", tagset.PraTamAviBaktiH, tagset.Ekavacanam, tagset.PuMlliNgam),
	}
	oracle.Tags["gacCati"] = []tagset.TagSet{
		tagset.NewTagSet("gam", tagset.Law, tagset.PraTamapuruzaH, tagset.Ekavacanam),
	}
	oracle.Sakarmaka["gam"] = false

	parses, err := analyzer.Analyze(context.Background(), "rAmogacCati", oracle, lexical.NewFrequencyScorer(nil))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The ranked first parse of this two-word fixture.
	top := parses[0]
	fmt.Printf("rank %d, %d edge rows\n", top.Rank, len(top.Edges))

	// Output:
	// rank 1, 2 edge rows
}
