// Command wordsim builds a co-occurrence model from a corpus and answers
// pairwise-count, PPMI and nearest-neighbor queries from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kevinliao2003/wordsim/pkg/wordsim"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/analytics"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/config"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/corpus"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Path to corpus text file")
		dbPath     = flag.String("db", "", "Path to SQLite corpus store (alternative to -corpus)")
		paramsCfg  = flag.String("config", "", "Optional: YAML model parameters")
		stopCfg    = flag.String("stoplist", "", "Optional: YAML stoplist")
		window     = flag.Int("window", 5, "Context window size (tokens each side)")
		word       = flag.String("word", "", "Query word for -topk / -topk-ppmi")
		pair       = flag.String("pair", "", "Word pair \"a,b\" for pairwise count and PPMI")
		k          = flag.Int("k", 10, "Number of neighbors for top-k queries")
		topkPPMI   = flag.Bool("topk-ppmi", false, "Rank neighbors by PPMI instead of cosine")
		report     = flag.Bool("report", false, "Print a JSON corpus report")
		reportN    = flag.Int("report-n", 20, "Entries per report section")
	)
	flag.Parse()

	if *corpusPath == "" && *dbPath == "" {
		log.Fatal("one of -corpus or -db required")
	}
	if *corpusPath != "" && *dbPath != "" {
		log.Fatal("-corpus and -db are mutually exclusive")
	}

	ctx := context.Background()

	loader := config.Loader{
		ParamsPath:   *paramsCfg,
		StoplistPath: *stopCfg,
	}
	opts, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}
	if opts.WindowSize == 0 {
		opts.WindowSize = *window
	}

	var src corpus.Source
	if *corpusPath != "" {
		src = corpus.FromFile(*corpusPath)
	} else {
		store, err := corpus.OpenDocStore(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open corpus store: %v", err)
		}
		defer store.Close()
		src = store
	}

	model, err := wordsim.New(ctx, src, opts)
	if err != nil {
		log.Fatalf("build model: %v", err)
	}
	log.Printf("model built: %d words, %d tokens", model.VocabSize(), model.TokenCount())

	if *report {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analytics.BuildReport(model, *reportN)); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	if *pair != "" {
		parts := strings.SplitN(*pair, ",", 2)
		if len(parts) != 2 {
			log.Fatalf("invalid -pair %q, want \"a,b\"", *pair)
		}
		a := strings.TrimSpace(parts[0])
		b := strings.TrimSpace(parts[1])
		fmt.Printf("pairwise_count(%s, %s) = %d\n", a, b, model.PairwiseCount(a, b))
		fmt.Printf("ppmi(%s, %s) = %.6f\n", a, b, model.PPMI(a, b))
	}

	if *word != "" {
		var (
			neighbors []wordsim.Neighbor
			err       error
		)
		if *topkPPMI {
			neighbors, err = model.TopKPPMI(*word, *k)
		} else {
			neighbors, err = model.TopKCosine(*word, *k)
		}
		if err != nil {
			log.Fatalf("top-k query: %v", err)
		}
		for i, n := range neighbors {
			fmt.Printf("%2d. %-20s %.6f\n", i+1, n.Word, n.Score)
		}
	}
}
