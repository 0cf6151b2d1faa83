// Package analytics summarizes a built model as a corpus report.
package analytics

import (
	"sort"

	"github.com/kevinliao2003/wordsim/pkg/wordsim"
)

// WordCount is a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
}

// PairScore is a word pair with its PPMI score.
type PairScore struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

// Report summarizes corpus-wide statistics of a built model.
type Report struct {
	VocabSize  int         `json:"vocab_size"`
	TokenCount int64       `json:"token_count"`
	TopWords   []WordCount `json:"top_words"`
	TopPairs   []PairScore `json:"top_ppmi_pairs"`
}

// BuildReport collects the topN most frequent words and the topN
// strongest PPMI pairs from a built model. Orderings are deterministic:
// counts/scores descending, then word order ascending.
func BuildReport(m *wordsim.Model, topN int) Report {
	if topN <= 0 {
		topN = 20
	}

	report := Report{
		VocabSize:  m.VocabSize(),
		TokenCount: m.TokenCount(),
	}

	words := m.Vocab()

	counts := make([]WordCount, 0, len(words))
	for _, w := range words {
		counts = append(counts, WordCount{Word: w, Count: m.OccurrenceCount(w)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})
	if len(counts) > topN {
		counts = counts[:topN]
	}
	report.TopWords = counts

	// Strongest pair per word, deduplicated, then global top-N.
	type pairKey struct {
		a, b string
	}
	seen := make(map[pairKey]struct{})
	var pairs []PairScore
	for _, w := range words {
		neighbors, err := m.TopKPPMI(w, 1)
		if err != nil || len(neighbors) == 0 {
			continue
		}
		n := neighbors[0]
		a, b := w, n.Word
		if b < a {
			a, b = b, a
		}
		key := pairKey{a: a, b: b}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, PairScore{A: a, B: b, Score: n.Score})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	if len(pairs) > topN {
		pairs = pairs[:topN]
	}
	report.TopPairs = pairs

	return report
}
