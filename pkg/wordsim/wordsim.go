// Package wordsim computes windowed co-occurrence statistics over a text
// corpus and answers similarity queries over the derived PPMI vectors.
//
// The pipeline runs strictly forward at construction time:
// tokenize → count co-occurrences → compute PPMI → build similarity index.
// A built Model is immutable; all queries are read-only and deterministic.
package wordsim

import (
	"context"
	"fmt"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/cooc"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/corpus"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/ingest"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/ppmi"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/similarity"
)

// Options configures model construction.
type Options struct {
	// WindowSize is the number of context tokens considered on each side
	// of a center token. Must be positive.
	WindowSize int

	// Epsilon is the additive smoothing constant for PMI. 0 (the default)
	// gives the unsmoothed textbook formula.
	Epsilon float64

	// Stopwords are removed during tokenization. Empty by default.
	Stopwords []string

	// CacheSize bounds the memoized top-k similarity results.
	// 0 selects similarity.DefaultCacheSize.
	CacheSize int
}

// Neighbor pairs a word with the score of the query that produced it.
type Neighbor struct {
	Word  string
	Score float64
}

// Model holds the co-occurrence statistics, PPMI table and similarity
// index built once from a corpus.
type Model struct {
	counter *cooc.Counter
	table   *ppmi.Table
	index   *similarity.Index
}

// New builds a model from a corpus source. Construction is a one-shot
// blocking operation; configuration errors and corpus read failures
// surface immediately.
func New(ctx context.Context, src corpus.Source, opts Options) (*Model, error) {
	counter, err := cooc.NewCounter(opts.WindowSize)
	if err != nil {
		return nil, err
	}

	tokenizer := ingest.NewTokenizer(opts.Stopwords)

	segments, err := src.Segments(ctx)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	for _, segment := range segments {
		for _, line := range tokenizer.TokenizeLines(segment) {
			counter.AddLine(line)
		}
	}

	table := ppmi.NewTable(counter, ppmi.NewCalculator(opts.Epsilon))

	index, err := similarity.NewIndex(table, opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Model{counter: counter, table: table, index: index}, nil
}

// PairwiseCount returns the number of co-occurrence events for the
// unordered pair (a, b); symmetric, 0 for unknown words.
func (m *Model) PairwiseCount(a, b string) int64 {
	return m.counter.PairCount(a, b)
}

// OccurrenceCount returns how often a word occurs in the corpus.
func (m *Model) OccurrenceCount(word string) int64 {
	return m.counter.OccurrenceCount(word)
}

// ContextCount returns the word's marginal over the pair table.
func (m *Model) ContextCount(word string) int64 {
	return m.counter.ContextCount(word)
}

// PPMI returns the positive pointwise mutual information of a pair;
// symmetric, ≥ 0, 0 for unknown or unobserved pairs. Natural log.
func (m *Model) PPMI(a, b string) float64 {
	return m.table.Value(a, b)
}

// TopKPPMI returns up to k context words with the highest PPMI to word,
// decreasing, ties by vocabulary index.
func (m *Model) TopKPPMI(word string, k int) ([]Neighbor, error) {
	neighbors, err := m.table.TopKByPPMI(word, k)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(neighbors))
	for i, n := range neighbors {
		out[i] = Neighbor{Word: n.Word, Score: n.Score}
	}
	return out, nil
}

// CosineSimilarity returns the cosine similarity of two words' PPMI
// vectors; 0 for unknown words or zero-magnitude vectors.
func (m *Model) CosineSimilarity(a, b string) float64 {
	return m.index.Cosine(a, b)
}

// TopKCosine returns up to k nearest neighbors of word by cosine
// similarity over PPMI vectors, decreasing, excluding word itself.
func (m *Model) TopKCosine(word string, k int) ([]Neighbor, error) {
	neighbors, err := m.index.TopKCosine(word, k)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(neighbors))
	for i, n := range neighbors {
		out[i] = Neighbor{Word: n.Word, Score: n.Score}
	}
	return out, nil
}

// VocabSize returns the number of distinct words in the corpus.
func (m *Model) VocabSize() int {
	return m.counter.Vocab().Size()
}

// TokenCount returns the number of token positions in the corpus.
func (m *Model) TokenCount() int64 {
	return m.counter.TokenCount()
}

// Vocab returns all vocabulary words in index order.
func (m *Model) Vocab() []string {
	return m.counter.Vocab().Words()
}
