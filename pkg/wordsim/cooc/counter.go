package cooc

import (
	"fmt"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/internalerr"
)

// Pair is a canonically ordered pair of vocabulary indices (A <= B).
// Co-occurrence is symmetric, so only unordered pairs are stored.
type Pair struct {
	A, B int32
}

// canonical returns the canonically ordered pair for two indices.
func canonical(a, b int32) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Counter accumulates windowed co-occurrence counts over token lines.
//
// For a center token at position i, every position j in (i, i+wsize]
// within the same line contributes one co-occurrence event for the
// unordered pair (token[i], token[j]). Windows are truncated at line
// boundaries; positions near a boundary simply have fewer neighbors.
//
// Each event also adds one context observation to both endpoints, so
// Total() equals the sum of all context marginals (a pair event is seen
// once from each side). OccurrenceCount tracks plain token frequency:
// its sum over the vocabulary equals TokenCount().
type Counter struct {
	vocab     *Vocabulary
	wsize     int
	pairs     map[Pair]int64
	marginals []int64 // context observations per word
	freq      []int64 // occurrences per word
	total     int64   // sum of marginals
	tokens    int64
}

// NewCounter creates a counter for the given window size (tokens on each
// side of a center token). wsize must be positive.
func NewCounter(wsize int) (*Counter, error) {
	if wsize <= 0 {
		return nil, fmt.Errorf("window size %d: %w", wsize, internalerr.ErrInvalidConfig)
	}
	return &Counter{
		vocab: NewVocabulary(),
		wsize: wsize,
		pairs: make(map[Pair]int64),
	}, nil
}

// AddLine updates counts for one line of tokens. Windows never cross
// line boundaries.
func (c *Counter) AddLine(tokens []string) {
	idx := make([]int32, len(tokens))
	for i, tok := range tokens {
		idx[i] = c.intern(tok)
	}

	for i := range idx {
		c.freq[idx[i]]++
		c.tokens++

		end := i + c.wsize
		if end >= len(idx) {
			end = len(idx) - 1
		}
		for j := i + 1; j <= end; j++ {
			c.pairs[canonical(idx[i], idx[j])]++
			c.marginals[idx[i]]++
			c.marginals[idx[j]]++
			c.total += 2
		}
	}
}

func (c *Counter) intern(word string) int32 {
	i := c.vocab.Intern(word)
	for int(i) >= len(c.marginals) {
		c.marginals = append(c.marginals, 0)
		c.freq = append(c.freq, 0)
	}
	return i
}

// PairCount returns the number of co-occurrence observations for the
// unordered pair (a, b). Unknown words and never co-occurring pairs
// yield 0. A same-word pair is observed once from each side, so
// PairCount(w, w) reports twice the stored event count.
func (c *Counter) PairCount(a, b string) int64 {
	ia, ok := c.vocab.Lookup(a)
	if !ok {
		return 0
	}
	ib, ok := c.vocab.Lookup(b)
	if !ok {
		return 0
	}
	n := c.pairs[canonical(ia, ib)]
	if ia == ib {
		n *= 2
	}
	return n
}

// ContextCount returns the total context observations for a word, i.e.
// the marginal of the pair table. 0 for unknown words.
func (c *Counter) ContextCount(word string) int64 {
	i, ok := c.vocab.Lookup(word)
	if !ok {
		return 0
	}
	return c.marginals[i]
}

// ContextCountIndex is ContextCount by vocabulary index.
func (c *Counter) ContextCountIndex(i int32) int64 {
	return c.marginals[i]
}

// OccurrenceCount returns how often a word occurs in the corpus.
// 0 for unknown words.
func (c *Counter) OccurrenceCount(word string) int64 {
	i, ok := c.vocab.Lookup(word)
	if !ok {
		return 0
	}
	return c.freq[i]
}

// Total returns the corpus-wide number of context observations
// (both directions of every pair event).
func (c *Counter) Total() int64 {
	return c.total
}

// TokenCount returns the number of token positions seen.
func (c *Counter) TokenCount() int64 {
	return c.tokens
}

// Vocab returns the vocabulary built during counting.
func (c *Counter) Vocab() *Vocabulary {
	return c.vocab
}

// UniquePairs returns the number of distinct co-occurring pairs.
func (c *Counter) UniquePairs() int {
	return len(c.pairs)
}

// ForEachPair calls fn for every stored pair with its raw event count
// (self-pairs are stored once per unordered event; see PairCount).
// Iteration order is unspecified.
func (c *Counter) ForEachPair(fn func(a, b int32, n int64)) {
	for p, n := range c.pairs {
		fn(p.A, p.B, n)
	}
}
