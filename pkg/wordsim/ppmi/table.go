package ppmi

import (
	"fmt"
	"sort"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/cooc"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/internalerr"
)

// Neighbor pairs a word with a score, ordered by the query that produced it.
type Neighbor struct {
	Word  string
	Score float64
}

// Table holds PPMI scores for all observed word pairs, computed eagerly
// from a co-occurrence counter. Only strictly positive scores are stored;
// Value returns 0 for everything else, including unknown words.
//
// A pair of the same word at two positions is observed once from each
// side, so self-pairs enter the formula with twice their event count.
type Table struct {
	vocab *cooc.Vocabulary
	rows  []map[int32]float64
}

// NewTable computes the PPMI table for all pairs in the counter.
func NewTable(counter *cooc.Counter, calc *Calculator) *Table {
	vocab := counter.Vocab()
	rows := make([]map[int32]float64, vocab.Size())
	total := counter.Total()

	counter.ForEachPair(func(a, b int32, n int64) {
		if a == b {
			n *= 2
		}
		score := calc.PPMI(n, counter.ContextCountIndex(a), counter.ContextCountIndex(b), total)
		if score <= 0 {
			return
		}
		if rows[a] == nil {
			rows[a] = make(map[int32]float64)
		}
		rows[a][b] = score
		if b != a {
			if rows[b] == nil {
				rows[b] = make(map[int32]float64)
			}
			rows[b][a] = score
		}
	})

	return &Table{vocab: vocab, rows: rows}
}

// Value returns PPMI(a, b). Symmetric; 0 for unknown words and pairs
// with no positive association.
func (t *Table) Value(a, b string) float64 {
	ia, ok := t.vocab.Lookup(a)
	if !ok {
		return 0
	}
	ib, ok := t.vocab.Lookup(b)
	if !ok {
		return 0
	}
	return t.ValueIndex(ia, ib)
}

// ValueIndex is Value by vocabulary index.
func (t *Table) ValueIndex(a, b int32) float64 {
	if t.rows[a] == nil {
		return 0
	}
	return t.rows[a][b]
}

// Row returns the sparse PPMI row for a vocabulary index: context index →
// positive score. May be nil. Callers must not mutate it.
func (t *Table) Row(i int32) map[int32]float64 {
	return t.rows[i]
}

// Vocab returns the vocabulary the table is keyed by.
func (t *Table) Vocab() *cooc.Vocabulary {
	return t.vocab
}

// TopKByPPMI returns up to k context words with the highest PPMI to word,
// in decreasing score order. Ties break by vocabulary index ascending.
// Unknown words yield ErrNotFound; negative k yields ErrInvalidInput.
func (t *Table) TopKByPPMI(word string, k int) ([]Neighbor, error) {
	if k < 0 {
		return nil, fmt.Errorf("k %d: %w", k, internalerr.ErrInvalidInput)
	}
	i, ok := t.vocab.Lookup(word)
	if !ok {
		return nil, fmt.Errorf("word %q: %w", word, internalerr.ErrNotFound)
	}
	if k == 0 || t.rows[i] == nil {
		return nil, nil
	}

	type scored struct {
		idx   int32
		score float64
	}
	candidates := make([]scored, 0, len(t.rows[i]))
	for j, score := range t.rows[i] {
		candidates = append(candidates, scored{idx: j, score: score})
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].idx < candidates[b].idx
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	neighbors := make([]Neighbor, len(candidates))
	for n, c := range candidates {
		neighbors[n] = Neighbor{Word: t.vocab.Word(c.idx), Score: c.score}
	}
	return neighbors, nil
}
