// Package similarity answers nearest-neighbor queries over per-word PPMI
// vectors. Each vocabulary word is a sparse vector of its positive PPMI
// scores against all other words; closeness is cosine similarity.
package similarity

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/cooc"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/internalerr"
	"github.com/kevinliao2003/wordsim/pkg/wordsim/ppmi"
)

// DefaultCacheSize bounds the top-k result cache when the caller does not
// choose a size.
const DefaultCacheSize = 256

// Neighbor pairs a word with its cosine similarity to the query word.
type Neighbor struct {
	Word  string
	Score float64
}

// Index holds the sparse PPMI vectors and precomputed magnitudes for the
// whole vocabulary. It is immutable after construction; queries are safe
// for concurrent readers.
type Index struct {
	vocab *cooc.Vocabulary
	rows  []map[int32]float64
	mags  []float64
	cache *lru.Cache[string, []Neighbor]
}

// NewIndex builds the similarity index from a PPMI table. cacheSize bounds
// the memoized top-k results; 0 selects DefaultCacheSize, negative is a
// configuration error.
func NewIndex(table *ppmi.Table, cacheSize int) (*Index, error) {
	if cacheSize < 0 {
		return nil, fmt.Errorf("cache size %d: %w", cacheSize, internalerr.ErrInvalidConfig)
	}
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []Neighbor](cacheSize)
	if err != nil {
		return nil, err
	}

	vocab := table.Vocab()
	rows := make([]map[int32]float64, vocab.Size())
	mags := make([]float64, vocab.Size())
	for i := range rows {
		row := table.Row(int32(i))
		rows[i] = row
		var sum float64
		for _, score := range row {
			sum += score * score
		}
		mags[i] = math.Sqrt(sum)
	}

	return &Index{vocab: vocab, rows: rows, mags: mags, cache: cache}, nil
}

// Cosine returns the cosine similarity between the PPMI vectors of two
// words: (u·v)/(‖u‖‖v‖), 0 when either magnitude is zero. Unknown words
// also yield 0.
func (x *Index) Cosine(a, b string) float64 {
	ia, ok := x.vocab.Lookup(a)
	if !ok {
		return 0
	}
	ib, ok := x.vocab.Lookup(b)
	if !ok {
		return 0
	}
	return x.cosine(ia, ib)
}

func (x *Index) cosine(i, j int32) float64 {
	if x.mags[i] == 0 || x.mags[j] == 0 {
		return 0
	}

	// Iterate the smaller row, probe the larger.
	small, large := x.rows[i], x.rows[j]
	if len(small) > len(large) {
		small, large = large, small
	}
	var dot float64
	for dim, v := range small {
		dot += v * large[dim]
	}
	if dot == 0 {
		return 0
	}
	return dot / (x.mags[i] * x.mags[j])
}

// TopKCosine returns up to k words with the highest cosine similarity to
// word, in decreasing score order, excluding the word itself and any word
// with zero similarity. Ties break by vocabulary index ascending, so
// repeated queries are bit-identical. Unknown words yield ErrNotFound;
// negative k yields ErrInvalidInput; k = 0 returns an empty result.
func (x *Index) TopKCosine(word string, k int) ([]Neighbor, error) {
	if k < 0 {
		return nil, fmt.Errorf("k %d: %w", k, internalerr.ErrInvalidInput)
	}
	i, ok := x.vocab.Lookup(word)
	if !ok {
		return nil, fmt.Errorf("word %q: %w", word, internalerr.ErrNotFound)
	}
	if k == 0 || x.mags[i] == 0 {
		return nil, nil
	}

	key := word + "\x00" + strconv.Itoa(k)
	if cached, ok := x.cache.Get(key); ok {
		return copyNeighbors(cached), nil
	}

	type scored struct {
		idx   int32
		score float64
	}
	var candidates []scored
	for j := int32(0); j < int32(x.vocab.Size()); j++ {
		if j == i {
			continue
		}
		if score := x.cosine(i, j); score > 0 {
			candidates = append(candidates, scored{idx: j, score: score})
		}
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
		neighbors[n] = Neighbor{Word: x.vocab.Word(c.idx), Score: c.score}
	}

	x.cache.Add(key, neighbors)
	return copyNeighbors(neighbors), nil
}

// copyNeighbors keeps cached slices safe from caller mutation.
func copyNeighbors(in []Neighbor) []Neighbor {
	if in == nil {
		return nil
	}
	out := make([]Neighbor, len(in))
	copy(out, in)
	return out
}
