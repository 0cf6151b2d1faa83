package cooc

import (
	"errors"
	"strings"
	"testing"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/internalerr"
)

func TestCounterInvalidWindow(t *testing.T) {
	for _, wsize := range []int{0, -1, -5} {
		_, err := NewCounter(wsize)
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("wsize=%d: expected ErrInvalidConfig, got %v", wsize, err)
		}
	}
}

func TestCounterAdjacentPairs(t *testing.T) {
	counter, err := NewCounter(1)
	if err != nil {
		t.Fatal(err)
	}

	// "the" at 0, 4, 6; "cat" at 1, 7; adjacency at (0,1) and (6,7).
	counter.AddLine(strings.Fields("the cat sat on the mat the cat ran"))

	if got := counter.PairCount("the", "cat"); got != 2 {
		t.Errorf("PairCount(the, cat) = %d, want 2", got)
	}
}

func TestCounterSymmetry(t *testing.T) {
	counter, err := NewCounter(2)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine(strings.Fields("zebra apple zebra mango"))

	count1 := counter.PairCount("zebra", "apple")
	count2 := counter.PairCount("apple", "zebra")
	if count1 != count2 {
		t.Errorf("Pair count should be symmetric, got %d and %d", count1, count2)
	}
	if count1 == 0 {
		t.Error("Expected nonzero pair count")
	}
}

func TestCounterUnknownWords(t *testing.T) {
	counter, err := NewCounter(1)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine(strings.Fields("a b"))

	if got := counter.PairCount("a", "missing"); got != 0 {
		t.Errorf("Unknown word pair should count 0, got %d", got)
	}
	if got := counter.PairCount("missing", "alsomissing"); got != 0 {
		t.Errorf("Unknown word pair should count 0, got %d", got)
	}
	if got := counter.OccurrenceCount("missing"); got != 0 {
		t.Errorf("Unknown word occurrence should be 0, got %d", got)
	}
	if got := counter.ContextCount("missing"); got != 0 {
		t.Errorf("Unknown word context count should be 0, got %d", got)
	}
}

func TestCounterWindowTruncation(t *testing.T) {
	counter, err := NewCounter(3)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine(strings.Fields("a b"))

	// Only one pair possible; boundary positions have fewer neighbors.
	if got := counter.PairCount("a", "b"); got != 1 {
		t.Errorf("PairCount(a, b) = %d, want 1", got)
	}
	if got := counter.UniquePairs(); got != 1 {
		t.Errorf("UniquePairs = %d, want 1", got)
	}
}

func TestCounterLineBoundary(t *testing.T) {
	counter, err := NewCounter(5)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine([]string{"a"})
	counter.AddLine([]string{"b"})

	// Windows never cross lines.
	if got := counter.PairCount("a", "b"); got != 0 {
		t.Errorf("Cross-line pair should count 0, got %d", got)
	}
	if got := counter.OccurrenceCount("a"); got != 1 {
		t.Errorf("OccurrenceCount(a) = %d, want 1", got)
	}
}

func TestCounterRepeatedWordWindow(t *testing.T) {
	counter, err := NewCounter(2)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine(strings.Fields("x y x"))

	// Events: (x,y), (x,x), (y,x). The self-pair is seen from both
	// centers, so it counts twice.
	if got := counter.PairCount("x", "y"); got != 2 {
		t.Errorf("PairCount(x, y) = %d, want 2", got)
	}
	if got := counter.PairCount("x", "x"); got != 2 {
		t.Errorf("PairCount(x, x) = %d, want 2", got)
	}
}

func TestCounterSelfPairBothDirections(t *testing.T) {
	counter, err := NewCounter(1)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine([]string{"x", "x"})

	// Each of the two positions sees the other as context.
	if got := counter.PairCount("x", "x"); got != 2 {
		t.Errorf("PairCount(x, x) = %d, want 2", got)
	}

	counter.AddLine([]string{"x", "x", "x"})
	// Adds events (x,x) at (0,1), (1,2): four more observations.
	if got := counter.PairCount("x", "x"); got != 6 {
		t.Errorf("PairCount(x, x) = %d, want 6", got)
	}
}

func TestCounterMarginalInvariants(t *testing.T) {
	counter, err := NewCounter(2)
	if err != nil {
		t.Fatal(err)
	}
	counter.AddLine(strings.Fields("the cat sat on the mat"))
	counter.AddLine(strings.Fields("the dog ran"))

	var occSum, ctxSum int64
	for _, w := range counter.Vocab().Words() {
		occSum += counter.OccurrenceCount(w)
		ctxSum += counter.ContextCount(w)
	}

	if occSum != counter.TokenCount() {
		t.Errorf("Sum of occurrence counts %d != token count %d", occSum, counter.TokenCount())
	}
	if ctxSum != counter.Total() {
		t.Errorf("Sum of context marginals %d != total %d", ctxSum, counter.Total())
	}

	var pairSum int64
	counter.ForEachPair(func(a, b int32, n int64) {
		pairSum += 2 * n
	})
	if pairSum != counter.Total() {
		t.Errorf("Pair events x2 = %d != total %d", pairSum, counter.Total())
	}
}

func TestVocabularyStableIndices(t *testing.T) {
	vocab := NewVocabulary()

	i1 := vocab.Intern("alpha")
	i2 := vocab.Intern("beta")
	if i1 == i2 {
		t.Error("Distinct words should get distinct indices")
	}
	if again := vocab.Intern("alpha"); again != i1 {
		t.Errorf("Re-interning should return the same index, got %d and %d", i1, again)
	}
	if vocab.Word(i2) != "beta" {
		t.Errorf("Word(%d) = %q, want beta", i2, vocab.Word(i2))
	}
	if _, ok := vocab.Lookup("gamma"); ok {
		t.Error("Lookup of unseen word should fail")
	}
	if vocab.Size() != 2 {
		t.Errorf("Size = %d, want 2", vocab.Size())
	}
}
