package cooc

// Vocabulary assigns a stable int32 index to every word it has seen.
// Indices are dense and follow first-appearance order, so counts and
// vectors can be keyed by index instead of string.
type Vocabulary struct {
	index map[string]int32
	words []string
}

// NewVocabulary creates an empty vocabulary
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int32)}
}

// Intern returns the index for word, assigning a new one on first sight.
func (v *Vocabulary) Intern(word string) int32 {
	if i, ok := v.index[word]; ok {
		return i
	}
	i := int32(len(v.words))
	v.index[word] = i
	v.words = append(v.words, word)
	return i
}

// Lookup returns the index for word, or false if the word was never seen.
func (v *Vocabulary) Lookup(word string) (int32, bool) {
	i, ok := v.index[word]
	return i, ok
}

// Word returns the word at the given index.
func (v *Vocabulary) Word(i int32) string {
	return v.words[i]
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Words returns all words in index order. The slice is a copy.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}
