package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer handles text tokenization and normalization.
//
// The normalization policy is fixed: tokens are lowercased; letters, digits
// and interior hyphens are token runes; every other rune is a boundary.
// Leading/trailing hyphens are stripped and runs of hyphens collapsed.
// The policy is deliberately lossless beyond that (no length or numeric
// filtering) because every surviving token participates in window counts.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list.
// Stopwords are removed before windowing; pass nil for none.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens, removing stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if word := t.processToken(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// TokenizeLines splits text into one token sequence per line. Context
// windows are truncated at line boundaries downstream, so the line
// structure of the corpus is preserved here. Lines with no surviving
// tokens are dropped.
func (t *Tokenizer) TokenizeLines(text string) [][]string {
	var lines [][]string
	for _, line := range strings.Split(text, "\n") {
		tokens := t.Tokenize(line)
		if len(tokens) > 0 {
			lines = append(lines, tokens)
		}
	}
	return lines
}

// processToken applies cleaning and stopword filtering.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" {
		return ""
	}
	if _, ok := t.stopwords[word]; ok {
		return ""
	}
	return word
}

// cleanToken strips leading/trailing hyphens and normalizes consecutive hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
