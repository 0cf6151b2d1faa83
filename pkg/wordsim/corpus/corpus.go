// Package corpus supplies readable text to the model builder. A Source
// yields document texts; line structure inside each text is preserved for
// window truncation downstream.
package corpus

import (
	"context"
	"os"
)

// Source yields the documents of a corpus as raw text segments.
type Source interface {
	Segments(ctx context.Context) ([]string, error)
}

type stringSource struct {
	text string
}

// FromString wraps an in-memory text as a single-document corpus.
func FromString(text string) Source {
	return stringSource{text: text}
}

func (s stringSource) Segments(ctx context.Context) ([]string, error) {
	if s.text == "" {
		return nil, nil
	}
	return []string{s.text}, nil
}

type fileSource struct {
	path string
}

// FromFile reads a corpus from a text file at build time. Read failures
// surface as construction errors.
func FromFile(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Segments(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return []string{string(data)}, nil
}
