package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFromString(t *testing.T) {
	ctx := context.Background()

	segments, err := FromString("the cat sat").Segments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0] != "the cat sat" {
		t.Errorf("Unexpected segments: %v", segments)
	}
}

func TestFromStringEmpty(t *testing.T) {
	segments, err := FromString("").Segments(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 0 {
		t.Errorf("Empty corpus should yield no segments, got %v", segments)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	segments, err := FromFile(path).Segments(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0] != "line one\nline two\n" {
		t.Errorf("Unexpected segments: %v", segments)
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")).Segments(context.Background())
	if err == nil {
		t.Error("Missing corpus file should surface a read error")
	}
}
