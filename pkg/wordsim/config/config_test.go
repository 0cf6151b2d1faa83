package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParams(t *testing.T) {
	path := writeFile(t, "params.yaml", `
window_size: 5
epsilon: 0.5
cache_size: 64
`)

	params, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}
	if params.WindowSize != 5 {
		t.Errorf("WindowSize = %d, want 5", params.WindowSize)
	}
	if params.Epsilon != 0.5 {
		t.Errorf("Epsilon = %v, want 0.5", params.Epsilon)
	}
	if params.CacheSize != 64 {
		t.Errorf("CacheSize = %d, want 64", params.CacheSize)
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadParamsInvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "window_size: [not a number")
	if _, err := LoadParams(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", `
terms:
  - the
  - a
  - of
`)

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sl.Terms) != 3 || sl.Terms[0] != "the" {
		t.Errorf("Unexpected stoplist: %v", sl.Terms)
	}
}
