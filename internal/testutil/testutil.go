package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile writes content to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

// WriteCorpus writes each named file under dir and returns the full
// paths, ordered by file name so tests are deterministic.
func WriteCorpus(t *testing.T, dir string, files map[string]string) []string {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, WriteFile(t, dir, name, files[name]))
	}
	return paths
}

// SampleCorpus returns file contents with well-known counts after case
// folding: 9 words total, 5 distinct — "the" 3x, "quick" 2x, "fox" 2x,
// "brown" 1x, "dog" 1x.
func SampleCorpus() map[string]string {
	return map[string]string{
		"a.txt": "the quick brown fox",
		"b.txt": "The quick fox",
		"c.txt": "the dog",
	}
}
