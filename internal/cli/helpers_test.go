package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleBankJSON = `[
  {"number": 1, "type": "choice", "text": "A.1+1=? B.2", "answer": "B"},
  {"number": 2, "type": "true-false", "text": "Go is compiled", "answer": "true"}
]`

// workspace creates a temp directory, makes it the working directory and
// writes files into it.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	t.Chdir(dir)
	return dir
}
