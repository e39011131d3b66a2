package question

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quizview/internal/testutil"
)

// TestLoadJSONFile verifies a JSON bank loads in order.
func TestLoadJSONFile(t *testing.T) {
	path := writeBank(t, "data.json", `[
  {"number": 1, "type": "choice", "text": "Pick one A.x B.y", "answer": "A"},
  {"number": 2, "type": "true-false", "text": "Sky is blue", "answer": "true"}
]`)
	records, err := Load(testutil.Context(t, time.Second), nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Number != 1 || records[1].Number != 2 {
		t.Fatalf("unexpected order: %+v", records)
	}
	if records[1].Type != "true-false" || records[1].Answer != "true" {
		t.Fatalf("unexpected record: %+v", records[1])
	}
}

// TestLoadLegacyKeys verifies the original bank key names are accepted.
func TestLoadLegacyKeys(t *testing.T) {
	path := writeBank(t, "data.json", `[{"题号": 39, "类型": "选择", "题目": "哪个？A.甲 B.乙", "标准答案": "B"}]`)
	records, err := Load(testutil.Context(t, time.Second), nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := records[0]
	if got.Number != 39 || got.Type != "选择" || got.Answer != "B" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

// TestLoadYAMLFile verifies YAML banks decode with the same field names.
func TestLoadYAMLFile(t *testing.T) {
	path := writeBank(t, "bank.yaml", `- number: 7
  type: choice
  text: "A.1 B.2"
  answer: B
`)
	records, err := Load(testutil.Context(t, time.Second), nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 || records[0].Number != 7 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// TestLoadEmptyList verifies an empty array is a valid, empty bank.
func TestLoadEmptyList(t *testing.T) {
	path := writeBank(t, "data.json", `[]`)
	records, err := Load(testutil.Context(t, time.Second), nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

// TestLoadMalformedBody verifies parse failures wrap ErrParse.
func TestLoadMalformedBody(t *testing.T) {
	path := writeBank(t, "data.json", `{"number": 1`)
	_, err := Load(testutil.Context(t, time.Second), nil, path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

// TestLoadMissingFile verifies missing files surface an error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testutil.Context(t, time.Second), nil, filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

// TestLoadRemote verifies banks are fetched over HTTP.
func TestLoadRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"number": 3, "type": "choice", "text": "Q", "answer": "A"}]`))
	}))
	t.Cleanup(server.Close)

	records, err := Load(testutil.Context(t, time.Second), server.Client(), server.URL+"/data.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 || records[0].Number != 3 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// TestLoadRemoteNonSuccessStatus verifies non-2xx responses fail the load.
func TestLoadRemoteNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	_, err := Load(testutil.Context(t, time.Second), server.Client(), server.URL+"/data.json")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected status error, got %v", err)
	}
}

// TestIsRemote verifies URL detection.
func TestIsRemote(t *testing.T) {
	if !IsRemote("HTTPS://example.com/data.json") {
		t.Fatalf("expected https url to be remote")
	}
	if IsRemote("data/http.json") {
		t.Fatalf("expected relative path to be local")
	}
}

// writeBank writes a bank file under a temp dir.
func writeBank(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}
