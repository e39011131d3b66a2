package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"quizview/internal/render"
	"quizview/internal/ui/browse"
)

func TestViewPlainPrintsFilteredBank(t *testing.T) {
	workspace(t, map[string]string{"bank.json": sampleBankJSON})

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "bank.json", "--search", "COMPILED", "--answers"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	want := "Question 2 [true-false]\n  Go is compiled\n  " + render.AnswerPrefix + " true\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out.String(), want)
	}
}

func TestViewPlainReflowsChoices(t *testing.T) {
	workspace(t, map[string]string{"bank.json": sampleBankJSON})

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "bank.json", "--type", "choice", "--ui", "plain"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "  A.1+1=? \n  B.2\n") {
		t.Fatalf("expected options on separate lines, got %q", out.String())
	}
	if strings.Contains(out.String(), "Question 2") || strings.Contains(out.String(), render.AnswerPrefix) {
		t.Fatalf("unexpected content: %q", out.String())
	}
}

func TestViewPlainNoMatches(t *testing.T) {
	workspace(t, map[string]string{"bank.json": sampleBankJSON})

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "bank.json", "--type", "essay"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if strings.TrimSpace(out.String()) != render.EmptyMessage {
		t.Fatalf("expected placeholder, got %q", out.String())
	}
}

func TestViewLoadFailureShowsErrorMessage(t *testing.T) {
	workspace(t, nil)

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "missing.json"}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if strings.TrimSpace(out.String()) != render.LoadErrorMessage {
		t.Fatalf("expected load error message, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Failed to load question bank") {
		t.Fatalf("expected error detail on stderr, got %q", errOut.String())
	}
}

func TestViewReadsConfigFile(t *testing.T) {
	workspace(t, map[string]string{
		".quizview.yml": "data:\n  source: bank.yaml\nui:\n  mode: plain\n",
		"bank.yaml":     "- number: 7\n  type: essay\n  text: Explain goroutines\n  answer: Lightweight threads\n",
	})

	var out, errOut bytes.Buffer
	code := Run([]string{"view"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Question 7 [essay]") {
		t.Fatalf("expected bank from config, got %q", out.String())
	}
}

func TestViewLiveUsesBrowser(t *testing.T) {
	workspace(t, map[string]string{"bank.json": sampleBankJSON})

	origTerminal := isTerminal
	origBrowser := runBrowser
	t.Cleanup(func() {
		isTerminal = origTerminal
		runBrowser = origBrowser
	})
	isTerminal = func(io.Writer) bool { return true }

	var gotOpts browse.Options
	var loaded int
	runBrowser = func(ctx context.Context, _ io.Reader, _ io.Writer, load browse.LoadFunc, opts browse.Options) error {
		gotOpts = opts
		records, err := load(ctx)
		if err != nil {
			return err
		}
		loaded = len(records)
		return nil
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "bank.json", "--search", "go", "--type", "true-false", "--no-color", "--jump", "2"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if loaded != 2 {
		t.Fatalf("expected browser to load 2 records, got %d", loaded)
	}
	if gotOpts.Search != "go" || gotOpts.Type != "true-false" || !gotOpts.NoColor || gotOpts.Jump != 2 {
		t.Fatalf("unexpected options: %+v", gotOpts)
	}
	if len(gotOpts.ChoiceTypes) != 2 {
		t.Fatalf("expected default choice types, got %v", gotOpts.ChoiceTypes)
	}
}

func TestViewRejectsInvalidUIMode(t *testing.T) {
	workspace(t, map[string]string{"bank.json": sampleBankJSON})

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "--data", "bank.json", "--ui", "fancy"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", errOut.String())
	}
}

func TestViewRejectsPositionalArguments(t *testing.T) {
	workspace(t, nil)

	var out, errOut bytes.Buffer
	code := Run([]string{"view", "extra"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unexpected arguments: extra") {
		t.Fatalf("expected argument error, got %q", errOut.String())
	}
}
