package render

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"quizview/internal/question"
)

// TestCardsRendersEachRecordInOrder verifies card markup and ordering.
func TestCardsRendersEachRecordInOrder(t *testing.T) {
	records := []question.Record{
		{Number: 2, Type: "choice", Text: "A.1+1=? B.2 C.3", Answer: "B"},
		{Number: 1, Type: "true-false", Text: "Go has generics", Answer: "true"},
	}
	html := mustRender(t, NewRenderer(nil).Cards(records))

	first := strings.Index(html, `id="q2"`)
	second := strings.Index(html, `id="q1"`)
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected q2 before q1 in %s", html)
	}
	if !strings.Contains(html, "A.1+1=? <br>B.2 <br>C.3") {
		t.Fatalf("expected reflowed options in %s", html)
	}
	if strings.Count(html, `class="`+ToggleClass+`"`) != 2 {
		t.Fatalf("expected one toggle per card")
	}
	if strings.Contains(html, ShownClass) {
		t.Fatalf("expected answers to start hidden")
	}
	if !strings.Contains(html, "<strong>B</strong>") || !strings.Contains(html, "<strong>true</strong>") {
		t.Fatalf("expected answers to be present in the DOM")
	}
}

// TestCardsEscapesUntrustedText verifies question, answer and type are escaped.
func TestCardsEscapesUntrustedText(t *testing.T) {
	records := []question.Record{{
		Number: 5,
		Type:   `x"><script>`,
		Text:   "<img src=x onerror=alert(1)>",
		Answer: "</strong><b>bold</b>",
	}}
	html := mustRender(t, NewRenderer(nil).Cards(records))
	for _, raw := range []string{"<img", "<script>", "<b>bold"} {
		if strings.Contains(html, raw) {
			t.Fatalf("found unescaped %q in %s", raw, html)
		}
	}
	if !strings.Contains(html, "&lt;img src=x onerror=alert(1)&gt;") {
		t.Fatalf("expected escaped question text in %s", html)
	}
}

// TestCardMarkup pins the markup the browser script and stylesheet bind to.
func TestCardMarkup(t *testing.T) {
	html := mustRender(t, NewRenderer(nil).Card(question.Record{
		Number: 7,
		Type:   "judge",
		Text:   "Go & templ",
		Answer: `"yes"`,
	}))
	want := `<div class="question-card" id="q7" data-number="7" data-type="judge">` +
		`<div class="question-header"><span>Question 7</span> <span class="type-tag">judge</span></div>` +
		`<div class="question-text">Go &amp; templ</div>` +
		`<div class="answer">` + AnswerPrefix + ` <strong>&#34;yes&#34;</strong></div>` +
		`<button type="button" class="toggle-btn">` + ToggleLabelHidden + `</button></div>`
	if html != want {
		t.Fatalf("unexpected card markup:\n got %s\nwant %s", html, want)
	}
}

// TestCardsEmptyShowsPlaceholder verifies the placeholder replaces an empty list.
func TestCardsEmptyShowsPlaceholder(t *testing.T) {
	html := mustRender(t, NewRenderer(nil).Cards(nil))
	if !strings.Contains(html, EmptyMessage) {
		t.Fatalf("expected placeholder, got %s", html)
	}
	if strings.Contains(html, CardClass) {
		t.Fatalf("expected no cards, got %s", html)
	}
}

// TestLoadErrorMessage verifies the fixed failure message.
func TestLoadErrorMessage(t *testing.T) {
	html := mustRender(t, LoadError())
	if !strings.Contains(html, LoadErrorMessage) {
		t.Fatalf("expected load error message, got %s", html)
	}
}

// TestPageWiresControls verifies the page carries the stable element ids.
func TestPageWiresControls(t *testing.T) {
	html := mustRender(t, Page(PageData{
		Search:    `"quoted"`,
		Type:      "choice",
		Types:     []string{"choice", "true-false"},
		ScriptURL: "/assets/viewer.js",
		StyleURL:  "/assets/viewer.css",
		Body:      Empty(),
	}))
	for _, token := range []string{
		`id="` + ContainerID + `"`,
		`id="` + SearchInputID + `"`,
		`id="` + TypeFilterID + `"`,
		`<option value="choice" selected>`,
		`<option value="all">`,
		`value="&#34;quoted&#34;"`,
		`<script src="/assets/viewer.js" defer></script>`,
		`<link rel="stylesheet" href="/assets/viewer.css">`,
		EmptyMessage,
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected %q in page:\n%s", token, html)
		}
	}
	if !strings.HasPrefix(html, "<!doctype html>") || !strings.Contains(html, "<title>Question Bank</title>") {
		t.Fatalf("expected a full document with the default title:\n%s", html)
	}
}

// TestPageRejectsUnsafeAssetURLs verifies script and style URLs are sanitized.
func TestPageRejectsUnsafeAssetURLs(t *testing.T) {
	html := mustRender(t, Page(PageData{
		Title:     "<Bank>",
		ScriptURL: "javascript:alert(1)",
	}))
	if strings.Contains(html, "javascript:") {
		t.Fatalf("expected unsafe url to be replaced:\n%s", html)
	}
	if strings.Contains(html, "<link") {
		t.Fatalf("expected no stylesheet link without a url")
	}
	if !strings.Contains(html, "<h1>&lt;Bank&gt;</h1>") {
		t.Fatalf("expected escaped title:\n%s", html)
	}
}

func mustRender(t *testing.T, component templ.Component) string {
	t.Helper()
	html, err := String(context.Background(), component)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}
