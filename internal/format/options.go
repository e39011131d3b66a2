package format

import (
	"regexp"
	"strings"
)

// HTMLBreak is the line break inserted into HTML display text.
const HTMLBreak = "<br>"

// DefaultChoiceTypes lists the type tags reflowed as multiple choice.
var DefaultChoiceTypes = []string{"choice", "选择"}

var (
	// markerAfterStop matches an option marker that follows sentence-ending
	// punctuation or a closing parenthesis, with optional whitespace between.
	// Whitespace includes vertical tab and Unicode spaces such as U+3000,
	// which Chinese banks use between the stem and the first option.
	markerAfterStop = regexp.MustCompile(`([。？！)])[\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}]*([A-D]\.)`)
	// marker matches a bare option marker.
	marker = regexp.MustCompile(`([A-D]\.)`)
)

// Reflower inserts line breaks before option markers of choice questions.
type Reflower struct {
	choiceTypes map[string]struct{}
	lineBreak   string
}

// NewReflower builds a reflower for the given choice type tags. An empty
// list falls back to DefaultChoiceTypes and an empty break to HTMLBreak.
func NewReflower(choiceTypes []string, lineBreak string) Reflower {
	if len(choiceTypes) == 0 {
		choiceTypes = DefaultChoiceTypes
	}
	if lineBreak == "" {
		lineBreak = HTMLBreak
	}
	set := make(map[string]struct{}, len(choiceTypes))
	for _, choiceType := range choiceTypes {
		set[strings.TrimSpace(choiceType)] = struct{}{}
	}
	return Reflower{choiceTypes: set, lineBreak: lineBreak}
}

// IsChoice reports whether a type tag is reflowed.
func (r Reflower) IsChoice(questionType string) bool {
	_, ok := r.choiceTypes[questionType]
	return ok
}

// Format reflows text for choice types and returns it unchanged otherwise.
// The policy is fixed: a break goes after 。？！) ahead of a marker, then
// before every marker, and one leading break is dropped.
func (r Reflower) Format(text, questionType string) string {
	if !r.IsChoice(questionType) {
		return text
	}
	out := markerAfterStop.ReplaceAllString(text, "${1}"+escapeReplacement(r.lineBreak)+"${2}")
	out = marker.ReplaceAllString(out, escapeReplacement(r.lineBreak)+"${1}")
	return strings.TrimPrefix(out, r.lineBreak)
}

var defaultReflower = NewReflower(nil, HTMLBreak)

// FormatOptions reflows already escaped text for HTML display using the
// default choice types.
func FormatOptions(safeText, questionType string) string {
	return defaultReflower.Format(safeText, questionType)
}

// escapeReplacement protects literal dollar signs in a break token.
func escapeReplacement(token string) string {
	return strings.ReplaceAll(token, "$", "$$")
}
