// Package format turns raw question text into display text.
package format

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape neutralizes the characters that can open markup in HTML text
// content. Quotes are left alone; attribute values go through the
// renderer's attribute escaping instead.
func Escape(text string) string {
	return textEscaper.Replace(text)
}
