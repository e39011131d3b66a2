package browse

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitize makes bank text safe to print: escape sequences are removed
// whole, then remaining control characters other than newline are dropped.
// Tabs become spaces so card indentation stays aligned.
func sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return -1
		default:
			return r
		}
	}, ansi.Strip(text))
}
