package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizview/internal/format"
	"quizview/internal/render"
	"quizview/internal/viewer"
)

// loadingMessage is shown until the bank load finishes.
const loadingMessage = "Loading question bank..."

// renderCards renders the current view and returns the first line of the
// focused card.
func renderCards(c *viewer.Controller, reflower format.Reflower, cursor int, showError bool, noColor bool) (string, int) {
	switch {
	case showError:
		return stylize(render.LoadErrorMessage, noColor, lipgloss.Color("196")), 0
	case c.State() == viewer.Loading:
		return stylize(loadingMessage, noColor, lipgloss.Color("244")), 0
	}
	view := c.View()
	if len(view) == 0 {
		return stylize(render.EmptyMessage, noColor, lipgloss.Color("244")), 0
	}

	var b strings.Builder
	offset := 0
	line := 0
	for i, record := range view {
		if i == cursor {
			offset = line
		}
		card := renderCard(cardData{
			Number:  record.Number,
			Type:    sanitize(record.Type),
			Body:    reflower.Format(sanitize(record.Text), record.Type),
			Answer:  sanitize(record.Answer),
			Shown:   c.Shown(record.Number),
			Label:   c.Label(record.Number),
			Focused: i == cursor,
		}, noColor)
		b.WriteString(card)
		b.WriteString("\n")
		line += strings.Count(card, "\n") + 1
	}
	return strings.TrimRight(b.String(), "\n"), offset
}

// cardData is the display state of a single card.
type cardData struct {
	Number  int
	Type    string
	Body    string
	Answer  string
	Shown   bool
	Label   string
	Focused bool
}

// renderCard renders one card as a block of lines.
func renderCard(card cardData, noColor bool) string {
	marker := "  "
	if card.Focused {
		marker = "> "
	}
	header := marker + render.NumberLabel(card.Number) + " " + stylize("["+card.Type+"]", noColor, lipgloss.Color("39"))
	if card.Focused {
		header = bold(header, noColor)
	}
	lines := []string{header}
	for _, bodyLine := range strings.Split(card.Body, "\n") {
		lines = append(lines, "    "+bodyLine)
	}
	if card.Shown {
		lines = append(lines, "    "+stylize(render.AnswerPrefix+" "+card.Answer, noColor, lipgloss.Color("42")))
	}
	lines = append(lines, "    "+stylize("["+card.Label+"]", noColor, lipgloss.Color("244")))
	return strings.Join(lines, "\n") + "\n"
}

// renderStatus renders the type selector, match count and key help.
func renderStatus(c *viewer.Controller, typeName string, keys keyMap, noColor bool) string {
	line := "Type: " + typeName +
		" | " + strconv.Itoa(len(c.View())) + "/" + strconv.Itoa(len(c.All())) + " questions" +
		" | " + keys.shortHelp()
	return stylize(line, noColor, lipgloss.Color("242"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// bold applies optional bold styling.
func bold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
