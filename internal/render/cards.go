// Package render builds the HTML for question cards and the viewer page.
package render

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"quizview/internal/format"
	"quizview/internal/question"
)

// Card class names shared with the browser script.
const (
	CardClass   = "question-card"
	ShownClass  = "show-answer"
	ToggleClass = "toggle-btn"
)

// Renderer renders question cards with a configured option reflower.
type Renderer struct {
	reflower format.Reflower
}

// NewRenderer returns a renderer that reflows the given choice types.
func NewRenderer(choiceTypes []string) Renderer {
	return Renderer{reflower: format.NewReflower(choiceTypes, format.HTMLBreak)}
}

// Cards renders the card list for records in order, or the placeholder
// when there are none. The output replaces the container content as a whole.
func (r Renderer) Cards(records []question.Record) templ.Component {
	cards := make([]cardView, 0, len(records))
	for _, record := range records {
		cards = append(cards, r.view(record))
	}
	return cardList(cards)
}

// Card renders a single question card with its answer hidden.
func (r Renderer) Card(record question.Record) templ.Component {
	return questionCard(r.view(record))
}

func (r Renderer) view(record question.Record) cardView {
	number := itoa(record.Number)
	return cardView{
		ID:     "q" + number,
		Number: number,
		Type:   record.Type,
		Label:  NumberLabel(record.Number),
		Body:   r.reflower.Format(format.Escape(record.Text), record.Type),
		Answer: record.Answer,
	}
}

// String renders a component into a string.
func String(ctx context.Context, component templ.Component) (string, error) {
	var builder strings.Builder
	if err := component.Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
