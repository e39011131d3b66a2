package browse

import (
	"fmt"
	"io"
	"strings"

	"quizview/internal/format"
	"quizview/internal/question"
	"quizview/internal/render"
)

// WritePlain prints records as text for non-interactive output. Answers
// are included only when showAnswers is set.
func WritePlain(w io.Writer, records []question.Record, reflower format.Reflower, showAnswers bool) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, render.EmptyMessage)
		return err
	}
	for i, record := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", render.NumberLabel(record.Number), sanitize(record.Type)); err != nil {
			return err
		}
		for _, line := range strings.Split(reflower.Format(sanitize(record.Text), record.Type), "\n") {
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return err
			}
		}
		if showAnswers {
			if _, err := fmt.Fprintf(w, "  %s %s\n", render.AnswerPrefix, sanitize(record.Answer)); err != nil {
				return err
			}
		}
	}
	return nil
}
