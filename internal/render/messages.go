package render

// Fixed user-visible messages.
const (
	// EmptyMessage is shown when no record matches the current filter.
	EmptyMessage = "📭 No matching questions"
	// LoadErrorMessage is shown when the question bank cannot be loaded.
	LoadErrorMessage = "❌ Failed to load the question bank. Make sure data.json exists."
	// ToggleLabelHidden labels the toggle while the answer is hidden.
	ToggleLabelHidden = "Show/Hide answer"
	// ToggleLabelShown labels the toggle while the answer is shown.
	ToggleLabelShown = "Hide answer"
	// AnswerPrefix introduces the answer block.
	AnswerPrefix = "✅ Answer:"
)

// ToggleLabel returns the toggle label for a visibility state.
func ToggleLabel(shown bool) string {
	if shown {
		return ToggleLabelShown
	}
	return ToggleLabelHidden
}

// NumberLabel returns the display label for a question number.
func NumberLabel(number int) string {
	return "Question " + itoa(number)
}
