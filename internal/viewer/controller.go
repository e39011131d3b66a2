// Package viewer holds the interaction state of a question bank viewer:
// the loaded full set, the current filter criteria and which cards show
// their answers.
package viewer

import (
	"slices"

	"quizview/internal/filter"
	"quizview/internal/question"
	"quizview/internal/render"
)

// LoadState describes the outcome of loading the full set.
type LoadState int

const (
	// Loading means no load outcome has been published yet.
	Loading LoadState = iota
	// Loaded means the full set is available.
	Loaded
	// Failed means loading failed; the full set stays empty for good.
	Failed
)

// Controller owns the full set and derives the filtered view from it.
// It is not safe for concurrent use; a single event loop drives it.
type Controller struct {
	all      []question.Record
	view     []question.Record
	criteria filter.Criteria
	shown    map[int]bool
	state    LoadState
	err      error
}

// New returns a controller with no questions loaded.
func New() *Controller {
	return &Controller{
		criteria: filter.Criteria{Type: filter.AllTypes},
		shown:    map[int]bool{},
		view:     []question.Record{},
	}
}

// Publish installs the full set and renders it with the current criteria.
// Only the first load outcome is kept.
func (c *Controller) Publish(records []question.Record) {
	if c.state != Loading {
		return
	}
	c.all = records
	c.state = Loaded
	c.refilter()
}

// Fail records a terminal load failure.
func (c *Controller) Fail(err error) {
	if c.state != Loading {
		return
	}
	c.state = Failed
	c.err = err
	c.all = nil
	c.refilter()
}

// State returns the load state.
func (c *Controller) State() LoadState {
	return c.state
}

// Err returns the load failure, if any.
func (c *Controller) Err() error {
	return c.err
}

// All returns the full set.
func (c *Controller) All() []question.Record {
	return c.all
}

// Criteria returns the current filter criteria.
func (c *Controller) Criteria() filter.Criteria {
	return c.criteria
}

// SetSearch updates the search text and re-derives the view.
func (c *Controller) SetSearch(search string) {
	c.criteria.Search = search
	c.refilter()
}

// SetType updates the type selection and re-derives the view.
func (c *Controller) SetType(questionType string) {
	if questionType == "" {
		questionType = filter.AllTypes
	}
	c.criteria.Type = questionType
	c.refilter()
}

// Types returns the selector choices: the sentinel followed by the
// distinct types of the full set. A selected type the set does not
// contain is listed last so the selection always has a choice.
func (c *Controller) Types() []string {
	types := append([]string{filter.AllTypes}, filter.Types(c.all)...)
	if !slices.Contains(types, c.criteria.Type) {
		types = append(types, c.criteria.Type)
	}
	return types
}

// View returns the current filtered view.
func (c *Controller) View() []question.Record {
	return c.view
}

// Toggle flips the answer visibility of a card in the current view and
// returns the new state. ok is false when no such card is rendered.
func (c *Controller) Toggle(number int) (shown bool, ok bool) {
	if !c.inView(number) {
		return false, false
	}
	shown = !c.shown[number]
	if shown {
		c.shown[number] = true
	} else {
		delete(c.shown, number)
	}
	return shown, true
}

// Shown reports whether a card currently shows its answer.
func (c *Controller) Shown(number int) bool {
	return c.shown[number]
}

// Label returns the toggle label for a card.
func (c *Controller) Label(number int) string {
	return render.ToggleLabel(c.shown[number])
}

// refilter re-derives the view. Cards are recreated, so every answer is
// hidden again.
func (c *Controller) refilter() {
	c.view = filter.Apply(c.all, c.criteria)
	clear(c.shown)
}

func (c *Controller) inView(number int) bool {
	for _, record := range c.view {
		if record.Number == number {
			return true
		}
	}
	return false
}
