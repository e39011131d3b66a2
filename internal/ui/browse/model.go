// Package browse is the interactive terminal viewer for a question bank.
package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizview/internal/format"
	"quizview/internal/question"
	"quizview/internal/viewer"
)

// LoadFunc fetches the full question set.
type LoadFunc func(ctx context.Context) ([]question.Record, error)

// Options configures the viewer model.
type Options struct {
	NoColor     bool
	ChoiceTypes []string
	Title       string
	Search      string // initial search text
	Type        string // initial type selection
	Jump        int    // question number to focus once loaded
}

// Model renders the question bank with Bubble Tea. All events are handled
// on Bubble Tea's update loop, which is the only writer of the controller.
type Model struct {
	ctx        context.Context
	controller *viewer.Controller
	load       LoadFunc
	search     textinput.Model
	viewport   viewport.Model
	keys       keyMap
	reflower   format.Reflower
	title      string
	noColor    bool
	cursor     int
	jump       int
	showError  bool
	width      int
	height     int
}

// NewModel builds a viewer that loads its bank with load once started.
func NewModel(ctx context.Context, load LoadFunc, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "text or question number"
	search.Focus()
	search.SetValue(opts.Search)

	title := opts.Title
	if title == "" {
		title = "Question Bank"
	}
	m := Model{
		ctx:        ctx,
		controller: viewer.New(),
		load:       load,
		search:     search,
		viewport:   viewport.New(80, 20),
		keys:       defaultKeyMap(),
		reflower:   format.NewReflower(opts.ChoiceTypes, "\n"),
		title:      title,
		noColor:    opts.NoColor,
		jump:       opts.Jump,
	}
	m.controller.SetSearch(opts.Search)
	if opts.Type != "" {
		m.controller.SetType(opts.Type)
	}
	m.refresh()
	return m
}

// Controller exposes the interaction state.
func (m Model) Controller() *viewer.Controller {
	return m.controller
}

// Init starts the cursor blink and the asynchronous bank load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadBank(m.ctx, m.load))
}

// Update routes window, load and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.viewport.Width = typed.Width
		m.viewport.Height = max(typed.Height-4, 1)
		m.search.Width = max(typed.Width-len(m.search.Prompt)-1, 10)
		m.refresh()
		return m, nil
	case loadedMsg:
		m = applyLoad(m, typed)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View renders the header, search field, cards and status line.
func (m Model) View() string {
	header := stylize(m.title, m.noColor, lipgloss.Color("33"))
	status := renderStatus(m.controller, m.typeName(), m.keys, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.search.View(), m.viewport.View(), status)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() == "" {
			return m, tea.Quit
		}
		m.search.SetValue("")
		m.setSearch("")
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCursor()
		return m, nil
	case key.Matches(msg, m.keys.NextType):
		m.cycleType(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevType):
		m.cycleType(-1)
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.setSearch(after)
	}
	return m, cmd
}

func (m *Model) setSearch(search string) {
	m.controller.SetSearch(search)
	m.afterFilter()
}

// cycleType moves the type selection relative to the current one, so the
// selector never disagrees with the controller's criteria.
func (m *Model) cycleType(step int) {
	types := m.controller.Types()
	current := indexOf(types, m.controller.Criteria().Type)
	m.controller.SetType(types[(current+step+len(types))%len(types)])
	m.afterFilter()
}

// afterFilter mirrors a re-render: the cursor returns to the top and a
// previous load error is replaced by the filtered view.
func (m *Model) afterFilter() {
	m.cursor = 0
	m.showError = false
	m.viewport.GotoTop()
	m.refresh()
}

func (m *Model) moveCursor(step int) {
	count := len(m.controller.View())
	if count == 0 {
		return
	}
	m.cursor = min(max(m.cursor+step, 0), count-1)
	m.refresh()
}

func (m *Model) toggleCursor() {
	view := m.controller.View()
	if m.cursor >= len(view) {
		return
	}
	m.controller.Toggle(view[m.cursor].Number)
	m.refresh()
}

func (m Model) typeName() string {
	return m.controller.Criteria().Type
}

// refresh re-renders the card list into the viewport and keeps the
// focused card visible.
func (m *Model) refresh() {
	content, offset := renderCards(m.controller, m.reflower, m.cursor, m.showError, m.noColor)
	m.viewport.SetContent(content)
	if offset < m.viewport.YOffset {
		m.viewport.SetYOffset(offset)
	} else if offset >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(offset - m.viewport.Height + 1)
	}
}

// loadedMsg carries the outcome of the bank load.
type loadedMsg struct {
	records []question.Record
	err     error
}

// loadBank runs the loader off the update loop.
func loadBank(ctx context.Context, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{records: []question.Record{}}
		}
		records, err := load(ctx)
		return loadedMsg{records: records, err: err}
	}
}

// applyLoad publishes the loaded set or the failure to the controller.
func applyLoad(m Model, msg loadedMsg) Model {
	if msg.err != nil {
		m.controller.Fail(msg.err)
		m.showError = true
	} else {
		m.controller.Publish(msg.records)
	}
	m.cursor = 0
	for i, record := range m.controller.View() {
		if record.Number == m.jump {
			m.cursor = i
			break
		}
	}
	m.refresh()
	return m
}

func indexOf(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return 0
}
