package browse

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the viewer key bindings. Printable keys go to the search
// field, so navigation uses arrows and control keys only.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	NextType key.Binding
	PrevType key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Toggle:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		NextType: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "type")),
		PrevType: key.NewBinding(key.WithKeys("shift+tab")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// shortHelp renders the bindings shown in the status line.
func (k keyMap) shortHelp() string {
	bindings := []key.Binding{k.Up, k.Down, k.Toggle, k.NextType, k.Clear, k.Quit}
	out := ""
	for i, binding := range bindings {
		if i > 0 {
			out += " · "
		}
		out += binding.Help().Key + " " + binding.Help().Desc
	}
	return out
}
