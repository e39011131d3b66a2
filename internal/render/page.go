package render

import "github.com/a-h/templ"

// Element identifiers the browser script binds to.
const (
	ContainerID   = "questionList"
	SearchInputID = "searchInput"
	TypeFilterID  = "typeFilter"
)

// PageData describes the full viewer page.
type PageData struct {
	Title     string
	Search    string
	Type      string
	Types     []string
	ScriptURL string
	StyleURL  string
	Body      templ.Component
}

func (d PageData) title() string {
	if d.Title == "" {
		return "Question Bank"
	}
	return d.Title
}
