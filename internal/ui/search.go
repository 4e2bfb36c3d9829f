package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchForm holds the name fragment and the last results.
type searchForm struct {
	query   textinput.Model
	results memberList
}

func newSearchForm(height int) searchForm {
	q := textinput.New()
	q.Prompt = ""
	q.Placeholder = "Name or part of a name"
	q.Width = 30

	results := newMemberList(height)
	results.table.Blur()

	return searchForm{query: q, results: results}
}

// Query returns the pending search text.
func (f searchForm) Query() string {
	return f.query.Value()
}

// Focus focuses the query field.
func (f *searchForm) Focus() tea.Cmd {
	return f.query.Focus()
}

// Blur unfocuses the query field, keeping its contents.
func (f *searchForm) Blur() {
	f.query.Blur()
}

// Update forwards typing to the query field and scrolling keys to the
// results. Enter is handled by the caller.
func (f searchForm) Update(msg tea.Msg) (searchForm, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "down", "pgup", "pgdown":
			f.results.table.Focus()
			f.results.table, cmd = f.results.table.Update(msg)
			f.results.table.Blur()
			return f, cmd
		}
	}
	f.query, cmd = f.query.Update(msg)
	return f, cmd
}

// View renders the form and results.
func (f searchForm) View(s Styles) string {
	out := s.Title.Render("Search Members") + "\n" +
		joinRow(s.Label.Render("Enter Name"), s.FieldOn.Render(f.query.View())) + "\n\n" +
		s.Label.Render("") + s.Button.Render("Search") + "\n\n"
	if f.results.Len() > 0 {
		out += f.results.View() + "\n"
	}
	return out + s.Help.Render("enter search • ↑/↓ scroll results")
}
