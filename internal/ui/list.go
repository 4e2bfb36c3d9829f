package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/members/internal/models"
)

// memberList renders members in a table and keeps the selection model.
// members is parallel to the table rows, so a row index resolves to a
// member ID without reading the rendered text back.
type memberList struct {
	table    table.Model
	members  []models.Member
	selected int // -1 when nothing is selected
}

func newMemberList(height int) memberList {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 30},
			{Title: "Contact", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	l := memberList{table: t}
	l.clearSelection()
	return l
}

// SetMembers replaces the displayed members and clears the selection.
func (l *memberList) SetMembers(members []models.Member) {
	l.members = members

	rows := make([]table.Row, len(members))
	for i, m := range members {
		rows[i] = table.Row{strconv.FormatInt(m.ID, 10), m.Name, m.Contact}
	}
	l.table.SetRows(rows)
	l.table.SetCursor(0)
	l.clearSelection()
}

// Len returns the number of displayed rows.
func (l memberList) Len() int {
	return len(l.members)
}

// Selected returns the selected member, if any.
func (l memberList) Selected() (models.Member, bool) {
	if l.selected < 0 || l.selected >= len(l.members) {
		return models.Member{}, false
	}
	return l.members[l.selected], true
}

// Select marks the row at index as selected.
func (l *memberList) Select(index int) bool {
	if index < 0 || index >= len(l.members) {
		return false
	}
	l.selected = index
	l.table.SetCursor(index)
	l.table.SetStyles(tableStyles(true))
	return true
}

func (l *memberList) clearSelection() {
	l.selected = -1
	l.table.SetStyles(tableStyles(false))
}

// SetHeight resizes the table.
func (l *memberList) SetHeight(h int) {
	l.table.SetHeight(h)
}

// Update moves the cursor. Moving it, or pressing space or enter, selects
// the row under the cursor.
func (l memberList) Update(msg tea.Msg) (memberList, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case " ", "enter":
			l.Select(l.table.Cursor())
			return l, nil
		}
	}

	before := l.table.Cursor()
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	if after := l.table.Cursor(); after != before {
		l.Select(after)
	}
	return l, cmd
}

// View renders the table.
func (l memberList) View() string {
	return l.table.View()
}
