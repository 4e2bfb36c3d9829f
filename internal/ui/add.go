package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/members/internal/service"
)

const (
	fieldName = iota
	fieldContact
	fieldCount
)

// addForm holds the Add Member fields.
type addForm struct {
	name    textinput.Model
	contact textinput.Model
	focus   int
}

func newAddForm() addForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Full name"
	name.Width = 30

	contact := textinput.New()
	contact.Prompt = ""
	contact.Placeholder = "639XXXXXXXXX"
	contact.CharLimit = service.ContactLength
	contact.Width = 30

	return addForm{name: name, contact: contact}
}

// Values returns the pending name and contact.
func (f addForm) Values() (name, contact string) {
	return f.name.Value(), f.contact.Value()
}

// Focus focuses the current field.
func (f *addForm) Focus() tea.Cmd {
	return f.setFocus(f.focus)
}

// Blur unfocuses both fields, keeping their contents.
func (f *addForm) Blur() {
	f.name.Blur()
	f.contact.Blur()
}

// Reset clears both fields and returns focus to the name field.
func (f *addForm) Reset() tea.Cmd {
	f.name.Reset()
	f.contact.Reset()
	return f.setFocus(fieldName)
}

func (f *addForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	if f.focus == fieldName {
		f.contact.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.contact.Focus()
}

// Update moves focus between fields and forwards typing to the focused one.
// Enter is handled by the caller.
func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		}

		if f.focus == fieldContact {
			filtered, keep := digitsOnly(key)
			if !keep {
				return f, nil
			}
			msg = filtered
		}
	}

	var cmd tea.Cmd
	if f.focus == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.contact, cmd = f.contact.Update(msg)
	}
	return f, cmd
}

// digitsOnly drops non-digit characters typed or pasted into the contact
// field. It is a typing aid; service.ValidateContact is the real check.
func digitsOnly(key tea.KeyMsg) (tea.KeyMsg, bool) {
	if key.Type != tea.KeyRunes && key.Type != tea.KeySpace {
		return key, true
	}

	runes := make([]rune, 0, len(key.Runes))
	for _, r := range key.Runes {
		if service.IsDigit(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return key, false
	}
	key.Runes = runes
	return key, true
}

// View renders the form.
func (f addForm) View(s Styles) string {
	field := func(in textinput.Model, focused bool) string {
		if focused {
			return s.FieldOn.Render(in.View())
		}
		return s.Field.Render(in.View())
	}

	return s.Title.Render("Add New Member") + "\n" +
		joinRow(s.Label.Render("Name"), field(f.name, f.focus == fieldName && f.name.Focused())) + "\n" +
		joinRow(s.Label.Render("Contact (Philippine, 12 digits)"), field(f.contact, f.focus == fieldContact && f.contact.Focused())) + "\n\n" +
		s.Label.Render("") + s.Button.Render("Add Member") + "\n" +
		s.Help.Render("tab switch field • enter add member")
}
