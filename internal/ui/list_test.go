package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/members/internal/models"
)

func TestMemberList_SelectionModel(t *testing.T) {
	l := newMemberList(5)

	if _, ok := l.Selected(); ok {
		t.Fatal("Expected no selection on an empty list")
	}

	l.SetMembers([]models.Member{
		{ID: 10, Name: "Ana", Contact: "639170000001"},
		{ID: 42, Name: "Ben", Contact: "639170000002"},
	})
	if _, ok := l.Selected(); ok {
		t.Error("Expected SetMembers to clear the selection")
	}

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, ok := l.Selected()
	if !ok {
		t.Fatal("Expected moving the cursor to select a row")
	}
	if m.ID != 42 {
		t.Errorf("Selected ID = %d, want 42", m.ID)
	}

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m, _ := l.Selected(); m.ID != 10 {
		t.Errorf("Selected ID = %d, want 10", m.ID)
	}

	if l.Select(5) {
		t.Error("Expected Select out of range to fail")
	}

	l.SetMembers(nil)
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := l.Selected(); ok {
		t.Error("Expected no selection on an emptied list")
	}
}

func TestMemberList_EnterSelectsCursorRow(t *testing.T) {
	l := newMemberList(5)
	l.SetMembers([]models.Member{{ID: 7, Name: "Ana", Contact: "639170000001"}})

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, ok := l.Selected()
	if !ok || m.ID != 7 {
		t.Errorf("Selected() = %+v, %v; want ID 7", m, ok)
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantKeep bool
		want     string
	}{
		{"digits pass", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("639")}, true, "639"},
		{"letters dropped", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, false, ""},
		{"mixed paste filtered", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+63 917-123"), Paste: true}, true, "63917123"},
		{"space dropped", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, ""},
		{"backspace passes", tea.KeyMsg{Type: tea.KeyBackspace}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := digitsOnly(tt.msg)
			if keep != tt.wantKeep {
				t.Fatalf("keep = %v, want %v", keep, tt.wantKeep)
			}
			if keep && string(got.Runes) != tt.want {
				t.Errorf("runes = %q, want %q", string(got.Runes), tt.want)
			}
		})
	}
}
