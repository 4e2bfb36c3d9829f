// Package ui provides the terminal form interface for the member roster.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/members/internal/service"
)

// Palette
var (
	Primary     = lipgloss.Color("#1E88E5")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#9E9E9E")
	NavBg       = lipgloss.Color("#D3D3D3")
	Destructive = lipgloss.Color("#E53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
	Success     = lipgloss.Color("#43A047")
)

// Styles groups the lipgloss styles used across pages.
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Greeting  lipgloss.Style
	Body      lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
	Button    lipgloss.Style
	NavBar    lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavExit   lipgloss.Style
	Field     lipgloss.Style
	FieldOn   lipgloss.Style
	Dialog    lipgloss.Style
}

// DefaultStyles returns the standard look.
func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Greeting:  lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginTop(1),
		Body:      lipgloss.NewStyle(),
		Label:     lipgloss.NewStyle().Width(34).Align(lipgloss.Right).PaddingRight(1),
		Help:      lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(Success).Padding(0, 1),
		NavBar:    lipgloss.NewStyle().Background(NavBg).MarginBottom(1),
		NavItem:   lipgloss.NewStyle().Padding(0, 1),
		NavActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		NavExit:   lipgloss.NewStyle().Padding(0, 1).Foreground(Destructive),
		Field:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Muted).Width(32),
		FieldOn:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Primary).Width(32),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(60),
	}
}

// DialogBorder returns the border color for a notice kind.
func DialogBorder(kind service.NoticeKind) lipgloss.Color {
	switch kind {
	case service.NoticeSuccess:
		return Success
	case service.NoticeInfo:
		return Info
	case service.NoticeWarning:
		return Warning
	default:
		return Destructive
	}
}

// tableStyles returns the member table styles. The selected row is only
// highlighted while a member is actually selected.
func tableStyles(selected bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Muted).
		BorderBottom(true).
		Bold(true)
	if selected {
		s.Selected = s.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(Primary).Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	return s
}
