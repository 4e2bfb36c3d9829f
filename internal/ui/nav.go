package ui

import "github.com/charmbracelet/lipgloss"

type navItem struct {
	label string
	page  Page
	exit  bool
}

// navItems is the navigation bar, left to right. Exit is always last.
var navItems = []navItem{
	{label: "Home", page: PageHome},
	{label: "Add Member", page: PageAdd},
	{label: "View Members", page: PageView},
	{label: "Search Members", page: PageSearch},
	{label: "Exit", exit: true},
}

func (m Model) navBar() string {
	s := m.styles
	items := make([]string, 0, len(navItems))
	for i, it := range navItems {
		style := s.NavItem
		switch {
		case it.exit:
			style = s.NavExit
		case it.page == m.page:
			style = s.NavActive
		}
		label := it.label
		if m.page == PageHome && i == m.navSel {
			label = "> " + label
		}
		items = append(items, style.Render(label))
	}
	return s.NavBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}
