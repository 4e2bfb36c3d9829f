package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/members/internal/models"
	"github.com/mmynk/members/internal/service"
)

// Roster is the set of actions the UI drives. *service.MemberService
// implements it.
type Roster interface {
	AddMember(ctx context.Context, name, contact string) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	SearchMembers(ctx context.Context, fragment string) ([]models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

var _ Roster = (*service.MemberService)(nil)

// Page identifies one of the views reachable from the navigation bar.
type Page int

const (
	PageHome Page = iota
	PageAdd
	PageView
	PageSearch

	pageCount = 4
)

const defaultListHeight = 10

// Model is the root bubbletea model. Store calls run inline in Update, so
// each action finishes before the next key is read.
type Model struct {
	ctx      context.Context
	roster   Roster
	styles   Styles
	now      func() time.Time
	greeting string

	page    Page
	navSel  int
	add     addForm
	members memberList
	search  searchForm

	// notices are shown one at a time; a key press dismisses the first.
	notices []service.Notice

	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used for the greeting.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithContext sets the context passed to store calls.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New creates the root model. The greeting is computed once, here.
func New(roster Roster, opts ...Option) Model {
	m := Model{
		ctx:     context.Background(),
		roster:  roster,
		styles:  DefaultStyles(),
		now:     time.Now,
		page:    PageHome,
		add:     newAddForm(),
		members: newMemberList(defaultListHeight),
		search:  newSearchForm(defaultListHeight),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.greeting = service.Greeting(m.now())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the active page.
func (m Model) Page() Page {
	return m.page
}

// Notices returns the pending notices, first one on screen.
func (m Model) Notices() []service.Notice {
	return m.notices
}

// Quitting reports whether Exit was chosen.
func (m Model) Quitting() bool {
	return m.quitting
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-16, 3)
		m.members.SetHeight(h)
		m.search.results.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

		// A dialog swallows the key that dismisses it.
		if len(m.notices) > 0 {
			m.notices = m.notices[1:]
			return m, nil
		}

		switch msg.String() {
		case "f1", "esc":
			return m.show(PageHome)
		case "f2":
			return m.show(PageAdd)
		case "f3":
			return m.show(PageView)
		case "f4":
			return m.show(PageSearch)
		case "ctrl+n":
			return m.show(Page((int(m.page) + 1) % pageCount))
		case "ctrl+p":
			return m.show(Page((int(m.page) + pageCount - 1) % pageCount))
		case "f10":
			return m.quit()
		}

		switch m.page {
		case PageHome:
			return m.updateHome(msg)
		case PageAdd:
			return m.updateAdd(msg)
		case PageView:
			return m.updateView(msg)
		case PageSearch:
			return m.updateSearch(msg)
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	slog.Info("Exit requested")
	m.quitting = true
	return m, tea.Quit
}

// show switches pages. Field contents on other pages are kept; opening
// View Members refreshes the list.
func (m Model) show(p Page) (tea.Model, tea.Cmd) {
	m.add.Blur()
	m.search.Blur()
	m.page = p
	m.navSel = int(p)

	var cmd tea.Cmd
	switch p {
	case PageAdd:
		cmd = m.add.Focus()
	case PageView:
		m.refreshMembers()
	case PageSearch:
		cmd = m.search.Focus()
	}
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.navSel = (m.navSel - 1 + len(navItems)) % len(navItems)
	case "right", "l", "tab":
		m.navSel = (m.navSel + 1) % len(navItems)
	case "1", "2", "3", "4", "5":
		m.navSel = int(msg.Runes[0] - '1')
		return m.activate(m.navSel)
	case "enter", " ":
		return m.activate(m.navSel)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) activate(i int) (tea.Model, tea.Cmd) {
	if navItems[i].exit {
		return m.quit()
	}
	return m.show(navItems[i].page)
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.add, cmd = m.add.Update(msg)
		return m, cmd
	}

	name, contact := m.add.Values()
	if _, err := m.roster.AddMember(m.ctx, name, contact); err != nil {
		m.notify(service.NoticeFor(err))
		return m, nil
	}

	cmd := m.add.Reset()
	m.notify(service.AddedNotice())
	m.refreshMembers()
	return m, cmd
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "f5":
		m.refreshMembers()
		return m, nil
	case "d", "delete", "x":
		m.deleteSelected()
		return m, nil
	}

	var cmd tea.Cmd
	m.members, cmd = m.members.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	results, err := m.roster.SearchMembers(m.ctx, m.search.Query())
	if err != nil {
		m.notify(service.NoticeFor(err))
		return m, nil
	}
	m.search.results.SetMembers(results)
	if len(results) == 0 {
		m.notify(service.NoMatchesNotice())
	}
	return m, nil
}

// refreshMembers reloads the View Members list.
func (m *Model) refreshMembers() {
	members, err := m.roster.ListMembers(m.ctx)
	if err != nil {
		m.notify(service.NoticeFor(err))
		return
	}
	m.members.SetMembers(members)
	if len(members) == 0 {
		m.notify(service.NoMembersNotice())
	}
}

func (m *Model) deleteSelected() {
	member, ok := m.members.Selected()
	if !ok {
		m.notify(service.NoticeFor(service.ErrNoSelection))
		return
	}

	if err := m.roster.DeleteMember(m.ctx, member.ID); err != nil {
		m.notify(service.NoticeFor(err))
		return
	}
	m.notify(service.DeletedNotice())
	m.refreshMembers()
}

func (m *Model) notify(n service.Notice) {
	m.notices = append(m.notices, n)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.styles
	var body string
	switch {
	case len(m.notices) > 0:
		body = renderNotice(s, m.notices[0])
	case m.page == PageHome:
		body = s.Greeting.Render(m.greeting) + "\n\n" +
			s.Body.Render("Welcome to the Member Management System") + "\n" +
			s.Help.Render("←/→ choose • enter open • F1-F4 or ctrl+n/ctrl+p switch view • F10 exit")
	case m.page == PageAdd:
		body = m.add.View(s)
	case m.page == PageView:
		body = s.Title.Render("Member List") + "\n" +
			m.members.View() + "\n" +
			s.Help.Render("↑/↓ move • space select • r refresh • d delete selected member")
	case m.page == PageSearch:
		body = m.search.View(s)
	}

	return s.App.Render(m.navBar() + "\n" + body)
}

func renderNotice(s Styles, n service.Notice) string {
	box := s.Dialog.BorderForeground(DialogBorder(n.Kind))
	title := lipgloss.NewStyle().Bold(true).Foreground(DialogBorder(n.Kind)).Render(n.Title)
	return box.Render(title+"\n\n"+n.Message) + "\n" + s.Help.Render("press any key to continue")
}

func joinRow(parts ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
