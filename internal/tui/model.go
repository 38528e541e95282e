// Package tui is the interactive session: the day list, friends and the
// notification inbox. Changes live until the program exits.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/together/internal/board"
	"github.com/idilsaglam/together/internal/model"
)

type view int

const (
	viewTodos view = iota
	viewFriends
	viewInbox
)

type inputMode int

const (
	inputNone inputMode = iota
	inputTodo
	inputFriend
)

// Model implements tea.Model over one board.Session.
type Model struct {
	sess     *board.Session
	board    *board.Board // the board on screen, own or a friend's
	friendID string       // "" while the own board is shown

	view    view
	todos   list.Model
	friends list.Model
	inbox   list.Model

	// Inline input for quick-add and add-friend
	input inputMode
	ti    textinput.Model
	draft board.Draft // carries the color picked with tab
	err   string      // inline validation error

	detail bool   // detail box for the selected todo
	status string // last action result

	width, height int
}

// New builds the model showing the user's own board.
func New(sess *board.Session) Model {
	m := Model{
		sess:   sess,
		board:  sess.Me,
		width:  80,
		height: 24,
	}
	m.todos = newList()
	m.friends = newList()
	m.inbox = newList()

	m.friends.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addKey, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))}
	}
	m.inbox.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
			key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "read all")),
		}
	}

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	m.setTodoHelp()
	m.syncTodos()
	m.syncFriends()
	m.syncInbox()
	m.resize()
	return m
}

var (
	addKey   = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	cheerKey = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cheer"))
	dayKey   = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day"))
	tabsKey  = key.NewBinding(key.WithKeys("f", "n"), key.WithHelp("f/n", "friends/inbox"))
)

// setTodoHelp swaps the day list's help between own and friend boards.
func (m *Model) setTodoHelp() {
	keys := []key.Binding{dayKey, addKey, tabsKey}
	if m.friendID != "" {
		keys = []key.Binding{dayKey, cheerKey, tabsKey}
	}
	m.todos.AdditionalShortHelpKeys = func() []key.Binding { return keys }
}

func newList() list.Model {
	l := list.New(nil, lineDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	return l
}

// Run starts the program. friendID opens a friend's board first.
func Run(sess *board.Session, friendID string) error {
	m := New(sess)
	if friendID != "" {
		if err := m.openFriend(friendID); err != nil {
			return err
		}
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) openFriend(id string) error {
	b, err := m.sess.FriendBoard(id)
	if err != nil {
		return err
	}
	m.board, m.friendID = b, id
	m.view, m.detail = viewTodos, false
	m.setTodoHelp()
	m.syncTodos()
	m.todos.Select(0)
	return nil
}

func (m *Model) openOwn() {
	m.board, m.friendID = m.sess.Me, ""
	m.detail = false
	m.setTodoHelp()
	m.syncTodos()
	m.todos.Select(0)
}

// ------- derived state -------

func (m *Model) syncTodos() {
	visible := m.board.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, todoItem{todo: t, friend: m.friendID != ""})
	}
	idx := m.todos.Index()
	m.todos.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.todos.Select(idx)
	}

	d, p := m.board.Stats()
	owner := "My todos"
	if o := m.board.Owner(); o != nil {
		owner = o.Name + "'s todos"
	}
	m.todos.Title = fmt.Sprintf("%s  %s   %s %d  %s %d",
		owner,
		mutedStyle.Render(m.board.SelectedDate().Format("Mon Jan 2 2006")),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
	)
}

func (m *Model) syncFriends() {
	all := m.sess.Friends.All()
	items := make([]list.Item, 0, len(all))
	for _, f := range all {
		items = append(items, friendItem{friend: f})
	}
	m.friends.SetItems(items)
	m.friends.Title = fmt.Sprintf("My friends  %s %d", accentStyle.Render("Total"), len(all))
}

func (m *Model) syncInbox() {
	all := m.sess.Inbox.All()
	items := make([]list.Item, 0, len(all))
	for _, n := range all {
		items = append(items, noteItem{note: n})
	}
	idx := m.inbox.Index()
	m.inbox.SetItems(items)
	if idx >= 0 && idx < len(items) {
		m.inbox.Select(idx)
	}
	m.inbox.Title = fmt.Sprintf("Notifications  %s %d", pendingStyle.Render("unread"), m.sess.Inbox.Unread())
}

func (m *Model) resize() {
	h := m.height - 6
	if m.input != inputNone || m.detail {
		h -= 6
	}
	if h < 3 {
		h = 3
	}
	for _, l := range []*list.Model{&m.todos, &m.friends, &m.inbox} {
		l.SetSize(m.width-4, h)
	}
}

func (m *Model) current() *list.Model {
	switch m.view {
	case viewFriends:
		return &m.friends
	case viewInbox:
		return &m.inbox
	}
	return &m.todos
}

func (m Model) selectedTodo() (model.Todo, bool) {
	it, ok := m.todos.SelectedItem().(todoItem)
	if !ok {
		return model.Todo{}, false
	}
	// the list holds a snapshot; read the live value
	return m.board.Get(it.todo.ID)
}

// ------- tea.Model -------

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.input != inputNone {
		return m.updateInput(msg)
	}

	km, isKey := msg.(tea.KeyMsg)
	if !isKey || m.current().SettingFilter() {
		return m.passToList(msg)
	}

	switch km.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		switch {
		case m.current().FilterState() == list.FilterApplied:
			return m.passToList(msg)
		case m.detail:
			m.detail = false
			m.resize()
		case m.view != viewTodos:
			m.view = viewTodos
		case m.friendID != "":
			m.openOwn()
			m.status = ""
		default:
			return m, tea.Quit
		}
		return m, nil
	case "f":
		m.view, m.detail = viewFriends, false
		m.resize()
		return m, nil
	case "n":
		m.view, m.detail = viewInbox, false
		m.resize()
		return m, nil
	}

	switch m.view {
	case viewFriends:
		return m.updateFriends(km)
	case viewInbox:
		return m.updateInbox(km)
	}
	return m.updateTodos(km)
}

func (m Model) passToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewFriends:
		m.friends, cmd = m.friends.Update(msg)
	case viewInbox:
		m.inbox, cmd = m.inbox.Update(msg)
	default:
		m.todos, cmd = m.todos.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTodos(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "left", "h":
		m.board.Shift(-1)
		m.syncTodos()
		m.todos.Select(0)
		return m, nil
	case "right", "l":
		m.board.Shift(1)
		m.syncTodos()
		m.todos.Select(0)
		return m, nil
	case "t":
		m.board.Select(m.sess.Today())
		m.syncTodos()
		return m, nil
	case " ", "space":
		t, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		if !m.board.Toggle(t.ID) {
			m.status = board.ErrReadOnly.Error()
			return m, nil
		}
		m.status = ""
		m.syncTodos()
		return m, nil
	case "c":
		t, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		cheered, err := m.board.Cheer(t.ID, m.sess.Cheerleader())
		switch {
		case err != nil:
			m.status = err.Error()
		case cheered:
			m.status = fmt.Sprintf("%s cheered %q", heart, t.Title)
		default:
			m.status = "already cheered"
		}
		m.syncTodos()
		return m, nil
	case "a":
		if m.friendID != "" {
			m.status = board.ErrReadOnly.Error()
			return m, nil
		}
		m.draft = board.NewDraft(m.board.SelectedDate())
		return m.openInput(inputTodo, "Title #tag #tag ..."), textinput.Blink
	case "enter":
		if _, ok := m.selectedTodo(); ok {
			m.detail = !m.detail
			m.resize()
		}
		return m, nil
	}
	return m.passToList(km)
}

func (m Model) updateFriends(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "a":
		return m.openInput(inputFriend, "Friend id"), textinput.Blink
	case "enter":
		it, ok := m.friends.SelectedItem().(friendItem)
		if !ok {
			return m, nil
		}
		if err := m.openFriend(it.friend.ID); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}
	return m.passToList(km)
}

func (m Model) updateInbox(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "enter", " ", "space":
		it, ok := m.inbox.SelectedItem().(noteItem)
		if ok && m.sess.Inbox.MarkAsRead(it.note.ID) {
			m.syncInbox()
		}
		return m, nil
	case "A":
		n := m.sess.Inbox.MarkAllAsRead()
		m.status = fmt.Sprintf("marked %d as read", n)
		m.syncInbox()
		return m, nil
	}
	return m.passToList(km)
}

// ------- inline input -------

func (m Model) openInput(mode inputMode, placeholder string) Model {
	m.input, m.err = mode, ""
	m.ti.SetValue("")
	m.ti.Placeholder = placeholder
	m.ti.Focus()
	m.resize()
	return m
}

func (m Model) closeInput() Model {
	m.input, m.err = inputNone, ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
	return m
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m.closeInput(), nil
		case "tab":
			if m.input == inputTodo {
				m.draft.CycleColor()
			}
			return m, nil
		case "enter":
			return m.submitInput()
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	switch m.input {
	case inputTodo:
		d := board.ParseDraft(m.ti.Value(), m.board.SelectedDate())
		d.Color = m.draft.Color
		t, err := m.board.Add(d)
		if err != nil {
			m.err = inputError(err)
			return m, nil
		}
		m = m.closeInput()
		m.syncTodos()
		m.todos.Select(len(m.todos.Items()) - 1)
		m.status = fmt.Sprintf("added %q", t.Title)
	case inputFriend:
		f, err := m.sess.Friends.Add(m.ti.Value())
		if err != nil {
			m.err = inputError(err)
			return m, nil
		}
		m = m.closeInput()
		m.syncFriends()
		m.friends.Select(len(m.friends.Items()) - 1)
		m.status = "friend request sent to " + f.Name
	}
	return m, nil
}

func inputError(err error) string {
	switch {
	case errors.Is(err, board.ErrEmptyTitle):
		return "Title cannot be empty"
	case errors.Is(err, board.ErrEmptyFriendID):
		return "Enter a friend id"
	}
	return err.Error()
}

// ------- view -------

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.tabs())
	sb.WriteString("\n")
	sb.WriteString(m.current().View())

	if m.detail && m.view == viewTodos {
		if t, ok := m.selectedTodo(); ok {
			sb.WriteString("\n" + boxStyle.Render(detailView(t)))
		}
	}
	if m.input != inputNone {
		title := "Add todo " + swatch(m.draft.Color) + mutedStyle.Render("  tab: color")
		if m.input == inputFriend {
			title = "Add friend"
		}
		if m.err != "" {
			title += "  " + errorStyle.Render(m.err)
		}
		sb.WriteString("\n" + boxStyle.Render(title+"\n"+m.ti.View()))
	}
	if m.status != "" {
		sb.WriteString("\n" + mutedStyle.Render(m.status))
	}
	return boxStyle.Render(sb.String())
}

func (m Model) tabs() string {
	tab := func(v view, label string) string {
		if m.view == v {
			return activeTab.Render(label)
		}
		return mutedStyle.Render(label)
	}
	inbox := "Inbox"
	if n := m.sess.Inbox.Unread(); n > 0 {
		inbox = fmt.Sprintf("Inbox (%d)", n)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab(viewTodos, "Todos"), "   ",
		tab(viewFriends, "Friends"), "   ",
		tab(viewInbox, inbox),
	)
}

func detailView(t model.Todo) string {
	var lines []string
	lines = append(lines, swatch(t.Color)+" "+titleStyle.Render(t.Title))
	if t.Owner != nil {
		lines = append(lines, mutedStyle.Render("by "+t.Owner.Name))
	}
	state := pendingStyle.Render("pending")
	if t.Completed {
		state = successStyle.Render("done")
	}
	lines = append(lines, fmt.Sprintf("%s  %s", model.FormatDay(t.Date), state))
	if len(t.Tags) > 0 {
		lines = append(lines, accentStyle.Render("#"+strings.Join(t.Tags, " #")))
	}
	cheer := fmt.Sprintf("%s %d cheers", heart, t.CheerCount)
	if len(t.Cheerleaders) > 0 {
		names := make([]string, 0, len(t.Cheerleaders))
		for _, c := range t.Cheerleaders {
			names = append(names, c.Name)
		}
		cheer += mutedStyle.Render(" from " + strings.Join(names, ", "))
	}
	lines = append(lines, cheerStyle.Render(cheer))
	return strings.Join(lines, "\n")
}
