package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/together/internal/model"
)

// todoItem adapts a todo to bubbles/list.Item.
type todoItem struct {
	todo   model.Todo
	friend bool
}

func (i todoItem) Title() string       { return i.todo.Title }
func (i todoItem) Description() string { return strings.Join(i.todo.Tags, " ") }
func (i todoItem) FilterValue() string { return i.todo.Title + " " + strings.Join(i.todo.Tags, " ") }

func (i todoItem) line() string {
	box := mutedStyle.Render(boxUnchecked)
	title := i.todo.Title
	if i.todo.Completed {
		box = successStyle.Render(boxChecked)
		title = doneStyle.Render(title)
	}
	parts := []string{box, swatch(i.todo.Color), title}
	if len(i.todo.Tags) > 0 {
		tags := make([]string, len(i.todo.Tags))
		for k, t := range i.todo.Tags {
			tags[k] = "#" + t
		}
		parts = append(parts, accentStyle.Render(strings.Join(tags, " ")))
	}
	if i.todo.CheerCount > 0 || i.friend {
		parts = append(parts, cheerStyle.Render(fmt.Sprintf("%s%d", heart, i.todo.CheerCount)))
	}
	return strings.Join(parts, " ")
}

type friendItem struct{ friend model.Friend }

func (i friendItem) Title() string       { return i.friend.Name }
func (i friendItem) Description() string { return i.friend.ID }
func (i friendItem) FilterValue() string { return i.friend.Name }

func (i friendItem) line() string {
	return fmt.Sprintf("(%s) %s %s", i.friend.Initial(), i.friend.Name, mutedStyle.Render("id:"+i.friend.ID))
}

type noteItem struct{ note model.Notification }

func (i noteItem) Title() string       { return i.note.UserName }
func (i noteItem) Description() string { return i.note.TodoTitle }
func (i noteItem) FilterValue() string { return i.note.UserName + " " + i.note.TodoTitle }

func (i noteItem) line() string {
	mark := " "
	if !i.note.Read {
		mark = pendingStyle.Render(unreadDot)
	}
	return fmt.Sprintf("%s %s cheered %q %s", mark, i.note.UserName, i.note.TodoTitle, mutedStyle.Render(i.note.Time))
}

// liner is implemented by every item shown in a list.
type liner interface{ line() string }

// Custom delegate to control how items render (single line)
type lineDelegate struct{}

func (d lineDelegate) Height() int                               { return 1 }
func (d lineDelegate) Spacing() int                              { return 0 }
func (d lineDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(liner)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+it.line())
}
