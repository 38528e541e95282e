package board

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/together/internal/model"
)

// ErrReadOnly is returned when mutating a friend's board.
var ErrReadOnly = errors.New("friend boards are read-only")

// Variant says whose todos a Board shows.
type Variant int

const (
	VariantSelf Variant = iota
	VariantFriend
)

func (v Variant) String() string {
	if v == VariantFriend {
		return "friend"
	}
	return "self"
}

// Board is a todo list plus the selected day. The visible subset is derived
// again after every change to the list or the selection.
type Board struct {
	variant  Variant
	owner    *model.Owner
	todos    []model.Todo
	selected time.Time
	visible  []model.Todo
	log      *log.Logger
}

// New builds a board over a copy of todos. owner is nil for the user's own board.
func New(v Variant, owner *model.Owner, todos []model.Todo, selected time.Time) *Board {
	b := &Board{
		variant:  v,
		owner:    owner,
		todos:    make([]model.Todo, 0, len(todos)),
		selected: selected,
		log:      log.New(io.Discard),
	}
	for _, t := range todos {
		b.todos = append(b.todos, t.Clone())
	}
	b.refresh()
	return b
}

// SetLogger routes stubbed backend calls to l.
func (b *Board) SetLogger(l *log.Logger) {
	if l != nil {
		b.log = l
	}
}

func (b *Board) Variant() Variant        { return b.variant }
func (b *Board) Owner() *model.Owner     { return b.owner }
func (b *Board) SelectedDate() time.Time { return b.selected }

// Select changes the selected day.
func (b *Board) Select(day time.Time) {
	b.selected = day
	b.refresh()
}

// Shift moves the selection by n days.
func (b *Board) Shift(n int) { b.Select(model.AddDays(b.selected, n)) }

// Visible returns copies of the todos of the selected day. The result is
// never nil.
func (b *Board) Visible() []model.Todo {
	out := make([]model.Todo, 0, len(b.visible))
	for _, t := range b.visible {
		out = append(out, t.Clone())
	}
	return out
}

// Todos returns every todo on the board, regardless of date.
func (b *Board) Todos() []model.Todo {
	out := make([]model.Todo, 0, len(b.todos))
	for _, t := range b.todos {
		out = append(out, t.Clone())
	}
	return out
}

// Get looks a todo up by id.
func (b *Board) Get(id int) (model.Todo, bool) {
	for _, t := range b.todos {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Todo{}, false
}

// Stats counts done and pending todos for the selected day.
func (b *Board) Stats() (done, pending int) { return stats(b.visible) }

// Toggle flips completion of a todo on the user's own board. It returns
// false when the id is unknown or the board belongs to a friend.
func (b *Board) Toggle(id int) bool {
	if b.variant != VariantSelf {
		return false
	}
	if !ToggleComplete(b.todos, id) {
		return false
	}
	b.refresh()
	return true
}

// Add submits a draft. The new todo gets the next free id, starts
// incomplete with no cheers, and lands on the selected day unless the
// draft carries its own date.
func (b *Board) Add(d Draft) (model.Todo, error) {
	if b.variant != VariantSelf {
		return model.Todo{}, ErrReadOnly
	}
	if err := d.Validate(); err != nil {
		return model.Todo{}, err
	}
	date := d.Date
	if date.IsZero() {
		date = b.selected
	}
	color := d.Color
	if color == "" {
		color = model.DefaultColor()
	}
	t := model.Todo{
		ID:           NextID(b.todos),
		Title:        strings.TrimSpace(d.Title),
		Tags:         append([]string{}, d.Tags...),
		Color:        color,
		Date:         date,
		CheerCount:   0,
		Cheerleaders: []model.Cheerleader{},
	}
	b.todos = append(b.todos, t)
	b.refresh()
	return t.Clone(), nil
}

// Cheer records a cheer from c on a friend's todo. A cheerleader counts
// once per todo. It reports whether the count changed.
func (b *Board) Cheer(id int, c model.Cheerleader) (bool, error) {
	if b.variant != VariantFriend {
		return false, errors.New("cannot cheer your own todo")
	}
	for i := range b.todos {
		t := &b.todos[i]
		if t.ID != id {
			continue
		}
		if t.CheeredBy(c.ID) {
			return false, nil
		}
		t.CheerCount++
		t.Cheerleaders = append(t.Cheerleaders, c)
		b.log.Debug("cheer sent", "todo", t.Title, "owner", b.ownerName(), "from", c.Name)
		b.refresh()
		return true, nil
	}
	return false, nil
}

func (b *Board) ownerName() string {
	if b.owner == nil {
		return ""
	}
	return b.owner.Name
}

func (b *Board) refresh() {
	b.visible = FilterByDate(b.todos, b.selected)
}
