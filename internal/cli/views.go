package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/together/internal/board"
	"github.com/idilsaglam/together/internal/model"
	"github.com/idilsaglam/together/internal/ui"
)

// EmptyDay is shown when the selected day has no todos.
const EmptyDay = "No todos for this day"

func showBoard(b *board.Board, title string, opt Options) int {
	if opt.JSON {
		return writeJSON(opt.Out, b.Visible())
	}
	ui.Panel(boardLines(b, title))
	return 0
}

func showFriends(friends []model.Friend, opt Options) int {
	if opt.JSON {
		return writeJSON(opt.Out, friends)
	}
	ui.Panel(friendLines(friends))
	return 0
}

func showNotifications(in *board.Inbox, opt Options) int {
	if opt.JSON {
		return writeJSON(opt.Out, in.All())
	}
	ui.Panel(notificationLines(in))
	return 0
}

func showProfile(p model.Profile, opt Options) int {
	if opt.JSON {
		return writeJSON(opt.Out, p)
	}
	t := ui.Current()
	ui.Panel([]string{
		ui.C(t.Title, "Profile"),
		"",
		"nickname  " + p.Nickname,
		"id        " + p.UserID,
		"email     " + p.Email,
	})
	return 0
}

// -------------- rendering helpers --------------

func boardLines(b *board.Board, title string) []string {
	t := ui.Current()
	todos := b.Visible()
	d, p := b.Stats()
	header := fmt.Sprintf("%s %s  %s %d  %s %d  %s %d",
		ui.C(t.Title, title),
		ui.C(t.Muted, model.FormatDay(b.SelectedDate())),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(todos),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	lines = append(lines, todoLines(todos, b.Variant())...)
	if b.Variant() == board.VariantSelf {
		lines = append(lines, "", ui.C(t.Muted, "Tip: add and toggle in `together tui`"))
	} else {
		lines = append(lines, "", ui.C(t.Muted, "Tip: cheer from `together tui <friend-id>`"))
	}
	return lines
}

func todoLines(todos []model.Todo, v board.Variant) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{ui.C(t.Muted, EmptyDay)}
	}
	out := make([]string, 0, len(todos))
	for i, td := range todos {
		box := ui.C(t.Muted, t.BoxUnchecked)
		if td.Completed {
			box = ui.C(t.Success, t.BoxChecked)
		}
		parts := []string{ui.Index(i), box, ui.Swatch(td.Color, "■"), ui.Truncate(td.Title, 60)}
		if tags := ui.Tags(td.Tags); tags != "" {
			parts = append(parts, tags)
		}
		if td.CheerCount > 0 || v == board.VariantFriend {
			parts = append(parts, ui.C(t.Error, fmt.Sprintf("%s%d", t.SymCheer, td.CheerCount)))
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

func friendLines(friends []model.Friend) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", ui.C(t.Title, "My friends"), ui.C(t.Accent, "Total"), len(friends)),
		"",
	}
	if len(friends) == 0 {
		return append(lines, ui.C(t.Muted, "(none)"))
	}
	for _, f := range friends {
		lines = append(lines, fmt.Sprintf("(%s) %s %s", f.Initial(), f.Name, ui.C(t.Muted, "id:"+f.ID)))
	}
	return lines
}

func notificationLines(in *board.Inbox) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Notifications"), ui.C(t.Pending, "unread"), in.Unread()),
		"",
	}
	all := in.All()
	if len(all) == 0 {
		return append(lines, ui.C(t.Muted, "(none)"))
	}
	for _, n := range all {
		mark := " "
		if !n.Read {
			mark = ui.C(t.Pending, t.SymUnread)
		}
		lines = append(lines, fmt.Sprintf("%s %s cheered %q %s",
			mark, n.UserName, n.TodoTitle, ui.C(t.Muted, n.Time)))
	}
	return lines
}
