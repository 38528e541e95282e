package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/together/internal/board"
	"github.com/idilsaglam/together/internal/config"
	"github.com/idilsaglam/together/internal/logging"
	"github.com/idilsaglam/together/internal/model"
	"github.com/idilsaglam/together/internal/tui"
	"github.com/idilsaglam/together/internal/ui"
)

// Options tune behavior from root flags and the resolved config.
type Options struct {
	JSON   bool // machine-readable output for list views
	Config *config.Config
	Logger *log.Logger
	In     io.Reader        // form input, defaults to stdin
	Out    io.Writer        // JSON output, defaults to stdout
	Now    func() time.Time // defaults to time.Now
}

func (o *Options) fill() {
	if o.Config == nil {
		o.Config = &config.Config{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// Every run starts a fresh session from the mock data.
func Run(args []string, opt Options) int {
	opt.fill()
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	sess := board.NewSession(opt.Now(),
		board.WithLogger(opt.Logger),
		board.WithNickname(opt.Config.Nickname),
	)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		if len(a) > 1 {
			ui.Fail("usage: together ls [YYYY-MM-DD]")
			return 2
		}
		if code := selectDay(sess.Me, a); code != 0 {
			return code
		}
		return showBoard(sess.Me, "My todos", opt)

	case "friends":
		return showFriends(sess.Friends.All(), opt)

	case "friend":
		if len(a) < 1 || len(a) > 2 {
			ui.Fail("usage: together friend <id> [YYYY-MM-DD]")
			return 2
		}
		b, err := sess.FriendBoard(a[0])
		if err != nil {
			if errors.Is(err, board.ErrFriendNotFound) {
				ui.Fail("friend not found: " + a[0])
				ui.Hint("Hint: run `together friends` to see valid ids")
				return 1
			}
			ui.Fail(err.Error())
			return 1
		}
		if code := selectDay(b, a[1:]); code != 0 {
			return code
		}
		return showBoard(b, b.Owner().Name+"'s todos", opt)

	case "notifications":
		return showNotifications(sess.Inbox, opt)

	case "tui":
		if len(a) > 1 {
			ui.Fail("usage: together tui [friend-id]")
			return 2
		}
		friendID := ""
		if len(a) == 1 {
			friendID = a[0]
		}
		if err := tui.Run(sess, friendID); err != nil {
			if errors.Is(err, board.ErrFriendNotFound) {
				ui.Fail("friend not found: " + friendID)
				return 1
			}
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0

	case "signup":
		return doSignUp(newPrompter(opt.In), opt)
	case "signin":
		return doSignIn(newPrompter(opt.In), opt)
	case "signout":
		return doSignOut(opt)
	case "whoami":
		return doWhoAmI(opt)
	case "profile":
		if len(a) == 1 && a[0] == "edit" {
			return doProfileEdit(newPrompter(opt.In), sess.Profile, opt)
		}
		if len(a) != 0 {
			ui.Fail("usage: together profile [edit]")
			return 2
		}
		return showProfile(sess.Profile, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`together - todo lists with friends

Usage:
  together [flags] <subcommand> [args]

Subcommands:
  ls [YYYY-MM-DD]               Show your todos for a day (default today)
  friends                       List friends
  friend <id> [YYYY-MM-DD]      Show a friend's todos for a day
  notifications                 List cheer notifications
  tui [friend-id]               Interactive session (add, toggle, cheer)
  signup | signin | signout     Account forms
  whoami                        Show the current session
  profile [edit]                Show or edit the profile

Flags:
  -json      JSON output for list views
  -theme     classic | neon | mono
  -debug     log stubbed backend calls
  -config    path to config.toml

Examples:
  together ls
  together ls 2024-05-01
  together friend 2
  together tui
`)
}

func selectDay(b *board.Board, a []string) int {
	if len(a) == 0 {
		return 0
	}
	d, err := model.ParseDay(a[0], b.SelectedDate().Location())
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	b.Select(d)
	return 0
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		ui.Fail("json: " + err.Error())
		return 1
	}
	return 0
}
