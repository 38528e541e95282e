package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/idilsaglam/together/internal/account"
	"github.com/idilsaglam/together/internal/model"
	"github.com/idilsaglam/together/internal/ui"
)

// prompter reads form fields line by line. Secrets are read without echo
// when the input is a terminal.
type prompter struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader) *prompter {
	return &prompter{in: in, r: bufio.NewReader(in), out: os.Stdout}
}

func (p *prompter) ask(label string) string {
	fmt.Fprint(p.out, label+": ")
	line, _ := p.r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func (p *prompter) secret(label string) string {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, label+": ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err == nil {
			return string(b)
		}
	}
	return p.ask(label)
}

// reportFieldErrors prints one line per invalid field and returns the exit
// code for err.
func reportFieldErrors(err error) int {
	var fe account.FieldErrors
	if !errors.As(err, &fe) {
		ui.Fail(err.Error())
		return 1
	}
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ui.Fail(k + ": " + fe[k])
	}
	return 2
}

func doSignUp(p *prompter, opt Options) int {
	f := account.SignUpForm{
		ID:       p.ask("id"),
		Nickname: p.ask("nickname"),
	}
	f.Password = p.secret("password")
	f.ConfirmPassword = p.secret("confirm password")
	if err := f.Validate(); err != nil {
		return reportFieldErrors(err)
	}
	// No account service exists; the request only reaches the log.
	opt.Logger.Debug("sign up requested", "id", strings.TrimSpace(f.ID), "nickname", strings.TrimSpace(f.Nickname))
	ui.OK("signed up as " + strings.TrimSpace(f.ID))
	ui.Hint("Next: together signin")
	return 0
}

func doSignIn(p *prompter, opt Options) int {
	f := account.SignInForm{ID: p.ask("id")}
	f.Password = p.secret("password")
	sess, err := account.NewSessionStore(opt.Config.DataDir).Begin(f)
	if err != nil {
		return reportFieldErrors(err)
	}
	opt.Logger.Debug("sign in", "id", sess.UserID)
	ui.OK("signed in as " + sess.UserID)
	return 0
}

func doSignOut(opt Options) int {
	store := account.NewSessionStore(opt.Config.DataDir)
	sess, err := store.Current()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if sess != nil && sess.Source == "env" {
		ui.OK("session is provided by " + account.TokenEnv + " (nothing to delete)")
		return 0
	}
	if err := store.End(); err != nil {
		ui.Fail("signout: " + err.Error())
		return 1
	}
	ui.OK("signed out")
	return 0
}

func doWhoAmI(opt Options) int {
	sess, err := account.NewSessionStore(opt.Config.DataDir).Current()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if sess == nil {
		ui.Fail("not signed in. Run: together signin")
		return 2
	}
	if opt.JSON {
		return writeJSON(opt.Out, sess)
	}
	user := sess.UserID
	if user == "" {
		user = "(unknown)"
	}
	ui.Println("user:   " + user)
	ui.Println("source: " + sess.Source)
	if !sess.CreatedAt.IsZero() {
		ui.Println("since:  " + sess.CreatedAt.UTC().Format(time.RFC3339))
	}
	return 0
}

// doProfileEdit validates the edit form. Saving has no backend, so the
// profile is only reported back.
func doProfileEdit(p *prompter, cur model.Profile, opt Options) int {
	ui.Println(fmt.Sprintf("current nickname: %s", cur.Nickname))
	f := account.ProfileForm{Nickname: p.ask("nickname")}
	f.Password = p.secret("new password (empty keeps current)")
	f.ConfirmPassword = p.secret("confirm password")
	if err := f.Validate(); err != nil {
		return reportFieldErrors(err)
	}
	opt.Logger.Debug("profile update requested", "nickname", strings.TrimSpace(f.Nickname), "password_changed", f.Password != "")
	ui.OK("profile saved")
	return 0
}
