package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/together/internal/account"
	"github.com/idilsaglam/together/internal/board"
	"github.com/idilsaglam/together/internal/config"
	"github.com/idilsaglam/together/internal/model"
	"github.com/idilsaglam/together/internal/ui"
)

var testToday = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	out, errOut, jsonOut bytes.Buffer
	opt                  Options
}

func newHarness(t *testing.T, in string) *harness {
	t.Helper()
	t.Setenv(account.TokenEnv, "")
	h := &harness{}
	ui.SetTheme("mono")
	ui.SetOutput(&h.out, &h.errOut)
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.SetColorForcing(false, false)
		ui.SetTheme("classic")
	})
	h.opt = Options{
		Config: &config.Config{DataDir: filepath.Join(t.TempDir(), ".together")},
		In:     strings.NewReader(in),
		Out:    &h.jsonOut,
		Now:    func() time.Time { return testToday },
	}
	return h
}

func (h *harness) run(args ...string) int { return Run(args, h.opt) }

func TestListJSON(t *testing.T) {
	h := newHarness(t, "")
	h.opt.JSON = true
	if code := h.run("ls", "2024-04-30"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.errOut.String())
	}
	var todos []model.Todo
	if err := json.Unmarshal(h.jsonOut.Bytes(), &todos); err != nil {
		t.Fatalf("decode: %v\n%s", err, h.jsonOut.String())
	}
	if len(todos) != 1 || todos[0].ID != 3 {
		t.Fatalf("expected yesterday's todo only, got %+v", todos)
	}
}

func TestListPanel(t *testing.T) {
	h := newHarness(t, "")
	if code := h.run("ls"); code != 0 {
		t.Fatalf("exit %d", code)
	}
	out := h.out.String()
	for _, want := range []string{"My todos 2024-05-01", "Draft the project plan", "[x]", "#work #important #planning"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListEmptyDay(t *testing.T) {
	h := newHarness(t, "")
	if code := h.run("ls", "2030-01-01"); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(h.out.String(), EmptyDay) {
		t.Fatalf("missing empty-state text:\n%s", h.out.String())
	}
}

func TestListEmptyDayJSON(t *testing.T) {
	h := newHarness(t, "")
	h.opt.JSON = true
	if code := h.run("ls", "2030-01-01"); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if got := strings.TrimSpace(h.jsonOut.String()); got != "[]" {
		t.Fatalf("empty day JSON = %q, want []", got)
	}
}

func TestListUsage(t *testing.T) {
	h := newHarness(t, "")
	if code := h.run("ls", "yesterday"); code != 2 {
		t.Fatalf("bad date exit = %d", code)
	}
	if code := h.run("ls", "a", "b"); code != 2 {
		t.Fatalf("extra args exit = %d", code)
	}
	if code := h.run("bogus"); code != 2 {
		t.Fatalf("unknown subcommand exit = %d", code)
	}
}

func TestFriend(t *testing.T) {
	h := newHarness(t, "")
	if code := h.run("friend", "1"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.errOut.String())
	}
	if !strings.Contains(h.out.String(), "Kim Cheolsu's todos") {
		t.Fatalf("friend header missing:\n%s", h.out.String())
	}
	if code := h.run("friend", "404"); code != 1 {
		t.Fatalf("unknown friend exit = %d", code)
	}
	if !strings.Contains(h.errOut.String(), "friend not found") {
		t.Fatalf("missing not-found message: %s", h.errOut.String())
	}
}

func TestFriendsAndNotifications(t *testing.T) {
	h := newHarness(t, "")
	if code := h.run("friends"); code != 0 {
		t.Fatalf("friends exit %d", code)
	}
	if !strings.Contains(h.out.String(), "(H) Han Sumin id:9") {
		t.Fatalf("friend line missing:\n%s", h.out.String())
	}
	h.out.Reset()
	if code := h.run("notifications"); code != 0 {
		t.Fatalf("notifications exit %d", code)
	}
	if !strings.Contains(h.out.String(), "unread 2") {
		t.Fatalf("unread count missing:\n%s", h.out.String())
	}
}

func TestSignUpValidation(t *testing.T) {
	h := newHarness(t, "kim\n\npw\nother\n")
	if code := h.run("signup"); code != 2 {
		t.Fatalf("exit = %d", code)
	}
	errs := h.errOut.String()
	if !strings.Contains(errs, "nickname: enter a nickname") || !strings.Contains(errs, "confirm_password: passwords do not match") {
		t.Fatalf("unexpected errors:\n%s", errs)
	}
}

func TestSignUpOK(t *testing.T) {
	h := newHarness(t, "kim\nKim\npw\npw\n")
	if code := h.run("signup"); code != 0 {
		t.Fatalf("exit = %d: %s", code, h.errOut.String())
	}
	if !strings.Contains(h.out.String(), "signed up as kim") {
		t.Fatalf("missing confirmation:\n%s", h.out.String())
	}
}

func TestSessionCommands(t *testing.T) {
	h := newHarness(t, "kim\npw\n")
	if code := h.run("whoami"); code != 2 {
		t.Fatalf("whoami before signin exit = %d", code)
	}
	if code := h.run("signin"); code != 0 {
		t.Fatalf("signin exit = %d: %s", code, h.errOut.String())
	}
	h.out.Reset()
	if code := h.run("whoami"); code != 0 {
		t.Fatalf("whoami exit = %d", code)
	}
	if !strings.Contains(h.out.String(), "user:   kim") {
		t.Fatalf("whoami output:\n%s", h.out.String())
	}
	if code := h.run("signout"); code != 0 {
		t.Fatalf("signout exit = %d", code)
	}
	if code := h.run("whoami"); code != 2 {
		t.Fatalf("whoami after signout exit = %d", code)
	}
}

func TestSignInRequiresFields(t *testing.T) {
	h := newHarness(t, "\n\n")
	if code := h.run("signin"); code != 2 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(h.errOut.String(), "id: enter an id") {
		t.Fatalf("errors:\n%s", h.errOut.String())
	}
}

func TestProfile(t *testing.T) {
	h := newHarness(t, "")
	h.opt.Config.Nickname = "tester"
	if code := h.run("profile"); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(h.out.String(), "nickname  tester") {
		t.Fatalf("profile output:\n%s", h.out.String())
	}

	h = newHarness(t, "  \nnew\nnope\n")
	if code := h.run("profile", "edit"); code != 2 {
		t.Fatalf("profile edit exit = %d", code)
	}
	if !strings.Contains(h.errOut.String(), "nickname: nickname cannot be empty") {
		t.Fatalf("errors:\n%s", h.errOut.String())
	}
}

func TestTodoLinesFriendShowsCheers(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() {
		ui.SetColorForcing(false, false)
		ui.SetTheme("classic")
	})
	lines := todoLines([]model.Todo{{ID: 1, Title: "x"}}, board.VariantFriend)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "+0") {
		t.Fatalf("friend lines should show the cheer count, got %q", lines)
	}
	lines = todoLines(nil, board.VariantSelf)
	if lines[0] != EmptyDay {
		t.Fatalf("empty lines = %q", lines)
	}
}
