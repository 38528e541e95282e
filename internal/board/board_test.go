package board

import (
	"errors"
	"testing"
	"time"

	"github.com/idilsaglam/together/internal/model"
)

func newSelfBoard() *Board {
	return New(VariantSelf, nil, []model.Todo{
		{ID: 1, Title: "a", Date: day(2024, time.May, 1)},
		{ID: 3, Title: "b", Date: day(2024, time.May, 2)},
	}, day(2024, time.May, 1))
}

func TestBoardSelectRecomputes(t *testing.T) {
	b := newSelfBoard()
	if got := ids(b.Visible()); !equalInts(got, []int{1}) {
		t.Fatalf("visible = %v", got)
	}
	b.Shift(1)
	if got := ids(b.Visible()); !equalInts(got, []int{3}) {
		t.Fatalf("after Shift visible = %v", got)
	}
	b.Select(day(2024, time.May, 9))
	if len(b.Visible()) != 0 {
		t.Fatalf("expected empty day")
	}
}

func TestBoardAdd(t *testing.T) {
	b := newSelfBoard()
	d := NewDraft(time.Time{})
	d.Title = "  Buy milk  "
	d.AddTag("errand")

	got, err := b.Add(d)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("new id = %d, want 4", got.ID)
	}
	if got.Title != "Buy milk" || got.Completed || got.CheerCount != 0 {
		t.Fatalf("unexpected todo %+v", got)
	}
	if got.Cheerleaders == nil || len(got.Cheerleaders) != 0 {
		t.Fatalf("cheerleaders should be empty, got %#v", got.Cheerleaders)
	}
	if !model.SameDay(got.Date, day(2024, time.May, 1)) {
		t.Fatalf("date should default to the selected day, got %v", got.Date)
	}
	if got := ids(b.Visible()); !equalInts(got, []int{1, 4}) {
		t.Fatalf("visible after add = %v", got)
	}
}

func TestBoardAddOtherDay(t *testing.T) {
	b := newSelfBoard()
	d := NewDraft(day(2024, time.May, 2))
	d.Title = "later"
	if _, err := b.Add(d); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := ids(b.Visible()); !equalInts(got, []int{1}) {
		t.Fatalf("todo for another day must not show, visible = %v", got)
	}
	if len(b.Todos()) != 3 {
		t.Fatalf("expected 3 todos in total")
	}
}

func TestBoardAddRejectsBlankTitle(t *testing.T) {
	b := newSelfBoard()
	if _, err := b.Add(Draft{Title: "   "}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if len(b.Todos()) != 2 {
		t.Fatalf("blank add must not change the list")
	}
}

func TestBoardToggle(t *testing.T) {
	b := newSelfBoard()
	if !b.Toggle(1) {
		t.Fatalf("Toggle(1) failed")
	}
	if d, p := b.Stats(); d != 1 || p != 0 {
		t.Fatalf("stats = %d/%d", d, p)
	}
	if b.Toggle(99) {
		t.Fatalf("unknown id toggled")
	}
	b.Toggle(1)
	if got, _ := b.Get(1); got.Completed {
		t.Fatalf("toggle twice should restore")
	}
}

func TestBoardIsolatedFromInput(t *testing.T) {
	in := []model.Todo{{ID: 1, Tags: []string{"x"}, Date: day(2024, time.May, 1)}}
	b := New(VariantSelf, nil, in, day(2024, time.May, 1))
	b.Toggle(1)
	if in[0].Completed {
		t.Fatalf("board must not mutate the seed slice")
	}
	out := b.Visible()
	out[0].Tags[0] = "changed"
	if got, _ := b.Get(1); got.Tags[0] != "x" {
		t.Fatalf("Visible must return copies")
	}
}

func TestFriendBoardReadOnly(t *testing.T) {
	owner := &model.Owner{Name: "Kim"}
	b := New(VariantFriend, owner, []model.Todo{{ID: 1, Date: day(2024, time.May, 1)}}, day(2024, time.May, 1))
	if b.Toggle(1) {
		t.Fatalf("friend board toggled")
	}
	if _, err := b.Add(Draft{Title: "x"}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestBoardCheer(t *testing.T) {
	b := New(VariantFriend, &model.Owner{Name: "Kim"}, []model.Todo{
		{ID: 1, Date: day(2024, time.May, 1), CheerCount: 1, Cheerleaders: []model.Cheerleader{{ID: "2", Name: "Lee"}}},
	}, day(2024, time.May, 1))

	me := model.Cheerleader{ID: "me", Name: "Me"}
	ok, err := b.Cheer(1, me)
	if err != nil || !ok {
		t.Fatalf("Cheer = %v, %v", ok, err)
	}
	ok, _ = b.Cheer(1, me)
	if ok {
		t.Fatalf("second cheer from the same person counted")
	}
	got, _ := b.Get(1)
	if got.CheerCount != 2 || len(got.Cheerleaders) != 2 || got.Completed {
		t.Fatalf("unexpected todo after cheer %+v", got)
	}
	if ok, _ := b.Cheer(42, me); ok {
		t.Fatalf("cheer on unknown id counted")
	}
	if _, err := newSelfBoard().Cheer(1, me); err == nil {
		t.Fatalf("cheering own todo should fail")
	}
}

func TestVisibleEmptyDayNotNil(t *testing.T) {
	b := newSelfBoard()
	b.Select(day(2030, time.January, 1))
	if got := b.Visible(); got == nil || len(got) != 0 {
		t.Fatalf("Visible on an empty day = %#v, want empty slice", got)
	}
}
