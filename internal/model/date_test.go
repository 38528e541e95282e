package model

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		other time.Time
		want  bool
	}{
		{"same instant", base, true},
		{"late same day", time.Date(2024, time.May, 1, 23, 59, 59, 0, time.UTC), true},
		{"midnight", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), true},
		{"next day", time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), false},
		{"same day other month", time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC), false},
		{"same day other year", time.Date(2023, time.May, 1, 9, 30, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(base, tt.other); got != tt.want {
				t.Fatalf("SameDay(%v, %v) = %v, want %v", base, tt.other, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-05-01", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.May || d.Day() != 1 {
		t.Fatalf("unexpected day: %v", d)
	}
	if FormatDay(d) != "2024-05-01" {
		t.Fatalf("FormatDay round trip: %s", FormatDay(d))
	}
	if _, err := ParseDay("05/01/2024", time.UTC); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, time.May, 1, 18, 4, 5, 6, time.UTC))
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}

func TestInPalette(t *testing.T) {
	if !InPalette(DefaultColor()) {
		t.Fatalf("default color must be in palette")
	}
	if InPalette("#ffffff") {
		t.Fatalf("#ffffff is not a palette swatch")
	}
}

func TestFriendInitial(t *testing.T) {
	if got := (Friend{Name: "Kim Cheolsu"}).Initial(); got != "K" {
		t.Fatalf("Initial = %q", got)
	}
	if got := (Friend{}).Initial(); got != "?" {
		t.Fatalf("empty name Initial = %q", got)
	}
}

func TestCloneKeepsEmptySlices(t *testing.T) {
	src := Todo{ID: 1, Tags: []string{}, Cheerleaders: []Cheerleader{}}
	got := src.Clone()
	if got.Tags == nil || got.Cheerleaders == nil {
		t.Fatalf("empty slices became nil: %#v", got)
	}
	if (Todo{}).Clone().Tags != nil {
		t.Fatalf("nil tags should stay nil")
	}
}
