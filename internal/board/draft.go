package board

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/together/internal/model"
)

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTooManyTags  = fmt.Errorf("at most %d tags", model.MaxTags)
	ErrUnknownColor = errors.New("color is not in the palette")
)

// Draft is the state of the add-todo form before it is submitted.
type Draft struct {
	Title string
	Tags  []string
	Color string
	Date  time.Time // zero means the board's selected date
}

// NewDraft returns an empty draft with the default color.
func NewDraft(date time.Time) Draft {
	return Draft{Color: model.DefaultColor(), Date: date}
}

// AddTag appends a trimmed tag. Empty tags, duplicates and tags beyond
// model.MaxTags are ignored; the return value says whether the tag was added.
func (d *Draft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(d.Tags) >= model.MaxTags {
		return false
	}
	for _, t := range d.Tags {
		if t == tag {
			return false
		}
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag drops the tag at index i; out-of-range indexes are ignored.
func (d *Draft) RemoveTag(i int) {
	if i < 0 || i >= len(d.Tags) {
		return
	}
	tags := make([]string, 0, len(d.Tags)-1)
	tags = append(tags, d.Tags[:i]...)
	d.Tags = append(tags, d.Tags[i+1:]...)
}

// SetColor selects a palette swatch.
func (d *Draft) SetColor(c string) error {
	if !model.InPalette(c) {
		return fmt.Errorf("%w: %s", ErrUnknownColor, c)
	}
	d.Color = c
	return nil
}

// CycleColor moves to the next palette swatch, wrapping around.
func (d *Draft) CycleColor() {
	for i, p := range model.Palette {
		if p == d.Color {
			d.Color = model.Palette[(i+1)%len(model.Palette)]
			return
		}
	}
	d.Color = model.DefaultColor()
}

// Validate checks the draft as the submit button would.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if len(d.Tags) > model.MaxTags {
		return ErrTooManyTags
	}
	if d.Color != "" && !model.InPalette(d.Color) {
		return fmt.Errorf("%w: %s", ErrUnknownColor, d.Color)
	}
	return nil
}

// ParseDraft reads the quick-add line format: words starting with '#' are
// tags, everything else is the title.
//
//	Plan the sprint #work #planning
func ParseDraft(line string, date time.Time) Draft {
	d := NewDraft(date)
	var title []string
	for _, w := range strings.Fields(line) {
		if strings.HasPrefix(w, "#") && len(w) > 1 {
			d.AddTag(w[1:])
			continue
		}
		title = append(title, w)
	}
	d.Title = strings.Join(title, " ")
	return d
}
