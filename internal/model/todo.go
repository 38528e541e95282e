package model

import "time"

// MaxTags caps the tag list of a single todo.
const MaxTags = 5

// Palette is the fixed set of swatch colors a todo can carry.
// The first entry is the default selection of the add form.
var Palette = []string{
	"#0ea5a0", // mint
	"#6c7ae0", // lavender
	"#e07a5f", // apricot
	"#6b7280", // gray
	"#e0923e", // orange
	"#65a30d", // green
}

// DefaultColor returns the palette entry preselected for new todos.
func DefaultColor() string { return Palette[0] }

// InPalette reports whether c is one of the palette swatches.
func InPalette(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Owner is set on todos shown on a friend's board.
type Owner struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Cheerleader is someone who cheered a todo.
type Cheerleader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Todo is the domain model for a dated todo entry.
type Todo struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Completed    bool          `json:"completed"`
	Tags         []string      `json:"tags"`
	Color        string        `json:"color"`
	Date         time.Time     `json:"date"`
	Owner        *Owner        `json:"owner,omitempty"`
	CheerCount   int           `json:"cheer_count"`
	Cheerleaders []Cheerleader `json:"cheerleaders,omitempty"`
}

// CheeredBy reports whether the cheerleader id already cheered this todo.
func (t Todo) CheeredBy(id string) bool {
	for _, c := range t.Cheerleaders {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with t. Empty slices stay
// empty rather than nil.
func (t Todo) Clone() Todo {
	out := t
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	if t.Cheerleaders != nil {
		out.Cheerleaders = make([]Cheerleader, len(t.Cheerleaders))
		copy(out.Cheerleaders, t.Cheerleaders)
	}
	if t.Owner != nil {
		o := *t.Owner
		out.Owner = &o
	}
	return out
}
