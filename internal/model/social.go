package model

// Friend is an entry in the user's friend list. An empty Image means
// the avatar falls back to the first letter of Name.
type Friend struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Initial is the avatar fallback letter.
func (f Friend) Initial() string {
	for _, r := range f.Name {
		return string(r)
	}
	return "?"
}

// Notification tells the user that a friend cheered one of their todos.
// Time is a display string ("10 min ago"), not a timestamp.
type Notification struct {
	ID        int    `json:"id"`
	UserName  string `json:"user_name"`
	TodoTitle string `json:"todo_title"`
	Time      string `json:"time"`
	Read      bool   `json:"read"`
	Color     string `json:"color,omitempty"`
}

// Profile is what the profile page shows about the signed-in user.
type Profile struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}
