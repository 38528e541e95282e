package board

import (
	"time"

	"github.com/idilsaglam/together/internal/model"
)

// Sample data every session starts from.

var mockFriends = []model.Friend{
	{ID: "1", Name: "Kim Cheolsu", Image: "mock_image.jpeg"},
	{ID: "2", Name: "Lee Younghee"},
	{ID: "3", Name: "Park Jimin"},
	{ID: "4", Name: "Jung Minjun"},
	{ID: "5", Name: "Choi Younghee"},
	{ID: "6", Name: "Kang Seungho"},
	{ID: "7", Name: "Yoon Seoa"},
	{ID: "8", Name: "Lim Jihoon"},
	{ID: "9", Name: "Han Sumin"},
}

var mockNotifications = []model.Notification{
	{ID: 1, UserName: "Kim Cheolsu", TodoTitle: "Draft the project plan", Time: "10 min ago", Color: "#60a5fa"},
	{ID: 2, UserName: "Lee Younghee", TodoTitle: "Prepare the weekly meeting", Time: "1 hour ago", Color: "#60a5fa"},
	{ID: 3, UserName: "Park Jimin", TodoTitle: "Review the shop design", Time: "2 hours ago", Read: true, Color: "#60a5fa"},
	{ID: 4, UserName: "Jung Minjun", TodoTitle: "Answer emails", Time: "yesterday", Read: true, Color: "#60a5fa"},
}

var mockProfile = model.Profile{
	UserID:   "AJELDN920E",
	Nickname: "Naenaeil",
	Email:    "naewis1516@dilution.org",
}

func cheerleaders(n int) []model.Cheerleader {
	out := make([]model.Cheerleader, 0, n)
	for i := 0; i < n && i < len(mockFriends); i++ {
		out = append(out, model.Cheerleader{ID: mockFriends[i].ID, Name: mockFriends[i].Name})
	}
	return out
}

// mockTodos builds the sample list around today. owner is nil for the
// user's own list.
func mockTodos(today time.Time, owner *model.Owner) []model.Todo {
	withOwner := func(t model.Todo) model.Todo {
		if owner != nil {
			o := *owner
			t.Owner = &o
		}
		return t
	}
	return []model.Todo{
		withOwner(model.Todo{
			ID: 1, Title: "Draft the project plan",
			Tags: []string{"work", "important", "planning"}, Color: "#0ea5a0",
			Date: today, CheerCount: 3, Cheerleaders: cheerleaders(3),
		}),
		withOwner(model.Todo{
			ID: 2, Title: "Prepare the weekly meeting", Completed: true,
			Tags: []string{"meeting", "prep", "slides"}, Color: "#6c7ae0",
			Date: today, CheerCount: 5, Cheerleaders: cheerleaders(5),
		}),
		withOwner(model.Todo{
			ID: 3, Title: "Review the shop design",
			Tags: []string{"design", "review", "feedback"}, Color: "#e07a5f",
			Date: model.AddDays(today, -1), Cheerleaders: []model.Cheerleader{},
		}),
		withOwner(model.Todo{
			ID: 4, Title: "Answer emails",
			Tags: []string{"email", "reply", "contact"}, Color: "#6b7280",
			Date: model.AddDays(today, 1), CheerCount: 2, Cheerleaders: cheerleaders(2),
		}),
	}
}
