package board

import "github.com/idilsaglam/together/internal/model"

// Inbox holds cheer notifications and their read flags.
type Inbox struct {
	items []model.Notification
}

func NewInbox(seed []model.Notification) *Inbox {
	return &Inbox{items: append([]model.Notification(nil), seed...)}
}

func (n *Inbox) All() []model.Notification {
	return append([]model.Notification(nil), n.items...)
}

// Unread counts notifications not yet marked read.
func (n *Inbox) Unread() int {
	c := 0
	for _, it := range n.items {
		if !it.Read {
			c++
		}
	}
	return c
}

// MarkAsRead flags one notification; false if the id is unknown.
func (n *Inbox) MarkAsRead(id int) bool {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllAsRead flags every notification and returns how many changed.
func (n *Inbox) MarkAllAsRead() int {
	c := 0
	for i := range n.items {
		if !n.items[i].Read {
			n.items[i].Read = true
			c++
		}
	}
	return c
}
