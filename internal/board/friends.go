package board

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/together/internal/model"
)

var ErrEmptyFriendID = errors.New("friend id cannot be empty")

// Friends is the session's friend list.
type Friends struct {
	list []model.Friend
	now  func() time.Time
	log  *log.Logger
}

// NewFriends copies seed into a new list.
func NewFriends(seed []model.Friend) *Friends {
	return &Friends{
		list: append([]model.Friend(nil), seed...),
		now:  time.Now,
		log:  log.New(io.Discard),
	}
}

// All returns the list in insertion order.
func (f *Friends) All() []model.Friend {
	return append([]model.Friend(nil), f.list...)
}

// Find looks a friend up by id.
func (f *Friends) Find(id string) (model.Friend, bool) {
	for _, fr := range f.list {
		if fr.ID == id {
			return fr, true
		}
	}
	return model.Friend{}, false
}

// Add appends a friend for the entered id. No lookup happens: the input
// doubles as the display name and the id is derived from the clock.
func (f *Friends) Add(input string) (model.Friend, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return model.Friend{}, ErrEmptyFriendID
	}
	ms := f.now().UnixMilli()
	id := fmt.Sprintf("new-%d", ms)
	for {
		if _, taken := f.Find(id); !taken {
			break
		}
		ms++
		id = fmt.Sprintf("new-%d", ms)
	}
	fr := model.Friend{ID: id, Name: input}
	f.list = append(f.list, fr)
	f.log.Debug("friend request", "to", input, "id", id)
	return fr, nil
}
