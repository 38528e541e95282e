package board

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/together/internal/model"
)

var ErrFriendNotFound = errors.New("friend not found")

// Session is everything one run of the app works on. It lives as long as
// the process.
type Session struct {
	Me      *Board
	Friends *Friends
	Inbox   *Inbox
	Profile model.Profile

	today   time.Time
	now     func() time.Time
	log     *log.Logger
	friends map[string]*Board
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for stubbed backend calls.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now, used for fabricated friend ids.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithNickname overrides the mock profile's nickname.
func WithNickname(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.Profile.Nickname = name
		}
	}
}

// NewSession seeds a session with the mock data laid out around today.
func NewSession(today time.Time, opts ...Option) *Session {
	s := &Session{
		Profile: mockProfile,
		today:   today,
		now:     time.Now,
		log:     log.New(io.Discard),
		friends: map[string]*Board{},
	}
	for _, o := range opts {
		o(s)
	}
	s.Me = New(VariantSelf, nil, mockTodos(today, nil), today)
	s.Me.SetLogger(s.log)
	s.Friends = NewFriends(mockFriends)
	s.Friends.now = s.now
	s.Friends.log = s.log
	s.Inbox = NewInbox(mockNotifications)
	return s
}

// Today is the day the session was seeded for.
func (s *Session) Today() time.Time { return s.today }

// Me as a cheerleader, for cheering friends' todos.
func (s *Session) Cheerleader() model.Cheerleader {
	return model.Cheerleader{ID: s.Profile.UserID, Name: s.Profile.Nickname, Image: s.Profile.Image}
}

// FriendBoard returns the board of the friend with the given id. Boards are
// built on first use and kept for the rest of the session so cheers stick.
func (s *Session) FriendBoard(id string) (*Board, error) {
	if b, ok := s.friends[id]; ok {
		return b, nil
	}
	fr, ok := s.Friends.Find(id)
	if !ok {
		return nil, ErrFriendNotFound
	}
	owner := &model.Owner{Name: fr.Name, Image: fr.Image}
	b := New(VariantFriend, owner, mockTodos(s.today, owner), s.today)
	b.SetLogger(s.log)
	s.friends[id] = b
	return b, nil
}
