package account

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/together/internal/store/jsonstore"
)

const (
	sessionFileName = "session.json"
	// TokenEnv overrides the session file when set.
	TokenEnv = "TOGETHER_TOKEN"
)

type Session struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	Source    string    `json:"source"` // "env" | "file"
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps the session marker under a data directory.
type SessionStore struct {
	dir string
	now func() time.Time
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{dir: dir, now: time.Now}
}

func (s *SessionStore) path() string { return filepath.Join(s.dir, sessionFileName) }

// Current returns the active session, or nil when signed out.
func (s *SessionStore) Current() (*Session, error) {
	if env := strings.TrimSpace(os.Getenv(TokenEnv)); env != "" {
		return &Session{Token: stripBearer(env), Source: "env"}, nil
	}
	sess, found, err := jsonstore.Load[Session](s.path())
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}
	sess.Token = stripBearer(sess.Token)
	return &sess, nil
}

// Begin validates the sign-in form and writes a fresh session marker
// (owner-only permissions). The password is never stored.
func (s *SessionStore) Begin(f SignInForm) (*Session, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	sess := Session{
		UserID:    strings.TrimSpace(f.ID),
		Token:     uuid.NewString(),
		Source:    "file",
		CreatedAt: s.now(),
	}
	if err := jsonstore.Save(s.path(), sess, 0o600); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &sess, nil
}

// End removes the session marker. Env-provided sessions are left alone.
func (s *SessionStore) End() error {
	if sess, _ := s.Current(); sess != nil && sess.Source == "env" {
		return nil
	}
	return jsonstore.Remove(s.path())
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
