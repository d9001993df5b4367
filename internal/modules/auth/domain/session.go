package domain

import (
	"context"
	"sync"
)

// NoticeLevel classifies a user-facing notice
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a toast-style message shown on the next rendered page
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Session is the request-scoped view of the caller's cookies. It is created
// once per request and handed to everything that needs the token.
type Session struct {
	mu      sync.Mutex
	access  string
	refresh string
	token   *DecodedToken
	notices []Notice
	changed bool
	cleared bool
}

// NewSession builds a session from stored tokens. token is the decoded access
// token, nil when absent or undecodable.
func NewSession(access, refresh string, token *DecodedToken) *Session {
	if token == nil {
		access = ""
	}
	return &Session{access: access, refresh: refresh, token: token}
}

// Token returns the bearer token, empty when logged out
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// RefreshToken returns the stored refresh token
func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// Decoded returns the decoded access token or nil
func (s *Session) Decoded() *DecodedToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State derives the auth state from the decoded token
func (s *Session) State() AuthState {
	return DeriveAuthState(s.Decoded())
}

// UserID returns the user_id claim
func (s *Session) UserID() (int, bool) {
	t := s.Decoded()
	if t == nil {
		return 0, false
	}
	return t.UserID, true
}

// Role returns the parsed role claim
func (s *Session) Role() (Role, bool) {
	state := s.State()
	if state.Role == nil {
		return "", false
	}
	return *state.Role, true
}

// SignIn replaces the stored tokens
func (s *Session) SignIn(access, refresh string, token *DecodedToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	s.token = token
	s.changed = true
	s.cleared = false
}

// Clear drops the tokens; the cookie store expires them on commit
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.token = nil
	s.changed = true
	s.cleared = true
}

// Changed reports whether tokens were replaced or cleared in this request
func (s *Session) Changed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// Cleared reports whether the session was logged out in this request
func (s *Session) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// Notify queues a user-facing notice
func (s *Session) Notify(level NoticeLevel, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Level: level, Message: message})
}

// Notices returns a copy of the pending notices
func (s *Session) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// TakeNotices drains the pending notices
func (s *Session) TakeNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

type sessionKey struct{}

// WithSession stores the session in ctx
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the request session. A logged-out session is returned
// when none was attached.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey{}).(*Session); ok && s != nil {
		return s
	}
	return NewSession("", "", nil)
}
