// Package session tracks the current sign-in state and persists the one
// durable artifact of a session, the token/username pair, across runs.
package session

import "hacksnooze/internal/client/models"

// State is the session lifecycle state. There is exactly one current session
// at a time; no concurrent multi-user sessions.
type State int

const (
	// Anonymous: no user; browsing and reading only.
	Anonymous State = iota
	// Authenticating: a signup, login, or restore attempt is in flight.
	Authenticating
	// Authenticated: a User exists and is the current-session value.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session holds the current state and, once authenticated, the user.
// It replaces the upstream ambient globals: the CLI app owns one Session,
// creates the user on login success, and tears it down on logout.
type Session struct {
	state State
	user  *models.User
}

// New returns an anonymous session.
func New() *Session {
	return &Session{state: Anonymous}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// User returns the signed-in user, or nil while not authenticated.
func (s *Session) User() *models.User {
	return s.user
}

// LoggedIn reports whether a user is currently signed in.
func (s *Session) LoggedIn() bool {
	return s.state == Authenticated && s.user != nil
}

// BeginAuth marks the start of a signup/login/restore attempt.
func (s *Session) BeginAuth() {
	s.state = Authenticating
}

// Establish installs u as the current user. It ends an authentication
// attempt (or replaces a previous session wholesale).
func (s *Session) Establish(u *models.User) {
	s.user = u
	s.state = Authenticated
}

// Fail returns to Anonymous after an unsuccessful authentication attempt.
// An already-established user, if any, is kept: a failed re-auth must not
// destroy the prior session.
func (s *Session) Fail() {
	if s.user != nil {
		s.state = Authenticated
		return
	}
	s.state = Anonymous
}

// Clear ends the session: the user is discarded and the state returns to
// Anonymous. Purely local; no server-side invalidation exists.
func (s *Session) Clear() {
	s.user = nil
	s.state = Anonymous
}
