package domain

import "time"

// Session is the authenticated identity held for one browser visit.
// The token and user are written together on login and cleared together
// on logout; a session without a token means "logged out" regardless of
// any stale user record.
type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"-"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsLoggedIn() bool {
	return s != nil && s.Token != ""
}
