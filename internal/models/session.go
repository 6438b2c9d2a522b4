package models

import "time"

// Session is server-side login state addressed by an opaque id that the
// client holds in a signed cookie.
type Session struct {
	ID         string    `bson:"_id"`
	IsLoggedIn bool      `bson:"isLoggedIn"`
	Username   string    `bson:"username"`
	ExpiresAt  time.Time `bson:"expiresAt"`
}

// Expired reports whether the session is past its idle timeout at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStatus is the body of GET /session.
type SessionStatus struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Username   string `json:"username,omitempty"`
}
