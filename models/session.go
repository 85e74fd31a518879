package models

import "time"

// Session is the record held by exactly one of the client's two storage
// tiers. It carries the session-safe subset of a User plus the time the
// session was established.
//
// The invariant enforced by the store is tier exclusivity: at most one tier
// (durable or ephemeral) holds a Session at a time.
type Session struct {
	UserID int64     `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// SessionFromSummary builds a Session record from a user summary.
func SessionFromSummary(s UserSummary, at time.Time) Session {
	return Session{UserID: s.ID, Name: s.Name, Email: s.Email, At: at}
}

// Summary converts the session record back to a user summary.
func (s Session) Summary() UserSummary {
	return UserSummary{ID: s.UserID, Name: s.Name, Email: s.Email}
}
