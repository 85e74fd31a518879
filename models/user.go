package models

import "time"

// User represents a locally registered account as stored by the client
// credential store, and mirrors the server-side users table.
//
// Password holds the obfuscated (reversible base64) password value, never
// plaintext and never a cryptographic hash. This mirrors the original
// demonstration-only credential store; it is not a security mechanism.
type User struct {
	// ID is the unique identifier of the user. Client-side IDs are
	// timestamp-derived; server-side IDs are assigned by SQLite.
	ID int64 `json:"id"`

	// Name is the display name of the user, shown in UI.
	Name string `json:"name"`

	// Email is the lowercase-normalized email address and acts as the
	// unique key of the account.
	Email string `json:"email"`

	// Password is the obfuscated password value. Reversible encoding,
	// not a hash; see internal/crypto.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the non-sensitive subset of the user record that is safe
// to hold in a session or return from auth operations.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the session-safe projection of a User: id, name and email
// only. It is what SetSession persists and what sign-up/sign-in return.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
