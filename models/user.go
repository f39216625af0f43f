package models

import "time"

// User represents an account of the journal.
// PasswordHash is a bcrypt hash and must never leave the server.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// ShareEnabled gates every read through a share link.
	// It is false until the user explicitly enables sharing.
	ShareEnabled bool `json:"shareEnabled"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID int64
}
