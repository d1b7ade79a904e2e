package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by
	// the persistence layer.
	UserID int64

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string

	// Email is the unique address the user registers and logs in with.
	Email string

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
