package models

import "time"

// User represents an account entity used for authentication and blog
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// JSON serialization so it can never leak into a response body.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Author is the projection of a User embedded into blog responses when the
// author reference is expanded at read time.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// AsAuthor returns the public author projection of the user.
func (u User) AsAuthor() Author {
	return Author{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
