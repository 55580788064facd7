// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that owns a journal.
// Every entry, strain and purchase is scoped to exactly one user.
type User struct {
	// UserID is the generated identifier of the account (UUID string).
	// It is the namespace key for all journal data.
	UserID string `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plain-text password on register/login requests only.
	// It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the account creation time in epoch milliseconds.
	CreatedAt int64 `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
