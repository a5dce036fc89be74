// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash holds the bcrypt output and must never leave the server, so it
// is excluded from JSON. Handlers return [UserPublic] instead of User.
type User struct {
	// ID is the database-assigned identifier of the user.
	ID int64 `json:"id"`

	// Username is the display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// Public returns the safe projection of u with the password hash stripped.
func (u User) Public() UserPublic {
	return UserPublic{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPublic is the subset of a user record that is safe to expose
// externally. It is the only user representation embedded into tokens
// and returned to clients.
type UserPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
