// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// UserRole is the authorization role of an account.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// AuthType tells how an account authenticates.
type AuthType string

const (
	AuthTypeLocal  AuthType = "local"
	AuthTypeGoogle AuthType = "google"
)

// User represents a marketplace account.
//
// PasswordHash is present only for local accounts and GoogleID only for
// accounts that have signed in with Google at least once. Neither is ever
// serialized.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	// Password carries the plaintext password on its way in from the
	// transport layer. It is never persisted or returned.
	Password     string  `json:"password,omitempty"`
	PasswordHash *string `json:"-"`

	Phone      *string  `json:"phone,omitempty"`
	Role       UserRole `json:"role"`
	IsVerified bool     `json:"is_verified"`
	GoogleID   *string  `json:"-"`
	AvatarURL  *string  `json:"avatar_url,omitempty"`
	AuthType   AuthType `json:"auth_type"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Summary returns the public projection of u.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.FullName(),
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserSummary is the short user representation returned by auth endpoints.
type UserSummary struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// UserUpdate is a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	FirstName  *string   `json:"first_name,omitempty"`
	LastName   *string   `json:"last_name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Password   *string   `json:"password,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Role       *UserRole `json:"role,omitempty"`
	IsVerified *bool     `json:"is_verified,omitempty"`

	// PasswordHash is filled by the service after hashing Password.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Password == nil && u.PasswordHash == nil && u.Phone == nil &&
		u.AvatarURL == nil && u.Role == nil && u.IsVerified == nil
}

// UserFilter holds the listing criteria for users.
type UserFilter struct {
	Page       int
	Limit      int
	Role       *UserRole
	IsVerified *bool
	SortBy     string
	Order      string
}

// UserList is a page of users.
type UserList struct {
	Users      []User `json:"users"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// Credentials is the body of a local login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExternalProfile is the normalized identity extracted from a verified
// external identity-provider token.
type ExternalProfile struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	AvatarURL  string `json:"avatar_url"`
}
