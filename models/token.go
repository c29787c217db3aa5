// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind separates access tokens from refresh tokens.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Claims is the JWT claim set issued by the marketplace.
//
// Access tokens carry id, email and role. Refresh tokens carry only the id
// and a unique token id (jti) that allows revocation.
type Claims struct {
	jwt.RegisteredClaims

	UserID int64     `json:"id"`
	Email  string    `json:"email,omitempty"`
	Role   UserRole  `json:"role,omitempty"`
	Kind   TokenKind `json:"kind"`
}

// Token is a signed JWT together with the claims it was built from.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	Claims Claims
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the expiry time of the token, or the zero time when the
// claim is absent.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// TokenPair is an access token together with its refresh token.
type TokenPair struct {
	Access  Token
	Refresh Token
}

// LoginResponse is returned by the local login endpoint.
type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserSummary `json:"user"`
}

// ExternalLoginResponse is returned by the Google login endpoint.
type ExternalLoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserSummary `json:"user"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID int64
	Email  string
	Role   UserRole
}

// IsStaff reports whether the actor may manage other people's listings.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleModerator
}
