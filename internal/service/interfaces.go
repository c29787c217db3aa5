// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/domain-marketplace/models"
)

// AuthService handles local accounts and the JWT access/refresh lifecycle.
type AuthService interface {
	// Register creates a local account and returns it together with an
	// access token.
	Register(ctx context.Context, user models.User) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error)
	// Refresh exchanges a refresh token for a new pair. The presented token
	// is revoked.
	Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error

	IssueTokens(ctx context.Context, user models.User) (models.TokenPair, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// GoogleAuthService signs users in with Google ID tokens.
type GoogleAuthService interface {
	Login(ctx context.Context, idToken string) (models.User, models.TokenPair, error)
	// FindOrCreateUser returns the account linked to profile, creating a
	// verified Google account when none exists.
	FindOrCreateUser(ctx context.Context, profile models.ExternalProfile) (models.User, error)
	// RedirectURL builds the callback redirect carrying token. An empty
	// redirectURI falls back to the configured client URL.
	RedirectURL(redirectURI, token string) (string, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) (models.UserList, error)
	// UpdateUser applies upd on behalf of actor. Only admins may act on other
	// accounts or change role and verification.
	UpdateUser(ctx context.Context, actor models.Actor, id int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, actor models.Actor, id int64) error
}

type DomainService interface {
	CreateDomain(ctx context.Context, input models.DomainInput) (models.Domain, error)
	// GetDomain returns the domain and counts the view.
	GetDomain(ctx context.Context, id int64) (models.Domain, error)
	ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error)
	ListCategoryDomains(ctx context.Context, categoryID int64, filter models.DomainFilter) (models.DomainList, error)
	SearchDomains(ctx context.Context, query string) ([]models.Domain, error)
	RecommendDomains(ctx context.Context, id int64) ([]models.Domain, error)
	RecordInquiry(ctx context.Context, id int64) (models.Domain, error)
	// UpdateDomain applies upd on behalf of actor. Status changes must follow
	// the transition table.
	UpdateDomain(ctx context.Context, actor models.Actor, id int64, upd models.DomainUpdate) (models.Domain, error)
	DeleteDomain(ctx context.Context, actor models.Actor, id int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	ListCategories(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error)
	UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64, force bool) (models.CategoryDeletion, error)
}

// AvailabilityService checks whether a listed domain name is still
// unregistered.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, domainID int64) (models.DomainAvailability, error)
}

// MaintenanceService runs housekeeping jobs for background workers.
type MaintenanceService interface {
	ReconcileCategoryCounts(ctx context.Context) (int64, error)
	CheckHealth(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
