// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/domain-marketplace/models"
)

// UserRepository persists marketplace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByGoogleIDOrEmail prefers an account already linked to
	// googleID over one that only shares the email.
	FindUserByGoogleIDOrEmail(ctx context.Context, googleID, email string) (models.User, error)
	LinkGoogleAccount(ctx context.Context, id int64, profile models.ExternalProfile) (models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CategoryRepository persists categories and owns their domain counters.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	GetCategoryByTitleOrSlug(ctx context.Context, term string) (models.Category, error)
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
	ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, int, error)
	// UpdateCategory applies upd and, when the title changes, refreshes the
	// category name mirrored on its domains in the same transaction.
	UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error)
	// DeleteCategory removes the category. With force unset it fails with
	// [ErrCategoryHasDomains] when domains reference it; with force set it
	// removes those domains first. Returns the deleted category and the
	// number of deleted domains.
	DeleteCategory(ctx context.Context, id int64, force bool) (models.Category, int, error)
	// ReconcileDomainCounts recomputes every domain counter from the domains
	// table and returns how many categories were corrected.
	ReconcileDomainCounts(ctx context.Context) (int64, error)
}

// DomainRepository persists domain listings.
type DomainRepository interface {
	// CreateDomainWithCategory resolves the category of input (by id, else by
	// title, creating it when absent), inserts the domain and increments the
	// category counter in a single transaction.
	CreateDomainWithCategory(ctx context.Context, input models.DomainInput) (models.Domain, error)
	GetDomainByID(ctx context.Context, id int64) (models.Domain, error)
	// ViewDomain returns the domain after incrementing its view counter.
	ViewDomain(ctx context.Context, id int64) (models.Domain, error)
	// RecordInquiry returns the domain after incrementing its inquiry counter.
	RecordInquiry(ctx context.Context, id int64) (models.Domain, error)
	DomainSlugExists(ctx context.Context, slug string) (bool, error)
	ListDomains(ctx context.Context, filter models.DomainFilter) ([]models.Domain, int, error)
	SearchDomains(ctx context.Context, term string, limit int) ([]models.Domain, error)
	RecommendDomains(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Domain, error)
	// UpdateDomain applies upd. A category change moves the domain between
	// counters; a set ExpectedStatus that no longer matches yields
	// [ErrStatusConflict].
	UpdateDomain(ctx context.Context, id int64, upd models.DomainUpdate) (models.Domain, error)
	// DeleteDomain removes the domain and decrements its category counter.
	DeleteDomain(ctx context.Context, id int64) error
}

// RefreshTokenStore tracks issued refresh tokens so that they can be
// revoked before they expire.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID int64, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID int64, tokenID string) error
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
