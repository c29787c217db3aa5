// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the marketplace REST API.
//
// The primary abstraction is [MarketplaceAPI], which decouples the operator
// tooling from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPMarketplaceAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/domain-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/marketplace_api_mock.go -package=mock

// MarketplaceAPI is a client of a running marketplace server.
type MarketplaceAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// Register creates a local account. The access token returned in the
	// Authorization header is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.UserSummary, error)

	// Login exchanges credentials for a token pair. The access token is
	// stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)

	// CreateCategory requires an admin or moderator token.
	CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)

	ListCategories(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error)

	// CreateDomain requires a token. The category is created on the server
	// when input names one that does not exist yet.
	CreateDomain(ctx context.Context, input models.DomainInput) (models.Domain, error)

	ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error)

	// CheckAvailability runs a registry lookup for the domain with id.
	CheckAvailability(ctx context.Context, id int64) (models.DomainAvailability, error)
}
